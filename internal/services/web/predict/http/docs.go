package http

import "inspectgrade/internal/modkit/swaggerkit"

// Doc documents the predict routes mounted under prefix
func Doc(prefix string) swaggerkit.SpecMutator {
	ref := func(name string) map[string]any {
		return map[string]any{"$ref": "#/components/schemas/" + name}
	}
	body := func(name string) map[string]any {
		return map[string]any{
			"required": true,
			"content":  map[string]any{"application/json": map[string]any{"schema": ref(name)}},
		}
	}
	ok := func(name string) map[string]any {
		return map[string]any{
			"description": "OK",
			"content":     map[string]any{"application/json": map[string]any{"schema": ref(name)}},
		}
	}
	fail := func(desc string) map[string]any {
		return map[string]any{
			"description": desc,
			"content":     map[string]any{"application/json": map[string]any{"schema": ref("ErrorResponse")}},
		}
	}
	num := map[string]any{"type": "number"}
	integer := map[string]any{"type": "integer"}
	str := map[string]any{"type": "string"}

	return func(spec map[string]any) {
		swaggerkit.AddSchema(spec, "EncodedInput", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"avg_last_3_scores": num, "days_since_last": num, "action": integer,
				"violation_code": num, "inspection_month": integer, "inspection_weekday": integer,
			},
			"required": []any{"inspection_month"},
		})
		swaggerkit.AddSchema(spec, "RawInput", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": str, "borough": str, "cuisine": str,
				"avg_last_3_scores": num, "days_since_last": num, "action": str,
			},
			"required": []any{"borough", "cuisine", "action"},
		})
		swaggerkit.AddSchema(spec, "Result", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": str, "schema": str, "name": str, "score": num, "score_text": str,
				"grade":    map[string]any{"type": "object"},
				"fallback": map[string]any{"type": "boolean"},
				"error":    str,
			},
		})
		swaggerkit.AddSchema(spec, "Form", map[string]any{"type": "object"})

		swaggerkit.AddPath(spec, prefix+"/encoded", "post", map[string]any{
			"tags": []any{"Predict"}, "summary": "Predict a grade from encoded inputs",
			"requestBody": body("EncodedInput"),
			"responses": map[string]any{
				"200": ok("Result"), "400": fail("Bad Request"),
				"422": fail("Schema Mismatch"), "503": fail("Model Not Found"),
			},
		})
		swaggerkit.AddPath(spec, prefix+"/raw", "post", map[string]any{
			"tags": []any{"Predict"}, "summary": "Predict a grade from raw inputs",
			"requestBody": body("RawInput"),
			"responses": map[string]any{
				"200": ok("Result"), "400": fail("Bad Request"), "503": fail("Model Not Found"),
			},
		})
		swaggerkit.AddPath(spec, prefix+"/schema", "get", map[string]any{
			"tags": []any{"Predict"}, "summary": "Input contract of the loaded model",
			"responses": map[string]any{"200": ok("Form"), "503": fail("Model Not Found")},
		})
	}
}
