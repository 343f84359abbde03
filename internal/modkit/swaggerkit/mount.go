// Package swaggerkit mounts the Swagger UI and serves the OpenAPI document modules contribute to
package swaggerkit

import (
	"net/http"

	phttp "inspectgrade/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI lives, the document is DocsPath + "/doc.json"
const DocsPath = "/api/docs"

// Mount serves the UI and the assembled document, or nothing when disabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	docURL := DocsPath + "/doc.json"
	r.Get(DocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(docURL, serveDocJSON())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(docURL),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DeepLinking(true),
	))
}
