package features

import "slices"

// Schema is a named, ordered list of feature keys a model was trained with
type Schema struct {
	Name string
	Keys []string
}

// Schema names
const (
	SchemaEncoded = "encoded"
	SchemaRaw     = "raw"
)

// Feature keys that users can set
const (
	KeyAvgScore      = "avg_last_3_scores"
	KeyDaysSinceLast = "days_since_last"
	KeyAction        = "ACTION"
	KeyViolationCode = "VIOLATION CODE"
	KeyMonth         = "inspection_month"
	KeyWeekday       = "inspection_weekday"
	KeyBorough       = "BORO"
	KeyCuisine       = "CUISINE DESCRIPTION"
)

var encodedKeys = []string{
	"CAMIS", "DBA", KeyBorough, "BUILDING", "STREET", "ZIPCODE", "PHONE",
	KeyCuisine, KeyAction, KeyViolationCode,
	"VIOLATION DESCRIPTION", "CRITICAL FLAG", "INSPECTION TYPE", "Latitude",
	"Longitude", "Community Board", "Council District", "Census Tract",
	"BIN", "BBL", "NTA", "Location", KeyDaysSinceLast, KeyAvgScore,
	"inspection_year", KeyMonth, KeyWeekday,
	"ZIPCODE_na", "Latitude_na", "Longitude_na", "Community Board_na",
	"Council District_na", "Census Tract_na", "BIN_na", "BBL_na",
}

var rawKeys = []string{KeyBorough, KeyCuisine, KeyAvgScore, KeyDaysSinceLast, KeyAction}

// Encoded is the full training frame layout with categorical columns already index encoded
var Encoded = Schema{Name: SchemaEncoded, Keys: encodedKeys}

// Raw is the five column layout whose categorical columns carry raw strings
var Raw = Schema{Name: SchemaRaw, Keys: rawKeys}

// SchemaByName looks up a known schema
func SchemaByName(name string) (Schema, bool) {
	switch name {
	case SchemaEncoded:
		return Encoded.clone(), true
	case SchemaRaw:
		return Raw.clone(), true
	}
	return Schema{}, false
}

// Matches reports whether keys equal the schema keys in order
func (s Schema) Matches(keys []string) bool { return slices.Equal(s.Keys, keys) }

// Has reports whether key belongs to the schema
func (s Schema) Has(key string) bool { return slices.Contains(s.Keys, key) }

func (s Schema) clone() Schema { return Schema{Name: s.Name, Keys: slices.Clone(s.Keys)} }
