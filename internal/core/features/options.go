package features

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Action is one inspection action with its encoded index
type Action struct {
	Code int
	Text string
}

// Actions maps encoded ACTION indices to their inspection wording
// Code 0 is selectable but has no wording
var Actions = []Action{
	{1, "Violations were cited in the following area(s)."},
	{2, "Establishment Closed by DOHMH. Violations were cited in the following area(s) and those requiring immediate action were addressed."},
	{3, "Establishment re-opened by DOHMH."},
	{4, "No violations were recorded at the time of this inspection."},
	{5, "Establishment re-closed by DOHMH."},
}

// RawActions are the raw ACTION strings exactly as the raw model saw them in training
// Two of them carry a trailing space
var RawActions = []string{
	"Violations were cited in the following area(s).",
	"Establishment Closed by DOHMH. Violations were cited in the following area(s) and those requiring immediate action were addressed.",
	"Establishment re-opened by DOHMH. ",
	"No violations were recorded at the time of this inspection.",
	"Establishment re-closed by DOHMH. ",
}

// Boroughs are the selectable BORO values
var Boroughs = []string{"Manhattan", "Queens", "Brooklyn", "Bronx", "Staten Island"}

// Cuisines are the selectable CUISINE DESCRIPTION values
var Cuisines = []string{"American", "Chinese", "Italian", "Mexican", "Japanese", "Latin", "Bakery", "Other"}

// ActionCodes are the selectable encoded ACTION indices
var ActionCodes = []int{0, 1, 2, 3, 4, 5}

// IsRawAction reports whether s is one of RawActions, byte for byte
func IsRawAction(s string) bool { return slices.Contains(RawActions, s) }

// IsBorough reports whether s is a known borough
func IsBorough(s string) bool { return slices.Contains(Boroughs, s) }

// IsCuisine reports whether s is a known cuisine
func IsCuisine(s string) bool { return slices.Contains(Cuisines, s) }

// ActionText returns the wording for an encoded action index
func ActionText(code int) string {
	for _, a := range Actions {
		if a.Code == code {
			return a.Text
		}
	}
	return ""
}

// Label turns a feature key into a display label, e.g. "days_since_last" -> "Days Since Last"
func Label(key string) string {
	b := []byte(key)
	for i, c := range b {
		if c == '_' {
			b[i] = ' '
		}
	}
	// a Caser is stateful, so one per call
	return cases.Title(language.English).String(string(b))
}
