// Package grade maps a predicted inspection score to a letter grade band
package grade

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Band upper bounds, inclusive
const (
	MaxA = 13.0
	MaxB = 27.0
)

// Grade is the verdict shown for a score
type Grade struct {
	Letter string `json:"letter"`
	Label  string `json:"label"`
	Tone   string `json:"tone"`
	Color  string `json:"color"`
}

var (
	gradeA = Grade{Letter: "A", Label: "Excellent", Tone: "success", Color: "#28a745"}
	gradeB = Grade{Letter: "B", Label: "Good", Tone: "warning", Color: "#ffc107"}
	gradeC = Grade{Letter: "C", Label: "Needs Improvement", Tone: "error", Color: "#dc3545"}
)

// Classify returns A for score <= 13, B for score <= 27 and C above
// Negative and very large scores fall into the same three bands
func Classify(score float64) Grade {
	switch {
	case score <= MaxA:
		return gradeA
	case score <= MaxB:
		return gradeB
	default:
		return gradeC
	}
}

// FormatScore renders score with the given number of decimals using English digit grouping
func FormatScore(score float64, decimals int) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(score, number.Scale(decimals)))
}
