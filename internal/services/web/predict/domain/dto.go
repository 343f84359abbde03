// Package domain holds DTOs and ports for the predict module
package domain

import (
	"inspectgrade/internal/core/features"
	"inspectgrade/internal/core/grade"

	"github.com/google/uuid"
)

// DefaultName is shown when a raw submission leaves the restaurant name blank
const DefaultName = "This Restaurant"

// EncodedInput is the encoded form, one field per overwritten feature
type EncodedInput struct {
	AvgScore      float64 `json:"avg_last_3_scores" form:"avg_last_3_scores" validate:"gte=0,lte=100" example:"15"`
	DaysSinceLast float64 `json:"days_since_last" form:"days_since_last" validate:"gte=0,lte=2000" example:"180"`
	ActionCode    int     `json:"action" form:"action" validate:"gte=0,lte=5" example:"1"`
	ViolationCode float64 `json:"violation_code" form:"violation_code" example:"43"`
	Month         int     `json:"inspection_month" form:"inspection_month" validate:"gte=1,lte=12" example:"12"`
	Weekday       int     `json:"inspection_weekday" form:"inspection_weekday" validate:"gte=0,lte=6" example:"0"`
}

// Features converts the DTO to assembler input
func (in EncodedInput) Features() features.EncodedInput {
	return features.EncodedInput{
		AvgScore:      in.AvgScore,
		DaysSinceLast: in.DaysSinceLast,
		ActionCode:    in.ActionCode,
		ViolationCode: in.ViolationCode,
		Month:         in.Month,
		Weekday:       in.Weekday,
	}
}

// RawInput is the raw form; categorical values must match the training strings byte for byte
type RawInput struct {
	Name          string  `json:"name,omitempty" form:"name" validate:"max=120" example:"Joe's Pizza"`
	Borough       string  `json:"borough" form:"borough" validate:"required,borough" example:"Manhattan"`
	Cuisine       string  `json:"cuisine" form:"cuisine" validate:"required,cuisine" example:"Italian"`
	AvgScore      float64 `json:"avg_last_3_scores" form:"avg_last_3_scores" validate:"gte=0,lte=100" example:"12"`
	DaysSinceLast float64 `json:"days_since_last" form:"days_since_last" validate:"gte=0,lte=3650" example:"180"`
	Action        string  `json:"action" form:"action" validate:"required,raw_action" example:"Violations were cited in the following area(s)."`
}

// Features converts the DTO to assembler input
func (in RawInput) Features() features.RawInput {
	return features.RawInput{
		Borough:       in.Borough,
		Cuisine:       in.Cuisine,
		AvgScore:      in.AvgScore,
		DaysSinceLast: in.DaysSinceLast,
		Action:        in.Action,
	}
}

// Result is one prediction outcome
// Grade is nil when scoring failed and no fallback applied
type Result struct {
	ID        uuid.UUID    `json:"id" example:"5b0c8f3e-1f1a-4d8e-9d7a-0e6c2b7f4a10"`
	Schema    string       `json:"schema" example:"raw"`
	Name      string       `json:"name,omitempty" example:"Joe's Pizza"`
	Score     float64      `json:"score" example:"11.8"`
	ScoreText string       `json:"score_text" example:"11.8"`
	Grade     *grade.Grade `json:"grade,omitempty"`
	Fallback  bool         `json:"fallback,omitempty"`
	Error     string       `json:"error,omitempty"`
	Cached    bool         `json:"cached,omitempty"`
}

// Option is one selectable value
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one form input
type Field struct {
	Name    string   `json:"name" example:"days_since_last"`
	Label   string   `json:"label" example:"Days Since Last"`
	Kind    string   `json:"kind" example:"number"` // number choice text
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Step    float64  `json:"step,omitempty"`
	Default string   `json:"default,omitempty" example:"180"`
	Options []Option `json:"options,omitempty"`
	Help    string   `json:"help,omitempty"`
}

// Form is the input contract of the loaded model
type Form struct {
	Schema     string   `json:"schema" example:"encoded"`
	ModelKind  string   `json:"model_kind" example:"linear"`
	Features   []string `json:"features"`
	Overridden []string `json:"overridden,omitempty"`
	Fields     []Field  `json:"fields"`
	Decimals   int      `json:"decimals" example:"2"`
}
