package domain

import (
	"inspectgrade/internal/core/features"
	"inspectgrade/internal/platform/net/http/bind"

	"github.com/go-playground/validator/v10"
)

func init() {
	mustRegister("borough", features.IsBorough, "{0} must be a known borough")
	mustRegister("cuisine", features.IsCuisine, "{0} must be a known cuisine")
	mustRegister("raw_action", features.IsRawAction, "{0} must be one of the listed actions")
}

func mustRegister(tag string, ok func(string) bool, msg string) {
	fn := func(fl validator.FieldLevel) bool { return ok(fl.Field().String()) }
	if err := bind.RegisterValidation(tag, fn, msg); err != nil {
		panic("predict: register validator " + tag + ": " + err.Error())
	}
}
