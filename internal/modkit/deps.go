// Package modkit provides module wiring and core deps
package modkit

import (
	"inspectgrade/internal/core/model"
	"inspectgrade/internal/modkit/module"
	"inspectgrade/internal/platform/config"
	"inspectgrade/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    *logger.Logger
	Cfg    config.Conf
	Models model.Provider
}

// Logger returns Log or the named process logger when Log is unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}

// Module is the contract every module satisfies
type Module = module.Module
