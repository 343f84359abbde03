// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "inspectgrade/internal/platform/net/http"
)

// Module is one mountable slice of the service
// it lives apart from modkit so a module's ports package can import it without a cycle
type Module interface {
	Name() string
	// MountRoutes registers the module's routes on r, r is already scoped by the caller
	MountRoutes(r phttp.Router)
	// Ports exposes what other modules may call, nil when nothing
	Ports() any
}
