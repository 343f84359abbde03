package module

import "inspectgrade/internal/services/web/predict/domain"

// Ports is what the predict module exposes to other modules
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
