package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

// ModelInfo describes one entry of the model catalog. Instances are
// immutable after startup.
type ModelInfo struct {
	ID           types.ModelID     `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Capabilities []string          `json:"capabilities"`
	Version      string            `json:"version"`
	Status       types.ModelStatus `json:"status"`
}

// Validate checks if the model descriptor is complete
func (m *ModelInfo) Validate() error {
	if m.ID == "" {
		return goerr.New("model ID is required")
	}
	if m.Name == "" {
		return goerr.New("model name is required", goerr.V("id", m.ID))
	}
	if len(m.Capabilities) == 0 {
		return goerr.New("model must declare at least one capability", goerr.V("id", m.ID))
	}
	if !m.Status.Normalize().IsValid() {
		return goerr.New("invalid model status", goerr.V("id", m.ID), goerr.V("status", m.Status))
	}
	return nil
}
