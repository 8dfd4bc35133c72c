package catalog

import (
	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

// DefaultModelID is used when a request does not name a model
const DefaultModelID types.ModelID = "quantum-ai"

// DefaultModels returns the built-in model descriptors
func DefaultModels() []model.ModelInfo {
	return []model.ModelInfo{
		{
			ID:          DefaultModelID,
			Name:        "Quantum AI",
			Description: "Advanced quantum-enhanced AI model with superior reasoning",
			Capabilities: []string{
				"Natural language understanding",
				"Code generation and analysis",
				"Mathematical computations",
				"Multi-language support",
				"Context-aware responses",
				"Real-time information retrieval",
			},
			Version: "1.0.0",
			Status:  types.ModelStatusActive,
		},
		{
			ID:          "quantum-pro",
			Name:        "Quantum Pro",
			Description: "Professional-grade AI with enhanced capabilities",
			Capabilities: []string{
				"All Quantum AI features",
				"Advanced data analysis",
				"Document processing",
				"Image understanding",
				"Complex reasoning",
				"Custom plugin support",
			},
			Version: "1.0.0",
			Status:  types.ModelStatusActive,
		},
	}
}
