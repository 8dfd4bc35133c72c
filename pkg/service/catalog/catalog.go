package catalog

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

// ErrModelNotFound is returned when a model ID is not in the catalog
var ErrModelNotFound = errors.New("model not found")

// Catalog is the read-only registry of available models. It is initialized
// once at startup and safe for concurrent reads; List preserves
// initialization order.
type Catalog struct {
	order  []types.ModelID
	models map[types.ModelID]*model.ModelInfo
}

// New builds a catalog from descriptors, preserving their order
func New(descriptors []model.ModelInfo) (*Catalog, error) {
	c := &Catalog{
		models: make(map[types.ModelID]*model.ModelInfo, len(descriptors)),
	}
	for i := range descriptors {
		d := descriptors[i]
		d.Status = d.Status.Normalize()
		if err := d.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid model descriptor")
		}
		if _, exists := c.models[d.ID]; exists {
			return nil, goerr.New("duplicate model ID", goerr.V("id", d.ID))
		}
		c.order = append(c.order, d.ID)
		c.models[d.ID] = &d
	}
	if len(c.order) == 0 {
		return nil, goerr.New("catalog must contain at least one model")
	}
	return c, nil
}

// NewDefault builds the built-in catalog
func NewDefault() *Catalog {
	c, err := New(DefaultModels())
	if err != nil {
		// Built-in descriptors are statically valid
		panic(err)
	}
	return c
}

// List returns all descriptors in initialization order
func (c *Catalog) List() []*model.ModelInfo {
	out := make([]*model.ModelInfo, len(c.order))
	for i, id := range c.order {
		out[i] = c.models[id]
	}
	return out
}

// Get returns the descriptor for the given ID
func (c *Catalog) Get(id types.ModelID) (*model.ModelInfo, error) {
	m, exists := c.models[id]
	if !exists {
		return nil, goerr.Wrap(ErrModelNotFound, "unknown model", goerr.V("id", id))
	}
	return m, nil
}

// Has reports whether the given ID is in the catalog
func (c *Catalog) Has(id types.ModelID) bool {
	_, exists := c.models[id]
	return exists
}

// Len returns the number of models in the catalog
func (c *Catalog) Len() int {
	return len(c.order)
}
