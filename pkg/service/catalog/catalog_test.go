package catalog_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
	"github.com/quantum-travel/quantumchat/pkg/service/catalog"
)

func TestCatalog_Default(t *testing.T) {
	cat := catalog.NewDefault()

	models := cat.List()
	gt.Array(t, models).Length(2)
	gt.Value(t, models[0].ID).Equal(catalog.DefaultModelID)
	gt.Value(t, models[1].ID).Equal(types.ModelID("quantum-pro"))

	for _, m := range models {
		gt.Bool(t, m.Name != "").True()
		gt.Bool(t, len(m.Capabilities) > 0).True()
		gt.Value(t, m.Status).Equal(types.ModelStatusActive)
	}
}

func TestCatalog_Get(t *testing.T) {
	cat := catalog.NewDefault()

	m, err := cat.Get("quantum-pro")
	gt.NoError(t, err).Required()
	gt.Value(t, m.Name).Equal("Quantum Pro")

	_, err = cat.Get("nonexistent")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, catalog.ErrModelNotFound)).True()
}

func TestCatalog_New(t *testing.T) {
	t.Run("preserves declaration order", func(t *testing.T) {
		cat, err := catalog.New([]model.ModelInfo{
			{ID: "b", Name: "B", Capabilities: []string{"x"}, Version: "1"},
			{ID: "a", Name: "A", Capabilities: []string{"y"}, Version: "1"},
		})
		gt.NoError(t, err).Required()

		models := cat.List()
		gt.Value(t, models[0].ID).Equal(types.ModelID("b"))
		gt.Value(t, models[1].ID).Equal(types.ModelID("a"))
	})

	t.Run("empty status normalizes to active", func(t *testing.T) {
		cat, err := catalog.New([]model.ModelInfo{
			{ID: "a", Name: "A", Capabilities: []string{"x"}, Version: "1"},
		})
		gt.NoError(t, err).Required()

		m, err := cat.Get("a")
		gt.NoError(t, err).Required()
		gt.Value(t, m.Status).Equal(types.ModelStatusActive)
	})

	t.Run("rejects duplicate IDs", func(t *testing.T) {
		_, err := catalog.New([]model.ModelInfo{
			{ID: "a", Name: "A", Capabilities: []string{"x"}, Version: "1"},
			{ID: "a", Name: "A again", Capabilities: []string{"y"}, Version: "2"},
		})
		gt.Error(t, err)
	})

	t.Run("rejects descriptor without capabilities", func(t *testing.T) {
		_, err := catalog.New([]model.ModelInfo{
			{ID: "a", Name: "A", Version: "1"},
		})
		gt.Error(t, err)
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		_, err := catalog.New(nil)
		gt.Error(t, err)
	})
}
