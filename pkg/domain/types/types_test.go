package types_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

func TestRole(t *testing.T) {
	t.Run("parse valid roles", func(t *testing.T) {
		for _, r := range types.AllRoles() {
			parsed, err := types.ParseRole(r.String())
			gt.NoError(t, err).Required()
			gt.Value(t, parsed).Equal(r)
		}
	})

	t.Run("parse invalid role fails", func(t *testing.T) {
		_, err := types.ParseRole("system")
		gt.Error(t, err)
	})
}

func TestConversationID(t *testing.T) {
	t.Run("generated IDs carry the conv_ prefix", func(t *testing.T) {
		id := types.NewConversationID()
		gt.Bool(t, strings.HasPrefix(id.String(), "conv_")).True()
		gt.NoError(t, id.Validate())
	})

	t.Run("generated IDs are distinct", func(t *testing.T) {
		seen := map[types.ConversationID]bool{}
		for i := 0; i < 100; i++ {
			id := types.NewConversationID()
			gt.Bool(t, seen[id]).False()
			seen[id] = true
		}
	})

	t.Run("empty ID is invalid", func(t *testing.T) {
		gt.Error(t, types.ConversationID("").Validate())
	})

	t.Run("ID with path separator is invalid", func(t *testing.T) {
		gt.Error(t, types.ConversationID("conv_a/b").Validate())
	})
}

func TestMessageID(t *testing.T) {
	id := types.NewMessageID()
	gt.Bool(t, strings.HasPrefix(id.String(), "msg_")).True()

	// ULIDs are lexicographically ordered by generation time
	second := types.NewMessageID()
	gt.Bool(t, id.String() <= second.String()).True()
}

func TestClientID(t *testing.T) {
	gt.NoError(t, types.ClientID("client1").Validate())
	gt.Error(t, types.ClientID("").Validate())
}

func TestModelStatus(t *testing.T) {
	gt.Bool(t, types.ModelStatusActive.IsValid()).True()
	gt.Bool(t, types.ModelStatus("broken").IsValid()).False()
	gt.Value(t, types.ModelStatus("").Normalize()).Equal(types.ModelStatusActive)
	gt.Value(t, types.ModelStatusInactive.Normalize()).Equal(types.ModelStatusInactive)
}
