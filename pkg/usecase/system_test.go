package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/quantum-travel/quantumchat/pkg/usecase"
)

func TestSystemUseCase_Health(t *testing.T) {
	uc := newTestUseCases(usecase.WithVersion("1.2.3"))

	health := uc.System.Health(context.Background())
	gt.Value(t, health.Status).Equal("healthy")
	gt.Value(t, health.Service).Equal(usecase.ServiceName)
	gt.Value(t, health.Version).Equal("1.2.3")
	gt.Number(t, health.ActiveConnections).Equal(0)
	gt.Bool(t, health.Timestamp.IsZero()).False()
}

func TestSystemUseCase_Stats(t *testing.T) {
	uc := newTestUseCases(usecase.WithVersion("1.2.3"))
	ctx := context.Background()

	stats, err := uc.System.Stats(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, stats.TotalConversations).Equal(0)
	gt.Number(t, stats.SupportedModels).Equal(2)
	gt.Value(t, stats.Uptime).Equal("operational")
	gt.Value(t, stats.Version).Equal("1.2.3")

	_, err = uc.Chat.Chat(ctx, usecase.ChatInput{Message: "Hello"})
	gt.NoError(t, err).Required()

	stats, err = uc.System.Stats(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, stats.TotalConversations).Equal(1)
}
