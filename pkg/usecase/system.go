package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quantum-travel/quantumchat/pkg/domain/model"
)

// SystemUseCase serves health and statistics snapshots
type SystemUseCase struct {
	uc *UseCases
}

func newSystemUseCase(uc *UseCases) *SystemUseCase {
	return &SystemUseCase{uc: uc}
}

func (x *SystemUseCase) Health(ctx context.Context) *model.HealthResponse {
	return &model.HealthResponse{
		Status:            "healthy",
		Service:           ServiceName,
		Version:           x.uc.version,
		Timestamp:         time.Now().UTC(),
		ActiveConnections: x.uc.registry.Count(),
	}
}

func (x *SystemUseCase) Stats(ctx context.Context) (*model.StatsResponse, error) {
	total, err := x.uc.repo.Conversation().Count(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count conversations")
	}

	return &model.StatsResponse{
		TotalConversations: total,
		ActiveConnections:  x.uc.registry.Count(),
		SupportedModels:    x.uc.catalog.Len(),
		Uptime:             "operational",
		Version:            x.uc.version,
	}, nil
}
