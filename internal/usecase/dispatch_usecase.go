package usecase

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// RetryResult reports one pass over orders waiting for an agent
type RetryResult struct {
	Attempted int `json:"attempted"`
	Assigned  int `json:"assigned"`
}

// DispatchUsecase defines the nearest-agent assignment operations
type DispatchUsecase interface {
	// AssignNearest assigns the nearest active agent with spare capacity within maxDistanceMeters
	// (the configured default when <= 0). It returns nil, nil when no agent fits; callers leave
	// the order unassigned and retry later.
	AssignNearest(ctx context.Context, orderID uuid.UUID, deliveryPoint entity.Point, maxDistanceMeters float64) (*entity.Agent, error)

	// UpdateAgentLocation records the calling agent's current location
	UpdateAgentLocation(ctx context.Context, actor entity.Actor, point entity.Point) (*entity.Agent, error)

	// RetryUnassigned runs AssignNearest over up to limit orders still waiting for an agent
	RetryUnassigned(ctx context.Context, limit int) (*RetryResult, error)
}
