package service

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// AgentLocator finds delivery agents by proximity.
// Results are candidates only; capacity and activity are enforced when the agent is reserved.
type AgentLocator interface {
	// FindNearest returns up to limit agents within maxDistanceMeters of point, nearest first
	FindNearest(ctx context.Context, point entity.Point, maxDistanceMeters float64, limit int) ([]*entity.NearbyAgent, error)

	// UpdatePosition records an agent's latest location in the index
	UpdatePosition(ctx context.Context, agentID uuid.UUID, point entity.Point) error
}
