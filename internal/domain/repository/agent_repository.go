package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrAgentNotFound is returned when an agent is not found.
	ErrAgentNotFound = errors.New("agent not found")
	// ErrAgentUnavailable is returned when an agent is inactive or already at capacity.
	ErrAgentUnavailable = errors.New("agent inactive or at capacity")
)

// AgentRepository defines the persistence operations for delivery agents.
type AgentRepository interface {
	// FindAgentByID retrieves an agent by its unique ID.
	FindAgentByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error)

	// ReserveCapacity increments the running order count only if the agent is active and below capacity.
	// Returns ErrAgentUnavailable otherwise.
	ReserveCapacity(ctx context.Context, id uuid.UUID) error

	// ReleaseCapacity decrements the running order count, never below zero.
	ReleaseCapacity(ctx context.Context, id uuid.UUID) error

	// UpdateLocation stores the agent's current delivery location.
	UpdateLocation(ctx context.Context, id uuid.UUID, point entity.Point) error

	// AddRewardPoints adds points to the agent's reward total.
	AddRewardPoints(ctx context.Context, id uuid.UUID, points int64) error

	// RecordReview folds a rating into the agent's review count and average rating.
	RecordReview(ctx context.Context, id uuid.UUID, rating int) (*entity.Agent, error)
}
