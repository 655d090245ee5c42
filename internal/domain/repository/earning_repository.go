package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateEarning is returned when a ledger row that must be unique per order already exists.
var ErrDuplicateEarning = errors.New("earning already posted for this order")

// EarningRepository defines the append-only ledger operations.
type EarningRepository interface {
	// CreateAgentEarning appends an agent ledger row. A second delivery_fee row for the
	// same order returns ErrDuplicateEarning.
	CreateAgentEarning(ctx context.Context, earning *entity.AgentEarning) error

	// CreateRestaurantEarning appends a restaurant ledger row. A second row for the same
	// order returns ErrDuplicateEarning.
	CreateRestaurantEarning(ctx context.Context, earning *entity.RestaurantEarning) error

	// FindAgentEarnings lists an agent's ledger rows, newest first.
	FindAgentEarnings(ctx context.Context, agentID uuid.UUID) ([]*entity.AgentEarning, error)

	// SumAgentEarningsByType aggregates an agent's ledger by earning type.
	SumAgentEarningsByType(ctx context.Context, agentID uuid.UUID) (map[entity.EarningType]float64, error)

	// FindRestaurantEarnings lists a restaurant's ledger rows, newest first.
	FindRestaurantEarnings(ctx context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantEarning, error)

	// CreateRewardPointEntry appends a reward point entry.
	CreateRewardPointEntry(ctx context.Context, entry *entity.RewardPointEntry) error
}
