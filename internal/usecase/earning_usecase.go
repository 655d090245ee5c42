package usecase

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// EarningUsecase defines the append-only earnings ledger operations
type EarningUsecase interface {
	// PostAgentEarning appends an agent ledger row
	PostAgentEarning(ctx context.Context, agentID uuid.UUID, orderID *uuid.UUID, amount float64, earningType entity.EarningType, remarks string) (*entity.AgentEarning, error)

	// PostRestaurantEarning credits the restaurant's net share of an order's food revenue
	PostRestaurantEarning(ctx context.Context, orderID uuid.UUID) (*entity.RestaurantEarning, error)

	// GetAgentEarningsSummary returns the agent's total and per-type breakdown
	GetAgentEarningsSummary(ctx context.Context, agentID uuid.UUID) (*entity.EarningsSummary, error)

	// ListRestaurantEarnings returns a restaurant's ledger rows for merchants with canViewReports and admins
	ListRestaurantEarnings(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) ([]*entity.RestaurantEarning, error)
}
