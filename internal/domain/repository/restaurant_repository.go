package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines the persistence operations the engine needs on restaurants.
type RestaurantRepository interface {
	// FindRestaurantByID retrieves a restaurant by its unique ID.
	FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// IncrementCompletedOrders atomically bumps the completed order counter and returns the new value.
	IncrementCompletedOrders(ctx context.Context, id uuid.UUID) (int64, error)

	// AddRewardPoints adds points to the restaurant's reward total.
	AddRewardPoints(ctx context.Context, id uuid.UUID, points int64) error
}
