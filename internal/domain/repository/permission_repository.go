package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// ErrPermissionNotFound is returned when a restaurant has no permission row yet.
var ErrPermissionNotFound = errors.New("restaurant permission not found")

// PermissionRepository defines the persistence operations for restaurant permission flags.
type PermissionRepository interface {
	// FindPermissionByRestaurant retrieves the flags of a restaurant.
	// Returns ErrPermissionNotFound if no row exists.
	FindPermissionByRestaurant(ctx context.Context, restaurantID uuid.UUID) (*entity.RestaurantPermission, error)

	// UpsertPermission creates the row with all-false defaults if missing, then sets only the given flags.
	UpsertPermission(ctx context.Context, restaurantID uuid.UUID, flags map[string]bool) (*entity.RestaurantPermission, error)
}
