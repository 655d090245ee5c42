package usecase

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// PermissionUsecase defines the interface of the per-restaurant permission store
type PermissionUsecase interface {
	// GetPermission returns the flags of a restaurant, all-false when none were ever set
	GetPermission(ctx context.Context, restaurantID uuid.UUID) (*entity.RestaurantPermission, error)

	// UpdatePermission upserts the recognised boolean flags found in flags and drops unknown keys
	UpdatePermission(ctx context.Context, restaurantID uuid.UUID, flags map[string]any) (*entity.RestaurantPermission, error)
}
