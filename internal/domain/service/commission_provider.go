package service

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// CommissionProvider supplies a restaurant's revenue-share terms
type CommissionProvider interface {
	CommissionFor(ctx context.Context, restaurantID uuid.UUID) (entity.Commission, error)
}
