package impl

import (
	"context"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// mapRepositoryError converts repository sentinels into application errors and wraps anything else.
func mapRepositoryError(err error, msg string) error {
	if err == nil {
		return nil
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	case errors.Is(err, repository.ErrAgentNotFound):
		return domainerrors.ErrAgentNotFound
	case errors.Is(err, repository.ErrRestaurantNotFound):
		return domainerrors.ErrRestaurantNotFound
	case errors.Is(err, repository.ErrChangeRequestNotFound):
		return domainerrors.ErrChangeRequestNotFound
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrCategoryNotFound):
		return domainerrors.ErrCategoryNotFound
	case errors.Is(err, repository.ErrOrderStale):
		return domainerrors.ErrConflict.WithDetails("order was modified concurrently")
	case errors.Is(err, repository.ErrChangeRequestNotPending):
		return domainerrors.ErrChangeRequestReviewed
	case errors.Is(err, repository.ErrAgentUnavailable):
		return domainerrors.ErrAgentAtCapacity
	case errors.Is(err, repository.ErrDuplicateEarning):
		return domainerrors.ErrEarningAlreadyPosted
	case errors.Is(err, repository.ErrOrderAlreadyRated):
		return domainerrors.ErrOrderAlreadyRated
	}

	return errors.Wrap(err, msg)
}

// findPermission reads a restaurant's flags, falling back to the all-false defaults.
func findPermission(ctx context.Context, repo repository.PermissionRepository, restaurantID uuid.UUID) (*entity.RestaurantPermission, error) {
	perm, err := repo.FindPermissionByRestaurant(ctx, restaurantID)
	if errors.Is(err, repository.ErrPermissionNotFound) {
		return entity.DefaultPermission(restaurantID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant permission")
	}

	return perm, nil
}
