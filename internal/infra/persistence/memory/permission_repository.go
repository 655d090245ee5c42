package memory

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"

	"github.com/google/uuid"
)

type permissionRepository struct {
	db access
}

func (r *permissionRepository) FindPermissionByRestaurant(_ context.Context, restaurantID uuid.UUID) (*entity.RestaurantPermission, error) {
	var found *entity.RestaurantPermission
	err := r.db.read(func(s *state) error {
		perm, ok := s.permissions[restaurantID]
		if !ok {
			return repository.ErrPermissionNotFound
		}
		c := *perm
		found = &c

		return nil
	})

	return found, err
}

func (r *permissionRepository) UpsertPermission(_ context.Context, restaurantID uuid.UUID, flags map[string]bool) (*entity.RestaurantPermission, error) {
	var updated *entity.RestaurantPermission
	err := r.db.write(func(s *state) error {
		next := entity.DefaultPermission(restaurantID)
		if current, ok := s.permissions[restaurantID]; ok {
			c := *current
			next = &c
		}

		next.Apply(flags)
		next.UpdatedAt = time.Now()
		s.permissions[restaurantID] = next

		c := *next
		updated = &c

		return nil
	})

	return updated, err
}
