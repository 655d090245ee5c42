package memory

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"

	"github.com/google/uuid"
)

type restaurantRepository struct {
	db access
}

func copyRestaurant(r *entity.Restaurant) *entity.Restaurant {
	c := *r
	if r.TelegramChatID != nil {
		chat := *r.TelegramChatID
		c.TelegramChatID = &chat
	}

	return &c
}

func (r *restaurantRepository) FindRestaurantByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var found *entity.Restaurant
	err := r.db.read(func(s *state) error {
		restaurant, ok := s.restaurants[id]
		if !ok {
			return repository.ErrRestaurantNotFound
		}
		found = copyRestaurant(restaurant)

		return nil
	})

	return found, err
}

func (r *restaurantRepository) IncrementCompletedOrders(_ context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.write(func(s *state) error {
		current, ok := s.restaurants[id]
		if !ok {
			return repository.ErrRestaurantNotFound
		}

		next := copyRestaurant(current)
		next.CompletedOrderCount++
		next.UpdatedAt = time.Now()
		s.restaurants[id] = next
		count = next.CompletedOrderCount

		return nil
	})

	return count, err
}

func (r *restaurantRepository) AddRewardPoints(_ context.Context, id uuid.UUID, points int64) error {
	return r.db.write(func(s *state) error {
		current, ok := s.restaurants[id]
		if !ok {
			return repository.ErrRestaurantNotFound
		}

		next := copyRestaurant(current)
		next.RewardPoints += points
		next.UpdatedAt = time.Now()
		s.restaurants[id] = next

		return nil
	})
}
