package memory

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"

	"github.com/google/uuid"
)

type earningRepository struct {
	db access
}

// CreateAgentEarning mirrors the partial unique index on (order_id, type) for delivery fees.
func (r *earningRepository) CreateAgentEarning(_ context.Context, earning *entity.AgentEarning) error {
	return r.db.write(func(s *state) error {
		if earning.Type == entity.EarningTypeDeliveryFee && earning.OrderID != nil {
			for _, existing := range s.agentEarnings {
				if existing.Type == entity.EarningTypeDeliveryFee && existing.OrderID != nil && *existing.OrderID == *earning.OrderID {
					return repository.ErrDuplicateEarning
				}
			}
		}

		c := *earning
		c.OrderID = copyUUID(earning.OrderID)
		s.agentEarnings = append(s.agentEarnings, &c)

		return nil
	})
}

// CreateRestaurantEarning mirrors the unique index on order_id.
func (r *earningRepository) CreateRestaurantEarning(_ context.Context, earning *entity.RestaurantEarning) error {
	return r.db.write(func(s *state) error {
		for _, existing := range s.restaurantEarnings {
			if existing.OrderID == earning.OrderID {
				return repository.ErrDuplicateEarning
			}
		}

		c := *earning
		s.restaurantEarnings = append(s.restaurantEarnings, &c)

		return nil
	})
}

func (r *earningRepository) FindAgentEarnings(_ context.Context, agentID uuid.UUID) ([]*entity.AgentEarning, error) {
	var out []*entity.AgentEarning
	err := r.db.read(func(s *state) error {
		for i := len(s.agentEarnings) - 1; i >= 0; i-- {
			if e := s.agentEarnings[i]; e.AgentID == agentID {
				c := *e
				out = append(out, &c)
			}
		}

		return nil
	})

	return out, err
}

func (r *earningRepository) SumAgentEarningsByType(_ context.Context, agentID uuid.UUID) (map[entity.EarningType]float64, error) {
	sums := make(map[entity.EarningType]float64)
	err := r.db.read(func(s *state) error {
		for _, e := range s.agentEarnings {
			if e.AgentID == agentID {
				sums[e.Type] += e.Amount
			}
		}

		return nil
	})

	return sums, err
}

func (r *earningRepository) FindRestaurantEarnings(_ context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantEarning, error) {
	var out []*entity.RestaurantEarning
	err := r.db.read(func(s *state) error {
		for i := len(s.restaurantEarnings) - 1; i >= 0; i-- {
			if e := s.restaurantEarnings[i]; e.RestaurantID == restaurantID {
				c := *e
				out = append(out, &c)
			}
		}

		return nil
	})

	return out, err
}

func (r *earningRepository) CreateRewardPointEntry(_ context.Context, entry *entity.RewardPointEntry) error {
	return r.db.write(func(s *state) error {
		c := *entry
		c.OrderID = copyUUID(entry.OrderID)
		s.rewardEntries = append(s.rewardEntries, &c)

		return nil
	})
}
