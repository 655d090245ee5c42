package memory

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"

	"github.com/google/uuid"
)

type agentRepository struct {
	db access
}

func copyAgent(a *entity.Agent) *entity.Agent {
	c := *a

	return &c
}

func (r *agentRepository) FindAgentByID(_ context.Context, id uuid.UUID) (*entity.Agent, error) {
	var found *entity.Agent
	err := r.db.read(func(s *state) error {
		agent, ok := s.agents[id]
		if !ok {
			return repository.ErrAgentNotFound
		}
		found = copyAgent(agent)

		return nil
	})

	return found, err
}

// update replaces the agent row with a mutated copy.
func (r *agentRepository) update(id uuid.UUID, mutate func(*entity.Agent) error) (*entity.Agent, error) {
	var updated *entity.Agent
	err := r.db.write(func(s *state) error {
		current, ok := s.agents[id]
		if !ok {
			return repository.ErrAgentNotFound
		}

		next := copyAgent(current)
		if err := mutate(next); err != nil {
			return err
		}
		next.UpdatedAt = time.Now()
		s.agents[id] = next
		updated = copyAgent(next)

		return nil
	})

	return updated, err
}

func (r *agentRepository) ReserveCapacity(_ context.Context, id uuid.UUID) error {
	_, err := r.update(id, func(a *entity.Agent) error {
		if !a.HasCapacity() {
			return repository.ErrAgentUnavailable
		}
		a.OrderCount++

		return nil
	})

	return err
}

func (r *agentRepository) ReleaseCapacity(_ context.Context, id uuid.UUID) error {
	_, err := r.update(id, func(a *entity.Agent) error {
		if a.OrderCount > 0 {
			a.OrderCount--
		}

		return nil
	})

	return err
}

func (r *agentRepository) UpdateLocation(_ context.Context, id uuid.UUID, point entity.Point) error {
	_, err := r.update(id, func(a *entity.Agent) error {
		a.Location = point

		return nil
	})

	return err
}

func (r *agentRepository) AddRewardPoints(_ context.Context, id uuid.UUID, points int64) error {
	_, err := r.update(id, func(a *entity.Agent) error {
		a.RewardPoints += points

		return nil
	})

	return err
}

func (r *agentRepository) RecordReview(_ context.Context, id uuid.UUID, rating int) (*entity.Agent, error) {
	return r.update(id, func(a *entity.Agent) error {
		total := a.AverageRating*float64(a.ReviewCount) + float64(rating)
		a.ReviewCount++
		a.AverageRating = total / float64(a.ReviewCount)

		return nil
	})
}
