package memory

import (
	"context"
	"sort"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"

	"github.com/google/uuid"
)

type orderRepository struct {
	db access
}

func copyOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = append([]entity.OrderItem(nil), o.Items...)
	c.CustomerID = copyUUID(o.CustomerID)
	c.AssignedAgentID = copyUUID(o.AssignedAgentID)
	if o.ScheduledAt != nil {
		at := *o.ScheduledAt
		c.ScheduledAt = &at
	}
	if o.AgentRating != nil {
		r := *o.AgentRating
		c.AgentRating = &r
	}

	return &c
}

func copyUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id

	return &c
}

func (r *orderRepository) CreateOrder(_ context.Context, order *entity.Order) error {
	return r.db.write(func(s *state) error {
		stored := copyOrder(order)
		if stored.Version == 0 {
			stored.Version = 1
		}
		s.orders[order.ID] = stored

		return nil
	})
}

func (r *orderRepository) FindOrderByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	var found *entity.Order
	err := r.db.read(func(s *state) error {
		order, ok := s.orders[id]
		if !ok {
			return repository.ErrOrderNotFound
		}
		found = copyOrder(order)

		return nil
	})

	return found, err
}

func (r *orderRepository) TryTransition(_ context.Context, id uuid.UUID, expected repository.OrderExpectation, change repository.OrderChange) (*entity.Order, error) {
	var updated *entity.Order
	err := r.db.write(func(s *state) error {
		current, ok := s.orders[id]
		if !ok {
			return repository.ErrOrderNotFound
		}
		if current.Status != expected.Status || current.Version != expected.Version {
			return repository.ErrOrderStale
		}

		next := copyOrder(current)
		next.Status = change.Status
		next.AssignedAgentID = copyUUID(change.AssignedAgentID)
		if change.Reason != nil {
			next.Reason = *change.Reason
		}
		if change.AutoAccepted != nil {
			next.AutoAccepted = *change.AutoAccepted
		}
		if change.DebtCancellation != nil {
			next.DebtCancellation = *change.DebtCancellation
		}
		next.Version++
		next.UpdatedAt = time.Now()

		s.orders[id] = next
		updated = copyOrder(next)

		return nil
	})

	return updated, err
}

func (r *orderRepository) AppendStatusChange(_ context.Context, change *entity.OrderStatusChange) error {
	return r.db.write(func(s *state) error {
		c := *change
		s.history = append(s.history, &c)

		return nil
	})
}

func (r *orderRepository) FindStatusHistory(_ context.Context, orderID uuid.UUID) ([]*entity.OrderStatusChange, error) {
	var out []*entity.OrderStatusChange
	err := r.db.read(func(s *state) error {
		for _, h := range s.history {
			if h.OrderID == orderID {
				c := *h
				out = append(out, &c)
			}
		}

		return nil
	})

	return out, err
}

func (r *orderRepository) SetAgentRating(_ context.Context, id uuid.UUID, rating int) error {
	return r.db.write(func(s *state) error {
		current, ok := s.orders[id]
		if !ok {
			return repository.ErrOrderNotFound
		}
		if current.AgentRating != nil {
			return repository.ErrOrderAlreadyRated
		}

		next := copyOrder(current)
		next.AgentRating = &rating
		next.UpdatedAt = time.Now()
		s.orders[id] = next

		return nil
	})
}

func (r *orderRepository) FindUnassignedAcceptedOrders(_ context.Context, limit int) ([]*entity.Order, error) {
	var out []*entity.Order
	err := r.db.read(func(s *state) error {
		for _, order := range s.orders {
			if order.Status == entity.OrderStatusAcceptedByRestaurant && order.AssignedAgentID == nil {
				out = append(out, copyOrder(order))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
