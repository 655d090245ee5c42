package impl

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// transitionRequest is one lifecycle operation routed through the transition table.
type transitionRequest struct {
	actor       entity.Actor
	orderID     uuid.UUID
	action      entity.OrderAction
	reason      *string
	debt        *bool
	assignAgent *uuid.UUID // agent taking the order when the target status holds one

	// authorize runs inside the transaction before the guard, for resource-level checks.
	authorize func(ctx context.Context, repos repository.RepositoryFactory, order *entity.Order) error
}

// transition reads the order, consults the transition table and commits the change with a
// compare-and-swap, together with agent capacity bookkeeping, the history row and any ledger
// postings. Notifications and events go out only after the commit.
func (srv *orderService) transition(ctx context.Context, req *transitionRequest) (*entity.Order, error) {
	var outcome *orderTransition

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		outcome, err = applyTransition(ctx, repos, srv.ledger, req)

		return err
	})
	if err != nil {
		srv.log(ctx).Info("Order transition refused",
			slog.Any("orderID", req.orderID),
			slog.String("action", string(req.action)),
			slog.String("role", string(req.actor.Role)),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order transitioned",
		slog.Any("orderID", req.orderID),
		slog.String("action", string(req.action)),
		slog.String("from", string(outcome.from)),
		slog.String("to", string(outcome.order.Status)))

	srv.effects.orderTransitioned(ctx, outcome)

	return outcome.order, nil
}

// applyTransition is the transactional half of a transition. It is shared with the dispatch
// engine, which assigns agents through the same table.
func applyTransition(ctx context.Context, repos repository.RepositoryFactory, ledger *ledger, req *transitionRequest) (*orderTransition, error) {
	orders := repos.NewOrderRepository()

	order, err := orders.FindOrderByID(ctx, req.orderID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find order")
	}

	if req.authorize != nil {
		if err := req.authorize(ctx, repos, order); err != nil {
			return nil, err
		}
	}

	next, err := entity.NextStatus(order.Status, req.actor.Role, req.action)
	if err != nil {
		return nil, err
	}

	change := repository.OrderChange{
		Status:           next,
		AssignedAgentID:  order.AssignedAgentID,
		Reason:           req.reason,
		DebtCancellation: req.debt,
	}
	if !next.HoldsAgent() {
		change.AssignedAgentID = nil
	} else if req.assignAgent != nil {
		change.AssignedAgentID = req.assignAgent
	}
	if next.HoldsAgent() && change.AssignedAgentID == nil {
		return nil, errors.Errorf("transition %s to %s requires an agent", req.action, next)
	}

	if err := moveAgentCapacity(ctx, repos.NewAgentRepository(), order, next, change.AssignedAgentID); err != nil {
		return nil, err
	}

	updated, err := orders.TryTransition(ctx, order.ID, repository.ExpectOrder(order), change)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to transition order")
	}

	reason := ""
	if req.reason != nil {
		reason = *req.reason
	}
	if err := appendHistory(ctx, orders, order.ID, order.Status, updated.Status, req.actor, reason); err != nil {
		return nil, err
	}

	switch updated.Status {
	case entity.OrderStatusDelivered:
		if err := ledger.onDelivered(ctx, repos, updated); err != nil {
			return nil, err
		}
	case entity.OrderStatusCompleted:
		if err := ledger.onCompleted(ctx, repos, updated, order.AssignedAgentID); err != nil {
			return nil, err
		}
	}

	chatID, err := merchantChatID(ctx, repos.NewRestaurantRepository(), order.RestaurantID)
	if err != nil {
		return nil, err
	}

	return &orderTransition{
		action:         req.action,
		from:           order.Status,
		order:          updated,
		previousAgent:  order.AssignedAgentID,
		telegramChatID: chatID,
	}, nil
}

// merchantChatID returns the restaurant's Telegram chat, nil when it has none.
func merchantChatID(ctx context.Context, restaurants repository.RestaurantRepository, restaurantID uuid.UUID) (*int64, error) {
	restaurant, err := restaurants.FindRestaurantByID(ctx, restaurantID)
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant.TelegramChatID, nil
}

// moveAgentCapacity reserves capacity when an agent starts carrying the order and releases
// it when the order stops occupying the agent.
func moveAgentCapacity(ctx context.Context, agents repository.AgentRepository, before *entity.Order, next entity.OrderStatus, nextAgent *uuid.UUID) error {
	wasOccupying := before.Status.OccupiesAgent() && before.AssignedAgentID != nil
	willOccupy := next.OccupiesAgent() && nextAgent != nil

	if wasOccupying && (!willOccupy || *before.AssignedAgentID != *nextAgent) {
		if err := agents.ReleaseCapacity(ctx, *before.AssignedAgentID); err != nil {
			return mapRepositoryError(err, "failed to release agent capacity")
		}
	}

	if willOccupy && (!wasOccupying || *before.AssignedAgentID != *nextAgent) {
		if err := agents.ReserveCapacity(ctx, *nextAgent); err != nil {
			return mapRepositoryError(err, "failed to reserve agent capacity")
		}
	}

	return nil
}

func appendHistory(
	ctx context.Context,
	orders repository.OrderRepository,
	orderID uuid.UUID,
	from, to entity.OrderStatus,
	actor entity.Actor,
	reason string,
) error {
	change := &entity.OrderStatusChange{
		ID:         uuid.New(),
		OrderID:    orderID,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actor.UserID,
		ActorRole:  actor.Role,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}

	if err := orders.AppendStatusChange(ctx, change); err != nil {
		return errors.Wrap(err, "failed to append order status change")
	}

	return nil
}
