package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/lifecycle"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Push topics the client apps subscribe to.
const (
	topicAdminChangeRequests = "admin-change-requests"
)

func restaurantTopic(id uuid.UUID) string { return "restaurant-" + id.String() }
func customerTopic(id uuid.UUID) string   { return "customer-" + id.String() }
func agentTopic(id uuid.UUID) string      { return "agent-" + id.String() }

// orderTransition describes a committed order transition for the after-commit fan-out.
type orderTransition struct {
	action         entity.OrderAction
	from           entity.OrderStatus
	order          *entity.Order
	previousAgent  *uuid.UUID
	telegramChatID *int64
}

// sideEffects runs notifications and event publishing after a transaction commits. Each batch
// runs on its own goroutine so the caller never waits on a broker or a push provider; failures
// are logged and never reach the caller.
type sideEffects struct {
	notifier  service.Notifier
	publisher service.EventPublisher
	logger    *slog.Logger
	pending   sync.WaitGroup
}

func newSideEffects(lc fx.Lifecycle, notifier service.Notifier, publisher service.EventPublisher, logger *slog.Logger) *sideEffects {
	e := &sideEffects{notifier: notifier, publisher: publisher, logger: logger}
	if lc != nil {
		lc.Append(fx.Hook{OnStop: e.drain})
	}

	return e
}

func (e *sideEffects) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

// dispatch runs fn in the background with request values but without the caller's cancellation,
// bounded by lifecycle.SideEffectTimeout.
func (e *sideEffects) dispatch(ctx context.Context, fn func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.SideEffectTimeout)

	e.pending.Add(1)
	go func() {
		defer e.pending.Done()
		defer cancel()

		fn(ctx)
	}()
}

// drain waits for in-flight side effects, giving up when ctx ends.
func (e *sideEffects) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "side effects still running at shutdown")
	}
}

func (e *sideEffects) orderTransitioned(ctx context.Context, t *orderTransition) {
	e.dispatch(ctx, func(ctx context.Context) {
		e.publishOrderEvent(ctx, t)

		for _, n := range orderNotifications(t) {
			e.notify(ctx, n)
		}
	})
}

func (e *sideEffects) publishOrderEvent(ctx context.Context, t *orderTransition) {
	if e.publisher == nil {
		return
	}

	order := t.order
	event := &service.OrderEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:      order.ID.String(),
		RestaurantID: order.RestaurantID.String(),
		Action:       string(t.action),
		FromStatus:   string(t.from),
		ToStatus:     string(order.Status),
		OccurredAt:   order.UpdatedAt,
	}
	if order.AssignedAgentID != nil {
		event.AgentID = order.AssignedAgentID.String()
	}

	if err := e.publisher.PublishOrderEvent(ctx, event); err != nil {
		e.log(ctx).Warn("Failed to publish order event",
			slog.String("orderID", event.OrderID),
			slog.String("toStatus", event.ToStatus),
			slog.Any("error", err))
	}
}

func (e *sideEffects) changeRequestSubmitted(ctx context.Context, request *entity.ChangeRequest) {
	n := &service.Notification{
		Channel: service.ChannelPush,
		Target:  topicAdminChangeRequests,
		Title:   "New change request",
		Body:    fmt.Sprintf("Restaurant %s requested %s", request.RestaurantID, request.Action()),
		Data:    map[string]string{"change_request_id": request.ID.String()},
	}

	e.dispatch(ctx, func(ctx context.Context) { e.notify(ctx, n) })
}

func (e *sideEffects) changeRequestReviewed(ctx context.Context, request *entity.ChangeRequest) {
	n := &service.Notification{
		Channel: service.ChannelPush,
		Target:  restaurantTopic(request.RestaurantID),
		Title:   "Change request " + string(request.Status),
		Body:    fmt.Sprintf("Your %s request was %s", request.Action(), request.Status),
		Data: map[string]string{
			"change_request_id": request.ID.String(),
			"status":            string(request.Status),
		},
	}

	e.dispatch(ctx, func(ctx context.Context) { e.notify(ctx, n) })
}

func (e *sideEffects) notify(ctx context.Context, n *service.Notification) {
	if e.notifier == nil {
		return
	}

	if err := e.notifier.Notify(ctx, n); err != nil {
		e.log(ctx).Warn("Failed to send notification",
			slog.String("channel", string(n.Channel)),
			slog.String("target", n.Target),
			slog.Any("error", err))
	}
}

// orderNotifications decides who hears about a transition.
func orderNotifications(t *orderTransition) []*service.Notification {
	order := t.order
	data := map[string]string{
		"order_id": order.ID.String(),
		"status":   string(order.Status),
	}
	body := fmt.Sprintf("Order %s is now %s", shortID(order.ID), order.Status)

	var out []*service.Notification
	push := func(target string) {
		out = append(out, &service.Notification{
			Channel: service.ChannelPush,
			Target:  target,
			Title:   "Order update",
			Body:    body,
			Data:    data,
		})
	}

	if order.CustomerID != nil {
		push(customerTopic(*order.CustomerID))
	}
	push(restaurantTopic(order.RestaurantID))

	switch {
	case order.AssignedAgentID != nil:
		push(agentTopic(*order.AssignedAgentID))
	case t.previousAgent != nil:
		push(agentTopic(*t.previousAgent))
	}

	if t.telegramChatID != nil {
		out = append(out, &service.Notification{
			Channel: service.ChannelTelegram,
			Target:  strconv.FormatInt(*t.telegramChatID, 10),
			Title:   "Order update",
			Body:    telegramOrderBody(order),
			Data:    data,
		})
	}

	return out
}

func telegramOrderBody(order *entity.Order) string {
	if order.Status == entity.OrderStatusPending || (order.Status == entity.OrderStatusAcceptedByRestaurant && order.AutoAccepted) {
		return fmt.Sprintf("New order %s: %d item(s), total %.2f, placed %s",
			shortID(order.ID), len(order.Items), order.Amounts.Total, order.CreatedAt.Format(time.RFC3339))
	}

	return fmt.Sprintf("Order %s is now %s", shortID(order.ID), order.Status)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
