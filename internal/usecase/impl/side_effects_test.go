package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	mockService "dispatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func assignedTransition() *orderTransition {
	agentID := uuid.New()
	customerID := uuid.New()
	chatID := int64(4242)

	return &orderTransition{
		action: entity.ActionDispatchAssign,
		from:   entity.OrderStatusAcceptedByRestaurant,
		order: &entity.Order{
			ID:              uuid.New(),
			CustomerID:      &customerID,
			RestaurantID:    uuid.New(),
			Status:          entity.OrderStatusAssignedToAgent,
			AssignedAgentID: &agentID,
			UpdatedAt:       time.Now(),
		},
		telegramChatID: &chatID,
	}
}

func TestSideEffects_OrderTransitioned_PublishesEvent(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	notifier := mockService.NewMockNotifier(t)
	effects := newSideEffects(nil, notifier, publisher, discardLogger())

	tr := assignedTransition()
	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")

	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.RequestID == "req-7" &&
			e.OrderID == tr.order.ID.String() &&
			e.AgentID == tr.order.AssignedAgentID.String() &&
			e.FromStatus == string(entity.OrderStatusAcceptedByRestaurant) &&
			e.ToStatus == string(entity.OrderStatusAssignedToAgent)
	})).Return(nil).Once()

	var targets []string
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n *service.Notification) { targets = append(targets, n.Target) }).
		Return(nil).Times(4)

	effects.orderTransitioned(ctx, tr)
	require.NoError(t, effects.drain(context.Background()))

	assert.ElementsMatch(t, []string{
		customerTopic(*tr.order.CustomerID),
		restaurantTopic(tr.order.RestaurantID),
		agentTopic(*tr.order.AssignedAgentID),
		"4242",
	}, targets)
}

func TestSideEffects_FailuresAreSwallowed(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	notifier := mockService.NewMockNotifier(t)
	effects := newSideEffects(nil, notifier, publisher, discardLogger())

	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("fcm down"))

	assert.NotPanics(t, func() { effects.orderTransitioned(context.Background(), assignedTransition()) })
	assert.NoError(t, effects.drain(context.Background()))
}

func TestSideEffects_SurvivesCancelledCaller(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	effects := newSideEffects(nil, nil, publisher, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var seen error = context.Canceled
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) error {
			seen = ctx.Err()

			return nil
		}).Once()

	effects.orderTransitioned(ctx, assignedTransition())
	require.NoError(t, effects.drain(context.Background()))
	assert.NoError(t, seen)
}

func TestSideEffects_CallerDoesNotWaitForDelivery(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	effects := newSideEffects(nil, nil, publisher, discardLogger())

	release := make(chan struct{})
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.OrderEvent) error {
			<-release

			return nil
		}).Once()

	returned := make(chan struct{})
	go func() {
		effects.orderTransitioned(context.Background(), assignedTransition())
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("orderTransitioned blocked on the publisher")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, effects.drain(drainCtx), "publish still in flight")

	close(release)
	assert.NoError(t, effects.drain(context.Background()))
}

func TestSideEffects_DrainedOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher := mockService.NewMockEventPublisher(t)
	effects := newSideEffects(lc, nil, publisher, discardLogger())

	published := false
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.OrderEvent) error {
			time.Sleep(20 * time.Millisecond)
			published = true

			return nil
		}).Once()

	lc.RequireStart()
	effects.orderTransitioned(context.Background(), assignedTransition())
	lc.RequireStop()

	assert.True(t, published)
}

func TestOrderNotifications_ReleasedAgentHearsAboutIt(t *testing.T) {
	previous := uuid.New()
	tr := &orderTransition{
		action:        entity.ActionAgentReject,
		from:          entity.OrderStatusAssignedToAgent,
		order:         &entity.Order{ID: uuid.New(), RestaurantID: uuid.New(), Status: entity.OrderStatusAcceptedByRestaurant},
		previousAgent: &previous,
	}

	var targets []string
	for _, n := range orderNotifications(tr) {
		targets = append(targets, n.Target)
	}

	assert.ElementsMatch(t, []string{restaurantTopic(tr.order.RestaurantID), agentTopic(previous)}, targets)
}

func TestOrderService_MerchantHearsEveryTransitionOnTelegram(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	chatID := int64(777)
	f.restaurant.TelegramChatID = &chatID
	f.store.SeedRestaurant(f.restaurant)

	order := f.placeOrder(t)
	_, err := f.orders.MerchantAcceptOrder(ctx, f.merchant, order.ID)
	require.NoError(t, err)
	_, err = f.orders.CustomerCancelOrder(ctx, f.customer, order.ID, "changed my mind", false)
	require.NoError(t, err)
	f.settle(t)

	var bodies []string
	for _, n := range f.sent.on(service.ChannelTelegram) {
		assert.Equal(t, "777", n.Target)
		bodies = append(bodies, n.Body)
	}
	require.Len(t, bodies, 3)

	all := strings.Join(bodies, "\n")
	assert.Contains(t, all, "New order")
	assert.Contains(t, all, "is now "+string(entity.OrderStatusAcceptedByRestaurant))
	assert.Contains(t, all, "is now "+string(entity.OrderStatusCancelledByCustomer))
}
