package impl

import (
	"context"
	"sync"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_FullLifecycle(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	agentActor := f.seedAgent(north(1), true, 1)

	order := f.placeOrder(t)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.False(t, order.AutoAccepted)
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, f.customer.UserID, *order.CustomerID)
	assert.InDelta(t, 20.0, order.Amounts.Subtotal, 1e-9)
	assert.InDelta(t, 2.0, order.Amounts.Tax, 1e-9)
	assert.InDelta(t, 25.0, order.Amounts.Total, 1e-9)

	_, err := f.orders.MerchantAcceptOrder(ctx, f.merchant, order.ID)
	require.NoError(t, err)

	assigned, err := f.orders.AgentAcceptOrder(ctx, agentActor, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAssignedToAgent, assigned.Status)
	require.NotNil(t, assigned.AssignedAgentID)
	assert.Equal(t, *agentActor.AgentID, *assigned.AssignedAgentID)
	assert.Equal(t, 1, f.agent(t, agentActor).OrderCount)

	for _, status := range []entity.OrderStatus{
		entity.OrderStatusPickedUp,
		entity.OrderStatusOnTheWay,
		entity.OrderStatusArrived,
		entity.OrderStatusDelivered,
	} {
		updated, err := f.orders.AgentUpdateStatus(ctx, agentActor, order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	delivered := f.order(t, order.ID)
	require.NotNil(t, delivered.AssignedAgentID)
	assert.Equal(t, 0, f.agent(t, agentActor).OrderCount)

	summary, err := f.earnings.GetAgentEarningsSummary(ctx, *agentActor.AgentID)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, summary.Total, 1e-9)
	assert.InDelta(t, 3.0, summary.ByType[entity.EarningTypeDeliveryFee], 1e-9)
	assert.Contains(t, summary.ByType, entity.EarningTypePenalty)

	revenue, err := f.earnings.ListRestaurantEarnings(ctx, f.admin, f.restaurant.ID)
	require.NoError(t, err)
	require.Len(t, revenue, 1)
	assert.InDelta(t, 22.0, revenue[0].GrossAmount, 1e-9)
	assert.InDelta(t, 2.2, revenue[0].Commission, 1e-9)
	assert.InDelta(t, 19.8, revenue[0].Amount, 1e-9)

	completed, err := f.orders.MerchantUpdateStatus(ctx, f.merchant, order.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, completed.Status)
	assert.Nil(t, completed.AssignedAgentID)
	assert.Equal(t, int64(10), f.agent(t, agentActor).RewardPoints)

	history, err := f.repos.NewOrderRepository().FindStatusHistory(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, history, 8)
}

func TestOrderService_SubmitAgentReview(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	agentActor := f.seedAgent(north(1), true, 1)

	order := f.acceptedOrder(t)
	_, err := f.orders.AgentAcceptOrder(ctx, agentActor, order.ID)
	require.NoError(t, err)

	_, err = f.orders.SubmitAgentReview(ctx, f.customer, order.ID, 4)
	assert.True(t, domainerrors.IsInvalidTransition(err), "review before delivery")

	_, err = f.orders.AgentUpdateStatus(ctx, agentActor, order.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)

	_, err = f.orders.SubmitAgentReview(ctx, f.customer, order.ID, 6)
	assert.True(t, domainerrors.IsValidation(err))

	stranger := entity.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	_, err = f.orders.SubmitAgentReview(ctx, stranger, order.ID, 4)
	assert.True(t, domainerrors.IsForbidden(err))

	agent, err := f.orders.SubmitAgentReview(ctx, f.customer, order.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, agent.ReviewCount)
	assert.InDelta(t, 4.0, agent.AverageRating, 1e-9)

	_, err = f.orders.SubmitAgentReview(ctx, f.customer, order.ID, 5)
	assert.True(t, domainerrors.IsConflict(err))
}

func TestOrderService_PlaceOrder_AutoAcceptsWithoutAcceptPermission(t *testing.T) {
	f := newEngineFixtures(t)
	f.setPermission(f.restaurant.ID, map[string]bool{entity.PermissionCanRejectOrder: true})

	order := f.placeOrder(t)
	assert.Equal(t, entity.OrderStatusAcceptedByRestaurant, order.Status)
	assert.True(t, order.AutoAccepted)
}

func TestOrderService_PlaceOrder_AutoDispatch(t *testing.T) {
	f := newEngineFixtures(t)
	agentActor := f.seedAgent(north(0.5), true, 1)

	f.restaurant.AutoDispatch = true
	f.store.SeedRestaurant(f.restaurant)

	order := f.placeOrder(t)
	assert.Equal(t, entity.OrderStatusAssignedToAgent, order.Status)
	require.NotNil(t, order.AssignedAgentID)
	assert.Equal(t, *agentActor.AgentID, *order.AssignedAgentID)
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	inactive := f.seedProduct(f.restaurant.ID, f.category.ID, 5)
	inactive.Active = false
	f.store.SeedProduct(inactive)

	other := f.seedRestaurant(t)
	foreign := f.seedProduct(other.ID, uuid.New(), 5)

	tests := []struct {
		name  string
		actor entity.Actor
		input *usecase.PlaceOrderInput
		check func(error) bool
	}{
		{
			name:  "no items",
			actor: f.customer,
			input: &usecase.PlaceOrderInput{RestaurantID: f.restaurant.ID, DeliveryPoint: restaurantPoint},
			check: domainerrors.IsValidation,
		},
		{
			name:  "unknown product",
			actor: f.customer,
			input: &usecase.PlaceOrderInput{
				RestaurantID:  f.restaurant.ID,
				Items:         []usecase.PlaceOrderItem{{ProductID: uuid.New(), Quantity: 1}},
				DeliveryPoint: restaurantPoint,
			},
			check: domainerrors.IsValidation,
		},
		{
			name:  "inactive product",
			actor: f.customer,
			input: &usecase.PlaceOrderInput{
				RestaurantID:  f.restaurant.ID,
				Items:         []usecase.PlaceOrderItem{{ProductID: inactive.ID, Quantity: 1}},
				DeliveryPoint: restaurantPoint,
			},
			check: domainerrors.IsValidation,
		},
		{
			name:  "product of another restaurant",
			actor: f.customer,
			input: &usecase.PlaceOrderInput{
				RestaurantID:  f.restaurant.ID,
				Items:         []usecase.PlaceOrderItem{{ProductID: foreign.ID, Quantity: 1}},
				DeliveryPoint: restaurantPoint,
			},
			check: domainerrors.IsValidation,
		},
		{
			name:  "unknown restaurant",
			actor: f.customer,
			input: &usecase.PlaceOrderInput{
				RestaurantID:  uuid.New(),
				Items:         []usecase.PlaceOrderItem{{ProductID: f.product.ID, Quantity: 1}},
				DeliveryPoint: restaurantPoint,
			},
			check: domainerrors.IsNotFound,
		},
		{
			name:  "merchant cannot place",
			actor: f.merchant,
			input: &usecase.PlaceOrderInput{
				RestaurantID:  f.restaurant.ID,
				Items:         []usecase.PlaceOrderItem{{ProductID: f.product.ID, Quantity: 1}},
				DeliveryPoint: restaurantPoint,
			},
			check: domainerrors.IsForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := f.orders.PlaceOrder(ctx, tt.actor, tt.input)
			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
			assert.Nil(t, order)
		})
	}
}

func TestOrderService_GuestOrder(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	guest := entity.Actor{UserID: uuid.New(), Role: entity.RoleGuest}

	order, err := f.orders.PlaceOrder(ctx, guest, &usecase.PlaceOrderInput{
		RestaurantID:  f.restaurant.ID,
		Items:         []usecase.PlaceOrderItem{{ProductID: f.product.ID, Quantity: 1}},
		DeliveryPoint: restaurantPoint,
	})
	require.NoError(t, err)
	assert.Nil(t, order.CustomerID)

	cancelled, err := f.orders.CustomerCancelOrder(ctx, guest, order.ID, "changed my mind", true)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelledByCustomer, cancelled.Status)
	assert.True(t, cancelled.DebtCancellation)
	assert.Equal(t, "changed my mind", cancelled.Reason)
}

func TestOrderService_AgentAccept_InactiveAgent(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	agentActor := f.seedAgent(north(1), false, 1)

	order := f.acceptedOrder(t)

	_, err := f.orders.AgentAcceptOrder(ctx, agentActor, order.ID)
	assert.True(t, domainerrors.IsForbidden(err))

	current := f.order(t, order.ID)
	assert.Equal(t, entity.OrderStatusAcceptedByRestaurant, current.Status)
	assert.Nil(t, current.AssignedAgentID)
}

func TestOrderService_AgentAccept_AtCapacity(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	agentActor := f.seedAgent(north(1), true, 1)

	first := f.acceptedOrder(t)
	second := f.acceptedOrder(t)

	_, err := f.orders.AgentAcceptOrder(ctx, agentActor, first.ID)
	require.NoError(t, err)

	_, err = f.orders.AgentAcceptOrder(ctx, agentActor, second.ID)
	assert.True(t, domainerrors.IsConflict(err))
	assert.Equal(t, entity.OrderStatusAcceptedByRestaurant, f.order(t, second.ID).Status)
	assert.Equal(t, 1, f.agent(t, agentActor).OrderCount)
}

func TestOrderService_AgentUpdateStatus_WrongAgent(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	owner := f.seedAgent(north(1), true, 1)
	intruder := f.seedAgent(north(1), true, 1)

	order := f.acceptedOrder(t)
	_, err := f.orders.AgentAcceptOrder(ctx, owner, order.ID)
	require.NoError(t, err)

	_, err = f.orders.AgentUpdateStatus(ctx, intruder, order.ID, entity.OrderStatusPickedUp)
	assert.True(t, domainerrors.IsForbidden(err))

	_, err = f.orders.AgentUpdateStatus(ctx, owner, order.ID, entity.OrderStatusCompleted)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestOrderService_AgentReject(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	agentActor := f.seedAgent(north(1), true, 1)

	order := f.acceptedOrder(t)
	rejected, err := f.orders.AgentRejectOrder(ctx, agentActor, order.ID, "too far")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelledByAgent, rejected.Status)
	assert.Equal(t, "too far", rejected.Reason)
	assert.Equal(t, 0, f.agent(t, agentActor).OrderCount)
}

func TestOrderService_CancelReleasesAgentCapacity(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	agentActor := f.seedAgent(north(1), true, 1)

	order := f.acceptedOrder(t)
	_, err := f.orders.AgentAcceptOrder(ctx, agentActor, order.ID)
	require.NoError(t, err)

	cancelled, err := f.orders.CustomerCancelOrder(ctx, f.customer, order.ID, "late", false)
	require.NoError(t, err)
	assert.Nil(t, cancelled.AssignedAgentID)
	assert.Equal(t, 0, f.agent(t, agentActor).OrderCount)
}

func TestOrderService_MerchantGuards(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	order := f.placeOrder(t)

	otherID := uuid.New()
	otherMerchant := entity.Actor{UserID: uuid.New(), Role: entity.RoleMerchant, RestaurantID: &otherID}
	_, err := f.orders.MerchantAcceptOrder(ctx, otherMerchant, order.ID)
	assert.True(t, domainerrors.IsForbidden(err))

	_, err = f.permissions.UpdatePermission(ctx, f.restaurant.ID, map[string]any{entity.PermissionCanAcceptOrder: false})
	require.NoError(t, err)

	_, err = f.orders.MerchantAcceptOrder(ctx, f.merchant, order.ID)
	assert.True(t, domainerrors.IsForbidden(err))
	assert.Equal(t, entity.OrderStatusPending, f.order(t, order.ID).Status)

	rejected, err := f.orders.MerchantRejectOrder(ctx, f.merchant, order.ID, "out of stock")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRejectedByRestaurant, rejected.Status)

	_, err = f.orders.MerchantUpdateStatus(ctx, f.merchant, order.ID, entity.OrderStatusPending)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestOrderService_TerminalStatusIsNeverLeft(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	order := f.placeOrder(t)
	_, err := f.orders.CustomerCancelOrder(ctx, f.customer, order.ID, "", false)
	require.NoError(t, err)

	_, err = f.orders.MerchantAcceptOrder(ctx, f.merchant, order.ID)
	assert.True(t, domainerrors.IsInvalidTransition(err))

	_, err = f.orders.MerchantUpdateStatus(ctx, f.admin, order.ID, entity.OrderStatusCompleted)
	assert.True(t, domainerrors.IsInvalidTransition(err))

	_, err = f.orders.CustomerCancelOrder(ctx, f.customer, order.ID, "", false)
	assert.True(t, domainerrors.IsInvalidTransition(err))

	assert.Equal(t, entity.OrderStatusCancelledByCustomer, f.order(t, order.ID).Status)
}

// Concurrent delivered updates must commit exactly once and post exactly one delivery fee.
func TestOrderService_ConcurrentDeliveredPostsOnce(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	agentActor := f.seedAgent(north(1), true, 1)

	order := f.acceptedOrder(t)
	_, err := f.orders.AgentAcceptOrder(ctx, agentActor, order.ID)
	require.NoError(t, err)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := f.orders.AgentUpdateStatus(ctx, agentActor, order.ID, entity.OrderStatusDelivered)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()

				return
			}
			assert.True(t, domainerrors.IsInvalidTransition(err) || domainerrors.IsConflict(err), err.Error())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)

	earnings, err := f.repos.NewEarningRepository().FindAgentEarnings(ctx, *agentActor.AgentID)
	require.NoError(t, err)
	require.Len(t, earnings, 1)
	assert.Equal(t, entity.EarningTypeDeliveryFee, earnings[0].Type)

	revenue, err := f.repos.NewEarningRepository().FindRestaurantEarnings(ctx, f.restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, revenue, 1)
}

func TestOrderService_GetOrderVisibility(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	order := f.placeOrder(t)

	for _, actor := range []entity.Actor{f.customer, f.merchant, f.admin} {
		got, err := f.orders.GetOrder(ctx, actor, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
	}

	stranger := entity.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	_, err := f.orders.GetOrder(ctx, stranger, order.ID)
	assert.True(t, domainerrors.IsForbidden(err))

	_, err = f.orders.GetOrder(ctx, f.admin, uuid.New())
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestOrderService_MilestoneRewards(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	for range 2 {
		order := f.placeOrder(t)
		_, err := f.orders.MerchantUpdateStatus(ctx, f.merchant, order.ID, entity.OrderStatusCompleted)
		require.NoError(t, err)
	}

	restaurant, err := f.repos.NewRestaurantRepository().FindRestaurantByID(ctx, f.restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), restaurant.CompletedOrderCount)
	assert.Equal(t, int64(50), restaurant.RewardPoints)

	entries := f.store.RewardEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, entity.RewardOwnerRestaurant, entries[0].OwnerType)
	assert.Equal(t, int64(50), entries[0].Points)
}
