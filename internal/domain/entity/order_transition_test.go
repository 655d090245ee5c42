package entity

import (
	"testing"

	domainerrors "dispatch/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current OrderStatus
		role    Role
		action  OrderAction
		want    OrderStatus
	}{
		{"merchant accepts pending", OrderStatusPending, RoleMerchant, ActionMerchantAccept, OrderStatusAcceptedByRestaurant},
		{"merchant accepts preparing", OrderStatusPreparing, RoleMerchant, ActionMerchantAccept, OrderStatusAcceptedByRestaurant},
		{"merchant rejects pending", OrderStatusPending, RoleMerchant, ActionMerchantReject, OrderStatusRejectedByRestaurant},
		{"agent accepts", OrderStatusAcceptedByRestaurant, RoleAgent, ActionAgentAccept, OrderStatusAssignedToAgent},
		{"agent rejects", OrderStatusAcceptedByRestaurant, RoleAgent, ActionAgentReject, OrderStatusCancelledByAgent},
		{"agent picks up", OrderStatusAssignedToAgent, RoleAgent, ActionAgentPickUp, OrderStatusPickedUp},
		{"agent skips to arrived", OrderStatusPickedUp, RoleAgent, ActionAgentArrived, OrderStatusArrived},
		{"agent delivers", OrderStatusArrived, RoleAgent, ActionAgentDelivered, OrderStatusDelivered},
		{"customer cancels pending", OrderStatusPending, RoleCustomer, ActionCustomerCancel, OrderStatusCancelledByCustomer},
		{"guest cancels on the way", OrderStatusOnTheWay, RoleGuest, ActionCustomerCancel, OrderStatusCancelledByCustomer},
		{"dispatch assigns", OrderStatusAcceptedByRestaurant, RoleSystem, ActionDispatchAssign, OrderStatusAssignedToAgent},
		{"override preparing", OrderStatusAcceptedByRestaurant, RoleMerchant, ActionOverridePrepare, OrderStatusPreparing},
		{"admin override ready", OrderStatusPreparing, RoleAdmin, ActionOverrideReady, OrderStatusReady},
		{"override completes delivered", OrderStatusDelivered, RoleMerchant, ActionOverrideDone, OrderStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStatus(tt.current, tt.role, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current OrderStatus
		action  OrderAction
		role    Role
	}{
		{"merchant accepts twice", OrderStatusAcceptedByRestaurant, ActionMerchantAccept, RoleMerchant},
		{"merchant rejects ready", OrderStatusReady, ActionMerchantReject, RoleMerchant},
		{"agent accepts pending", OrderStatusPending, ActionAgentAccept, RoleAgent},
		{"agent moves backwards", OrderStatusOnTheWay, ActionAgentPickUp, RoleAgent},
		{"agent repeats status", OrderStatusPickedUp, ActionAgentPickUp, RoleAgent},
		{"agent delivers unassigned order", OrderStatusAcceptedByRestaurant, ActionAgentDelivered, RoleAgent},
		{"override completes cancelled", OrderStatusCancelledByCustomer, ActionOverrideDone, RoleAdmin},
		{"override prepares delivered", OrderStatusDelivered, ActionOverridePrepare, RoleMerchant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NextStatus(tt.current, tt.role, tt.action)
			require.Error(t, err)
			assert.True(t, domainerrors.IsInvalidTransition(err))

			var transitionErr *domainerrors.TransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, string(tt.current), transitionErr.CurrentStatus())
		})
	}
}

func TestNextStatus_WrongRoleIsForbidden(t *testing.T) {
	_, err := NextStatus(OrderStatusPending, RoleCustomer, ActionMerchantAccept)
	assert.True(t, domainerrors.IsForbidden(err))

	_, err = NextStatus(OrderStatusAcceptedByRestaurant, RoleAgent, ActionDispatchAssign)
	assert.True(t, domainerrors.IsForbidden(err))
}

func TestNextStatus_UnknownAction(t *testing.T) {
	_, err := NextStatus(OrderStatusPending, RoleAdmin, OrderAction("teleport"))
	assert.True(t, domainerrors.IsValidation(err))
}

// Terminal statuses may only be left by the delivered -> completed override.
func TestNextStatus_TerminalStatusesAreSticky(t *testing.T) {
	for _, status := range AllOrderStatuses {
		if !status.IsTerminal() {
			continue
		}

		for _, action := range AllOrderActions() {
			for _, role := range ActorsFor(action) {
				next, err := NextStatus(status, role, action)
				if status == OrderStatusDelivered && action == ActionOverrideDone {
					require.NoError(t, err)
					assert.Equal(t, OrderStatusCompleted, next)

					continue
				}

				assert.Errorf(t, err, "%s by %s left terminal %s", action, role, status)
			}
		}
	}
}

func TestOrderStatus_AgentInvariants(t *testing.T) {
	for _, status := range AllOrderStatuses {
		if status.OccupiesAgent() {
			assert.True(t, status.HoldsAgent(), status)
		}
	}
	assert.True(t, OrderStatusDelivered.HoldsAgent())
	assert.False(t, OrderStatusDelivered.OccupiesAgent())
	assert.False(t, OrderStatusCompleted.HoldsAgent())
}

func TestActionMappings(t *testing.T) {
	action, ok := AgentActionFor(OrderStatusDelivered)
	assert.True(t, ok)
	assert.Equal(t, ActionAgentDelivered, action)

	_, ok = AgentActionFor(OrderStatusCompleted)
	assert.False(t, ok)

	action, ok = OverrideActionFor(OrderStatusReady)
	assert.True(t, ok)
	assert.Equal(t, ActionOverrideReady, action)

	_, ok = OverrideActionFor(OrderStatusDelivered)
	assert.False(t, ok)
}
