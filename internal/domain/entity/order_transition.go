package entity

import (
	domainerrors "dispatch/internal/domain/errors"
)

// OrderAction is a lifecycle operation requested by an actor.
type OrderAction string

const (
	ActionMerchantAccept  OrderAction = "merchant_accept"
	ActionMerchantReject  OrderAction = "merchant_reject"
	ActionAgentAccept     OrderAction = "agent_accept"
	ActionAgentReject     OrderAction = "agent_reject"
	ActionAgentPickUp     OrderAction = "agent_picked_up"
	ActionAgentOnTheWay   OrderAction = "agent_on_the_way"
	ActionAgentArrived    OrderAction = "agent_arrived"
	ActionAgentDelivered  OrderAction = "agent_delivered"
	ActionCustomerCancel  OrderAction = "customer_cancel"
	ActionDispatchAssign  OrderAction = "dispatch_assign"
	ActionOverridePrepare OrderAction = "override_preparing"
	ActionOverrideReady   OrderAction = "override_ready"
	ActionOverrideDone    OrderAction = "override_completed"

	// ActionPlaceOrder labels order creation in events; it is not a table transition.
	ActionPlaceOrder OrderAction = "place_order"
	// ActionPostRestaurantEarning labels a manual revenue posting refused for an undelivered order.
	ActionPostRestaurantEarning OrderAction = "post_restaurant_earning"
)

// agentProgression orders the agent-driven statuses; agent updates only move forward along it.
var agentProgression = map[OrderStatus]int{
	OrderStatusAssignedToAgent: 0,
	OrderStatusPickedUp:        1,
	OrderStatusOnTheWay:        2,
	OrderStatusArrived:         3,
	OrderStatusDelivered:       4,
}

type transitionRule struct {
	to     OrderStatus
	actors Roles
	from   func(OrderStatus) bool
}

func notTerminalExcept(excluded ...OrderStatus) func(OrderStatus) bool {
	return func(s OrderStatus) bool {
		if s.IsTerminal() {
			return false
		}
		for _, e := range excluded {
			if s == e {
				return false
			}
		}

		return true
	}
}

func only(allowed ...OrderStatus) func(OrderStatus) bool {
	return func(s OrderStatus) bool {
		for _, a := range allowed {
			if s == a {
				return true
			}
		}

		return false
	}
}

func agentForwardTo(target OrderStatus) func(OrderStatus) bool {
	return func(s OrderStatus) bool {
		rank, ok := agentProgression[s]

		return ok && s != OrderStatusDelivered && rank < agentProgression[target]
	}
}

// transitionTable is the single source of truth for lifecycle guards.
// The administrative override actions are intentionally permissive: any non-terminal
// status, plus delivered -> completed. They never leave a terminal status.
var transitionTable = map[OrderAction]transitionRule{
	ActionMerchantAccept: {
		to:     OrderStatusAcceptedByRestaurant,
		actors: Roles{RoleMerchant},
		from:   notTerminalExcept(OrderStatusAcceptedByRestaurant),
	},
	ActionMerchantReject: {
		to:     OrderStatusRejectedByRestaurant,
		actors: Roles{RoleMerchant},
		from:   notTerminalExcept(OrderStatusReady),
	},
	ActionAgentAccept: {
		to:     OrderStatusAssignedToAgent,
		actors: Roles{RoleAgent},
		from:   only(OrderStatusAcceptedByRestaurant),
	},
	ActionAgentReject: {
		to:     OrderStatusCancelledByAgent,
		actors: Roles{RoleAgent},
		from:   only(OrderStatusAcceptedByRestaurant),
	},
	ActionAgentPickUp: {
		to:     OrderStatusPickedUp,
		actors: Roles{RoleAgent},
		from:   agentForwardTo(OrderStatusPickedUp),
	},
	ActionAgentOnTheWay: {
		to:     OrderStatusOnTheWay,
		actors: Roles{RoleAgent},
		from:   agentForwardTo(OrderStatusOnTheWay),
	},
	ActionAgentArrived: {
		to:     OrderStatusArrived,
		actors: Roles{RoleAgent},
		from:   agentForwardTo(OrderStatusArrived),
	},
	ActionAgentDelivered: {
		to:     OrderStatusDelivered,
		actors: Roles{RoleAgent},
		from:   agentForwardTo(OrderStatusDelivered),
	},
	ActionCustomerCancel: {
		to:     OrderStatusCancelledByCustomer,
		actors: Roles{RoleCustomer, RoleGuest},
		from:   notTerminalExcept(),
	},
	ActionDispatchAssign: {
		to:     OrderStatusAssignedToAgent,
		actors: Roles{RoleSystem, RoleAdmin},
		from:   only(OrderStatusAcceptedByRestaurant),
	},
	ActionOverridePrepare: {
		to:     OrderStatusPreparing,
		actors: Roles{RoleMerchant, RoleAdmin},
		from:   notTerminalExcept(),
	},
	ActionOverrideReady: {
		to:     OrderStatusReady,
		actors: Roles{RoleMerchant, RoleAdmin},
		from:   notTerminalExcept(),
	},
	ActionOverrideDone: {
		to:     OrderStatusCompleted,
		actors: Roles{RoleMerchant, RoleAdmin},
		from: func(s OrderStatus) bool {
			return !s.IsTerminal() || s == OrderStatusDelivered
		},
	},
}

// AgentActionFor maps an agent-requested target status to its lifecycle action.
func AgentActionFor(target OrderStatus) (OrderAction, bool) {
	switch target {
	case OrderStatusPickedUp:
		return ActionAgentPickUp, true
	case OrderStatusOnTheWay:
		return ActionAgentOnTheWay, true
	case OrderStatusArrived:
		return ActionAgentArrived, true
	case OrderStatusDelivered:
		return ActionAgentDelivered, true
	default:
		return "", false
	}
}

// OverrideActionFor maps an administrative target status to its override action.
func OverrideActionFor(target OrderStatus) (OrderAction, bool) {
	switch target {
	case OrderStatusPreparing:
		return ActionOverridePrepare, true
	case OrderStatusReady:
		return ActionOverrideReady, true
	case OrderStatusCompleted:
		return ActionOverrideDone, true
	default:
		return "", false
	}
}

// NextStatus evaluates the transition table for (current status, actor role, action).
// It returns ErrForbidden when the role may not perform the action at all and a
// TransitionError carrying the current status when the guard fails.
func NextStatus(current OrderStatus, role Role, action OrderAction) (OrderStatus, error) {
	rule, ok := transitionTable[action]
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown order action " + string(action))
	}

	if !rule.actors.Contains(role) {
		return "", domainerrors.ErrForbidden.WithDetails(string(role) + " may not " + string(action))
	}

	if !rule.from(current) {
		return "", domainerrors.NewTransitionError(string(current), string(action))
	}

	return rule.to, nil
}

// AllOrderActions lists every action in the transition table.
func AllOrderActions() []OrderAction {
	actions := make([]OrderAction, 0, len(transitionTable))
	for action := range transitionTable {
		actions = append(actions, action)
	}

	return actions
}

// ActorsFor returns the roles permitted to perform the action.
func ActorsFor(action OrderAction) Roles {
	return transitionTable[action].actors
}
