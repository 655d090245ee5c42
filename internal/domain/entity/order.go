package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is a state of the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending              OrderStatus = "pending"
	OrderStatusAcceptedByRestaurant OrderStatus = "accepted_by_restaurant"
	OrderStatusRejectedByRestaurant OrderStatus = "rejected_by_restaurant"
	OrderStatusPreparing            OrderStatus = "preparing"
	OrderStatusReady                OrderStatus = "ready"
	OrderStatusAssignedToAgent      OrderStatus = "assigned_to_agent"
	OrderStatusPickedUp             OrderStatus = "picked_up"
	OrderStatusOnTheWay             OrderStatus = "on_the_way"
	OrderStatusArrived              OrderStatus = "arrived"
	OrderStatusDelivered            OrderStatus = "delivered"
	OrderStatusCancelledByCustomer  OrderStatus = "cancelled_by_customer"
	OrderStatusCancelledByAgent     OrderStatus = "cancelled_by_agent"
	OrderStatusCompleted            OrderStatus = "completed"
)

// AllOrderStatuses lists every lifecycle state.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAcceptedByRestaurant,
	OrderStatusRejectedByRestaurant,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusAssignedToAgent,
	OrderStatusPickedUp,
	OrderStatusOnTheWay,
	OrderStatusArrived,
	OrderStatusDelivered,
	OrderStatusCancelledByCustomer,
	OrderStatusCancelledByAgent,
	OrderStatusCompleted,
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known lifecycle state.
func (s OrderStatus) IsValid() bool {
	for _, known := range AllOrderStatuses {
		if s == known {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no guarded transition may leave this status.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered,
		OrderStatusCancelledByCustomer,
		OrderStatusCancelledByAgent,
		OrderStatusRejectedByRestaurant,
		OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// HoldsAgent reports whether an order in this status must carry an assigned agent.
// The assigned agent is non-null iff this returns true.
func (s OrderStatus) HoldsAgent() bool {
	switch s {
	case OrderStatusAssignedToAgent,
		OrderStatusPickedUp,
		OrderStatusOnTheWay,
		OrderStatusArrived,
		OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// OccupiesAgent reports whether an order in this status counts against the assigned agent's capacity.
// Delivered orders keep their agent reference but free the agent for new work.
func (s OrderStatus) OccupiesAgent() bool {
	return s.HoldsAgent() && s != OrderStatusDelivered
}

// MinAgentRating and MaxAgentRating bound a customer's delivery rating.
const (
	MinAgentRating = 1
	MaxAgentRating = 5
)

// OrderItem is a line of an order with a snapshot of the product at placement time.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	LineTotal float64   `json:"line_total"`
}

// OrderAmounts is the money breakdown of an order.
type OrderAmounts struct {
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	Discount       float64 `json:"discount"`
	DeliveryCharge float64 `json:"delivery_charge"`
	Surge          float64 `json:"surge"`
	Tip            float64 `json:"tip"`
	Total          float64 `json:"total"`
}

// FoodRevenue is the restaurant-attributable part of the order: items plus tax less discount.
func (a OrderAmounts) FoodRevenue() float64 {
	revenue := a.Subtotal + a.Tax - a.Discount
	if revenue < 0 {
		return 0
	}

	return revenue
}

// Order is the core aggregate of the lifecycle controller. Orders are never deleted;
// cancellation and rejection are statuses.
type Order struct {
	ID               uuid.UUID    `json:"id"`
	CustomerID       *uuid.UUID   `json:"customer_id"` // nil for guest orders
	RestaurantID     uuid.UUID    `json:"restaurant_id"`
	Items            []OrderItem  `json:"items"`
	Status           OrderStatus  `json:"status"`
	AssignedAgentID  *uuid.UUID   `json:"assigned_agent_id"`
	Amounts          OrderAmounts `json:"amounts"`
	DeliveryPoint    Point        `json:"delivery_point"`
	ScheduledAt      *time.Time   `json:"scheduled_at"`
	Reason           string       `json:"reason,omitempty"` // cancellation or rejection reason
	AutoAccepted     bool         `json:"auto_accepted"`
	DebtCancellation bool         `json:"debt_cancellation"`
	AgentRating      *int         `json:"agent_rating,omitempty"` // customer's 1..5 rating of the delivery
	Version          int64        `json:"version"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// OrderStatusChange is an append-only history row written with every committed transition.
type OrderStatusChange struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	FromStatus OrderStatus
	ToStatus   OrderStatus
	ActorID    uuid.UUID
	ActorRole  Role
	Reason     string
	CreatedAt  time.Time
}
