// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderAlreadyRated is returned when the customer already rated the delivery.
	ErrOrderAlreadyRated = errors.New("order already rated")
	// ErrOrderStale is returned by TryTransition when the order no longer has the expected status or version.
	ErrOrderStale = errors.New("order status or version changed concurrently")
)

// OrderExpectation is the compare half of a compare-and-swap on an order.
type OrderExpectation struct {
	Status  entity.OrderStatus
	Version int64
}

// ExpectOrder builds the expectation matching the order as it was read.
func ExpectOrder(order *entity.Order) OrderExpectation {
	return OrderExpectation{Status: order.Status, Version: order.Version}
}

// OrderChange is the swap half of a compare-and-swap on an order.
type OrderChange struct {
	Status           entity.OrderStatus
	AssignedAgentID  *uuid.UUID // nil clears the agent
	Reason           *string    // nil leaves the reason untouched
	AutoAccepted     *bool
	DebtCancellation *bool
}

// OrderRepository defines the persistence operations for orders.
type OrderRepository interface {
	// CreateOrder persists a new order at its initial status with version 1.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// TryTransition atomically applies change only if the stored order still matches expected,
	// bumping the version. Returns the updated order, or ErrOrderStale when the guard fails.
	TryTransition(ctx context.Context, id uuid.UUID, expected OrderExpectation, change OrderChange) (*entity.Order, error)

	// AppendStatusChange records a committed transition in the order's history.
	AppendStatusChange(ctx context.Context, change *entity.OrderStatusChange) error

	// FindStatusHistory returns the transitions of an order, oldest first.
	FindStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusChange, error)

	// SetAgentRating stores the customer's rating only if none is stored yet.
	// Returns ErrOrderAlreadyRated otherwise.
	SetAgentRating(ctx context.Context, id uuid.UUID, rating int) error

	// FindUnassignedAcceptedOrders returns orders waiting at accepted_by_restaurant without an agent, oldest first.
	FindUnassignedAcceptedOrders(ctx context.Context, limit int) ([]*entity.Order, error)
}
