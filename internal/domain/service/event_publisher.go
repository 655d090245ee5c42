package service

import (
	"context"
	"time"
)

// OrderEvent is published after an order transition commits
type OrderEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	AgentID      string    `json:"agent_id,omitempty"`
	Action       string    `json:"action"`
	FromStatus   string    `json:"from_status"`
	ToStatus     string    `json:"to_status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order transition for async consumers such as the dispatch worker
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
