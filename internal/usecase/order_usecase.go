package usecase

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderItem is one requested line of a new order
type PlaceOrderItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=100"`
}

// PlaceOrderInput is the input of order placement; prices come from the catalog, not the caller
type PlaceOrderInput struct {
	RestaurantID  uuid.UUID        `json:"restaurant_id" validate:"required"`
	Items         []PlaceOrderItem `json:"items" validate:"required,min=1,dive"`
	DeliveryPoint entity.Point     `json:"delivery_point"`
	ScheduledAt   *time.Time       `json:"scheduled_at"`
	Discount      float64          `json:"discount" validate:"min=0"`
	Tip           float64          `json:"tip" validate:"min=0"`
}

// OrderUsecase defines the order lifecycle operations. Every operation takes the
// authenticated actor supplied by the identity layer.
type OrderUsecase interface {
	// PlaceOrder validates the items against the catalog, prices them and persists the order
	PlaceOrder(ctx context.Context, actor entity.Actor, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder returns an order visible to the actor
	GetOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// MerchantAcceptOrder moves an order to accepted_by_restaurant
	MerchantAcceptOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// MerchantRejectOrder moves an order to rejected_by_restaurant with a reason
	MerchantRejectOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error)

	// MerchantUpdateStatus is the administrative override to preparing, ready or completed
	MerchantUpdateStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// AgentAcceptOrder assigns the calling agent to an accepted order
	AgentAcceptOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// AgentRejectOrder cancels an accepted order on the agent side with a reason
	AgentRejectOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error)

	// AgentUpdateStatus advances the delivery progress of the agent's own order
	AgentUpdateStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// CustomerCancelOrder cancels a non-terminal order
	CustomerCancelOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string, debtCancellation bool) (*entity.Order, error)

	// SubmitAgentReview rates the agent who delivered the order
	SubmitAgentReview(ctx context.Context, actor entity.Actor, orderID uuid.UUID, rating int) (*entity.Agent, error)
}
