package handler

import (
	"context"
	"net/http"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/domain/entity"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves the order lifecycle for every role. The role comes from the route group.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// ReasonRequest carries a free-text reason for a rejection.
type ReasonRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// CancelOrderRequest is the customer's cancellation.
type CancelOrderRequest struct {
	Reason           string `json:"reason" validate:"max=500"`
	DebtCancellation bool   `json:"debt_cancellation"`
}

// StatusRequest asks for a lifecycle status change.
type StatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// ReviewRequest rates the delivering agent.
type ReviewRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// PlaceOrder creates an order for a customer or a guest.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req usecase.PlaceOrderInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// GetOrder returns an order visible to the caller.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CancelOrder cancels on behalf of the customer or guest.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CancelOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.CustomerCancelOrder(c.Request().Context(), actor, orderID, req.Reason, req.DebtCancellation)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// SubmitReview rates the agent of a delivered order.
func (h *OrderHandler) SubmitReview(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	agent, err := h.orderUC.SubmitAgentReview(c.Request().Context(), actor, orderID, req.Rating)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, agent)
}

// MerchantAccept accepts a pending order.
func (h *OrderHandler) MerchantAccept(c echo.Context) error {
	return h.simpleTransition(c, h.orderUC.MerchantAcceptOrder)
}

// MerchantReject rejects a pending order with a reason.
func (h *OrderHandler) MerchantReject(c echo.Context) error {
	return h.reasonTransition(c, h.orderUC.MerchantRejectOrder)
}

// MerchantUpdateStatus moves an order along the kitchen flow.
func (h *OrderHandler) MerchantUpdateStatus(c echo.Context) error {
	return h.statusTransition(c, h.orderUC.MerchantUpdateStatus)
}

// AgentAccept confirms an assigned order.
func (h *OrderHandler) AgentAccept(c echo.Context) error {
	return h.simpleTransition(c, h.orderUC.AgentAcceptOrder)
}

// AgentReject hands an assigned order back for dispatch.
func (h *OrderHandler) AgentReject(c echo.Context) error {
	return h.reasonTransition(c, h.orderUC.AgentRejectOrder)
}

// AgentUpdateStatus moves an order along the delivery flow.
func (h *OrderHandler) AgentUpdateStatus(c echo.Context) error {
	return h.statusTransition(c, h.orderUC.AgentUpdateStatus)
}

type (
	plainTransitionFunc  func(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)
	reasonTransitionFunc func(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error)
	statusTransitionFunc func(ctx context.Context, actor entity.Actor, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
)

func (h *OrderHandler) simpleTransition(c echo.Context, fn plainTransitionFunc) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := fn(c.Request().Context(), actor, orderID)

	return respondOrder(c, order, err)
}

func (h *OrderHandler) reasonTransition(c echo.Context, fn reasonTransitionFunc) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReasonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := fn(c.Request().Context(), actor, orderID, req.Reason)

	return respondOrder(c, order, err)
}

func (h *OrderHandler) statusTransition(c echo.Context, fn statusTransitionFunc) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := fn(c.Request().Context(), actor, orderID, req.Status)

	return respondOrder(c, order, err)
}

func respondOrder(c echo.Context, order *entity.Order, err error) error {
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
