package handler

import (
	"net/http"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/domain/entity"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	OrderUC    usecase.OrderUsecase
}

// DispatchHandler serves agent positions and manual dispatch.
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
	orderUC    usecase.OrderUsecase
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: params.DispatchUC,
		orderUC:    params.OrderUC,
	}
}

// LocationRequest is an agent's reported position.
type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// AssignRequest triggers nearest-agent assignment. The delivery point defaults to the order's.
type AssignRequest struct {
	DeliveryPoint     *entity.Point `json:"delivery_point"`
	MaxDistanceMeters float64       `json:"max_distance_meters" validate:"min=0"`
}

// AssignResponse reports the outcome of an assignment attempt.
type AssignResponse struct {
	OrderID  uuid.UUID     `json:"order_id"`
	Assigned bool          `json:"assigned"`
	Agent    *entity.Agent `json:"agent,omitempty"`
}

// UpdateLocation records the calling agent's position.
func (h *DispatchHandler) UpdateLocation(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req LocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	agent, err := h.dispatchUC.UpdateAgentLocation(c.Request().Context(), actor, entity.Point{
		Longitude: req.Longitude,
		Latitude:  req.Latitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, agent)
}

// AssignNearest assigns the nearest available agent to an accepted order.
func (h *DispatchHandler) AssignNearest(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req AssignRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if req.DeliveryPoint == nil {
		order, err := h.orderUC.GetOrder(ctx, actor, orderID)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		req.DeliveryPoint = &order.DeliveryPoint
	}

	agent, err := h.dispatchUC.AssignNearest(ctx, orderID, *req.DeliveryPoint, req.MaxDistanceMeters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AssignResponse{
		OrderID:  orderID,
		Assigned: agent != nil,
		Agent:    agent,
	})
}

// RetryUnassigned retries dispatch for accepted orders still waiting for an agent.
func (h *DispatchHandler) RetryUnassigned(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	result, err := h.dispatchUC.RetryUnassigned(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
