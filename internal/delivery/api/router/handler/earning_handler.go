package handler

import (
	"net/http"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EarningHandlerParams holds dependencies for EarningHandler, injected by Fx.
type EarningHandlerParams struct {
	fx.In

	EarningUC usecase.EarningUsecase
}

// EarningHandler serves the earnings ledger.
type EarningHandler struct {
	earningUC usecase.EarningUsecase
}

// NewEarningHandler is the constructor for EarningHandler
func NewEarningHandler(params EarningHandlerParams) *EarningHandler {
	return &EarningHandler{earningUC: params.EarningUC}
}

// PostEarningRequest is a manual ledger entry such as a bonus or incentive.
type PostEarningRequest struct {
	OrderID *uuid.UUID         `json:"order_id"`
	Amount  float64            `json:"amount" validate:"ne=0"`
	Type    entity.EarningType `json:"type" validate:"required"`
	Remarks string             `json:"remarks" validate:"max=500"`
}

// GetMySummary returns the calling agent's earnings by type.
func (h *EarningHandler) GetMySummary(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if actor.AgentID == nil {
		return domainerrors.ErrForbidden.WithDetails("caller is not an agent")
	}

	return h.respondSummary(c, *actor.AgentID)
}

// GetAgentSummary returns any agent's earnings by type.
func (h *EarningHandler) GetAgentSummary(c echo.Context) error {
	agentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return h.respondSummary(c, agentID)
}

func (h *EarningHandler) respondSummary(c echo.Context, agentID uuid.UUID) error {
	summary, err := h.earningUC.GetAgentEarningsSummary(c.Request().Context(), agentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// PostAgentEarning appends a manual entry to an agent's ledger.
func (h *EarningHandler) PostAgentEarning(c echo.Context) error {
	agentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PostEarningRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	earning, err := h.earningUC.PostAgentEarning(c.Request().Context(), agentID, req.OrderID, req.Amount, req.Type, req.Remarks)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, earning)
}

// PostRestaurantEarning records the restaurant's revenue for a delivered order.
func (h *EarningHandler) PostRestaurantEarning(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	earning, err := h.earningUC.PostRestaurantEarning(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, earning)
}

// ListRestaurantEarnings lists a restaurant's revenue entries. Merchants read their own restaurant.
func (h *EarningHandler) ListRestaurantEarnings(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var restaurantID uuid.UUID
	if c.Param("id") != "" {
		if restaurantID, err = pathID(c, "id"); err != nil {
			return err
		}
	} else if actor.RestaurantID != nil {
		restaurantID = *actor.RestaurantID
	} else {
		return domainerrors.ErrValidationFailed.WithDetails("restaurant id is required")
	}

	earnings, err := h.earningUC.ListRestaurantEarnings(c.Request().Context(), actor, restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, earnings)
}
