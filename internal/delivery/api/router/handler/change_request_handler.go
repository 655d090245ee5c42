package handler

import (
	"net/http"
	"strconv"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChangeRequestHandlerParams holds dependencies for ChangeRequestHandler, injected by Fx.
type ChangeRequestHandlerParams struct {
	fx.In

	ChangeRequestUC usecase.ChangeRequestUsecase
}

// ChangeRequestHandler serves the admin review queue.
type ChangeRequestHandler struct {
	changeRequestUC usecase.ChangeRequestUsecase
}

// NewChangeRequestHandler is the constructor for ChangeRequestHandler
func NewChangeRequestHandler(params ChangeRequestHandlerParams) *ChangeRequestHandler {
	return &ChangeRequestHandler{changeRequestUC: params.ChangeRequestUC}
}

// ReviewChangeRequest is an admin's decision.
type ReviewChangeRequest struct {
	Decision entity.ReviewDecision `json:"decision" validate:"required,oneof=APPROVE REJECT"`
}

// ListChangeRequests lists requests filtered by restaurant_id and status, paged by limit and offset.
func (h *ChangeRequestHandler) ListChangeRequests(c echo.Context) error {
	filter, err := parseChangeRequestFilter(c)
	if err != nil {
		return err
	}

	requests, err := h.changeRequestUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// ReviewChangeRequest approves or rejects a pending request.
func (h *ChangeRequestHandler) ReviewChangeRequest(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReviewChangeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reviewed, err := h.changeRequestUC.Review(c.Request().Context(), actor, requestID, req.Decision)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviewed)
}

func parseChangeRequestFilter(c echo.Context) (entity.ChangeRequestFilter, error) {
	var filter entity.ChangeRequestFilter

	if raw := c.QueryParam("restaurant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WithDetails("invalid restaurant_id")
		}
		filter.RestaurantID = &id
	}

	switch status := entity.ChangeRequestStatus(c.QueryParam("status")); status {
	case "", entity.ChangeRequestPending, entity.ChangeRequestApproved, entity.ChangeRequestRejected:
		filter.Status = status
	default:
		return filter, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	var err error
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryInt(c, "offset"); err != nil {
		return filter, err
	}

	return filter, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a non-negative integer")
	}

	return value, nil
}
