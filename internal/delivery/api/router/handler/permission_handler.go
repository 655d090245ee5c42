package handler

import (
	"net/http"

	"dispatch/internal/delivery/api/response"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PermissionHandlerParams holds dependencies for PermissionHandler, injected by Fx.
type PermissionHandlerParams struct {
	fx.In

	PermissionUC usecase.PermissionUsecase
}

// PermissionHandler lets admins read and change restaurant capability flags.
type PermissionHandler struct {
	permissionUC usecase.PermissionUsecase
}

// NewPermissionHandler is the constructor for PermissionHandler
func NewPermissionHandler(params PermissionHandlerParams) *PermissionHandler {
	return &PermissionHandler{permissionUC: params.PermissionUC}
}

// GetPermission returns the restaurant's flags, all false when none were stored.
func (h *PermissionHandler) GetPermission(c echo.Context) error {
	restaurantID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	perm, err := h.permissionUC.GetPermission(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, perm)
}

// UpdatePermission merges the posted flags into the stored set. Unknown keys are ignored.
func (h *PermissionHandler) UpdatePermission(c echo.Context) error {
	restaurantID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var flags map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(c, &flags); err != nil || flags == nil {
		return domainerrors.ErrValidationFailed.WithDetails("body must be an object of permission flags")
	}

	perm, err := h.permissionUC.UpdatePermission(c.Request().Context(), restaurantID, flags)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, perm)
}

// GetOwnPermission returns the flags of the calling merchant's restaurant.
func (h *PermissionHandler) GetOwnPermission(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if actor.RestaurantID == nil {
		return domainerrors.ErrForbidden.WithDetails("caller has no restaurant")
	}

	perm, err := h.permissionUC.GetPermission(c.Request().Context(), *actor.RestaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, perm)
}
