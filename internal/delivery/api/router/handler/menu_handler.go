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

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
}

// MenuHandler serves merchant menu mutations. Mutations without the menu permission
// are forwarded for review and answered with 202.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{menuUC: params.MenuUC}
}

// CreateProductRequest is a new menu item.
type CreateProductRequest struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	Price       float64   `json:"price" validate:"min=0"`
	Active      bool      `json:"active"`
	Note        string    `json:"note" validate:"max=500"`
}

// UpdateProductRequest is a partial menu item update.
type UpdateProductRequest struct {
	entity.ProductPatch
	Note string `json:"note" validate:"max=500"`
}

// NoteRequest carries the optional note attached to a forwarded change.
type NoteRequest struct {
	Note string `json:"note" validate:"max=500"`
}

// CreateProduct adds a product or forwards the creation for review.
func (h *MenuHandler) CreateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.menuUC.CreateProduct(c.Request().Context(), actor, &entity.CreateProductPayload{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      req.Active,
	}, req.Note)

	return respondMenu(c, http.StatusCreated, result, err)
}

// UpdateProduct patches a product or forwards the patch for review.
func (h *MenuHandler) UpdateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.menuUC.UpdateProduct(c.Request().Context(), actor, productID, req.ProductPatch, req.Note)

	return respondMenu(c, http.StatusOK, result, err)
}

// DeleteProduct removes a product or forwards the removal for review.
func (h *MenuHandler) DeleteProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	note := c.QueryParam("note")
	result, err := h.menuUC.DeleteProduct(c.Request().Context(), actor, productID, note)

	return respondMenu(c, http.StatusOK, result, err)
}

// ToggleProductActive flips a product's availability or forwards the toggle for review.
func (h *MenuHandler) ToggleProductActive(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req NoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.menuUC.ToggleProductActive(c.Request().Context(), actor, productID, req.Note)

	return respondMenu(c, http.StatusOK, result, err)
}

func respondMenu(c echo.Context, appliedCode int, result *usecase.MenuResult, err error) error {
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if result.Forwarded {
		return response.Success(c, http.StatusAccepted, result)
	}

	return response.Success(c, appliedCode, result)
}
