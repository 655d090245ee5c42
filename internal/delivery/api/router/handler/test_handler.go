package handler

import (
	"net/http"
	"time"

	"dispatch/internal/delivery/api/middleware"
	"dispatch/internal/delivery/api/response"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	TokenSvc service.TokenService
}

// TestHandler handles endpoints used to exercise the API without the identity service.
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{tokenSvc: params.TokenSvc}
}

// IssueTokenRequest describes the identity to mint a token for.
type IssueTokenRequest struct {
	UserID       uuid.UUID  `json:"user_id" validate:"required"`
	Roles        []string   `json:"roles" validate:"required,min=1,dive,oneof=customer merchant agent admin"`
	RestaurantID *uuid.UUID `json:"restaurant_id"`
	AgentID      *uuid.UUID `json:"agent_id"`
	TTLSeconds   int        `json:"ttl_seconds" validate:"min=0"`
}

// IssueToken signs an access token the way the identity service would.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	claims := &service.Claims{
		UserID:       req.UserID,
		Roles:        req.Roles,
		RestaurantID: req.RestaurantID,
		AgentID:      req.AgentID,
	}
	if req.TTLSeconds > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Duration(req.TTLSeconds) * time.Second))
	}

	token, err := h.tokenSvc.GenerateAccessToken(claims)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"access_token": token})
}

// WhoAmI echoes the token claims resolved by the auth middleware.
func (h *TestHandler) WhoAmI(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":       claims.UserID,
		"roles":         entity.RolesFromStrings(claims.Roles),
		"restaurant_id": claims.RestaurantID,
		"agent_id":      claims.AgentID,
	})
}
