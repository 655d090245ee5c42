package handler

import (
	"net/http"

	"dispatch/internal/delivery/api/middleware"
	"dispatch/internal/delivery/api/response"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// actorFrom returns the Actor placed on the context by the auth middleware.
func actorFrom(c echo.Context) (entity.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return entity.Actor{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// bindAndValidate binds the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
