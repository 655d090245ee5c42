package middleware

import (
	"log/slog"
	"strings"

	"dispatch/internal/delivery/api/response"
	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	keyClaims = "auth_claims"
	keyActor  = "auth_actor"

	bearerPrefix = "Bearer "
)

// AuthMiddleware turns identity-service access tokens into the Actor the engine trusts.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyClaims, claims)

		return next(c)
	}
}

// RequireRole checks that the token carries role and sets the Actor for that role.
// Merchants must carry their restaurant and agents their agent profile.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetClaims(c)
			if !ok {
				return response.Unauthorized(c, "CONTEXT_ERROR", "Token claims missing from context")
			}

			if !entity.RolesFromStrings(claims.Roles).Contains(role) {
				return response.Forbidden(c, "ROLE_REQUIRED", "Permission denied: require '"+role.String()+"' role")
			}

			actor := entity.Actor{UserID: claims.UserID, Role: role}
			switch role {
			case entity.RoleMerchant:
				if claims.RestaurantID == nil {
					return response.Forbidden(c, "ROLE_REQUIRED", "Merchant token carries no restaurant")
				}
				actor.RestaurantID = claims.RestaurantID
			case entity.RoleAgent:
				if claims.AgentID == nil {
					return response.Forbidden(c, "ROLE_REQUIRED", "Agent token carries no agent profile")
				}
				actor.AgentID = claims.AgentID
			}

			c.Set(keyActor, actor)
			deliverycontext.AnnotateRequest(c, m.logger,
				slog.String("role", role.String()),
				slog.Any("user_id", claims.UserID))

			return next(c)
		}
	}
}

// Guest sets the anonymous guest Actor. Guest routes carry no token.
func (m *AuthMiddleware) Guest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(keyActor, entity.Actor{Role: entity.RoleGuest})
		deliverycontext.AnnotateRequest(c, m.logger, slog.String("role", entity.RoleGuest.String()))

		return next(c)
	}
}

// GetClaims returns the validated token claims.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok && claims != nil
}

// GetActor returns the Actor set by RequireRole or Guest.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(keyActor).(entity.Actor)

	return actor, ok
}
