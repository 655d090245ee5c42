package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of access tokens issued by the identity service.
type Claims struct {
	UserID       uuid.UUID  `json:"uid"`
	Roles        []string   `json:"roles"`
	RestaurantID *uuid.UUID `json:"restaurant_id,omitempty"`
	AgentID      *uuid.UUID `json:"agent_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens. Tokens are minted by the identity service;
// GenerateAccessToken exists for test routes and local tooling.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateAccessToken signs a token for the given identity.
	GenerateAccessToken(claims *Claims) (string, error)
}
