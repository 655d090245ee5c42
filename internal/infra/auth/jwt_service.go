// Package auth provides the access token implementation of the domain's TokenService.
package auth

import (
	"time"

	"dispatch/config"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultAccessTTL = 15 * time.Minute

// jwtService validates HS256 access tokens minted by the identity service.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    defaultAccessTTL,
	}, nil
}

// ValidateToken parses the token, verifies signature and expiry and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return nil, errors.Wrap(err, "invalid access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	return claims, nil
}

// GenerateAccessToken signs claims, filling subject, issue and expiry times when unset.
func (s *jwtService) GenerateAccessToken(claims *service.Claims) (string, error) {
	now := time.Now()
	signed := *claims
	if signed.Subject == "" {
		signed.Subject = claims.UserID.String()
	}
	if signed.IssuedAt == nil {
		signed.IssuedAt = jwt.NewNumericDate(now)
	}
	if signed.ExpiresAt == nil {
		signed.ExpiresAt = jwt.NewNumericDate(now.Add(s.accessTTL))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &signed).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}
