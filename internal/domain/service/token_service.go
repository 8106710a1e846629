// Package service defines interfaces for collaborators outside the engine:
// the identity provider, the event channel, the push channel and the
// routing/ETA provider.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens issued by the
// identity provider. The engine trusts UserID as the stable user identifier.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService validates tokens issued by the external identity provider.
type TokenService interface {
	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
