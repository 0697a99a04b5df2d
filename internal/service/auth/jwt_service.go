package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
//
// The command-line entry point keeps no session between invocations, so
// login issues a token and later commands present it to identify the user.
type JWTService interface {
	// GenerateToken creates a signed JWT token for the given user.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID int) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns ErrMissingToken for an empty string, ErrExpiredToken for an
	// expired token and ErrInvalidToken for anything else that fails.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
type Claims struct {
	// UserID is the identifier of the user the token was issued for.
	UserID int `json:"uid"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
