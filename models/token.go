package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token is a parsed or freshly issued session token.
// It embeds jwt.RegisteredClaims so it can be passed directly to
// jwt.ParseWithClaims as the claims destination.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact serialized form handed to clients.
	SignedString string `json:"-"`

	// UserID is the subject claim decoded back into a user identifier.
	UserID uuid.UUID `json:"-"`
}
