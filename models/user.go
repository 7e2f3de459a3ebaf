package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the capability level of a user account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Email is the unique account identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON and must never contain plaintext.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Role determines the account's capability level.
	Role Role `json:"role"`

	// Avatar is an optional URI for the user's avatar image.
	Avatar string `json:"avatar,omitempty"`

	// IsActive marks whether the account may be used. Defaults to true.
	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserCreate is the registration payload. Password is plaintext on input
// only; it is hashed by the service before it touches any other layer.
type UserCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar"`
	IsActive *bool  `json:"isActive"`
}

// UserUpdate is a partial update of a user. Nil fields are left unchanged.
// Password, when present, is the new plaintext password and is re-hashed by
// the service before storage.
type UserUpdate struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Role     *Role   `json:"role"`
	Avatar   *string `json:"avatar"`
	IsActive *bool   `json:"isActive"`
}
