package model

import (
	"time"

	"github.com/takatrack/waste-monitoring/constant"
)

// UserEntity represents the users table entity. Email and PasswordHash are
// nullable: accounts created through an external identity carry a login
// method instead of a password hash.
type UserEntity struct {
	ID           uint64        `db:"id" json:"id"`
	OpenID       string        `db:"open_id" json:"open_id"`
	Name         *string       `db:"name" json:"name"`
	Email        *string       `db:"email" json:"email"`
	PasswordHash *string       `db:"password_hash" json:"-"`
	LoginMethod  *string       `db:"login_method" json:"login_method,omitempty"`
	Role         constant.Role `db:"role" json:"role"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
	LastSignedIn time.Time     `db:"last_signed_in" json:"last_signed_in"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// PublicUser is the subset of account fields returned to clients.
type PublicUser struct {
	ID    uint64        `json:"id"`
	Email *string       `json:"email"`
	Name  *string       `json:"name"`
	Role  constant.Role `json:"role"`
}

// PublicProfile projects the entity into its client-visible fields.
func (u *UserEntity) PublicProfile() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// RegisterRequest for account registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// LoginRequest for email/password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyRequest for token introspection
type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// TokenPayload is the identity a session token asserts.
type TokenPayload struct {
	UserID uint64        `json:"user_id"`
	Email  string        `json:"email"`
	Role   constant.Role `json:"role"`
}

// VerifyResponse is returned by token introspection.
type VerifyResponse struct {
	Valid   bool         `json:"valid"`
	Payload TokenPayload `json:"payload"`
}

// LogoutResponse acknowledges a stateless logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}
