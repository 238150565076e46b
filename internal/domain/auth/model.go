// Package auth provides user accounts, password handling and JWT issuance.
package auth

import (
	"context"
	"regexp"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/entity"
)

// Role is a coarse functional role assigned to a user.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleStore    Role = "Store"
	RolePurchase Role = "Purchase"
	RoleQC       Role = "QC"
	RoleAccounts Role = "Accounts"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStore, RolePurchase, RoleQC, RoleAccounts:
		return true
	}
	return false
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// User is an account that can sign in. PasswordHash never leaves the server.
type User struct {
	entity.Base

	Email        string  `db:"email" json:"email"`
	Name         string  `db:"name" json:"name"`
	Role         Role    `db:"role" json:"role"`
	Department   *string `db:"department" json:"department,omitempty"`
	IsActive     bool    `db:"is_active" json:"is_active"`
	PasswordHash string  `db:"password_hash" json:"-"`
}

// Validate implements entity.Validatable.
func (u *User) Validate(_ context.Context) error {
	if !emailPattern.MatchString(u.Email) {
		return apperror.NewValidation("invalid email").WithDetail("field", "email")
	}
	if u.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if !u.Role.Valid() {
		return apperror.NewValidation("invalid role").
			WithDetail("field", "role").
			WithDetail("value", string(u.Role))
	}
	return nil
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email      string  `json:"email" binding:"required"`
	Password   string  `json:"password" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Role       Role    `json:"role" binding:"required"`
	Department *string `json:"department,omitempty"`
}

// LoginRequest is the payload for signing in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Token is the login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}
