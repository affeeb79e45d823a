package model

// Package model contains the marketplace domain entities and request types.

import (
	"strings"
	"time"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
)

// UserRecord is the role-tagged account row keyed by principal id.
// One-to-one with a Principal; created at sign-up, read at every session bootstrap.
type UserRecord struct {
	ID        string          `json:"id" db:"id"`
	UserType  domainauth.Role `json:"user_type" db:"user_type"`
	Email     string          `json:"email" db:"email"`
	FullName  string          `json:"full_name" db:"full_name"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// CreateUserRequest carries the fields for the sign-up users insert.
type CreateUserRequest struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	UserType domainauth.Role `json:"user_type"`
	FullName string          `json:"full_name"`
}

// Validate checks required fields.
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return apperrors.ValidationField("id", "id is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if !r.UserType.Valid() {
		return apperrors.ValidationField("user_type", "user_type must be employer or jobseeker")
	}
	return nil
}

// UpdateUserRequest carries optional profile-edit fields. Nil means unchanged.
type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty"`
}
