// Package users provides the user store. Users are sale authors; credentials
// live with the identity provider and are not stored here.
package users

import (
	"context"
	"net/mail"
	"strings"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/entity"
)

// User is a person who can record sales.
type User struct {
	entity.BaseEntity
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	IsActive  bool   `db:"is_active" json:"is_active"`
}

// NewUser creates an active user.
func NewUser(email, firstName, lastName string) *User {
	return &User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  true,
	}
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	u.Email = strings.TrimSpace(u.Email)
	if u.Email == "" {
		return apperror.NewFieldValidation("email", "email is required")
	}
	addr, err := mail.ParseAddress(u.Email)
	if err != nil || addr.Address != u.Email {
		return apperror.NewFieldValidation("email", "email is not a valid address")
	}
	if len(u.FirstName) > 150 || len(u.LastName) > 150 {
		return apperror.NewValidation("name is too long").WithDetail("max_length", 150)
	}
	return nil
}
