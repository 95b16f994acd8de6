// Package context provides request-scoped values extraction.
package context

import (
	"context"
	"slices"
)

// RoleAdmin grants user management.
const RoleAdmin = "admin"

// UserContext contains authenticated user information.
type UserContext struct {
	UserID int64
	Email  string
	Roles  []string
}

// IsAdmin reports whether the user carries the admin role.
func (u *UserContext) IsAdmin() bool {
	return slices.Contains(u.Roles, RoleAdmin)
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserID returns user ID from context or 0.
func GetUserID(ctx context.Context) int64 {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return 0
}

// HasRole checks if user has specific role.
func HasRole(ctx context.Context, role string) bool {
	u := GetUser(ctx)
	if u == nil {
		return false
	}
	return slices.Contains(u.Roles, role)
}
