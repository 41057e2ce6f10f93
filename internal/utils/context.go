// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, JSON response
// writing, JWT token generation and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/greenjets/bladerunner-portal/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authorization gate stores the
// authenticated user's id in the request context.
var UserIDCtxKey = contextKey("userID")

// RoleCtxKey is the key under which the authorization gate stores the token's
// role snapshot in the request context. Admin-only routes must not trust this
// value alone; they re-fetch the account record.
var RoleCtxKey = contextKey("role")

// GetUserIDFromContext retrieves the authenticated user's id from the context.
//
// Returns the id and an ok flag:
//   - ok == true  — value is present and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRoleFromContext retrieves the token's role snapshot from the context.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
