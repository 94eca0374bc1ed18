// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, identifier generation, and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-catalog/models"
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

// UserCtxKey is the key under which the authentication middleware stores the
// verified session token of the caller.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserCtxKey, token)
var UserCtxKey = contextKey("user")

// GetUserFromContext retrieves the verified session token from the context.
//
// ok is false when no token is stored or the stored value has an unexpected
// type, which is the case for every public route.
func GetUserFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(UserCtxKey).(models.Token)
	return token, ok
}
