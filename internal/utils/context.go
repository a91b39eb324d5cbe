// Package utils holds small helpers shared by the vault packages: context
// keys, id generation, JSON responses, the outbound HTTP client and JWT
// handling.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user id. Prefer [WithUserID] and
// [GetUserIDFromContext] over using the key directly.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext reports the user id stored by [WithUserID]. ok is
// false when the value is missing, empty or not a string.
func GetUserIDFromContext(ctx context.Context) (userID string, ok bool) {
	userID, ok = ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}
