package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AttemptIDCtxKey is the key used to store the identifier of the current
// unlock attempt in the context.
var AttemptIDCtxKey = contextKey("attemptID")

// WithAttemptID returns a copy of ctx carrying attemptID.
func WithAttemptID(ctx context.Context, attemptID string) context.Context {
	return context.WithValue(ctx, AttemptIDCtxKey, attemptID)
}

// GetAttemptIDFromContext retrieves the attempt identifier from the context.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetAttemptIDFromContext(ctx context.Context) (string, bool) {
	attemptID, ok := ctx.Value(AttemptIDCtxKey).(string)
	return attemptID, ok
}
