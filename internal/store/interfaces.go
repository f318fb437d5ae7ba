package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Backend is a string key/value store holding cached key material.
//
// A backend is shared by every unlock attempt of a page. Writes are
// idempotent (the same password always produces the same value), so
// implementations need no coordination beyond their own thread safety.
type Backend interface {
	// GetItem returns the value stored under key. found is false if no value
	// exists; err is reserved for backend failures.
	GetItem(ctx context.Context, key string) (value string, found bool, err error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}
