package store

import "context"

// noopStorage is the disabled backend: nothing is ever stored.
type noopStorage struct{}

// NewNoopStorage returns a [Backend] whose reads always miss and whose
// writes do nothing.
func NewNoopStorage() Backend {
	return noopStorage{}
}

func (noopStorage) GetItem(context.Context, string) (string, bool, error) { return "", false, nil }
func (noopStorage) SetItem(context.Context, string, string) error          { return nil }
func (noopStorage) RemoveItem(context.Context, string) error               { return nil }
func (noopStorage) Close() error                                           { return nil }
