// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// sessionStorage keeps values in process memory. Entries vanish when the
// process (the viewing session) ends.
type sessionStorage struct {
	mu     sync.RWMutex
	items  map[string]string
	closed bool
}

// NewSessionStorage returns an in-memory [Backend].
func NewSessionStorage() Backend {
	return &sessionStorage{items: make(map[string]string)}
}

func (s *sessionStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, ErrBackendClosed
	}
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *sessionStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrBackendClosed
	}
	s.items[key] = value
	return nil
}

func (s *sessionStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrBackendClosed
	}
	delete(s.items, key)
	return nil
}

// Close drops every entry.
func (s *sessionStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.closed = true
	return nil
}
