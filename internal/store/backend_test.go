package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-page-lock/internal/config"
	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/models"
)

func TestNoopStorage(t *testing.T) {
	ctx := context.Background()
	s := NewNoopStorage()

	require.NoError(t, s.SetItem(ctx, "k", "v"))

	v, found, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)

	assert.NoError(t, s.RemoveItem(ctx, "k"))
	assert.NoError(t, s.Close())
}

func TestSessionStorage_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStorage()

	_, found, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetItem(ctx, "k", "v1"))
	require.NoError(t, s.SetItem(ctx, "k", "v2"))

	v, found, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v2", v)

	require.NoError(t, s.RemoveItem(ctx, "k"))
	require.NoError(t, s.RemoveItem(ctx, "missing"))

	_, found, err = s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionStorage_Close(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStorage()
	require.NoError(t, s.SetItem(ctx, "k", "v"))
	require.NoError(t, s.Close())

	_, _, err := s.GetItem(ctx, "k")
	assert.ErrorIs(t, err, ErrBackendClosed)
	assert.ErrorIs(t, s.SetItem(ctx, "k", "v"), ErrBackendClosed)
	assert.ErrorIs(t, s.RemoveItem(ctx, "k"), ErrBackendClosed)
}

func TestSessionStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStorage()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = s.SetItem(ctx, "k", "same")
				_, _, _ = s.GetItem(ctx, "k")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	v, found, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "same", v)
}

func TestNewBackend(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	session, err := NewBackend(ctx, models.StorageSession, config.ClientStorage{}, log)
	require.NoError(t, err)
	assert.IsType(t, &sessionStorage{}, session)

	disabled, err := NewBackend(ctx, models.StorageDisabled, config.ClientStorage{}, log)
	require.NoError(t, err)
	assert.IsType(t, noopStorage{}, disabled)

	_, err = NewBackend(ctx, models.StorageMode("cookies"), config.ClientStorage{}, log)
	assert.ErrorIs(t, err, ErrUnknownStorageMode)
}
