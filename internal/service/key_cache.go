// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/internal/store"
	"github.com/MKhiriev/go-page-lock/internal/utils"
	"github.com/MKhiriev/go-page-lock/models"
)

// cacheIDPrefix is shared with the browser script so both runtimes address
// the same entries.
const cacheIDPrefix = "derived_key_"

type keyCache struct {
	logger *logger.Logger
}

// NewKeyCache returns a [KeyCache] storing keys as base64 text.
func NewKeyCache(log *logger.Logger) KeyCache {
	return &keyCache{logger: log}
}

func (c *keyCache) CacheID(params models.DerivationParameters) string {
	return fmt.Sprintf("%s%s_%d", cacheIDPrefix, utils.EncodeBase64(params.Salt), params.Iterations)
}

func (c *keyCache) Load(ctx context.Context, backend store.Backend, id string) (models.DerivedKey, error) {
	value, found, err := backend.GetItem(ctx, id)
	if err != nil {
		c.logger.Debug().Err(err).Msg("key cache read failed")
		return nil, ErrCacheMiss
	}
	if !found || value == "" {
		return nil, ErrCacheMiss
	}

	raw, err := utils.DecodeBase64(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptCacheEntry, err)
	}
	if !models.DerivedKey(raw).Valid() {
		return nil, fmt.Errorf("%w: key is %d bytes", ErrCorruptCacheEntry, len(raw))
	}

	return models.DerivedKey(raw), nil
}

func (c *keyCache) Store(ctx context.Context, backend store.Backend, id string, key models.DerivedKey) {
	if err := backend.SetItem(ctx, id, utils.EncodeBase64(key)); err != nil {
		c.logger.Debug().Err(err).Msg("key cache write failed")
	}
}

func (c *keyCache) Clear(ctx context.Context, backend store.Backend, id string) {
	if err := backend.RemoveItem(ctx, id); err != nil {
		c.logger.Debug().Err(err).Msg("key cache remove failed")
	}
}
