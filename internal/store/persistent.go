// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-page-lock/internal/logger"
)

// persistentStorage is the SQLite-backed [Backend]. Entries survive process
// restarts.
type persistentStorage struct {
	db     *sql.DB
	now    func() time.Time
	logger *logger.Logger
}

// NewPersistentStorage returns a [Backend] over an already migrated
// database.
func NewPersistentStorage(db *sql.DB, log *logger.Logger) Backend {
	return &persistentStorage{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

func (p *persistentStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	query, args, err := selectItemQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		p.logger.Err(err).Str("func", "persistentStorage.GetItem").Msg("error selecting cached item")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (p *persistentStorage) SetItem(ctx context.Context, key, value string) error {
	query, args, err := upsertItemQuery(key, value, p.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).Str("func", "persistentStorage.SetItem").Msg("error upserting cached item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (p *persistentStorage) RemoveItem(ctx context.Context, key string) error {
	query, args, err := deleteItemQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).Str("func", "persistentStorage.RemoveItem").Msg("error deleting cached item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (p *persistentStorage) Close() error {
	return p.db.Close()
}
