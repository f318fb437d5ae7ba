package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-page-lock/internal/config"
	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/models"
)

// NewBackend builds the cache [Backend] for mode:
//   - [models.StoragePersistent] opens the SQLite database at cfg.DB.DSN and
//     runs pending migrations;
//   - [models.StorageSession] returns an in-memory store;
//   - [models.StorageDisabled] returns a no-op store.
func NewBackend(ctx context.Context, mode models.StorageMode, cfg config.ClientStorage, log *logger.Logger) (Backend, error) {
	log.Info().Str("mode", string(mode)).Msg("creating key cache backend...")

	switch mode {
	case models.StoragePersistent:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewPersistentStorage(db.DB, log), nil
	case models.StorageSession:
		return NewSessionStorage(), nil
	case models.StorageDisabled:
		return NewNoopStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageMode, mode)
	}
}
