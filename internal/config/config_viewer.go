package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-page-lock/models"
)

// defaultRequestTimeout bounds remote page fetches when no timeout is set.
const defaultRequestTimeout = 30 * time.Second

// ViewerPage holds the viewer's input and output settings.
type ViewerPage struct {
	// Source is a file path or an http(s) URL of the sealed page.
	Source string
	// RequestTimeout bounds fetching a remote page.
	RequestTimeout time.Duration
	// OutputPath optionally receives a copy of the unlocked document.
	OutputPath string
}

// ClientDB contains local database connection settings for the viewer.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups viewer key cache settings.
type ClientStorage struct {
	// Mode overrides the page's embedded storage mode; empty means the page
	// decides.
	Mode models.StorageMode
	// DB holds the persistent backend settings.
	DB ClientDB
}

// ViewerConfig is the viewer configuration assembled from
// [StructuredConfig].
type ViewerConfig struct {
	Page    ViewerPage
	Storage ClientStorage
}

// GetViewerConfig builds and validates the viewer's config view from env,
// args, and an optional JSON file.
func GetViewerConfig(args []string) (*ViewerConfig, error) {
	cfg, err := getStructuredConfig(ParseViewerFlags, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newViewerConfig(cfg)
}

func newViewerConfig(cfg *StructuredConfig) (*ViewerConfig, error) {
	viewerCfg := &ViewerConfig{
		Page: ViewerPage{
			Source:         cfg.Page.Source,
			RequestTimeout: cfg.Page.RequestTimeout,
			OutputPath:     cfg.Page.OutputPath,
		},
		Storage: ClientStorage{
			Mode: models.StorageMode(cfg.Storage.Mode),
			DB:   ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	if viewerCfg.Page.RequestTimeout == 0 {
		viewerCfg.Page.RequestTimeout = defaultRequestTimeout
	}
	if viewerCfg.Storage.DB.DSN == "" {
		viewerCfg.Storage.DB.DSN = defaultCacheDSN()
	}

	return viewerCfg, viewerCfg.validate()
}

// defaultCacheDSN places the persistent key cache in the user cache
// directory, or the working directory if that is unknown.
func defaultCacheDSN() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "page-lock-keys.db"
	}
	return filepath.Join(dir, "go-page-lock", "keys.db")
}
