package client

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-page-lock/internal/adapter"
	"github.com/MKhiriev/go-page-lock/internal/config"
	"github.com/MKhiriev/go-page-lock/internal/crypto"
	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/internal/sealer"
	"github.com/MKhiriev/go-page-lock/internal/service"
	"github.com/MKhiriev/go-page-lock/internal/store"
	"github.com/MKhiriev/go-page-lock/models"
)

var _ Client = (*App)(nil)

// App is the viewer: one sealed page, one unlock flow, one UI session.
type App struct {
	cfg    *config.ViewerConfig
	loader adapter.PageLoader
	ui     UI

	openBackend BackendOpener
	deriver     crypto.KeyDeriver
	cipher      crypto.CipherService
	capability  crypto.CapabilityChecker

	logger *logger.Logger
}

// NewApp wires the viewer with the production crypto primitives and
// storage backends.
func NewApp(cfg *config.ViewerConfig, loader adapter.PageLoader, ui UI, log *logger.Logger) (*App, error) {
	if cfg == nil || loader == nil || ui == nil {
		return nil, fmt.Errorf("viewer app: config, loader and ui are required")
	}

	return &App{
		cfg:         cfg,
		loader:      loader,
		ui:          ui,
		openBackend: store.NewBackend,
		deriver:     crypto.NewKeyDeriver(),
		cipher:      crypto.NewCipherService(),
		capability:  crypto.NewCapabilityChecker(),
		logger:      log,
	}, nil
}

// WithBackendOpener replaces how key cache backends are opened.
func (a *App) WithBackendOpener(open BackendOpener) *App {
	a.openBackend = open
	return a
}

// Run loads the page and blocks in the UI until the user leaves. When the
// page was unlocked and an output path is configured the document is also
// written there.
func (a *App) Run(ctx context.Context) error {
	page, err := a.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load page %s: %w", a.loader.Source(), err)
	}

	envelope, err := sealer.ParsePage(page)
	if err != nil {
		return fmt.Errorf("parse page %s: %w", a.loader.Source(), err)
	}

	mode := a.storageMode(envelope)
	a.logger.Info().
		Str("source", a.loader.Source()).
		Int("iterations", envelope.Params.Iterations).
		Str("storage", string(mode)).
		Msg("sealed page loaded")

	backend, err := a.openBackend(ctx, mode, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("open key cache: %w", err)
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			a.logger.Warn().Err(cerr).Msg("close key cache")
		}
	}()

	flow, err := service.NewUnlockFlow(service.UnlockFlowConfig{
		Envelope:   envelope,
		Deriver:    a.deriver,
		Cipher:     a.cipher,
		Capability: a.capability,
		Cache:      service.NewKeyCache(a.logger),
		Backend:    backend,
		Form:       a.ui.Form(),
		Presenter:  a.ui.Presenter(),
		Logger:     a.logger,
	})
	if err != nil {
		return fmt.Errorf("create unlock flow: %w", err)
	}

	doc, err := a.ui.Run(ctx, flow)
	if err != nil {
		return err
	}

	return a.writeOutput(doc)
}

// storageMode prefers the configured mode over the one embedded in the page.
func (a *App) storageMode(envelope models.Envelope) models.StorageMode {
	if a.cfg.Storage.Mode != "" {
		return a.cfg.Storage.Mode
	}
	return envelope.StorageMode
}

func (a *App) writeOutput(doc []byte) error {
	path := a.cfg.Page.OutputPath
	if path == "" {
		return nil
	}

	if err := os.WriteFile(path, doc, 0o600); err != nil {
		return fmt.Errorf("write unlocked document: %w", err)
	}
	a.logger.Info().Str("path", path).Int("bytes", len(doc)).Msg("unlocked document written")
	return nil
}
