// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-page-lock/internal/config"
	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/internal/service"
	"github.com/MKhiriev/go-page-lock/internal/store"
	"github.com/MKhiriev/go-page-lock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface that shows a locked page.
type UI interface {
	// Form is handed to the unlock flow as its password surface.
	Form() service.Form
	// Presenter is handed to the unlock flow as its document surface.
	Presenter() service.Presenter
	// Run blocks until the user leaves and returns the unlocked document.
	Run(ctx context.Context, flow service.Unlocker) ([]byte, error)
}

// BackendOpener opens the key cache backend for a storage mode.
type BackendOpener func(ctx context.Context, mode models.StorageMode, cfg config.ClientStorage, log *logger.Logger) (store.Backend, error)
