// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks source-independent invariants of the merged
// [StructuredConfig]. View-specific rules live on the views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sealer.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidSealerConfigs)
	}
	if cfg.Page.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidPageConfigs)
	}

	return nil
}

func (cfg *ViewerConfig) validate() error {
	if cfg.Page.Source == "" {
		return fmt.Errorf("%w: page source is required", ErrInvalidPageConfigs)
	}

	if cfg.Storage.Mode != "" && !cfg.Storage.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidStorageConfigs, cfg.Storage.Mode)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *SealerConfig) validate() error {
	if cfg.Input == "" || cfg.Output == "" {
		return fmt.Errorf("%w: input and output are required", ErrInvalidSealerConfigs)
	}

	if cfg.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidSealerConfigs)
	}

	if cfg.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidSealerConfigs)
	}

	if cfg.Salt != nil && len(cfg.Salt) == 0 {
		return fmt.Errorf("%w: empty salt", ErrInvalidSealerConfigs)
	}

	return nil
}
