// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-page-lock/internal/utils"
	"github.com/MKhiriev/go-page-lock/models"
)

// Defaults applied to an unset sealer configuration.
const (
	DefaultIterations      = 600_000
	DefaultFormID          = "password-form"
	DefaultPasswordInputID = "password"
	DefaultContentID       = "encrypted-content"
)

// SealerConfig is the sealer configuration assembled from
// [StructuredConfig] with defaults applied and the salt decoded.
type SealerConfig struct {
	Input    string
	Output   string
	Template string

	Password   string
	Salt       []byte
	Iterations int

	FormID          string
	PasswordInputID string
	ContentID       string

	StorageMode models.StorageMode

	Minify   bool
	Markdown bool
	Title    string
}

// GetSealerConfig builds and validates the sealer's config view from env,
// args, and an optional JSON file.
func GetSealerConfig(args []string) (*SealerConfig, error) {
	cfg, err := getStructuredConfig(ParseSealerFlags, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newSealerConfig(cfg)
}

func newSealerConfig(cfg *StructuredConfig) (*SealerConfig, error) {
	s := cfg.Sealer

	sealerCfg := &SealerConfig{
		Input:           s.Input,
		Output:          s.Output,
		Template:        s.Template,
		Password:        s.Password,
		Iterations:      s.Iterations,
		FormID:          valueOr(s.FormID, DefaultFormID),
		PasswordInputID: valueOr(s.PasswordInputID, DefaultPasswordInputID),
		ContentID:       valueOr(s.ContentID, DefaultContentID),
		Minify:          s.Minify,
		Markdown:        s.Markdown,
		Title:           s.Title,
	}

	if sealerCfg.Iterations == 0 {
		sealerCfg.Iterations = DefaultIterations
	}

	if s.Salt != "" {
		salt, err := utils.DecodeBase64(s.Salt)
		if err != nil {
			return nil, fmt.Errorf("%w: salt is not base64: %w", ErrInvalidSealerConfigs, err)
		}
		sealerCfg.Salt = salt
	}

	mode, err := models.ParseStorageMode(s.StorageMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSealerConfigs, err)
	}
	sealerCfg.StorageMode = mode

	return sealerCfg, sealerCfg.validate()
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
