// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Page describes where the viewer loads the sealed page from and where
	// the unlocked document may be written.
	Page Page `envPrefix:"PAGE_"`

	// Storage selects and configures the key cache backend of the viewer.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sealer holds the build-time settings of the sealer.
	Sealer Sealer `envPrefix:"SEALER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Page holds viewer input/output settings.
type Page struct {
	// Source is a file path or an http(s) URL of the sealed page.
	// Env: PAGE_SOURCE
	Source string `env:"SOURCE"`

	// RequestTimeout bounds fetching a remote page (e.g. "10s").
	// Env: PAGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// OutputPath, when set, receives a copy of the unlocked document.
	// Env: PAGE_OUTPUT_PATH
	OutputPath string `env:"OUTPUT_PATH"`
}

// Storage groups key cache settings.
type Storage struct {
	// Mode overrides the storage mode embedded in the page
	// ("persistent", "session" or "disabled").
	// Env: STORAGE_MODE
	Mode string `env:"MODE"`

	// DB holds the SQLite settings of the persistent backend.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite key cache.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sealer holds the settings used to seal a document into a page.
type Sealer struct {
	// Input is the document to seal.
	// Env: SEALER_INPUT
	Input string `env:"INPUT"`

	// Output is where the sealed page is written.
	// Env: SEALER_OUTPUT
	Output string `env:"OUTPUT"`

	// Template is an optional host page; the built-in one is used if empty.
	// Env: SEALER_TEMPLATE
	Template string `env:"TEMPLATE"`

	// Password encrypts the document. It is never written to the output.
	// Env: SEALER_PASSWORD
	Password string `env:"PASSWORD"`

	// Salt is an optional base64 salt reused across builds. A random salt
	// is generated when empty.
	// Env: SEALER_SALT
	Salt string `env:"SALT"`

	// Iterations is the PBKDF2 cost factor.
	// Env: SEALER_ITERATIONS
	Iterations int `env:"ITERATIONS"`

	// FormID, PasswordInputID and ContentID name the host page elements.
	// Env: SEALER_FORM_ID, SEALER_PASSWORD_INPUT_ID, SEALER_CONTENT_ID
	FormID          string `env:"FORM_ID"`
	PasswordInputID string `env:"PASSWORD_INPUT_ID"`
	ContentID       string `env:"CONTENT_ID"`

	// StorageMode is embedded into the page as the default cache backend.
	// Env: SEALER_STORAGE_MODE
	StorageMode string `env:"STORAGE_MODE"`

	// Minify minifies the embedded decryption script.
	// Env: SEALER_MINIFY
	Minify bool `env:"MINIFY"`

	// Markdown renders the input from Markdown to HTML before sealing.
	// Env: SEALER_MARKDOWN
	Markdown bool `env:"MARKDOWN"`

	// Title is the host page title.
	// Env: SEALER_TITLE
	Title string `env:"TITLE"`
}

// flagParser turns command-line arguments into a partial [StructuredConfig].
type flagParser func(args []string) (*StructuredConfig, error)

// getStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed by parse
//  3. JSON file (path resolved from sources 1 and 2)
func getStructuredConfig(parse flagParser, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(parse, args).
		withJSON().
		build()
}
