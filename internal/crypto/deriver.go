// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-page-lock/models"
)

// DefaultIterations is the PBKDF2 cost factor used when a page does not set
// its own (OWASP 2023 recommendation for PBKDF2-HMAC-SHA256).
const DefaultIterations = 600_000

// keyDeriver is the private implementation of [KeyDeriver].
type keyDeriver struct {
	keyLen int
}

// NewKeyDeriver constructs a [KeyDeriver] producing [models.KeySize]-byte
// keys.
func NewKeyDeriver() KeyDeriver {
	return &keyDeriver{keyLen: models.KeySize}
}

// Derive implements [KeyDeriver].
func (d *keyDeriver) Derive(password string, params models.DerivationParameters) models.DerivedKey {
	return pbkdf2.Key([]byte(password), params.Salt, params.Iterations, d.keyLen, sha256.New)
}
