// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// StorageMode selects where a derived key is cached between visits.
type StorageMode string

const (
	// StoragePersistent keeps cached keys across restarts.
	StoragePersistent StorageMode = "persistent"
	// StorageSession keeps cached keys only for the lifetime of the session.
	StorageSession StorageMode = "session"
	// StorageDisabled never caches keys.
	StorageDisabled StorageMode = "disabled"
)

// Valid reports whether m is one of the recognized storage modes.
func (m StorageMode) Valid() bool {
	switch m {
	case StoragePersistent, StorageSession, StorageDisabled:
		return true
	}
	return false
}

// ParseStorageMode converts s into a [StorageMode]. An empty string yields
// [StorageDisabled].
func ParseStorageMode(s string) (StorageMode, error) {
	if s == "" {
		return StorageDisabled, nil
	}
	m := StorageMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown storage mode %q", s)
	}
	return m, nil
}

// Envelope is everything a sealed page embeds for its decryption flow.
//
// EncryptedData is laid out as nonce (12 bytes) ‖ ciphertext ‖ tag.
type Envelope struct {
	Params        DerivationParameters
	EncryptedData []byte

	FormID          string
	PasswordInputID string
	ContentID       string

	StorageMode StorageMode
}
