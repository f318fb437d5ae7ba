// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-page-lock/models"
)

// KeyHandle is an imported key usable only for decryption. The raw key
// bytes cannot be read back from it.
type KeyHandle struct {
	aead cipher.AEAD
}

// IsZero reports whether h was never successfully imported.
func (h KeyHandle) IsZero() bool {
	return h.aead == nil
}

// cipherService is the private implementation of [CipherService] backed by
// AES-256-GCM.
type cipherService struct {
	rand io.Reader
}

// NewCipherService constructs an AES-256-GCM [CipherService] that draws
// nonces from crypto/rand.
func NewCipherService() CipherService {
	return &cipherService{rand: rand.Reader}
}

// ImportKey implements [CipherService].
func (c *cipherService) ImportKey(key models.DerivedKey) (KeyHandle, error) {
	if !key.Valid() {
		return KeyHandle{}, fmt.Errorf("%w: invalid key length %d", ErrDecryption, len(key))
	}

	aead, err := newGCM(key)
	if err != nil {
		return KeyHandle{}, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return KeyHandle{aead: aead}, nil
}

// Decrypt implements [CipherService].
func (c *cipherService) Decrypt(handle KeyHandle, blob []byte) ([]byte, error) {
	if handle.IsZero() {
		return nil, fmt.Errorf("%w: key not imported", ErrDecryption)
	}
	if len(blob) < models.NonceSize+models.TagSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}

	nonce, ciphertext := blob[:models.NonceSize], blob[models.NonceSize:]

	plaintext, err := handle.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Wrong key and tampered data look the same here on purpose.
		return nil, ErrDecryption
	}

	return plaintext, nil
}

// Encrypt implements [CipherService].
func (c *cipherService) Encrypt(key models.DerivedKey, plaintext []byte) ([]byte, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("invalid key length %d", len(key))
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, models.NonceSize)
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// blob = nonce ‖ ciphertext ‖ tag
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
