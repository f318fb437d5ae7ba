// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeySize is the length of a [DerivedKey] in bytes (AES-256).
const KeySize = 32

// NonceSize is the length of the AES-GCM nonce prepended to every
// ciphertext blob.
const NonceSize = 12

// TagSize is the length of the AES-GCM authentication tag appended to the
// ciphertext.
const TagSize = 16

// DerivationParameters holds the fixed inputs of password stretching for one
// sealed page. They are chosen at seal time and never change for the
// lifetime of an embedded instance.
type DerivationParameters struct {
	// Salt is the PBKDF2 salt. It is not secret.
	Salt []byte
	// Iterations is the PBKDF2 cost factor.
	Iterations int
}

// DerivedKey is the 256-bit output of password stretching. It is a pure
// function of the password and [DerivationParameters].
type DerivedKey []byte

// Valid reports whether k has the expected key length.
func (k DerivedKey) Valid() bool {
	return len(k) == KeySize
}
