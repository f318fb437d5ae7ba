package crypto

import "errors"

var (
	// ErrDecryption covers every decryption failure: wrong key, tampered or
	// truncated ciphertext, and unusable key material.
	ErrDecryption = errors.New("decryption failed")

	// ErrCapabilityUnsupported is returned by a [CapabilityChecker] when the
	// required primitives are unavailable.
	ErrCapabilityUnsupported = errors.New("required cryptographic primitives are unavailable")
)
