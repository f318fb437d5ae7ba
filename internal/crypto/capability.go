package crypto

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-page-lock/models"
)

// CapabilityFunc adapts an ordinary function to [CapabilityChecker].
type CapabilityFunc func() error

// Check implements [CapabilityChecker].
func (f CapabilityFunc) Check() error {
	return f()
}

// pbkdf2-hmac-sha256("password", "salt", 1 iteration, 32 bytes)
var (
	knownPassword = "password"
	knownParams   = models.DerivationParameters{Salt: []byte("salt"), Iterations: 1}
	knownKey, _   = hex.DecodeString("120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b")
)

// NewCapabilityChecker returns a [CapabilityChecker] that builds an
// AES-256-GCM instance and runs a PBKDF2-HMAC-SHA256 known-answer test on
// every call.
func NewCapabilityChecker() CapabilityChecker {
	deriver := NewKeyDeriver()
	return CapabilityFunc(func() error {
		return probePrimitives(deriver)
	})
}

func probePrimitives(deriver KeyDeriver) error {
	aead, err := newGCM(make([]byte, models.KeySize))
	if err != nil {
		return fmt.Errorf("%w: aes-gcm: %v", ErrCapabilityUnsupported, err)
	}
	if aead.NonceSize() != models.NonceSize || aead.Overhead() != models.TagSize {
		return fmt.Errorf("%w: unexpected gcm parameters", ErrCapabilityUnsupported)
	}

	if got := deriver.Derive(knownPassword, knownParams); !bytes.Equal(got, knownKey) {
		return fmt.Errorf("%w: pbkdf2-sha256 known answer mismatch", ErrCapabilityUnsupported)
	}
	return nil
}
