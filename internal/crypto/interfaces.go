package crypto

import "github.com/MKhiriev/go-page-lock/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver stretches a password into a [models.DerivedKey].
//
// Derivation is deterministic and side-effect free: the same password and
// parameters always yield the same bytes. It never fails based on password
// content; whether the password was correct is only observable later when
// decryption succeeds or fails.
type KeyDeriver interface {
	// Derive runs PBKDF2-HMAC-SHA256 over password with params and returns a
	// 256-bit key.
	Derive(password string, params models.DerivationParameters) models.DerivedKey
}

// CipherService performs authenticated encryption of sealed documents.
//
// Blobs are laid out as nonce (12 bytes) ‖ ciphertext ‖ tag.
type CipherService interface {
	// ImportKey wraps raw key bytes into a decrypt-only [KeyHandle].
	// Returns [ErrDecryption] if key is not a valid AES-256 key.
	ImportKey(key models.DerivedKey) (KeyHandle, error)

	// Decrypt splits blob into nonce and ciphertext and opens it with handle.
	// Returns [ErrDecryption] when the blob is malformed or the tag does not
	// verify. The two causes are deliberately indistinguishable.
	Decrypt(handle KeyHandle, blob []byte) ([]byte, error)

	// Encrypt seals plaintext under key with a fresh random nonce and
	// returns nonce ‖ ciphertext ‖ tag. Used at seal time only.
	Encrypt(key models.DerivedKey, plaintext []byte) ([]byte, error)
}

// CapabilityChecker reports whether the cryptographic primitives required
// for unlocking are available on this platform.
type CapabilityChecker interface {
	// Check returns nil if decryption can be attempted, or an error wrapping
	// [ErrCapabilityUnsupported] otherwise.
	Check() error
}
