package service

import "errors"

var (
	// ErrCacheMiss is returned by [KeyCache.Load] when no key is cached or
	// the backend could not be read.
	ErrCacheMiss = errors.New("no cached key")
	// ErrCorruptCacheEntry is returned by [KeyCache.Load] when the stored
	// value is not a base64 encoded key. The caller decides when to clear it.
	ErrCorruptCacheEntry = errors.New("corrupt key cache entry")

	ErrInvalidFlowConfig = errors.New("invalid unlock flow configuration")
)

// Messages shown through [Form.ShowMessage].
const (
	MessageIncorrectPassword = "Incorrect password. Please try again."
	MessageUnsupported       = "Your environment does not support the required cryptography (AES-256-GCM, PBKDF2-SHA256). Please use a supported platform."
)
