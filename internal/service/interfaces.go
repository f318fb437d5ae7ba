package service

import (
	"context"

	"github.com/MKhiriev/go-page-lock/internal/store"
	"github.com/MKhiriev/go-page-lock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Form is the password-bearing surface of a locked page.
type Form interface {
	// Password returns the text currently entered by the user.
	Password() string
	// ClearPassword empties the password field.
	ClearPassword()
	// ShowMessage displays msg in the page's status area.
	ShowMessage(msg string)
}

// Presenter replaces the locked page with the decrypted document.
type Presenter interface {
	// Render shows plaintext as the full document. It is called at most once
	// per page.
	Render(plaintext []byte)
}

// KeyCache persists derived keys so a returning user is not prompted again.
//
// All operations are best effort: storage failures are logged and swallowed.
// Load never deletes anything; a corrupt entry is reported so the caller can
// clear it once it knows no newer key was stored under the same id.
type KeyCache interface {
	// CacheID returns the storage key for params. Changing the salt or the
	// iteration count yields a different id.
	CacheID(params models.DerivationParameters) string

	// Load returns the key stored under id, [ErrCacheMiss] when there is
	// none, or [ErrCorruptCacheEntry] when the stored value is unusable.
	Load(ctx context.Context, backend store.Backend, id string) (models.DerivedKey, error)

	// Store saves key under id.
	Store(ctx context.Context, backend store.Backend, id string, key models.DerivedKey)

	// Clear removes the entry stored under id.
	Clear(ctx context.Context, backend store.Backend, id string)
}

// Unlocker drives a locked page to its unlocked state.
type Unlocker interface {
	// AttemptOnLoad tries the cached key once. Later calls return the
	// current state without side effects.
	AttemptOnLoad(ctx context.Context) State

	// AttemptOnSubmit tries the password currently held by the [Form].
	// A submit made while another submit is still running is ignored.
	AttemptOnSubmit(ctx context.Context) State

	// State returns the current state.
	State() State
}
