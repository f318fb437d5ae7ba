// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-page-lock/internal/crypto"
	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/internal/store"
	"github.com/MKhiriev/go-page-lock/internal/utils"
	"github.com/MKhiriev/go-page-lock/models"
)

// UnlockFlowConfig carries the collaborators of an unlock flow. Capability
// and Logger are optional.
type UnlockFlowConfig struct {
	Envelope models.Envelope

	Deriver    crypto.KeyDeriver
	Cipher     crypto.CipherService
	Capability crypto.CapabilityChecker

	Cache   KeyCache
	Backend store.Backend

	Form      Form
	Presenter Presenter

	Logger *logger.Logger
}

func (c UnlockFlowConfig) validate() error {
	switch {
	case c.Deriver == nil, c.Cipher == nil:
		return fmt.Errorf("%w: crypto collaborators are required", ErrInvalidFlowConfig)
	case c.Cache == nil, c.Backend == nil:
		return fmt.Errorf("%w: key cache and backend are required", ErrInvalidFlowConfig)
	case c.Form == nil, c.Presenter == nil:
		return fmt.Errorf("%w: form and presenter are required", ErrInvalidFlowConfig)
	case c.Envelope.Params.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidFlowConfig)
	}
	return nil
}

type unlockFlow struct {
	params models.DerivationParameters
	blob   []byte

	deriver crypto.KeyDeriver
	cipher  crypto.CipherService
	cache   KeyCache
	backend store.Backend

	form      Form
	presenter Presenter

	cacheID string
	ids     *utils.UUIDGenerator
	logger  *logger.Logger

	// mu guards everything below and serialises all calls into form,
	// presenter and cache writes.
	mu            sync.Mutex
	state         State
	loadFired     bool
	manualPending bool
}

// NewUnlockFlow builds an [Unlocker] for one sealed page and checks platform
// capability. When the check fails the flow starts, and stays, in
// [Unsupported] and the advisory message is shown.
func NewUnlockFlow(cfg UnlockFlowConfig) (Unlocker, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	f := &unlockFlow{
		params:    cfg.Envelope.Params,
		blob:      cfg.Envelope.EncryptedData,
		deriver:   cfg.Deriver,
		cipher:    cfg.Cipher,
		cache:     cfg.Cache,
		backend:   cfg.Backend,
		form:      cfg.Form,
		presenter: cfg.Presenter,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
		state:     Idle,
	}
	f.cacheID = f.cache.CacheID(f.params)

	if cfg.Capability != nil {
		if err := cfg.Capability.Check(); err != nil {
			f.logger.Warn().Err(err).Msg("unlocking is not supported on this platform")
			f.state = Unsupported
			f.form.ShowMessage(MessageUnsupported)
		}
	}

	return f, nil
}

func (f *unlockFlow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *unlockFlow) AttemptOnLoad(ctx context.Context) State {
	f.mu.Lock()
	if f.loadFired || f.state.Terminal() {
		state := f.state
		f.mu.Unlock()
		return state
	}
	f.loadFired = true
	if !f.manualPending {
		f.state = AutoAttempt
	}
	f.mu.Unlock()

	attemptID := f.ids.Generate()
	log := f.logger.WithAttempt(attemptID, "load")
	ctx = log.WithContext(utils.WithAttemptID(ctx, attemptID))

	key, err := f.cache.Load(ctx, f.backend, f.cacheID)
	if err == nil {
		var plaintext []byte
		if plaintext, err = f.open(key); err == nil {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.state == Unlocked {
				return f.state
			}
			log.Info().Msg("unlocked from cached key")
			f.unlockLocked(plaintext)
			return f.state
		}
	}

	log.Debug().Err(err).Msg("auto unlock skipped")

	f.mu.Lock()
	defer f.mu.Unlock()
	// A concurrent manual unlock may have stored a fresh key under the same
	// id; it must survive.
	if !errors.Is(err, ErrCacheMiss) && f.state != Unlocked {
		f.cache.Clear(ctx, f.backend, f.cacheID)
	}
	f.settleAuto()
	return f.state
}

// settleAuto moves an automatic attempt that failed back to waiting. A
// manual attempt that started meanwhile keeps its state. f.mu must be held.
func (f *unlockFlow) settleAuto() {
	if f.state == AutoAttempt {
		f.state = WaitingForInput
	}
}

func (f *unlockFlow) AttemptOnSubmit(ctx context.Context) State {
	f.mu.Lock()
	if f.state.Terminal() || f.manualPending {
		state := f.state
		f.mu.Unlock()
		return state
	}
	f.manualPending = true
	f.state = ManualAttempt
	password := f.form.Password()
	f.form.ClearPassword()
	f.mu.Unlock()

	attemptID := f.ids.Generate()
	log := f.logger.WithAttempt(attemptID, "submit")
	ctx = log.WithContext(utils.WithAttemptID(ctx, attemptID))

	key, plaintext, err := f.tryPassword(ctx, password)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.manualPending = false

	if f.state == Unlocked {
		log.Debug().Msg("attempt resolved after unlock, ignoring")
		return f.state
	}

	if err != nil {
		log.Info().Err(err).Msg("manual unlock failed")
		f.form.ShowMessage(MessageIncorrectPassword)
		f.state = WaitingForInput
		return f.state
	}

	log.Info().Msg("unlocked with password")
	f.cache.Store(ctx, f.backend, f.cacheID, key)
	f.unlockLocked(plaintext)
	return f.state
}

// tryPassword derives a key from password and decrypts the blob with it.
// Cancellation is only observed before derivation starts.
func (f *unlockFlow) tryPassword(ctx context.Context, password string) (models.DerivedKey, []byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("attempt cancelled: %w", err)
	}

	key := f.deriver.Derive(password, f.params)

	plaintext, err := f.open(key)
	if err != nil {
		return nil, nil, err
	}
	return key, plaintext, nil
}

func (f *unlockFlow) open(key models.DerivedKey) ([]byte, error) {
	handle, err := f.cipher.ImportKey(key)
	if err != nil {
		return nil, fmt.Errorf("import key: %w", err)
	}

	plaintext, err := f.cipher.Decrypt(handle, f.blob)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

// unlockLocked renders plaintext and enters the terminal state. f.mu must
// be held and the state must not be Unlocked yet.
func (f *unlockFlow) unlockLocked(plaintext []byte) {
	f.state = Unlocked
	f.presenter.Render(plaintext)
}
