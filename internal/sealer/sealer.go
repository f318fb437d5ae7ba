// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sealer

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-page-lock/internal/crypto"
	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/models"
)

// SaltSize is the length of salts produced by [RandomSalt].
const SaltSize = 32

const defaultTitle = "Protected page"

// Options control how a document is sealed. Zero values select defaults.
type Options struct {
	// Template is the host page. The built-in page is used when empty.
	Template []byte
	// Title names the built-in page. Markdown front matter may supply it.
	Title string

	// Password is used only to derive the key. It is never embedded.
	Password string
	// Salt is reused across builds when set, a fresh random salt is drawn
	// otherwise.
	Salt       []byte
	Iterations int

	FormID          string
	PasswordInputID string
	ContentID       string

	// StorageMode selects where the browser caches the derived key.
	StorageMode models.StorageMode

	// Minify minifies the embedded unlock script and any document rendered
	// from Markdown.
	Minify bool
	// Markdown renders the document from Markdown before encryption.
	Markdown bool
}

func (o Options) withDefaults() Options {
	if o.Iterations == 0 {
		o.Iterations = crypto.DefaultIterations
	}
	if o.FormID == "" {
		o.FormID = "password-form"
	}
	if o.PasswordInputID == "" {
		o.PasswordInputID = "password"
	}
	if o.ContentID == "" {
		o.ContentID = "encrypted-content"
	}
	if o.StorageMode == "" {
		o.StorageMode = models.StorageDisabled
	}
	return o
}

// Sealer encrypts documents into self-unlocking pages.
type Sealer struct {
	deriver crypto.KeyDeriver
	cipher  crypto.CipherService
	rand    io.Reader
	logger  *logger.Logger
}

// New returns a Sealer using the given primitives.
func New(deriver crypto.KeyDeriver, cipher crypto.CipherService, log *logger.Logger) *Sealer {
	return &Sealer{
		deriver: deriver,
		cipher:  cipher,
		rand:    rand.Reader,
		logger:  log,
	}
}

// RandomSalt returns a SaltSize-byte random salt suitable for PBKDF2.
func RandomSalt() ([]byte, error) {
	return randomSalt(rand.Reader)
}

func randomSalt(r io.Reader) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// Seal encrypts document under opts.Password and returns the host page with
// the unlock parameters and script embedded.
func (s *Sealer) Seal(document []byte, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	if opts.Password == "" {
		return nil, ErrMissingPassword
	}
	if opts.Iterations < 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", opts.Iterations)
	}
	if !opts.StorageMode.Valid() {
		return nil, fmt.Errorf("unknown storage mode %q", opts.StorageMode)
	}

	if opts.Markdown {
		doc, title, err := renderMarkdown(document)
		if err != nil {
			return nil, err
		}
		if opts.Minify {
			if doc, err = minifyHTML(doc); err != nil {
				return nil, err
			}
		}
		document = doc
		if opts.Title == "" {
			opts.Title = title
		}
	}

	host, err := s.hostPage(opts)
	if err != nil {
		return nil, err
	}

	salt := opts.Salt
	if len(salt) == 0 {
		if salt, err = randomSalt(s.rand); err != nil {
			return nil, err
		}
	} else {
		salt = bytes.Clone(salt)
	}

	params := models.DerivationParameters{Salt: salt, Iterations: opts.Iterations}
	key := s.deriver.Derive(opts.Password, params)

	blob, err := s.cipher.Encrypt(key, document)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt document: %w", err)
	}

	block, err := paramsBlock(newPageParams(models.Envelope{
		Params:          params,
		EncryptedData:   blob,
		FormID:          opts.FormID,
		PasswordInputID: opts.PasswordInputID,
		ContentID:       opts.ContentID,
		StorageMode:     opts.StorageMode,
	}))
	if err != nil {
		return nil, err
	}

	script, err := unlockScript(opts.Minify)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("iterations", opts.Iterations).
		Str("storage", string(opts.StorageMode)).
		Int("document_bytes", len(document)).
		Msg("document sealed")

	return injectScripts(host, "\n"+block+"\n<script>\n"+string(script)+"\n</script>\n"), nil
}

// hostPage returns the page the scripts are embedded into, after checking
// it carries the elements the unlock script looks up.
func (s *Sealer) hostPage(opts Options) (string, error) {
	var host string
	if len(opts.Template) == 0 {
		title := opts.Title
		if title == "" {
			title = defaultTitle
		}

		var buf bytes.Buffer
		err := hostTemplate.Execute(&buf, struct {
			Title, FormID, PasswordInputID, ContentID string
		}{title, opts.FormID, opts.PasswordInputID, opts.ContentID})
		if err != nil {
			return "", fmt.Errorf("render host template: %w", err)
		}
		host = buf.String()
	} else {
		host = string(opts.Template)
	}

	for _, id := range []string{opts.FormID, opts.PasswordInputID, opts.ContentID} {
		if !strings.Contains(host, `id="`+id+`"`) {
			return "", fmt.Errorf("%w: id %q", ErrTemplateElement, id)
		}
	}

	return host, nil
}

// injectScripts places scripts before the last </body>, else before the
// last </html>, else at the end of page.
func injectScripts(page, scripts string) []byte {
	for _, closing := range []string{"</body>", "</html>"} {
		if idx := strings.LastIndex(page, closing); idx != -1 {
			return []byte(page[:idx] + scripts + page[idx:])
		}
	}
	return []byte(page + scripts)
}
