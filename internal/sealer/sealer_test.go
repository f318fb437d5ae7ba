package sealer

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/MKhiriev/go-page-lock/internal/crypto"
	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/internal/mock"
	"github.com/MKhiriev/go-page-lock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testIterations = 1000

func newTestSealer() *Sealer {
	return New(crypto.NewKeyDeriver(), crypto.NewCipherService(), logger.Nop())
}

// openPage decrypts a sealed page the way the viewer does.
func openPage(t *testing.T, page []byte, password string) []byte {
	t.Helper()
	env, err := ParsePage(page)
	require.NoError(t, err)

	cipher := crypto.NewCipherService()
	handle, err := cipher.ImportKey(crypto.NewKeyDeriver().Derive(password, env.Params))
	require.NoError(t, err)

	plaintext, err := cipher.Decrypt(handle, env.EncryptedData)
	require.NoError(t, err)
	return plaintext
}

func TestSeal_RoundTrip(t *testing.T) {
	doc := []byte("<html><body><p>top secret</p></body></html>")

	page, err := newTestSealer().Seal(doc, Options{
		Password:    "hunter2",
		Iterations:  testIterations,
		StorageMode: models.StorageSession,
	})
	require.NoError(t, err)

	assert.NotContains(t, string(page), "top secret")
	assert.NotContains(t, string(page), "hunter2")
	assert.Equal(t, doc, openPage(t, page, "hunter2"))

	env, err := ParsePage(page)
	require.NoError(t, err)
	assert.Equal(t, testIterations, env.Params.Iterations)
	assert.Len(t, env.Params.Salt, SaltSize)
	assert.Equal(t, models.StorageSession, env.StorageMode)
	assert.Equal(t, "password-form", env.FormID)
	assert.Equal(t, "password", env.PasswordInputID)
	assert.Equal(t, "encrypted-content", env.ContentID)
}

func TestSeal_WrongPasswordFails(t *testing.T) {
	page, err := newTestSealer().Seal([]byte("doc"), Options{Password: "right", Iterations: testIterations})
	require.NoError(t, err)

	env, err := ParsePage(page)
	require.NoError(t, err)

	cipher := crypto.NewCipherService()
	handle, err := cipher.ImportKey(crypto.NewKeyDeriver().Derive("wrong", env.Params))
	require.NoError(t, err)

	_, err = cipher.Decrypt(handle, env.EncryptedData)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestSeal_Defaults(t *testing.T) {
	opts := Options{}.withDefaults()

	assert.Equal(t, crypto.DefaultIterations, opts.Iterations)
	assert.Equal(t, models.StorageDisabled, opts.StorageMode)
	assert.Equal(t, "password-form", opts.FormID)
}

func TestSeal_FixedSaltIsReused(t *testing.T) {
	salt := []byte("a fixed salt shared across pages")
	s := newTestSealer()

	first, err := s.Seal([]byte("one"), Options{Password: "pw", Salt: salt, Iterations: testIterations})
	require.NoError(t, err)
	second, err := s.Seal([]byte("two"), Options{Password: "pw", Salt: salt, Iterations: testIterations})
	require.NoError(t, err)

	env1, err := ParsePage(first)
	require.NoError(t, err)
	env2, err := ParsePage(second)
	require.NoError(t, err)

	assert.Equal(t, salt, env1.Params.Salt)
	assert.Equal(t, env1.Params.Salt, env2.Params.Salt)
	assert.NotEqual(t, env1.EncryptedData[:models.NonceSize], env2.EncryptedData[:models.NonceSize])
}

func TestSeal_RandomSaltPerPage(t *testing.T) {
	s := newTestSealer()

	first, err := s.Seal([]byte("doc"), Options{Password: "pw", Iterations: testIterations})
	require.NoError(t, err)
	second, err := s.Seal([]byte("doc"), Options{Password: "pw", Iterations: testIterations})
	require.NoError(t, err)

	env1, _ := ParsePage(first)
	env2, _ := ParsePage(second)
	assert.NotEqual(t, env1.Params.Salt, env2.Params.Salt)
}

func TestSeal_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{name: "missing password", opts: Options{}, wantErr: ErrMissingPassword},
		{
			name:    "template missing form",
			opts:    Options{Password: "pw", Template: []byte(`<input id="password"><div id="encrypted-content"></div>`)},
			wantErr: ErrTemplateElement,
		},
		{
			name: "custom ids not in template",
			opts: Options{
				Password: "pw",
				FormID:   "login",
				Template: []byte(`<form id="password-form"><input id="password"></form><div id="encrypted-content"></div>`),
			},
			wantErr: ErrTemplateElement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestSealer().Seal([]byte("doc"), tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSeal_RejectsUnknownStorageMode(t *testing.T) {
	_, err := newTestSealer().Seal([]byte("doc"), Options{Password: "pw", StorageMode: "cookie"})
	require.Error(t, err)
}

func TestSeal_CustomTemplate(t *testing.T) {
	tmpl := `<html><body><form id="f"><input id="p"></form><div id="c"></div></body></html>`

	page, err := newTestSealer().Seal([]byte("doc"), Options{
		Password:        "pw",
		Iterations:      testIterations,
		Template:        []byte(tmpl),
		FormID:          "f",
		PasswordInputID: "p",
		ContentID:       "c",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(page), `<html><body><form id="f">`))
	assert.True(t, strings.HasSuffix(string(page), "</body></html>"))

	env, err := ParsePage(page)
	require.NoError(t, err)
	assert.Equal(t, "f", env.FormID)
}

func TestSeal_EncryptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cipher := mock.NewMockCipherService(ctrl)
	cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	s := New(crypto.NewKeyDeriver(), cipher, logger.Nop())
	_, err := s.Seal([]byte("doc"), Options{Password: "pw", Iterations: testIterations})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encrypt document")
}

func TestSeal_SaltReadFailure(t *testing.T) {
	s := newTestSealer()
	s.rand = iotest.ErrReader(errors.New("no entropy"))

	_, err := s.Seal([]byte("doc"), Options{Password: "pw", Iterations: testIterations})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate salt")
}

func TestSeal_Markdown(t *testing.T) {
	src := []byte("---\ntitle: Quarterly Report\n---\n# Numbers\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")

	page, err := newTestSealer().Seal(src, Options{
		Password:   "pw",
		Iterations: testIterations,
		Markdown:   true,
	})
	require.NoError(t, err)

	assert.Contains(t, string(page), "<title>Quarterly Report</title>")

	doc := string(openPage(t, page, "pw"))
	assert.Contains(t, doc, "<title>Quarterly Report</title>")
	assert.Contains(t, doc, "Numbers</h1>")
	assert.Contains(t, doc, "<table>")
	assert.NotContains(t, doc, "title: Quarterly Report")
}

func TestSeal_ExplicitTitleWinsOverFrontMatter(t *testing.T) {
	src := []byte("---\ntitle: From Front Matter\n---\nbody\n")

	page, err := newTestSealer().Seal(src, Options{
		Password:   "pw",
		Iterations: testIterations,
		Markdown:   true,
		Title:      "Explicit",
	})
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>Explicit</title>")
}

func TestSeal_Minify(t *testing.T) {
	s := newTestSealer()
	opts := Options{Password: "pw", Iterations: testIterations, Salt: []byte("salt")}

	plain, err := s.Seal([]byte("doc"), opts)
	require.NoError(t, err)

	opts.Minify = true
	minified, err := s.Seal([]byte("doc"), opts)
	require.NoError(t, err)

	assert.Less(t, len(minified), len(plain))

	_, err = ParsePage(minified)
	assert.NoError(t, err)
}

func TestInjectScripts(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		expected string
	}{
		{name: "before body", page: "<html><body>x</body></html>", expected: "<html><body>x<s></body></html>"},
		{name: "last body wins", page: "</body>a</body>", expected: "</body>a<s></body>"},
		{name: "before html", page: "<html>x</html>", expected: "<html>x<s></html>"},
		{name: "appended", page: "<div>x</div>", expected: "<div>x</div><s>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(injectScripts(tt.page, "<s>")))
		})
	}
}

func TestRandomSalt(t *testing.T) {
	a, err := RandomSalt()
	require.NoError(t, err)
	b, err := RandomSalt()
	require.NoError(t, err)

	assert.Len(t, a, SaltSize)
	assert.NotEqual(t, a, b)
}
