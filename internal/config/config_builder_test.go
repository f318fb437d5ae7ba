package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func staticFlags(cfg *StructuredConfig) flagParser {
	return func([]string) (*StructuredConfig, error) { return cfg, nil }
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LastSourceWins verifies that later non-zero fields override
// earlier ones while zero fields keep earlier values.
func TestBuild_LastSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Page: Page{Source: "env.html", OutputPath: "env-out.html"}},
		&StructuredConfig{Page: Page{Source: "flag.html"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.html", cfg.Page.Source)
	assert.Equal(t, "env-out.html", cfg.Page.OutputPath)
}

func TestBuild_ValidatesMergedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Sealer: Sealer{Iterations: -1}})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSealerConfigs)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_ParserError(t *testing.T) {
	b := newConfigBuilder().withFlags(func([]string) (*StructuredConfig, error) {
		return nil, assert.AnError
	}, nil)

	assert.ErrorIs(t, b.err, assert.AnError)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withFlags(staticFlags(&StructuredConfig{}), nil).withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"page": map[string]any{"source": "from-json.html"},
	})

	cfg, err := newConfigBuilder().
		withFlags(staticFlags(&StructuredConfig{
			Page:         Page{Source: "from-flags.html"},
			JSONFilePath: path,
		}), nil).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-json.html", cfg.Page.Source)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder().
		withFlags(staticFlags(&StructuredConfig{JSONFilePath: "/does/not/exist.json"}), nil).
		withJSON()

	require.Error(t, b.err)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestGetViewerConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetViewerConfig([]string{"locked.html"})
	require.NoError(t, err)

	assert.Equal(t, "locked.html", cfg.Page.Source)
	assert.Equal(t, defaultRequestTimeout, cfg.Page.RequestTimeout)
	assert.Empty(t, cfg.Storage.Mode)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
}

func TestGetViewerConfig_EnvAndFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"PAGE_SOURCE":          "env.html",
		"PAGE_REQUEST_TIMEOUT": "3s",
		"STORAGE_MODE":         "persistent",
	})

	cfg, err := GetViewerConfig([]string{"--storage", "session", "-d", "k.db"})
	require.NoError(t, err)

	assert.Equal(t, "env.html", cfg.Page.Source)
	assert.Equal(t, 3*time.Second, cfg.Page.RequestTimeout)
	assert.Equal(t, "session", string(cfg.Storage.Mode))
	assert.Equal(t, "k.db", cfg.Storage.DB.DSN)
}

func TestGetViewerConfig_MissingSource(t *testing.T) {
	clearEnvVars(t)

	_, err := GetViewerConfig(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPageConfigs)
}

func TestGetViewerConfig_UnknownStorageMode(t *testing.T) {
	clearEnvVars(t)

	_, err := GetViewerConfig([]string{"--storage", "cookie", "page.html"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetSealerConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetSealerConfig([]string{"-i", "doc.html", "-o", "out.html", "-p", "pw"})
	require.NoError(t, err)

	assert.Equal(t, DefaultIterations, cfg.Iterations)
	assert.Equal(t, DefaultFormID, cfg.FormID)
	assert.Equal(t, DefaultPasswordInputID, cfg.PasswordInputID)
	assert.Equal(t, DefaultContentID, cfg.ContentID)
	assert.Equal(t, "disabled", string(cfg.StorageMode))
	assert.Nil(t, cfg.Salt)
}

func TestGetSealerConfig_PasswordFromEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SEALER_PASSWORD": "from-env",
		"SEALER_SALT":     "c2FsdA==",
	})

	cfg, err := GetSealerConfig([]string{"-i", "a", "-o", "b", "--storage", "persistent"})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Password)
	assert.Equal(t, []byte("salt"), cfg.Salt)
	assert.Equal(t, "persistent", string(cfg.StorageMode))
}

func TestGetSealerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing password", args: []string{"-i", "a", "-o", "b"}},
		{name: "missing input", args: []string{"-o", "b", "-p", "pw"}},
		{name: "negative iterations", args: []string{"-i", "a", "-o", "b", "-p", "pw", "-n", "-5"}},
		{name: "bad salt", args: []string{"-i", "a", "-o", "b", "-p", "pw", "--salt", "%%%"}},
		{name: "unknown storage", args: []string{"-i", "a", "-o", "b", "-p", "pw", "--storage", "cookie"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)

			_, err := GetSealerConfig(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSealerConfigs)
		})
	}
}
