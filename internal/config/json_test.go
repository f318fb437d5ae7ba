package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"page": {
			"source": "locked.html",
			"request_timeout": "30s",
			"output_path": "out.html"
		},
		"storage": {
			"mode": "persistent",
			"db": { "dsn": "/tmp/keys.db" }
		},
		"sealer": {
			"input": "doc.html",
			"output": "locked.html",
			"password": "pw",
			"salt": "c2FsdA==",
			"iterations": 2000,
			"form_id": "form",
			"password_input_id": "pass",
			"content_id": "content",
			"storage_mode": "session",
			"minify": true,
			"markdown": false,
			"title": "Hello"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "locked.html", cfg.Page.Source)
	assert.Equal(t, 30*time.Second, cfg.Page.RequestTimeout)
	assert.Equal(t, "out.html", cfg.Page.OutputPath)

	assert.Equal(t, "persistent", cfg.Storage.Mode)
	assert.Equal(t, "/tmp/keys.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "doc.html", cfg.Sealer.Input)
	assert.Equal(t, "pw", cfg.Sealer.Password)
	assert.Equal(t, 2000, cfg.Sealer.Iterations)
	assert.Equal(t, "form", cfg.Sealer.FormID)
	assert.Equal(t, "session", cfg.Sealer.StorageMode)
	assert.True(t, cfg.Sealer.Minify)
	assert.Equal(t, "Hello", cfg.Sealer.Title)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"page":{"request_timeout":1000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Page.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"page":`), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"page":{"request_timeout":"eventually"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
