package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	Page struct {
		Source         string   `json:"source"`
		RequestTimeout Duration `json:"request_timeout"`
		OutputPath     string   `json:"output_path"`
	} `json:"page,omitempty"`

	Storage struct {
		Mode string `json:"mode"`
		DB   struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sealer struct {
		Input           string `json:"input"`
		Output          string `json:"output"`
		Template        string `json:"template"`
		Password        string `json:"password"`
		Salt            string `json:"salt"`
		Iterations      int    `json:"iterations"`
		FormID          string `json:"form_id"`
		PasswordInputID string `json:"password_input_id"`
		ContentID       string `json:"content_id"`
		StorageMode     string `json:"storage_mode"`
		Minify          bool   `json:"minify"`
		Markdown        bool   `json:"markdown"`
		Title           string `json:"title"`
	} `json:"sealer,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Page: Page{
			Source:         jsonCfg.Page.Source,
			RequestTimeout: time.Duration(jsonCfg.Page.RequestTimeout),
			OutputPath:     jsonCfg.Page.OutputPath,
		},
		Storage: Storage{
			Mode: jsonCfg.Storage.Mode,
			DB:   DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Sealer: Sealer{
			Input:           jsonCfg.Sealer.Input,
			Output:          jsonCfg.Sealer.Output,
			Template:        jsonCfg.Sealer.Template,
			Password:        jsonCfg.Sealer.Password,
			Salt:            jsonCfg.Sealer.Salt,
			Iterations:      jsonCfg.Sealer.Iterations,
			FormID:          jsonCfg.Sealer.FormID,
			PasswordInputID: jsonCfg.Sealer.PasswordInputID,
			ContentID:       jsonCfg.Sealer.ContentID,
			StorageMode:     jsonCfg.Sealer.StorageMode,
			Minify:          jsonCfg.Sealer.Minify,
			Markdown:        jsonCfg.Sealer.Markdown,
			Title:           jsonCfg.Sealer.Title,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
