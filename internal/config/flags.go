package config

import (
	"time"

	"github.com/spf13/pflag"
)

// ParseViewerFlags parses the viewer command line.
//
// Flags:
//
//	-s/--source   sealed page path or http(s) URL (or first positional arg)
//	--timeout     remote page request timeout (e.g. "10s")
//	-o/--output   write the unlocked document to this file
//	--storage     key cache mode: persistent, session, disabled
//	-d/--dsn      SQLite file of the persistent key cache
//	-c/--config   json file path with configs
func ParseViewerFlags(args []string) (*StructuredConfig, error) {
	var (
		source         string
		requestTimeout time.Duration
		outputPath     string
		storageMode    string
		dsn            string
		jsonConfigPath string
	)

	fs := pflag.NewFlagSet("page-lock-viewer", pflag.ContinueOnError)
	fs.StringVarP(&source, "source", "s", "", "Sealed page path or URL")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Remote page request timeout (e.g., 10s)")
	fs.StringVarP(&outputPath, "output", "o", "", "Write the unlocked document to this file")
	fs.StringVar(&storageMode, "storage", "", "Key cache mode: persistent, session, disabled")
	fs.StringVarP(&dsn, "dsn", "d", "", "SQLite file of the persistent key cache")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if source == "" && fs.NArg() > 0 {
		source = fs.Arg(0)
	}

	return &StructuredConfig{
		Page: Page{
			Source:         source,
			RequestTimeout: requestTimeout,
			OutputPath:     outputPath,
		},
		Storage: Storage{
			Mode: storageMode,
			DB:   DB{DSN: dsn},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// ParseSealerFlags parses the sealer command line.
//
// Flags:
//
//	-i/--input              document to seal
//	-o/--output             sealed page destination
//	-t/--template           host page template
//	-p/--password           encryption password (prefer SEALER_PASSWORD)
//	--salt                  base64 salt reused across builds
//	-n/--iterations         PBKDF2 iterations
//	--form-id               id of the password form
//	--password-input-id     id of the password input
//	--content-id            id of the status element
//	--storage               key cache mode embedded into the page
//	--minify                minify the embedded script
//	--markdown              render the input from Markdown
//	--title                 page title
//	-c/--config             json file path with configs
func ParseSealerFlags(args []string) (*StructuredConfig, error) {
	var s Sealer
	var jsonConfigPath string

	fs := pflag.NewFlagSet("page-lock-sealer", pflag.ContinueOnError)
	fs.StringVarP(&s.Input, "input", "i", "", "Document to seal")
	fs.StringVarP(&s.Output, "output", "o", "", "Sealed page destination")
	fs.StringVarP(&s.Template, "template", "t", "", "Host page template")
	fs.StringVarP(&s.Password, "password", "p", "", "Encryption password")
	fs.StringVar(&s.Salt, "salt", "", "Base64 salt reused across builds")
	fs.IntVarP(&s.Iterations, "iterations", "n", 0, "PBKDF2 iterations")
	fs.StringVar(&s.FormID, "form-id", "", "Password form element id")
	fs.StringVar(&s.PasswordInputID, "password-input-id", "", "Password input element id")
	fs.StringVar(&s.ContentID, "content-id", "", "Status element id")
	fs.StringVar(&s.StorageMode, "storage", "", "Key cache mode: persistent, session, disabled")
	fs.BoolVar(&s.Minify, "minify", false, "Minify the embedded script")
	fs.BoolVar(&s.Markdown, "markdown", false, "Render the input from Markdown")
	fs.StringVar(&s.Title, "title", "", "Page title")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Sealer:       s,
		JSONFilePath: jsonConfigPath,
	}, nil
}
