package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-page-lock/internal/config"
	"github.com/MKhiriev/go-page-lock/internal/crypto"
	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/internal/sealer"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("page-lock-sealer")
	cfg, err := config.GetSealerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	document, err := os.ReadFile(cfg.Input)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Input).Msg("read document")
	}

	var template []byte
	if cfg.Template != "" {
		if template, err = os.ReadFile(cfg.Template); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Template).Msg("read template")
		}
	}

	s := sealer.New(crypto.NewKeyDeriver(), crypto.NewCipherService(), log)
	page, err := s.Seal(document, sealer.Options{
		Template:        template,
		Title:           cfg.Title,
		Password:        cfg.Password,
		Salt:            cfg.Salt,
		Iterations:      cfg.Iterations,
		FormID:          cfg.FormID,
		PasswordInputID: cfg.PasswordInputID,
		ContentID:       cfg.ContentID,
		StorageMode:     cfg.StorageMode,
		Minify:          cfg.Minify,
		Markdown:        cfg.Markdown,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seal document")
	}

	if err = os.WriteFile(cfg.Output, page, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Output).Msg("write sealed page")
	}

	log.Info().Str("output", cfg.Output).Int("bytes", len(page)).Msg("sealed page written")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
