package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-page-lock/internal/adapter"
	"github.com/MKhiriev/go-page-lock/internal/client"
	"github.com/MKhiriev/go-page-lock/internal/config"
	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("page-lock-viewer")
	cfg, err := config.GetViewerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader, err := adapter.NewPageLoader(cfg.Page, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create page loader")
	}

	ui, err := tui.New(loader.Source(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(cfg, loader, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init viewer app error")
	}

	err = app.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
	case errors.Is(err, tui.ErrUnsupported):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		log.Fatal().Err(err).Msg("viewer run error")
	}
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
