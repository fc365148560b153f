package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndtruong/vango-client/internal/config"
	"github.com/ndtruong/vango-client/internal/gateway"
	"github.com/ndtruong/vango-client/internal/logger"
	"github.com/ndtruong/vango-client/internal/service"
	"github.com/ndtruong/vango-client/internal/store"
	"github.com/ndtruong/vango-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("vango-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(cfg.App.LogRole)

	credentials, err := store.NewSQLiteStore(cfg.Storage.CredentialDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("create credential store")
	}

	navigator := tui.NewNavigator()

	gw, err := gateway.New(gateway.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.RequestTimeout,
	}, credentials, navigator, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gateway")
	}

	services := service.NewServices(gw, credentials, log)

	ui := tui.New(services, navigator, log)
	if err = ui.Run(context.Background()); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
		log.Fatal().Err(err).Msg("client run error")
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
