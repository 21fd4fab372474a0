package main

import (
	"fmt"

	"github.com/MKhiriev/go-sky-client/internal/adapter"
	"github.com/MKhiriev/go-sky-client/internal/client"
	"github.com/MKhiriev/go-sky-client/internal/config"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/internal/service"
	"github.com/MKhiriev/go-sky-client/internal/session"
	"github.com/MKhiriev/go-sky-client/internal/store"
	"github.com/MKhiriev/go-sky-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-sky-client")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serviceAdapter, err := adapter.NewXRPCAdapter(cfg.Service, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create service adapter")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	// without a passphrase sessions are not persisted and every start
	// requires an interactive login
	var vault *session.Vault
	if cfg.Vault.Passphrase != "" {
		vault = session.NewVault(storages.SessionBlobs, cfg.Vault.Passphrase)
	}

	sessionManager := session.NewManager(serviceAdapter, vault, log)
	services := service.NewServices(serviceAdapter, sessionManager, storages, cfg, log)

	ui, err := tui.New(sessionManager, services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(cfg, sessionManager, services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
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
