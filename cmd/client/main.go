// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-doc-archive/internal/adapter"
	"github.com/MKhiriev/go-doc-archive/internal/client"
	"github.com/MKhiriev/go-doc-archive/internal/config"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/platform"
	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/internal/tui"
	"github.com/MKhiriev/go-doc-archive/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("doc-archive-client", cfg.App.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	opener := platform.New(cfg.App, log)
	services := service.NewClientServices(storages, serverAdapter, opener, cfg.App.NotificationsLimit, log)
	ui := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Err(err).Msg("client run error")
		storages.Close()
		os.Exit(1)
	}
}
