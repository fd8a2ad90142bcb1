// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"runtime"
	"time"
)

// ClientApp holds presentation-level settings derived from [App].
type ClientApp struct {
	Opener             string
	ViewerCommand      string
	ShareCommand       string
	NotificationsLimit int
	LogFile            string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the documents API base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	DSN    string
	Driver string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// DocumentDir is the private document directory. It may be empty; the
	// archive reports that at operation time instead of refusing to start.
	DocumentDir string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client config from defaults,
// environment, args (normally os.Args[1:]) and the optional JSON file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// GetClientConfigWith is like [GetClientConfig] but takes already parsed
// overrides instead of raw arguments. Front ends with their own flag parser
// (the cobra CLI) use it.
func GetClientConfigWith(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withConfig(overrides).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Opener:             cfg.App.Opener,
			ViewerCommand:      cfg.App.ViewerCommand,
			ShareCommand:       cfg.App.ShareCommand,
			NotificationsLimit: cfg.App.NotificationsLimit,
			LogFile:            cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:    cfg.Storage.DB.DSN,
				Driver: cfg.Storage.DB.Driver,
			},
			DocumentDir: cfg.Storage.Files.DocumentDir,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

// ResolvedOpener returns the concrete open strategy, resolving "auto" for
// the current operating system.
func (c ClientApp) ResolvedOpener() string {
	if c.Opener != OpenerAuto {
		return c.Opener
	}
	if runtime.GOOS == "linux" {
		return OpenerViewer
	}
	return OpenerShare
}

func defaultShareCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}
