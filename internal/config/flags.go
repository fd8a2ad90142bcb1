// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client flags from args into a fresh config layer.
//
// Flags:
//
//	-a documents API base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d local database file path
//	-db-driver sqlite3 | sqlite
//	-f private document directory
//	-opener auto | viewer | share
//	-viewer-command executable used by the viewer strategy
//	-share-command executable used by the share strategy
//	-notifications-limit max stored notifications (0 = unbounded)
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		adapterAddress     string
		requestTimeout     time.Duration
		databaseDSN        string
		databaseDriver     string
		documentDir        string
		opener             string
		viewerCommand      string
		shareCommand       string
		notificationsLimit int
		logFile            string
		jsonConfigPath     string
	)

	fs := flag.NewFlagSet("archive-client", flag.ContinueOnError)
	fs.StringVar(&adapterAddress, "a", "", "Documents API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local database file path")
	fs.StringVar(&databaseDriver, "db-driver", "", "SQLite driver: sqlite3 or sqlite")
	fs.StringVar(&documentDir, "f", "", "Private document directory")
	fs.StringVar(&opener, "opener", "", "Open strategy: auto, viewer or share")
	fs.StringVar(&viewerCommand, "viewer-command", "", "Viewer executable")
	fs.StringVar(&shareCommand, "share-command", "", "Share/open executable")
	fs.IntVar(&notificationsLimit, "notifications-limit", 0, "Max stored notifications, 0 = unbounded")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Opener:             opener,
			ViewerCommand:      viewerCommand,
			ShareCommand:       shareCommand,
			NotificationsLimit: notificationsLimit,
			LogFile:            logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
			Files: Files{
				DocumentDir: documentDir,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
