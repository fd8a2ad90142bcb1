// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported values of [DB.Driver].
const (
	// DriverMattnSQLite selects github.com/mattn/go-sqlite3 (cgo).
	DriverMattnSQLite = "sqlite3"
	// DriverModernSQLite selects modernc.org/sqlite (pure Go).
	DriverModernSQLite = "sqlite"
)

// Supported values of [App.Opener].
const (
	OpenerAuto   = "auto"
	OpenerViewer = "viewer"
	OpenerShare  = "share"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation-level settings: how documents are opened,
	// where logs go, notification retention.
	App App `envPrefix:"APP_"`

	// Storage holds the local key-value database and the private document
	// directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the documents API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Opener selects the open strategy: "viewer" hands a file:// URI to
	// ViewerCommand, "share" hands the raw path to ShareCommand, "auto" picks
	// viewer on Linux and share elsewhere.
	// Env: APP_OPENER
	Opener string `env:"OPENER"`

	// ViewerCommand is the command template used by the viewer strategy.
	// The tokens {uri}, {path} and {mime} are substituted; without {uri} or
	// {path} the URI is appended. The MIME type reaches the viewer only
	// through {mime}: the default [DefaultViewerCommand] lets the desktop
	// resolve the handler from the file extension.
	// Env: APP_VIEWER_COMMAND
	ViewerCommand string `env:"VIEWER_COMMAND"`

	// ShareCommand is the executable used by the share strategy.
	// Env: APP_SHARE_COMMAND
	ShareCommand string `env:"SHARE_COMMAND"`

	// NotificationsLimit caps the stored notification list. Zero keeps the
	// list unbounded.
	// Env: APP_NOTIFICATIONS_LIMIT
	NotificationsLimit int `env:"NOTIFICATIONS_LIMIT"`

	// LogFile is where the client writes its JSON log lines.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all local storage backends.
type Storage struct {
	// DB holds the local key-value database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the private document directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "/home/me/.archive/state.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is the database/sql driver name, "sqlite3" or "sqlite".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Files holds the private document directory settings.
type Files struct {
	// DocumentDir is the directory downloaded documents are saved to and
	// local documents are listed from.
	// Env: STORAGE_FILES_DOCUMENT_DIR
	DocumentDir string `env:"DOCUMENT_DIR"`
}

// Adapter holds configuration for the documents API.
type Adapter struct {
	// HTTPAddress is the base URL of the documents API
	// (e.g. "https://bk-sharing-app.fly.dev").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request. Zero leaves requests
	// without a client-side deadline.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DefaultViewerCommand is the viewer template used when none is configured.
const DefaultViewerCommand = "xdg-open {uri}"

// defaults returns the built-in base layer of the configuration.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Opener:        OpenerAuto,
			ViewerCommand: DefaultViewerCommand,
			ShareCommand:  defaultShareCommand(),
		},
		Storage: Storage{
			DB: DB{Driver: DriverMattnSQLite},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// defaults, environment variables, the given command-line arguments and the
// optional JSON file, in that order.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
