// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the archivectl commands: a scriptable front end
// over the same client services the terminal UI uses.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-doc-archive/internal/adapter"
	"github.com/MKhiriev/go-doc-archive/internal/config"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/platform"
	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// Bootstrap builds the services for one command run. The returned function
// releases what Bootstrap opened.
type Bootstrap func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, func() error, error)

// DefaultBootstrap opens the local storages and the server adapter
// described by cfg.
func DefaultBootstrap(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, func() error, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create local storage: %w", err)
	}

	opener := platform.New(cfg.App, log)
	services := service.NewClientServices(storages, serverAdapter, opener, cfg.App.NotificationsLimit, log)
	return services, storages.Close, nil
}

// app is the state shared by all commands of one invocation.
type app struct {
	overrides config.StructuredConfig
	format    string
	bootstrap Bootstrap
	buildInfo models.AppBuildInfo

	services *service.ClientServices
	logger   *logger.Logger
	closeFn  func() error
}

// Execute runs archivectl with args and releases everything the command
// opened, whether it succeeded or not.
func Execute(ctx context.Context, args []string, out, errOut io.Writer, bootstrap Bootstrap, buildInfo models.AppBuildInfo) error {
	a := &app{bootstrap: bootstrap, buildInfo: buildInfo}

	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if closeErr := a.close(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "archivectl",
		Short:         "Browse, download and rate shared documents",
		Long:          "archivectl works with the private document archive and the documents shared with you, without the terminal UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsServices(cmd) {
				return nil
			}
			return a.open(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.overrides.Adapter.HTTPAddress, "address", "a", "", "Documents API base URL")
	flags.DurationVar(&a.overrides.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flags.StringVarP(&a.overrides.Storage.DB.DSN, "dsn", "d", "", "Local database file path")
	flags.StringVar(&a.overrides.Storage.DB.Driver, "db-driver", "", "SQLite driver: sqlite3 or sqlite")
	flags.StringVarP(&a.overrides.Storage.Files.DocumentDir, "document-dir", "f", "", "Private document directory")
	flags.StringVar(&a.overrides.App.Opener, "opener", "", "Open strategy: auto, viewer or share")
	flags.StringVar(&a.overrides.App.LogFile, "log-file", "", "Log file path")
	flags.StringVarP(&a.overrides.JSONFilePath, "config", "c", "", "JSON config file path")
	flags.StringVarP(&a.format, "format", "o", formatText, "Output format: text or json")

	root.AddCommand(
		newArchiveCommand(a),
		newHistoryCommand(a),
		newNotificationsCommand(a),
		newLoginCommand(a),
		newLogoutCommand(a),
		newVersionCommand(a),
	)
	return root
}

// needsServices is false for commands that work without config or storage.
func needsServices(cmd *cobra.Command) bool {
	if cmd.Annotations["offline"] == "true" || cmd.Name() == "help" {
		return false
	}
	return !cmd.HasParent() || cmd.Parent().Name() != "completion"
}

func (a *app) open(ctx context.Context) error {
	if a.format != formatText && a.format != formatJSON {
		return fmt.Errorf("unknown output format %q", a.format)
	}

	cfg, err := config.GetClientConfigWith(&a.overrides)
	if err != nil {
		return err
	}

	a.logger = logger.NewClientLogger("archivectl", cfg.App.LogFile)
	services, closeFn, err := a.bootstrap(ctx, cfg, a.logger)
	if err != nil {
		return err
	}
	a.services = services
	a.closeFn = closeFn
	return nil
}

func (a *app) close() error {
	if a.closeFn == nil {
		return nil
	}
	err := a.closeFn()
	a.closeFn = nil
	return err
}

// session returns the saved session for commands that talk to the server.
func (a *app) session(ctx context.Context) (models.Session, error) {
	session, err := a.services.AuthService.Restore(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w (run archivectl login)", err)
	}
	return session, nil
}

// print writes v as indented JSON or hands w to text for the text format.
func (a *app) print(w io.Writer, v any, text func(io.Writer) error) error {
	if a.format == formatJSON {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	return text(w)
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Annotations: map[string]string{"offline": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "version %s, built %s, commit %s\n",
				orNA(a.buildInfo.BuildVersion()), orNA(a.buildInfo.BuildDate()), orNA(a.buildInfo.BuildCommit()))
			return err
		},
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
