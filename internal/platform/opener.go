// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-doc-archive/internal/config"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
)

//go:generate mockgen -source=opener.go -destination=../mock/opener_mock.go -package=mock

// Opener hands a local document to the operating system.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Runner starts an external command without waiting for it to exit.
type Runner interface {
	Start(ctx context.Context, name string, args ...string) error
}

// ErrEmptyCommand is returned when the configured command is blank.
var ErrEmptyCommand = errors.New("open command is not configured")

type execRunner struct {
	logger *logger.Logger
}

// Start launches the command detached from ctx: the viewer must outlive the
// request that opened it. ctx only gates the launch itself.
func (r execRunner) Start(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			r.logger.Warn().Err(err).Str("func", "execRunner.Start").Str("command", name).Msg("open command exited with error")
		}
	}()
	return nil
}

// New returns the Opener selected by cfg.Opener ("auto" resolves per OS).
func New(cfg config.ClientApp, log *logger.Logger) Opener {
	return NewWithRunner(cfg, execRunner{logger: log}, log)
}

// NewWithRunner is like [New] with an explicit command runner.
func NewWithRunner(cfg config.ClientApp, runner Runner, log *logger.Logger) Opener {
	if cfg.ResolvedOpener() == config.OpenerShare {
		return &shareOpener{command: cfg.ShareCommand, runner: runner, logger: log}
	}
	return &viewerOpener{command: cfg.ViewerCommand, runner: runner, logger: log}
}

// viewerOpener passes a file:// URI to the viewer command, and the MIME
// type too when the command template asks for {mime}.
type viewerOpener struct {
	command string
	runner  Runner
	logger  *logger.Logger
}

func (v *viewerOpener) Open(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve document path: %w", err)
	}

	target := target{path: abs, uri: FileURI(abs), mime: MimeType(abs)}
	name, args, err := buildCommand(v.command, target, target.uri)
	if err != nil {
		return err
	}

	v.logger.Debug().
		Str("func", "viewerOpener.Open").
		Str("uri", target.uri).
		Str("mime", target.mime).
		Msg("opening document in viewer")

	if err = v.runner.Start(ctx, name, args...); err != nil {
		return fmt.Errorf("start viewer %q: %w", name, err)
	}
	return nil
}

// shareOpener passes the raw path to the system open command.
type shareOpener struct {
	command string
	runner  Runner
	logger  *logger.Logger
}

func (s *shareOpener) Open(ctx context.Context, path string) error {
	target := target{path: path, uri: FileURI(path), mime: MimeType(path)}
	name, args, err := buildCommand(s.command, target, target.path)
	if err != nil {
		return err
	}

	s.logger.Debug().
		Str("func", "shareOpener.Open").
		Str("path", path).
		Msg("handing document to system open")

	if err = s.runner.Start(ctx, name, args...); err != nil {
		return fmt.Errorf("start %q: %w", name, err)
	}
	return nil
}

type target struct {
	path string
	uri  string
	mime string
}

// buildCommand splits command and substitutes placeholders. When no token
// references the document, fallback is appended.
func buildCommand(command string, t target, fallback string) (string, []string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil, ErrEmptyCommand
	}

	replacer := strings.NewReplacer("{uri}", t.uri, "{path}", t.path, "{mime}", t.mime)
	referenced := false
	args := make([]string, 0, len(fields))
	for _, f := range fields[1:] {
		if strings.Contains(f, "{uri}") || strings.Contains(f, "{path}") {
			referenced = true
		}
		args = append(args, replacer.Replace(f))
	}
	if !referenced {
		args = append(args, fallback)
	}

	return fields[0], args, nil
}

// FileURI converts an absolute path into a file:// URI.
func FileURI(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// windows drive letters
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
