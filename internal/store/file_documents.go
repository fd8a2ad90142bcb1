// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/models"
)

// supportedExtensions is the allow-list of document types shown in the
// archive. Keys are lower case, without the dot.
var supportedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
	"txt":  {},
	"ppt":  {},
	"pptx": {},
	"xls":  {},
	"xlsx": {},
}

// IsSupportedFile reports whether the extension after the last dot of name
// is in the allow-list, ignoring case. Names without a dot are unsupported.
func IsSupportedFile(name string) bool {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return false
	}
	_, ok := supportedExtensions[strings.ToLower(name[i+1:])]
	return ok
}

type documentDirectory struct {
	dir    string
	logger *logger.Logger
}

// NewDocumentDirectory returns a [DocumentDirectory] rooted at dir. An empty
// dir is accepted; every operation then fails with [ErrNoDocumentDir].
func NewDocumentDirectory(dir string, logger *logger.Logger) DocumentDirectory {
	return &documentDirectory{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the directory, creating it on first use.
func (d *documentDirectory) Dir() (string, error) {
	if strings.TrimSpace(d.dir) == "" {
		return "", ErrNoDocumentDir
	}
	if err := os.MkdirAll(d.dir, 0o700); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoDocumentDir, err)
	}
	return d.dir, nil
}

func (d *documentDirectory) List(ctx context.Context) ([]models.LocalFile, error) {
	log := logger.FromContext(ctx)

	dir, err := d.Dir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Err(err).Str("func", "documentDirectory.List").Str("dir", dir).Msg("failed to read document directory")
		return nil, fmt.Errorf("error reading document directory: %w", err)
	}

	files := make([]models.LocalFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !IsSupportedFile(name) {
			continue
		}

		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.IsDir() {
			// vanished between listing and stat, or a directory named like a document
			continue
		}

		files = append(files, models.LocalFile{
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

func (d *documentDirectory) Exists(name string) (bool, error) {
	path, err := d.Path(name)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking %s: %w", name, err)
	}
	return true, nil
}

// Path rejects names that are empty or would leave the directory.
func (d *documentDirectory) Path(name string) (string, error) {
	dir, err := d.Dir()
	if err != nil {
		return "", err
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return filepath.Join(dir, name), nil
}

// Remove deletes the file; a missing file is not an error.
func (d *documentDirectory) Remove(name string) error {
	path, err := d.Path(name)
	if err != nil {
		return err
	}
	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		d.logger.Err(err).Str("func", "documentDirectory.Remove").Str("path", path).Msg("failed to remove document")
		return fmt.Errorf("error removing %s: %w", name, err)
	}
	return nil
}
