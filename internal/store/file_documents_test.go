// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupportedFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"lecture.pdf", true},
		{"REPORT.PDF", true},
		{"notes.Docx", true},
		{"photo.heic", true},
		{"slides.pptx", true},
		{"sheet.xls", true},
		{"readme.txt", true},
		{"image.jpeg", true},
		{"archive.tar.gz", false},
		{"script.sh", false},
		{"noextension", false},
		{"trailingdot.", false},
		{"pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSupportedFile(tt.name))
		})
	}
}

func writeFile(t *testing.T, dir, name string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o600))
}

func TestDocumentDirectory_ListFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", 10)
	writeFile(t, dir, "b.PNG", 2048)
	writeFile(t, dir, ".hidden.pdf", 1)
	writeFile(t, dir, "run.exe", 1)
	writeFile(t, dir, "plain", 1)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.pdf"), 0o700))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o700))
	writeFile(t, filepath.Join(dir, "sub"), "nested.pdf", 1)

	files, err := NewDocumentDirectory(dir, logger.Nop()).List(context.Background())
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "a.pdf", files[0].Name)
	assert.Equal(t, int64(10), files[0].Size)
	assert.Equal(t, "b.PNG", files[1].Name)
	assert.Equal(t, int64(2048), files[1].Size)
}

func TestDocumentDirectory_ListCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	files, err := NewDocumentDirectory(dir, logger.Nop()).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.DirExists(t, dir)
}

func TestDocumentDirectory_NoDirConfigured(t *testing.T) {
	d := NewDocumentDirectory("  ", logger.Nop())

	_, err := d.List(context.Background())
	assert.ErrorIs(t, err, ErrNoDocumentDir)

	_, err = d.Path("a.pdf")
	assert.ErrorIs(t, err, ErrNoDocumentDir)

	_, err = d.Exists("a.pdf")
	assert.ErrorIs(t, err, ErrNoDocumentDir)
}

func TestDocumentDirectory_PathRejectsEscapes(t *testing.T) {
	d := NewDocumentDirectory(t.TempDir(), logger.Nop())

	for _, name := range []string{"", ".", "..", "../x.pdf", "a/b.pdf", `a\b.pdf`} {
		_, err := d.Path(name)
		assert.ErrorIs(t, err, ErrInvalidFileName, name)
	}
}

func TestDocumentDirectory_ExistsAndRemove(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", 1)
	d := NewDocumentDirectory(dir, logger.Nop())

	ok, err := d.Exists("a.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, d.Remove("a.pdf"))
	ok, err = d.Exists("a.pdf")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, d.Remove("a.pdf"))
}

func TestDocumentDirectory_Path(t *testing.T) {
	dir := t.TempDir()
	p, err := NewDocumentDirectory(dir, logger.Nop()).Path("x.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x.pdf"), p)
}
