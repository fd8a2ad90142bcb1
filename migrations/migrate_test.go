// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

// TestMigrate_CreatesKVStore runs the migrations against both supported
// drivers and checks that re-running them is a no-op.
func TestMigrate_CreatesKVStore(t *testing.T) {
	for _, driver := range []string{"sqlite3", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			db, err := sql.Open(driver, filepath.Join(t.TempDir(), "state.db"))
			require.NoError(t, err)
			defer db.Close()

			require.NoError(t, Migrate(db))
			require.NoError(t, Migrate(db))

			var name string
			err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv_store'`).Scan(&name)
			require.NoError(t, err)
			assert.Equal(t, "kv_store", name)

			_, err = db.Exec(`INSERT INTO kv_store (key, value) VALUES (?, ?)`, "k", []byte("v"))
			assert.NoError(t, err)
		})
	}
}
