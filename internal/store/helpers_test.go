// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-doc-archive/internal/config"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated SQLite database in a temp directory.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{
		DSN:    filepath.Join(t.TempDir(), "state.db"),
		Driver: config.DriverMattnSQLite,
	}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestKV(t *testing.T) KeyValueRepository {
	t.Helper()
	return NewKeyValueRepository(newTestDB(t), logger.Nop())
}
