// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-archive/internal/config"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	Documents     DocumentDirectory
	Metadata      MetadataRepository
	History       HistoryRepository
	Notifications NotificationRepository
	Session       SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN with cfg.DB.Driver,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Builds the typed repositories on top of one key-value repository.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, cfg.DocumentDir, logger), nil
}

func newClientStorages(db *DB, documentDir string, logger *logger.Logger) *ClientStorages {
	kv := NewKeyValueRepository(db, logger)

	return &ClientStorages{
		Documents:     NewDocumentDirectory(documentDir, logger),
		Metadata:      NewMetadataRepository(kv, logger),
		History:       NewHistoryRepository(kv, logger),
		Notifications: NewNotificationRepository(kv, logger),
		Session:       NewSessionRepository(kv, logger),
		db:            db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
