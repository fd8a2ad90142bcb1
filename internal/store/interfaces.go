// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-doc-archive/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueRepository is the persisted key-value store. Values are opaque
// bytes; the typed repositories below keep JSON documents in them.
type KeyValueRepository interface {
	// Get returns the value for key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Update replaces the value of key with fn(current) atomically.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}

// DocumentDirectory is the private document directory on this device.
type DocumentDirectory interface {
	// Dir returns the directory path or [ErrNoDocumentDir].
	Dir() (string, error)
	// List returns supported, non-hidden regular files, not recursing.
	List(ctx context.Context) ([]models.LocalFile, error)
	Exists(name string) (bool, error)
	// Path joins the directory with a leaf file name.
	Path(name string) (string, error)
	Remove(name string) error
}

// MetadataRepository keeps the records linking downloaded files to server
// documents.
type MetadataRepository interface {
	List(ctx context.Context) ([]models.MetadataRecord, error)
	// Find returns the first record whose local URI ends with fileName.
	Find(ctx context.Context, fileName string) (models.MetadataRecord, bool)
	Save(ctx context.Context, record models.MetadataRecord) error
	RemoveByFileName(ctx context.Context, fileName string) error
}

// HistoryRepository keeps the capped, newest-first list of opened documents.
type HistoryRepository interface {
	Add(ctx context.Context, item models.HistoryItem) error
	List(ctx context.Context) ([]models.HistoryItem, error)
	Clear(ctx context.Context) error
}

// NotificationRepository keeps the newest-first notification list.
type NotificationRepository interface {
	// Add prepends item, trimming the list to limit entries when limit > 0.
	Add(ctx context.Context, item models.NotificationItem, limit int) error
	List(ctx context.Context) ([]models.NotificationItem, error)
	MarkAsRead(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// SessionRepository keeps the logged-in user and token.
type SessionRepository interface {
	// Load returns the saved session or [ErrNoSession].
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}
