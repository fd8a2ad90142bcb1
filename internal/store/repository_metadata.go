// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/models"
)

type metadataRepository struct {
	kv     KeyValueRepository
	logger *logger.Logger
}

// NewMetadataRepository returns a [MetadataRepository] stored under
// [KeySavedDocuments].
func NewMetadataRepository(kv KeyValueRepository, logger *logger.Logger) MetadataRepository {
	return &metadataRepository{
		kv:     kv,
		logger: logger,
	}
}

func (m *metadataRepository) List(ctx context.Context) ([]models.MetadataRecord, error) {
	return loadList[models.MetadataRecord](ctx, m.kv, KeySavedDocuments)
}

// Find never fails: a read error is logged and reported as no match.
func (m *metadataRepository) Find(ctx context.Context, fileName string) (models.MetadataRecord, bool) {
	records, err := m.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "metadataRepository.Find").
			Str("file_name", fileName).
			Msg("failed to read saved documents metadata")
		return models.MetadataRecord{}, false
	}

	return matchRecord(records, fileName)
}

// Save replaces the record with the same local URI or appends a new one.
func (m *metadataRepository) Save(ctx context.Context, record models.MetadataRecord) error {
	return updateList(ctx, m.kv, KeySavedDocuments, func(records []models.MetadataRecord) ([]models.MetadataRecord, error) {
		for i := range records {
			if records[i].LocalURI == record.LocalURI {
				records[i] = record
				return records, nil
			}
		}
		return append(records, record), nil
	})
}

// RemoveByFileName drops the records whose local URI names exactly fileName.
// Unlike lookup, removal does not match on a bare suffix.
func (m *metadataRepository) RemoveByFileName(ctx context.Context, fileName string) error {
	return updateList(ctx, m.kv, KeySavedDocuments, func(records []models.MetadataRecord) ([]models.MetadataRecord, error) {
		kept := records[:0]
		for _, r := range records {
			if filepath.Base(r.LocalURI) != fileName {
				kept = append(kept, r)
			}
		}
		return kept, nil
	})
}

func matchRecord(records []models.MetadataRecord, fileName string) (models.MetadataRecord, bool) {
	if fileName == "" {
		return models.MetadataRecord{}, false
	}
	for _, r := range records {
		if strings.HasSuffix(r.LocalURI, fileName) {
			return r, true
		}
	}
	return models.MetadataRecord{}, false
}
