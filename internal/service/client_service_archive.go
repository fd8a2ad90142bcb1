// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-archive/internal/adapter"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/models"
)

type clientArchiveService struct {
	documents store.DocumentDirectory
	metadata  store.MetadataRepository
	adapter   adapter.ServerAdapter

	logger *logger.Logger
}

// NewClientArchiveService creates a ClientArchiveService over the local
// document directory, its metadata records and the server adapter.
func NewClientArchiveService(documents store.DocumentDirectory, metadata store.MetadataRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientArchiveService {
	return &clientArchiveService{
		documents: documents,
		metadata:  metadata,
		adapter:   serverAdapter,
		logger:    logger,
	}
}

func (s *clientArchiveService) ListLocal(ctx context.Context) ([]models.ArchiveItem, error) {
	files, err := s.documents.List(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientArchiveService.ListLocal").Msg("error listing local documents")
		return []models.ArchiveItem{}, fmt.Errorf("list local documents: %w", err)
	}

	items := make([]models.ArchiveItem, 0, len(files))
	for _, file := range files {
		path, err := s.documents.Path(file.Name)
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "clientArchiveService.ListLocal").Str("file", file.Name).Msg("skipping file")
			continue
		}
		record, found := s.metadata.Find(ctx, file.Name)
		items = append(items, localItem(file, path, record, found))
	}

	return items, nil
}

func (s *clientArchiveService) ListShared(ctx context.Context, userID int64) ([]models.ArchiveItem, error) {
	docs, err := s.adapter.ListUserDocuments(ctx, userID)
	if err != nil {
		s.logger.Err(err).Str("func", "clientArchiveService.ListShared").Int64("user_id", userID).Msg("error fetching shared documents")
		return []models.ArchiveItem{}, fmt.Errorf("%w: %w", ErrRemoteListUnavailable, mapAdapterError(err))
	}

	items := make([]models.ArchiveItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, sharedItem(doc))
	}
	return items, nil
}

func (s *clientArchiveService) Filter(items []models.ArchiveItem, text string) []models.ArchiveItem {
	if text == "" {
		return items
	}

	needle := strings.ToLower(text)
	filtered := make([]models.ArchiveItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
