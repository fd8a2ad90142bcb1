// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-doc-archive/internal/adapter"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/platform"
	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/internal/utils"
	"github.com/MKhiriev/go-doc-archive/models"
)

type clientOpenService struct {
	documents store.DocumentDirectory
	metadata  store.MetadataRepository
	adapter   adapter.ServerAdapter
	opener    platform.Opener
	history   ClientHistoryService

	downloading atomic.Bool
	now         func() time.Time

	logger *logger.Logger
}

// NewClientOpenService creates the download-and-open orchestrator.
func NewClientOpenService(
	documents store.DocumentDirectory,
	metadata store.MetadataRepository,
	serverAdapter adapter.ServerAdapter,
	opener platform.Opener,
	history ClientHistoryService,
	logger *logger.Logger,
) ClientOpenService {
	return &clientOpenService{
		documents: documents,
		metadata:  metadata,
		adapter:   serverAdapter,
		opener:    opener,
		history:   history,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientOpenService) Downloading() bool {
	return s.downloading.Load()
}

func (s *clientOpenService) Activate(ctx context.Context, tab models.ArchiveTab, item models.ArchiveItem) (models.Activation, error) {
	switch {
	case tab == models.TabLocal && item.LocalURI != "":
		return s.open(ctx, item, item.LocalURI)
	case tab == models.TabShared && item.FileURL != "" && item.FileName != "":
		return s.activateShared(ctx, item)
	default:
		return models.Activation{Outcome: models.OutcomeIgnored, Item: item}, nil
	}
}

func (s *clientOpenService) activateShared(ctx context.Context, item models.ArchiveItem) (models.Activation, error) {
	path, err := s.documents.Path(item.FileName)
	if err != nil {
		return models.Activation{Item: item}, fmt.Errorf("resolve download target: %w", err)
	}

	exists, err := s.documents.Exists(item.FileName)
	if err != nil {
		return models.Activation{Item: item}, fmt.Errorf("check cached document: %w", err)
	}
	if exists {
		item.LocalURI = path
		return s.open(ctx, item, path)
	}

	if !s.downloading.CompareAndSwap(false, true) {
		return models.Activation{Item: item}, ErrDownloadInProgress
	}
	defer s.downloading.Store(false)

	status, err := s.adapter.Download(ctx, item.FileURL, path)
	if err != nil {
		s.logger.Err(err).Str("func", "clientOpenService.activateShared").Str("url", item.FileURL).Msg("error downloading document")
		return models.Activation{Item: item}, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	if status != http.StatusOK {
		return models.Activation{Item: item}, fmt.Errorf("%w: server answered %d", ErrDownloadFailed, status)
	}

	s.saveMetadata(ctx, item, path)

	item.LocalURI = path
	return models.Activation{Outcome: models.OutcomeDownloaded, Path: path, Item: item}, nil
}

// saveMetadata links the downloaded file to its server document. Failures
// only cost the link, so they are logged.
func (s *clientOpenService) saveMetadata(ctx context.Context, item models.ArchiveItem, path string) {
	if !item.HasDocumentID() {
		return
	}

	savedAt := s.now().UTC()
	record := models.MetadataRecord{
		DocumentID: *item.DocumentID,
		Title:      item.Title,
		LocalURI:   path,
		SavedAt:    &savedAt,
	}

	sum, err := utils.ChecksumFile(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientOpenService.saveMetadata").Str("path", path).Msg("error computing checksum")
	} else {
		record.Checksum = sum
	}

	if err = s.metadata.Save(ctx, record); err != nil {
		s.logger.Err(err).Str("func", "clientOpenService.saveMetadata").Str("path", path).Msg("error saving metadata record")
	}
}

func (s *clientOpenService) OpenDownloaded(ctx context.Context, item models.ArchiveItem, path string) error {
	if path == "" {
		return ErrNoFilePath
	}
	_, err := s.open(ctx, item, path)
	return err
}

func (s *clientOpenService) Reopen(ctx context.Context, item models.HistoryItem) error {
	if item.FileURI == "" {
		return ErrNoFilePath
	}
	if err := s.opener.Open(ctx, item.FileURI); err != nil {
		s.logger.Err(err).Str("func", "clientOpenService.Reopen").Str("path", item.FileURI).Msg("error opening history item")
		return fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	return nil
}

// open records the history entry, then hands path to the opener.
func (s *clientOpenService) open(ctx context.Context, item models.ArchiveItem, path string) (models.Activation, error) {
	entry := models.HistoryItem{
		ID:       item.ID,
		Title:    item.Title,
		Subtitle: item.Subtitle,
		Color:    item.Color,
		FileURI:  path,
	}
	if entry.ID == "" {
		entry.ID = filepath.Base(path)
	}
	if err := s.history.Add(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientOpenService.open").Str("id", entry.ID).Msg("error adding history entry")
	}

	if err := s.opener.Open(ctx, path); err != nil {
		s.logger.Err(err).Str("func", "clientOpenService.open").Str("path", path).Msg("error opening document")
		return models.Activation{Item: item, Path: path}, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	return models.Activation{Outcome: models.OutcomeOpened, Path: path, Item: item}, nil
}

func (s *clientOpenService) DeleteLocal(ctx context.Context, item models.ArchiveItem) error {
	name := item.FileName
	if name == "" && item.LocalURI != "" {
		name = filepath.Base(item.LocalURI)
	}
	if name == "" {
		return ErrNoFilePath
	}

	if err := s.documents.Remove(name); err != nil {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	if err := s.metadata.RemoveByFileName(ctx, name); err != nil {
		return fmt.Errorf("remove metadata of %s: %w", name, err)
	}
	return nil
}
