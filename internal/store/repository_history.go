// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/models"
)

type historyRepository struct {
	kv     KeyValueRepository
	logger *logger.Logger
}

func NewHistoryRepository(kv KeyValueRepository, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		kv:     kv,
		logger: logger,
	}
}

// Add puts item first, dropping an older entry with the same id and
// anything beyond [models.HistoryLimit].
func (h *historyRepository) Add(ctx context.Context, item models.HistoryItem) error {
	return updateList(ctx, h.kv, KeyHistory, func(list []models.HistoryItem) ([]models.HistoryItem, error) {
		return prependHistory(list, item), nil
	})
}

func (h *historyRepository) List(ctx context.Context) ([]models.HistoryItem, error) {
	return loadList[models.HistoryItem](ctx, h.kv, KeyHistory)
}

func (h *historyRepository) Clear(ctx context.Context) error {
	return h.kv.Set(ctx, KeyHistory, []byte("[]"))
}

func prependHistory(list []models.HistoryItem, item models.HistoryItem) []models.HistoryItem {
	next := make([]models.HistoryItem, 0, models.HistoryLimit)
	next = append(next, item)
	for _, existing := range list {
		if len(next) == models.HistoryLimit {
			break
		}
		if existing.ID != item.ID {
			next = append(next, existing)
		}
	}
	return next
}
