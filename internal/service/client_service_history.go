// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/models"
)

type clientHistoryService struct {
	history store.HistoryRepository
	now     func() time.Time
}

func NewClientHistoryService(history store.HistoryRepository) ClientHistoryService {
	return &clientHistoryService{history: history, now: time.Now}
}

func (s *clientHistoryService) Add(ctx context.Context, item models.HistoryItem) error {
	item.Time = s.now().UTC()
	return s.history.Add(ctx, item)
}

func (s *clientHistoryService) List(ctx context.Context) ([]models.HistoryItem, error) {
	return s.history.List(ctx)
}

func (s *clientHistoryService) Clear(ctx context.Context) error {
	return s.history.Clear(ctx)
}
