// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/models"
)

// idGenerator produces notification ids.
type idGenerator interface {
	Generate() string
}

type clientNotificationService struct {
	notifications store.NotificationRepository
	ids           idGenerator
	limit         int
	now           func() time.Time
}

// NewClientNotificationService creates a ClientNotificationService. A limit
// of 0 keeps every notification.
func NewClientNotificationService(notifications store.NotificationRepository, ids idGenerator, limit int) ClientNotificationService {
	return &clientNotificationService{
		notifications: notifications,
		ids:           ids,
		limit:         limit,
		now:           time.Now,
	}
}

func (s *clientNotificationService) Add(ctx context.Context, n models.NewNotification) (models.NotificationItem, error) {
	item := models.NotificationItem{
		ID:        s.ids.Generate(),
		IconName:  n.IconName,
		IconColor: n.IconColor,
		Title:     n.Title,
		Detail:    n.Detail,
		Time:      s.now().UTC(),
	}
	if err := s.notifications.Add(ctx, item, s.limit); err != nil {
		return models.NotificationItem{}, err
	}
	return item, nil
}

func (s *clientNotificationService) List(ctx context.Context) ([]models.NotificationItem, error) {
	return s.notifications.List(ctx)
}

func (s *clientNotificationService) MarkAsRead(ctx context.Context, id string) error {
	return s.notifications.MarkAsRead(ctx, id)
}

func (s *clientNotificationService) Clear(ctx context.Context) error {
	return s.notifications.Clear(ctx)
}

func (s *clientNotificationService) UnreadCount(ctx context.Context) (int, error) {
	items, err := s.notifications.List(ctx)
	if err != nil {
		return 0, err
	}

	unread := 0
	for _, item := range items {
		if !item.IsRead {
			unread++
		}
	}
	return unread, nil
}
