// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/models"
)

type notificationRepository struct {
	kv     KeyValueRepository
	logger *logger.Logger
}

func NewNotificationRepository(kv KeyValueRepository, logger *logger.Logger) NotificationRepository {
	return &notificationRepository{
		kv:     kv,
		logger: logger,
	}
}

func (n *notificationRepository) Add(ctx context.Context, item models.NotificationItem, limit int) error {
	return updateList(ctx, n.kv, KeyNotifications, func(list []models.NotificationItem) ([]models.NotificationItem, error) {
		list = append([]models.NotificationItem{item}, list...)
		if limit > 0 && len(list) > limit {
			list = list[:limit]
		}
		return list, nil
	})
}

func (n *notificationRepository) List(ctx context.Context) ([]models.NotificationItem, error) {
	return loadList[models.NotificationItem](ctx, n.kv, KeyNotifications)
}

// MarkAsRead is a no-op for unknown ids.
func (n *notificationRepository) MarkAsRead(ctx context.Context, id string) error {
	return updateList(ctx, n.kv, KeyNotifications, func(list []models.NotificationItem) ([]models.NotificationItem, error) {
		for i := range list {
			if list[i].ID == id {
				list[i].IsRead = true
			}
		}
		return list, nil
	})
}

func (n *notificationRepository) Clear(ctx context.Context) error {
	return n.kv.Set(ctx, KeyNotifications, []byte("[]"))
}
