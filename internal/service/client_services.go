// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-doc-archive/internal/adapter"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/platform"
	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/internal/utils"
	"github.com/MKhiriev/go-doc-archive/internal/validators"
)

// ClientServices groups every service used by the front ends. It is built
// once at start-up and passed explicitly.
type ClientServices struct {
	ArchiveService      ClientArchiveService
	OpenService         ClientOpenService
	RatingService       ClientRatingService
	HistoryService      ClientHistoryService
	NotificationService ClientNotificationService
	AccountService      ClientAccountService
	AuthService         ClientAuthService
}

// NewClientServices wires the services over local storages, the server
// adapter and the OS opener. notificationsLimit of 0 keeps every notification.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	opener platform.Opener,
	notificationsLimit int,
	logger *logger.Logger,
) *ClientServices {
	validator := validators.NewAccountValidator()

	historyService := NewClientHistoryService(storages.History)
	notificationService := NewClientNotificationService(storages.Notifications, utils.NewUUIDGenerator(), notificationsLimit)

	return &ClientServices{
		ArchiveService:      NewClientArchiveService(storages.Documents, storages.Metadata, serverAdapter, logger),
		OpenService:         NewClientOpenService(storages.Documents, storages.Metadata, serverAdapter, opener, historyService, logger),
		RatingService:       NewClientRatingService(serverAdapter, notificationService, validator, logger),
		HistoryService:      historyService,
		NotificationService: notificationService,
		AccountService:      NewClientAccountService(storages.Session, serverAdapter, validator, logger),
		AuthService:         NewClientAuthService(storages.Session, serverAdapter, validator, logger),
	}
}
