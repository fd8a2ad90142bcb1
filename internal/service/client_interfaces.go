// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-doc-archive/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientArchiveService builds the two archive lists shown on the Archive screen.
type ClientArchiveService interface {
	// ListLocal enumerates the private document directory and enriches every
	// file with the first matching metadata record. When no document
	// directory is configured it returns an empty list and an error wrapping
	// store.ErrNoDocumentDir.
	ListLocal(ctx context.Context) ([]models.ArchiveItem, error)

	// ListShared fetches the documents shared with userID. Any failure yields
	// an empty list together with an error wrapping ErrRemoteListUnavailable.
	ListShared(ctx context.Context, userID int64) ([]models.ArchiveItem, error)

	// Filter keeps items whose title contains text, ignoring case. Order is
	// preserved; an empty text returns items unchanged.
	Filter(items []models.ArchiveItem, text string) []models.ArchiveItem
}

// ClientOpenService runs the download-and-open state machine for archive
// items and history entries.
type ClientOpenService interface {
	// Activate reacts to the user selecting item on tab. It opens a local or
	// cached document, downloads a missing shared document, or ignores the
	// selection. A download started while another one is running fails with
	// ErrDownloadInProgress.
	Activate(ctx context.Context, tab models.ArchiveTab, item models.ArchiveItem) (models.Activation, error)

	// OpenDownloaded opens a file previously returned by Activate with
	// models.OutcomeDownloaded.
	OpenDownloaded(ctx context.Context, item models.ArchiveItem, path string) error

	// Reopen opens the file recorded in a history entry.
	Reopen(ctx context.Context, item models.HistoryItem) error

	// DeleteLocal removes a downloaded file and the metadata pointing at it.
	DeleteLocal(ctx context.Context, item models.ArchiveItem) error

	// Downloading reports whether a download is in flight.
	Downloading() bool
}

// ClientRatingService checks whether a document can be rated and submits ratings.
type ClientRatingService interface {
	// CheckRateable verifies that item is linked to a server document that
	// still exists.
	CheckRateable(ctx context.Context, item models.ArchiveItem) error

	// Submit sends a 1..5 star rating and records a notification on success.
	Submit(ctx context.Context, userID int64, item models.ArchiveItem, rating int, comment string) error
}

// ClientHistoryService manages the recently viewed list on the Home screen.
type ClientHistoryService interface {
	// Add stamps item with the current time and records it.
	Add(ctx context.Context, item models.HistoryItem) error
	List(ctx context.Context) ([]models.HistoryItem, error)
	Clear(ctx context.Context) error
}

// ClientNotificationService manages in-app notifications.
type ClientNotificationService interface {
	// Add creates a new unread notification and returns it.
	Add(ctx context.Context, n models.NewNotification) (models.NotificationItem, error)
	List(ctx context.Context) ([]models.NotificationItem, error)
	MarkAsRead(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
}

// ClientAccountService edits the signed-in user's account.
type ClientAccountService interface {
	// UpdateProfile validates and sends the profile form, then stores the
	// returned user in the session.
	UpdateProfile(ctx context.Context, form models.ProfileForm) (models.User, error)

	// UploadAvatar uploads the image at path and stores the returned URL as
	// the user's profile picture.
	UploadAvatar(ctx context.Context, path string) (string, error)

	// ChangePassword validates the form and sets the new password.
	ChangePassword(ctx context.Context, form models.PasswordForm) error
}

// ClientAuthService handles login, logout and session restore.
type ClientAuthService interface {
	// Login authenticates against the server and persists the session.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Restore loads a persisted session and hands its token to the adapter.
	// Returns ErrNotLoggedIn when there is none.
	Restore(ctx context.Context) (models.Session, error)

	// Logout forgets the session.
	Logout(ctx context.Context) error
}
