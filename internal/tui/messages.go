// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-doc-archive/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page.
type LoginResult struct {
	Session models.Session
	Err     error
}

// LogoutRequested ends the main loop and returns to the login flow.
type LogoutRequested struct {
	Err error
}

type historyLoadedMsg struct {
	items []models.HistoryItem
	err   error
}

type reopenDoneMsg struct {
	err error
}

type archiveLoadedMsg struct {
	tab   models.ArchiveTab
	items []models.ArchiveItem
	err   error
}

type activateDoneMsg struct {
	tab models.ArchiveTab
	act models.Activation
	err error
}

type openDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type rateableMsg struct {
	item models.ArchiveItem
	err  error
}

type ratingDoneMsg struct {
	err error
}

type notificationsLoadedMsg struct {
	items []models.NotificationItem
	err   error
}

type notificationChangedMsg struct {
	err error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type avatarUploadedMsg struct {
	url string
	err error
}

type passwordChangedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
