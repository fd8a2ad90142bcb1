// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/mock"
	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/models"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

type tuiMocks struct {
	archive       *mock.MockClientArchiveService
	open          *mock.MockClientOpenService
	rating        *mock.MockClientRatingService
	history       *mock.MockClientHistoryService
	notifications *mock.MockClientNotificationService
	account       *mock.MockClientAccountService
	auth          *mock.MockClientAuthService
}

func newTestServices(ctrl *gomock.Controller) (*service.ClientServices, *tuiMocks) {
	m := &tuiMocks{
		archive:       mock.NewMockClientArchiveService(ctrl),
		open:          mock.NewMockClientOpenService(ctrl),
		rating:        mock.NewMockClientRatingService(ctrl),
		history:       mock.NewMockClientHistoryService(ctrl),
		notifications: mock.NewMockClientNotificationService(ctrl),
		account:       mock.NewMockClientAccountService(ctrl),
		auth:          mock.NewMockClientAuthService(ctrl),
	}

	// фильтрация без побочных эффектов, берём настоящую
	realArchive := service.NewClientArchiveService(nil, nil, nil, logger.Nop())
	m.archive.EXPECT().Filter(gomock.Any(), gomock.Any()).DoAndReturn(realArchive.Filter).AnyTimes()

	return &service.ClientServices{
		ArchiveService:      m.archive,
		OpenService:         m.open,
		RatingService:       m.rating,
		HistoryService:      m.history,
		NotificationService: m.notifications,
		AccountService:      m.account,
		AuthService:         m.auth,
	}, m
}

func testSessionState() *sessionState {
	return newSessionState(models.Session{
		User:  models.User{UserID: 7, Username: "student", FullName: "Ann Lee", Email: "ann@uni.edu", Role: "USER"},
		Token: "tok",
	})
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd and every command of a batch. Only use it on commands
// that do not sleep (no status timers or cursor blinks).
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func docID(id int64) *int64 { return &id }
