// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-archive/internal/config"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/mock"
	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	archive       *mock.MockClientArchiveService
	open          *mock.MockClientOpenService
	rating        *mock.MockClientRatingService
	history       *mock.MockClientHistoryService
	notifications *mock.MockClientNotificationService
	auth          *mock.MockClientAuthService

	closed int
}

func newCLIMocks(ctrl *gomock.Controller) *cliMocks {
	return &cliMocks{
		archive:       mock.NewMockClientArchiveService(ctrl),
		open:          mock.NewMockClientOpenService(ctrl),
		rating:        mock.NewMockClientRatingService(ctrl),
		history:       mock.NewMockClientHistoryService(ctrl),
		notifications: mock.NewMockClientNotificationService(ctrl),
		auth:          mock.NewMockClientAuthService(ctrl),
	}
}

func (m *cliMocks) bootstrap(context.Context, *config.ClientConfig, *logger.Logger) (*service.ClientServices, func() error, error) {
	return &service.ClientServices{
			ArchiveService:      m.archive,
			OpenService:         m.open,
			RatingService:       m.rating,
			HistoryService:      m.history,
			NotificationService: m.notifications,
			AuthService:         m.auth,
		}, func() error {
			m.closed++
			return nil
		}, nil
}

// run executes archivectl with the flags every command needs to pass config validation.
func (m *cliMocks) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	base := []string{
		"-a", "http://archive.test",
		"-d", filepath.Join(dir, "state.db"),
		"--log-file", filepath.Join(dir, "cli.log"),
	}

	var out, errOut bytes.Buffer
	err := Execute(context.Background(), append(base, args...), &out, &errOut, m.bootstrap, models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123"))
	return out.String(), err
}

func docID(id int64) *int64 { return &id }

var testSession = models.Session{User: models.User{UserID: 7, Username: "student"}, Token: "tok"}

// ── archive list ─────────────────────────────────────────────────────────────

func TestArchiveList_Local(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	items := []models.ArchiveItem{
		{ID: "notes.pdf", Title: "notes", Subtitle: "1.0 KB • 01/02/2026", LocalURI: "/docs/notes.pdf", FileName: "notes.pdf"},
	}
	m.archive.EXPECT().ListLocal(gomock.Any()).Return(items, nil)
	m.archive.EXPECT().Filter(items, "").Return(items)

	out, err := m.run(t, "archive", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "/docs/notes.pdf")
	assert.Equal(t, 1, m.closed)
}

func TestArchiveList_SharedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	items := []models.ArchiveItem{
		{ID: "42", DocumentID: docID(42), Title: "Syllabus", IsShared: true, FileName: "Syllabus.pdf"},
		{ID: "43", DocumentID: docID(43), Title: "Lab Safety", IsShared: true, FileName: "Lab.pdf"},
	}
	m.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil)
	m.archive.EXPECT().ListShared(gomock.Any(), int64(7)).Return(items, nil)
	m.archive.EXPECT().Filter(items, "lab").Return(items[1:])

	out, err := m.run(t, "-o", "json", "archive", "list", "--shared", "--search", "lab")
	require.NoError(t, err)

	var got []models.ArchiveItem
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Lab Safety", got[0].Title)
}

func TestArchiveList_SharedNeedsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	m.auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, service.ErrNotLoggedIn)

	_, err := m.run(t, "archive", "list", "--shared")
	assert.ErrorIs(t, err, service.ErrNotLoggedIn)
	assert.Equal(t, 1, m.closed)
}

func TestArchiveList_UnknownFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	_, err := m.run(t, "-o", "yaml", "archive", "list")
	assert.Error(t, err)
}

// ── archive open ─────────────────────────────────────────────────────────────

func TestArchiveOpen_DownloadsAndOpensShared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	shared := models.ArchiveItem{ID: "42", DocumentID: docID(42), Title: "Syllabus", IsShared: true, FileURL: "http://archive.test/f/42", FileName: "Syllabus.pdf"}
	downloaded := shared
	downloaded.LocalURI = "/docs/Syllabus.pdf"

	m.archive.EXPECT().ListLocal(gomock.Any()).Return(nil, nil)
	m.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil)
	m.archive.EXPECT().ListShared(gomock.Any(), int64(7)).Return([]models.ArchiveItem{shared}, nil)
	m.open.EXPECT().Activate(gomock.Any(), models.TabShared, shared).
		Return(models.Activation{Outcome: models.OutcomeDownloaded, Path: downloaded.LocalURI, Item: downloaded}, nil)
	m.open.EXPECT().OpenDownloaded(gomock.Any(), downloaded, downloaded.LocalURI).Return(nil)

	out, err := m.run(t, "archive", "open", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "downloaded /docs/Syllabus.pdf")
	assert.Contains(t, out, "opened /docs/Syllabus.pdf")
}

func TestArchiveOpen_LocalByFileName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	local := models.ArchiveItem{ID: "notes.pdf", Title: "notes", LocalURI: "/docs/notes.pdf", FileName: "notes.pdf"}

	m.archive.EXPECT().ListLocal(gomock.Any()).Return([]models.ArchiveItem{local}, nil)
	m.open.EXPECT().Activate(gomock.Any(), models.TabLocal, local).
		Return(models.Activation{Outcome: models.OutcomeOpened, Path: local.LocalURI, Item: local}, nil)

	out, err := m.run(t, "archive", "open", "NOTES.pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "opened /docs/notes.pdf")
}

func TestArchiveOpen_NoOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	shared := models.ArchiveItem{ID: "42", DocumentID: docID(42), Title: "Syllabus", FileURL: "u", FileName: "Syllabus.pdf"}

	m.archive.EXPECT().ListLocal(gomock.Any()).Return(nil, nil)
	m.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil)
	m.archive.EXPECT().ListShared(gomock.Any(), int64(7)).Return([]models.ArchiveItem{shared}, nil)
	m.open.EXPECT().Activate(gomock.Any(), models.TabShared, shared).
		Return(models.Activation{Outcome: models.OutcomeDownloaded, Path: "/docs/Syllabus.pdf", Item: shared}, nil)

	out, err := m.run(t, "archive", "open", "--no-open", "syllabus")
	require.NoError(t, err)
	assert.Contains(t, out, "downloaded")
	assert.NotContains(t, out, "opened")
}

func TestArchiveOpen_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	m.archive.EXPECT().ListLocal(gomock.Any()).Return(nil, nil)
	m.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil)
	m.archive.EXPECT().ListShared(gomock.Any(), int64(7)).Return(nil, nil)

	_, err := m.run(t, "archive", "open", "missing")
	assert.ErrorIs(t, err, errItemNotFound)
}

// ── archive rate ─────────────────────────────────────────────────────────────

func TestArchiveRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	shared := models.ArchiveItem{ID: "42", DocumentID: docID(42), Title: "Syllabus", FileName: "Syllabus.pdf"}

	m.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil).Times(2)
	m.archive.EXPECT().ListLocal(gomock.Any()).Return(nil, nil)
	m.archive.EXPECT().ListShared(gomock.Any(), int64(7)).Return([]models.ArchiveItem{shared}, nil)
	m.rating.EXPECT().CheckRateable(gomock.Any(), shared).Return(nil)
	m.rating.EXPECT().Submit(gomock.Any(), int64(7), shared, 4, "clear").Return(nil)

	out, err := m.run(t, "archive", "rate", "42", "--stars", "4", "--comment", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, `rated "Syllabus" with 4 stars`)
}

func TestArchiveRate_DeletedDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	shared := models.ArchiveItem{ID: "42", DocumentID: docID(42), Title: "Syllabus"}

	m.auth.EXPECT().Restore(gomock.Any()).Return(testSession, nil).Times(2)
	m.archive.EXPECT().ListLocal(gomock.Any()).Return(nil, nil)
	m.archive.EXPECT().ListShared(gomock.Any(), int64(7)).Return([]models.ArchiveItem{shared}, nil)
	m.rating.EXPECT().CheckRateable(gomock.Any(), shared).Return(service.ErrDocumentDeleted)

	_, err := m.run(t, "archive", "rate", "42", "--stars", "5")
	assert.ErrorIs(t, err, service.ErrDocumentDeleted)
}

// ── archive rm ───────────────────────────────────────────────────────────────

func TestArchiveRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	local := models.ArchiveItem{ID: "notes.pdf", Title: "notes", LocalURI: "/docs/notes.pdf", FileName: "notes.pdf"}
	m.archive.EXPECT().ListLocal(gomock.Any()).Return([]models.ArchiveItem{local}, nil)
	m.open.EXPECT().DeleteLocal(gomock.Any(), local).Return(nil)

	out, err := m.run(t, "archive", "rm", "notes.pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "removed notes.pdf")
}

// ── history / notifications ──────────────────────────────────────────────────

func TestHistory_ListAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	m.history.EXPECT().List(gomock.Any()).Return([]models.HistoryItem{
		{ID: "42", Title: "Syllabus", Time: time.Now().Add(-time.Hour), FileURI: "/docs/Syllabus.pdf"},
	}, nil)
	out, err := m.run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Syllabus")
	assert.Contains(t, out, "ago")

	m.history.EXPECT().Clear(gomock.Any()).Return(nil)
	out, err = m.run(t, "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "history cleared")
}

func TestNotifications_UnreadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	m.notifications.EXPECT().List(gomock.Any()).Return([]models.NotificationItem{
		{ID: "n1", Title: "Rating submitted", IsRead: false, Time: time.Now()},
		{ID: "n2", Title: "Old news", IsRead: true, Time: time.Now()},
	}, nil)

	out, err := m.run(t, "notifications", "--unread")
	require.NoError(t, err)
	assert.Contains(t, out, "Rating submitted")
	assert.NotContains(t, out, "Old news")
}

func TestNotifications_Read(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	m.notifications.EXPECT().MarkAsRead(gomock.Any(), "n1").Return(nil)

	_, err := m.run(t, "notifications", "read", "n1")
	require.NoError(t, err)
}

// ── login / logout / version ─────────────────────────────────────────────────

func TestLogin_PasswordFromStdin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	m.auth.EXPECT().Login(gomock.Any(), models.Credentials{Username: "student", Password: "secret"}).
		Return(models.Session{User: models.User{FullName: "Ann Lee"}}, nil)

	dir := t.TempDir()
	var out bytes.Buffer
	root := newRootCommand(&app{bootstrap: m.bootstrap})
	root.SetArgs([]string{
		"-a", "http://archive.test", "-d", filepath.Join(dir, "state.db"), "--log-file", filepath.Join(dir, "cli.log"),
		"login", "-u", "student", "--password-stdin",
	})
	root.SetIn(bytes.NewBufferString("secret\n"))
	root.SetOut(&out)

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "signed in as Ann Lee")
}

func TestLogin_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{}, service.ErrWrongCredentials)

	_, err := m.run(t, "login", "-u", "student", "-p", "nope")
	assert.ErrorIs(t, err, service.ErrWrongCredentials)
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)

	m.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	out, err := m.run(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "logged out")
}

func TestVersion_SkipsBootstrap(t *testing.T) {
	var out bytes.Buffer
	bootstrap := func(context.Context, *config.ClientConfig, *logger.Logger) (*service.ClientServices, func() error, error) {
		return nil, nil, errors.New("must not be called")
	}

	err := Execute(context.Background(), []string{"version"}, &out, &out, bootstrap, models.NewAppBuildInfo("1.2.0", "", "abc123"))
	require.NoError(t, err)
	assert.Equal(t, "version 1.2.0, built N/A, commit abc123\n", out.String())
}

func TestMissingAddressFailsConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCLIMocks(ctrl)
	t.Setenv("ADAPTER_ADDRESS", "")

	var out bytes.Buffer
	err := Execute(context.Background(), []string{"-d", filepath.Join(t.TempDir(), "s.db"), "history"}, &out, &out, m.bootstrap, models.AppBuildInfo{})
	assert.ErrorIs(t, err, config.ErrInvalidAdapterConfigs)
	assert.Zero(t, m.closed)
}

// ── match ────────────────────────────────────────────────────────────────────

func TestMatch(t *testing.T) {
	items := []models.ArchiveItem{
		{Title: "Syllabus", FileName: "Syllabus.pdf", DocumentID: docID(42)},
		{Title: "notes", FileName: "notes.txt"},
	}

	tests := []struct {
		ref   string
		want  string
		found bool
	}{
		{"syllabus.PDF", "Syllabus", true},
		{"42", "Syllabus", true},
		{"Notes", "notes", true},
		{"7", "", false},
		{"lecture", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := match(items, tt.ref)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got.Title)
		})
	}
}
