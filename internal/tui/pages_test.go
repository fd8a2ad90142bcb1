// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-archive/internal/validators"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Home ─────────────────────────────────────────────────────────────────────

func TestHomeModel_ListAndReopen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	services, m := newTestServices(ctrl)

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	items := []models.HistoryItem{
		{ID: "42", Title: "Syllabus", Time: now.Add(-2 * time.Hour), FileURI: "/docs/Syllabus.pdf"},
		{ID: "notes.pdf", Title: "notes", Time: now.Add(-48 * time.Hour), FileURI: "/docs/notes.pdf"},
	}

	model := NewHomeModel(context.Background(), services, testSessionState())
	model.now = func() time.Time { return now }

	m.history.EXPECT().List(gomock.Any()).Return(items, nil)
	feed(model, runCmd(model.Init()))

	view := model.View()
	assert.Contains(t, view, "Welcome back, Ann Lee")
	assert.Contains(t, view, "2 hours ago")
	assert.Contains(t, view, "2 days ago")

	m.open.EXPECT().Reopen(gomock.Any(), items[1]).Return(nil)
	press(model, "down")
	msgs := runCmd(press(model, "enter"))
	require.Len(t, msgs, 1)
	model.Update(msgs[0])
	assert.Equal(t, "Opened", model.status)
}

func TestHomeModel_ClearAfterConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	services, m := newTestServices(ctrl)

	model := NewHomeModel(context.Background(), services, testSessionState())
	m.history.EXPECT().List(gomock.Any()).Return([]models.HistoryItem{{ID: "1", Title: "a"}}, nil)
	feed(model, runCmd(model.Init()))

	press(model, "x")
	require.True(t, model.capturingInput())

	gomock.InOrder(
		m.history.EXPECT().Clear(gomock.Any()).Return(nil),
		m.history.EXPECT().List(gomock.Any()).Return([]models.HistoryItem{}, nil),
	)
	feed(model, runCmd(press(model, "y")))

	assert.False(t, model.capturingInput())
	assert.Empty(t, model.items)
	assert.Contains(t, model.View(), "Nothing opened yet")
}

func TestHomeModel_EmptyHistoryEnterIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	services, m := newTestServices(ctrl)

	model := NewHomeModel(context.Background(), services, testSessionState())
	m.history.EXPECT().List(gomock.Any()).Return(nil, nil)
	feed(model, runCmd(model.Init()))

	assert.Nil(t, press(model, "enter"))
	assert.Nil(t, press(model, "x"))
	assert.False(t, model.confirmClear)
}

// ── Notifications ────────────────────────────────────────────────────────────

func TestNotificationsModel_MarkAsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	services, m := newTestServices(ctrl)

	unread := models.NotificationItem{ID: "n1", IconName: "star", IconColor: "#FFC107", Title: "Rating submitted", Detail: `You rated 4 stars for "Syllabus"`, Time: time.Now()}
	read := unread
	read.IsRead = true

	model := NewNotificationsModel(context.Background(), services)
	m.notifications.EXPECT().List(gomock.Any()).Return([]models.NotificationItem{unread}, nil)
	feed(model, runCmd(model.Init()))
	assert.Contains(t, model.View(), "Unread: 1")

	gomock.InOrder(
		m.notifications.EXPECT().MarkAsRead(gomock.Any(), "n1").Return(nil),
		m.notifications.EXPECT().List(gomock.Any()).Return([]models.NotificationItem{read}, nil),
	)
	msgs := runCmd(press(model, "enter"))
	require.Len(t, msgs, 1)
	_, reload := model.Update(msgs[0])
	feed(model, runCmd(reload))

	assert.Contains(t, model.View(), "Unread: 0")

	// already read: nothing to do
	assert.Nil(t, press(model, "enter"))
}

func TestNotificationsModel_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	services, m := newTestServices(ctrl)

	model := NewNotificationsModel(context.Background(), services)
	m.notifications.EXPECT().List(gomock.Any()).Return([]models.NotificationItem{{ID: "n1", Title: "x"}}, nil)
	feed(model, runCmd(model.Init()))

	press(model, "x")
	require.True(t, model.capturingInput())

	gomock.InOrder(
		m.notifications.EXPECT().Clear(gomock.Any()).Return(nil),
		m.notifications.EXPECT().List(gomock.Any()).Return(nil, nil),
	)
	msgs := runCmd(press(model, "y"))
	_, reload := model.Update(msgs[0])
	feed(model, runCmd(reload))

	assert.Contains(t, model.View(), "No notifications")
}

// ── Settings ─────────────────────────────────────────────────────────────────

func TestSettingsModel_ProfilePrefilledAndSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	services, m := newTestServices(ctrl)
	session := testSessionState()

	model := NewSettingsModel(context.Background(), services, session)
	model.Init()

	press(model, "enter")
	require.True(t, model.capturingInput())
	assert.Equal(t, "Ann Lee", model.inputs[0].Value())
	assert.Equal(t, "ann@uni.edu", model.inputs[1].Value())

	updated := session.user()
	updated.FullName = "Ann Lee-Smith"
	m.account.EXPECT().UpdateProfile(gomock.Any(), models.ProfileForm{FullName: "Ann Lee", Email: "ann@uni.edu"}).Return(updated, nil)

	msgs := runCmd(press(model, "enter"))
	require.Len(t, msgs, 1)
	model.Update(msgs[0])

	assert.False(t, model.capturingInput())
	assert.Equal(t, "Profile updated", model.status)
	assert.Equal(t, "Ann Lee-Smith", session.user().FullName)
}

func TestSettingsModel_PasswordValidationErrorKeepsForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	services, m := newTestServices(ctrl)

	model := NewSettingsModel(context.Background(), services, testSessionState())
	press(model, "down", "enter")
	require.Equal(t, sectionPassword, model.section)

	m.account.EXPECT().ChangePassword(gomock.Any(), models.PasswordForm{}).Return(validators.ErrEmptyField)
	feed(model, runCmd(press(model, "enter")))

	assert.True(t, model.editing)
	assert.Equal(t, validators.ErrEmptyField.Error(), model.errMsg)

	press(model, "esc")
	assert.False(t, model.editing)
}

func TestSettingsModel_AvatarUpdatesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	services, m := newTestServices(ctrl)
	session := testSessionState()

	model := NewSettingsModel(context.Background(), services, session)
	press(model, "down", "down", "enter")
	require.Equal(t, sectionAvatar, model.section)
	model.inputs[0].SetValue(" /tmp/me.png ")

	m.account.EXPECT().UploadAvatar(gomock.Any(), "/tmp/me.png").Return("https://cdn.test/me.png", nil)
	feed(model, runCmd(press(model, "enter")))

	assert.Equal(t, "https://cdn.test/me.png", session.user().ProfilePicture)
}

func TestSettingsModel_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	services, m := newTestServices(ctrl)

	model := NewSettingsModel(context.Background(), services, testSessionState())
	press(model, "down", "down", "down", "enter")
	require.True(t, model.confirming)

	m.auth.EXPECT().Logout(gomock.Any()).Return(nil)
	msgs := runCmd(press(model, "y"))
	require.Len(t, msgs, 1)

	out, ok := msgs[0].(LogoutRequested)
	require.True(t, ok)
	assert.NoError(t, out.Err)
}

// ── Rating dialog ────────────────────────────────────────────────────────────

func TestRatingDialog_Stars(t *testing.T) {
	d := newRatingDialog(sharedSyllabus)
	assert.Zero(t, d.stars)

	d, _ = d.update(keyPress("left"))
	assert.Zero(t, d.stars)

	for range 7 {
		d, _ = d.update(keyPress("l"))
	}
	assert.Equal(t, validators.MaxRating, d.stars)

	d, _ = d.update(keyPress("2"))
	assert.Equal(t, 2, d.stars)

	// digits go to the comment once it has focus
	d, _ = d.update(keyPress("tab"))
	d, _ = d.update(keyPress("5"))
	assert.Equal(t, 2, d.stars)
	assert.Equal(t, "5", d.comment.Value())
}
