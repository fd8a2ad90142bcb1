// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/mock"
	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeUI replays scripted main loop results.
type fakeUI struct {
	loginSession models.Session
	loginErr     error
	logouts      []bool
	loginCalls   int
	loopSessions []models.Session
}

func (f *fakeUI) LoginFlow(context.Context) (models.Session, error) {
	f.loginCalls++
	return f.loginSession, f.loginErr
}

func (f *fakeUI) MainLoop(_ context.Context, session models.Session) (bool, error) {
	f.loopSessions = append(f.loopSessions, session)
	logout := f.logouts[0]
	f.logouts = f.logouts[1:]
	return logout, nil
}

func newTestApp(t *testing.T, auth service.ClientAuthService, ui UI) *App {
	t.Helper()
	app, err := NewApp(&service.ClientServices{AuthService: auth}, ui, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestApp_Run_RestoredSessionSkipsLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := models.Session{User: models.User{UserID: 5}, Token: "tok"}
	auth := mock.NewMockClientAuthService(ctrl)
	auth.EXPECT().Restore(gomock.Any()).Return(session, nil)

	ui := &fakeUI{logouts: []bool{false}}
	require.NoError(t, newTestApp(t, auth, ui).Run())

	assert.Zero(t, ui.loginCalls)
	assert.Equal(t, []models.Session{session}, ui.loopSessions)
}

func TestApp_Run_LogoutReturnsToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	restored := models.Session{User: models.User{UserID: 5}}
	fresh := models.Session{User: models.User{UserID: 6}}

	auth := mock.NewMockClientAuthService(ctrl)
	gomock.InOrder(
		auth.EXPECT().Restore(gomock.Any()).Return(restored, nil),
		auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, service.ErrNotLoggedIn),
	)

	ui := &fakeUI{loginSession: fresh, logouts: []bool{true, false}}
	require.NoError(t, newTestApp(t, auth, ui).Run())

	assert.Equal(t, 1, ui.loginCalls)
	assert.Equal(t, []models.Session{restored, fresh}, ui.loopSessions)
}

func TestApp_Run_LoginQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quit := errors.New("quit")
	auth := mock.NewMockClientAuthService(ctrl)
	auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, service.ErrNotLoggedIn)

	ui := &fakeUI{loginErr: quit}
	err := newTestApp(t, auth, ui).Run()

	assert.ErrorIs(t, err, quit)
	assert.Empty(t, ui.loopSessions)
}

func TestApp_Run_RestoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("disk I/O error")
	auth := mock.NewMockClientAuthService(ctrl)
	auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, boom)

	ui := &fakeUI{}
	err := newTestApp(t, auth, ui).Run()

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, ui.loginCalls)
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)
}
