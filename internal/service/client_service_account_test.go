// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-doc-archive/internal/adapter"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/mock"
	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/internal/validators"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testSession() models.Session {
	return models.Session{
		User: models.User{
			UserID:         11,
			Username:       "student",
			FullName:       "Old Name",
			Email:          "old@example.com",
			Role:           "USER",
			IsActive:       true,
			ProfilePicture: "https://cdn/old.png",
		},
		Token: "tok",
	}
}

func newTestAccountSvc(t *testing.T, ctrl *gomock.Controller) (ClientAccountService, *mock.MockSessionRepository, *mock.MockServerAdapter) {
	t.Helper()
	sessions := mock.NewMockSessionRepository(ctrl)
	srv := mock.NewMockServerAdapter(ctrl)

	return NewClientAccountService(sessions, srv, validators.NewAccountValidator(), logger.Nop()), sessions, srv
}

// ── UpdateProfile ────────────────────────────────────────────────────────────

func TestClientAccountService_UpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, srv := newTestAccountSvc(t, ctrl)
	ctx := context.Background()
	session := testSession()

	returned := session.User
	returned.FullName = "New Name"
	returned.Email = "new@example.com"
	returned.ProfilePicture = ""

	gomock.InOrder(
		sessions.EXPECT().Load(ctx).Return(session, nil),
		srv.EXPECT().UpdateProfile(ctx, models.ProfileUpdate{
			UserID:   11,
			FullName: "New Name",
			Email:    "new@example.com",
			Username: "student",
			Role:     "USER",
			IsActive: true,
		}).Return(returned, nil),
		sessions.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.Session) error {
			assert.Equal(t, "New Name", s.User.FullName)
			assert.Equal(t, "https://cdn/old.png", s.User.ProfilePicture, "avatar must survive a profile update")
			assert.Equal(t, "tok", s.Token)
			return nil
		}),
	)

	user, err := svc.UpdateProfile(ctx, models.ProfileForm{FullName: "  New Name ", Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.FullName)
}

func TestClientAccountService_UpdateProfile_ValidationFailsFirst(t *testing.T) {
	tests := []struct {
		name    string
		form    models.ProfileForm
		wantErr error
	}{
		{name: "blank name", form: models.ProfileForm{FullName: " ", Email: "a@b.c"}, wantErr: validators.ErrEmptyField},
		{name: "blank email", form: models.ProfileForm{FullName: "A", Email: ""}, wantErr: validators.ErrEmptyField},
		{name: "bad email", form: models.ProfileForm{FullName: "A", Email: "not-an-email"}, wantErr: validators.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, _ := newTestAccountSvc(t, ctrl)

			_, err := svc.UpdateProfile(context.Background(), tt.form)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientAccountService_UpdateProfile_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().Load(ctx).Return(models.Session{}, store.ErrNoSession)

	_, err := svc.UpdateProfile(ctx, models.ProfileForm{FullName: "A", Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAccountService_UpdateProfile_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, srv := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().Load(ctx).Return(testSession(), nil)
	srv.EXPECT().UpdateProfile(ctx, gomock.Any()).Return(models.User{}, fmt.Errorf("%w: expired", adapter.ErrUnauthorized))
	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateProfile(ctx, models.ProfileForm{FullName: "A", Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── UploadAvatar ─────────────────────────────────────────────────────────────

func TestClientAccountService_UploadAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, srv := newTestAccountSvc(t, ctrl)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	sessions.EXPECT().Load(ctx).Return(testSession(), nil)
	srv.EXPECT().UploadAvatar(ctx, int64(11), path).Return("https://cdn/new.png", nil)
	sessions.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.Session) error {
		assert.Equal(t, "https://cdn/new.png", s.User.ProfilePicture)
		return nil
	})

	url, err := svc.UploadAvatar(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/new.png", url)
}

func TestClientAccountService_UploadAvatar_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, srv := newTestAccountSvc(t, ctrl)
	srv.EXPECT().UploadAvatar(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UploadAvatar(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = svc.UploadAvatar(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestClientAccountService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, srv := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().Load(ctx).Return(testSession(), nil)
	srv.EXPECT().ChangePassword(ctx, models.PasswordChange{UserID: 11, NewPassword: "secret1"}).Return(nil)

	require.NoError(t, svc.ChangePassword(ctx, models.PasswordForm{NewPassword: "secret1", Confirm: "secret1"}))
}

func TestClientAccountService_ChangePassword_Validation(t *testing.T) {
	tests := []struct {
		name    string
		form    models.PasswordForm
		wantErr error
	}{
		{name: "empty", form: models.PasswordForm{}, wantErr: validators.ErrEmptyField},
		{name: "mismatch", form: models.PasswordForm{NewPassword: "secret1", Confirm: "secret2"}, wantErr: validators.ErrPasswordMismatch},
		{name: "too short", form: models.PasswordForm{NewPassword: "abc", Confirm: "abc"}, wantErr: validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, srv := newTestAccountSvc(t, ctrl)
			srv.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).Times(0)

			err := svc.ChangePassword(context.Background(), tt.form)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
