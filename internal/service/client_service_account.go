// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/go-doc-archive/internal/adapter"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/internal/validators"
	"github.com/MKhiriev/go-doc-archive/models"
)

type clientAccountService struct {
	sessions  store.SessionRepository
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAccountService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAccountService {
	return &clientAccountService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger,
	}
}

func (s *clientAccountService) UpdateProfile(ctx context.Context, form models.ProfileForm) (models.User, error) {
	if err := s.validator.Validate(ctx, form); err != nil {
		return models.User{}, err
	}

	session, err := loadSession(ctx, s.sessions)
	if err != nil {
		return models.User{}, err
	}

	current := session.User
	updated, err := s.adapter.UpdateProfile(ctx, models.ProfileUpdate{
		UserID:   current.UserID,
		FullName: strings.TrimSpace(form.FullName),
		Email:    strings.TrimSpace(form.Email),
		Username: current.Username,
		Role:     current.Role,
		IsActive: current.IsActive,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientAccountService.UpdateProfile").Int64("user_id", current.UserID).Msg("error updating profile")
		return models.User{}, mapAdapterError(err)
	}
	if updated.ProfilePicture == "" {
		updated.ProfilePicture = current.ProfilePicture
	}

	session.User = updated
	if err = s.sessions.Save(ctx, session); err != nil {
		return models.User{}, fmt.Errorf("save updated profile: %w", err)
	}
	return updated, nil
}

func (s *clientAccountService) UploadAvatar(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("stat avatar: %w", err)
	}

	session, err := loadSession(ctx, s.sessions)
	if err != nil {
		return "", err
	}

	url, err := s.adapter.UploadAvatar(ctx, session.User.UserID, path)
	if err != nil {
		s.logger.Err(err).Str("func", "clientAccountService.UploadAvatar").Int64("user_id", session.User.UserID).Msg("error uploading avatar")
		return "", mapAdapterError(err)
	}

	session.User.ProfilePicture = url
	if err = s.sessions.Save(ctx, session); err != nil {
		return "", fmt.Errorf("save avatar url: %w", err)
	}
	return url, nil
}

func (s *clientAccountService) ChangePassword(ctx context.Context, form models.PasswordForm) error {
	if err := s.validator.Validate(ctx, form); err != nil {
		return err
	}

	session, err := loadSession(ctx, s.sessions)
	if err != nil {
		return err
	}

	err = s.adapter.ChangePassword(ctx, models.PasswordChange{
		UserID:      session.User.UserID,
		NewPassword: form.NewPassword,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientAccountService.ChangePassword").Int64("user_id", session.User.UserID).Msg("error changing password")
		return mapAdapterError(err)
	}
	return nil
}

// loadSession returns the saved session or ErrNotLoggedIn.
func loadSession(ctx context.Context, sessions store.SessionRepository) (models.Session, error) {
	session, err := sessions.Load(ctx)
	if errors.Is(err, store.ErrNoSession) {
		return models.Session{}, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}
