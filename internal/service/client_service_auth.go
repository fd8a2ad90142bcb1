// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-doc-archive/internal/adapter"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/store"
	"github.com/MKhiriev/go-doc-archive/internal/utils"
	"github.com/MKhiriev/go-doc-archive/internal/validators"
	"github.com/MKhiriev/go-doc-archive/models"
)

const defaultRole = "USER"

type clientAuthService struct {
	sessions  store.SessionRepository
	adapter   adapter.ServerAdapter
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, err
	}

	result, err := a.adapter.Login(ctx, creds)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Str("username", creds.Username).Msg("login failed")
		if errors.Is(err, adapter.ErrUnauthorized) ||
			errors.Is(err, adapter.ErrBadRequest) ||
			errors.Is(err, adapter.ErrUnsuccessful) {
			return models.Session{}, fmt.Errorf("%w: %s", ErrWrongCredentials, serverReason(err))
		}
		return models.Session{}, mapAdapterError(err)
	}

	user := result.User
	// у некоторых версий бэкенда userId есть только в токене
	if user.UserID == 0 {
		id, err := utils.ParseUserIDFromJWT(result.Token)
		if err != nil {
			a.logger.Warn().Err(err).Str("func", "clientAuthService.Login").Msg("token carries no numeric subject")
		} else {
			user.UserID = id
		}
	}
	if user.Username == "" {
		user.Username = creds.Username
	}
	if user.Role == "" {
		user.Role = defaultRole
	}

	session := models.Session{User: user, Token: result.Token, SavedAt: a.now().UTC()}
	if err = a.sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	a.adapter.SetToken(result.Token)
	return session, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := loadSession(ctx, a.sessions)
	if err != nil {
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
