// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/models"
)

type sessionRepository struct {
	kv     KeyValueRepository
	logger *logger.Logger
}

func NewSessionRepository(kv KeyValueRepository, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		kv:     kv,
		logger: logger,
	}
}

func (s *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	raw, err := s.kv.Get(ctx, KeySession)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(raw, &session); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Load").
			Msg("saved session is corrupt")
		return models.Session{}, fmt.Errorf("%w: %w: %w", ErrNoSession, ErrDecodingValue, err)
	}

	return session, nil
}

func (s *sessionRepository) Save(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return s.kv.Set(ctx, KeySession, payload)
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, KeySession)
}
