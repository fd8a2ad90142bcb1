// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-archive/internal/adapter"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/validators"
	"github.com/MKhiriev/go-doc-archive/models"
)

const (
	ratingNotificationTitle = "Rating submitted"
	ratingNotificationIcon  = "star"
	ratingNotificationColor = "#FFC107"
)

type clientRatingService struct {
	adapter       adapter.ServerAdapter
	notifications ClientNotificationService
	validator     validators.Validator

	logger *logger.Logger
}

func NewClientRatingService(serverAdapter adapter.ServerAdapter, notifications ClientNotificationService, validator validators.Validator, logger *logger.Logger) ClientRatingService {
	return &clientRatingService{
		adapter:       serverAdapter,
		notifications: notifications,
		validator:     validator,
		logger:        logger,
	}
}

func (s *clientRatingService) CheckRateable(ctx context.Context, item models.ArchiveItem) error {
	if !item.HasDocumentID() {
		return ErrNoServerIdentity
	}

	detail, err := s.adapter.GetDocumentDetail(ctx, *item.DocumentID)
	if errors.Is(err, adapter.ErrNotFound) {
		return ErrDocumentDeleted
	}
	if err != nil {
		s.logger.Err(err).Str("func", "clientRatingService.CheckRateable").Int64("document_id", *item.DocumentID).Msg("error checking document")
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	if detail == nil {
		return ErrDocumentDeleted
	}
	return nil
}

func (s *clientRatingService) Submit(ctx context.Context, userID int64, item models.ArchiveItem, rating int, comment string) error {
	if !item.HasDocumentID() {
		return ErrNoServerIdentity
	}

	req := models.RatingRequest{
		UserID:     userID,
		DocumentID: *item.DocumentID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	if err := s.adapter.RateDocument(ctx, req); err != nil {
		s.logger.Err(err).Str("func", "clientRatingService.Submit").Int64("document_id", req.DocumentID).Msg("rating was not accepted")
		if isTransportFailure(err) {
			return mapAdapterError(err)
		}
		return fmt.Errorf("%w: %s", ErrRatingRejected, serverReason(err))
	}

	_, err := s.notifications.Add(ctx, models.NewNotification{
		IconName:  ratingNotificationIcon,
		IconColor: ratingNotificationColor,
		Title:     ratingNotificationTitle,
		Detail:    fmt.Sprintf("You rated %d stars for \"%s\"", rating, item.Title),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientRatingService.Submit").Msg("error adding rating notification")
	}
	return nil
}
