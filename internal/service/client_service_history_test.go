// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-archive/internal/mock"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientHistoryService_AddStampsTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockHistoryRepository(ctrl)
	svc := NewClientHistoryService(repo).(*clientHistoryService)
	now := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	repo.EXPECT().Add(ctx, models.HistoryItem{ID: "1", Title: "A", Time: now}).Return(nil)

	require.NoError(t, svc.Add(ctx, models.HistoryItem{ID: "1", Title: "A"}))
}

func TestClientHistoryService_ListAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockHistoryRepository(ctrl)
	svc := NewClientHistoryService(repo)
	ctx := context.Background()

	want := []models.HistoryItem{{ID: "2"}, {ID: "1"}}
	repo.EXPECT().List(ctx).Return(want, nil)
	repo.EXPECT().Clear(ctx).Return(errors.New("locked"))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Error(t, svc.Clear(ctx))
}
