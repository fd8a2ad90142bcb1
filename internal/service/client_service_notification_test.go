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

type fixedIDs struct {
	id string
}

func (f fixedIDs) Generate() string {
	return f.id
}

func TestClientNotificationService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockNotificationRepository(ctrl)
	svc := NewClientNotificationService(repo, fixedIDs{id: "0190-abc"}, 50).(*clientNotificationService)
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	want := models.NotificationItem{
		ID:        "0190-abc",
		IconName:  "star",
		IconColor: "#FFC107",
		Title:     "Rating submitted",
		Detail:    "detail",
		Time:      now,
		IsRead:    false,
	}
	repo.EXPECT().Add(ctx, want, 50).Return(nil)

	got, err := svc.Add(ctx, models.NewNotification{IconName: "star", IconColor: "#FFC107", Title: "Rating submitted", Detail: "detail"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientNotificationService_Add_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockNotificationRepository(ctrl)
	svc := NewClientNotificationService(repo, fixedIDs{id: "x"}, 0)

	repo.EXPECT().Add(gomock.Any(), gomock.Any(), 0).Return(errors.New("locked"))

	item, err := svc.Add(context.Background(), models.NewNotification{Title: "t"})
	require.Error(t, err)
	assert.Empty(t, item.ID)
}

func TestClientNotificationService_UnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockNotificationRepository(ctrl)
	svc := NewClientNotificationService(repo, fixedIDs{}, 0)
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return([]models.NotificationItem{
		{ID: "3"}, {ID: "2", IsRead: true}, {ID: "1"},
	}, nil)

	n, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	repo.EXPECT().List(ctx).Return(nil, errors.New("locked"))
	_, err = svc.UnreadCount(ctx)
	assert.Error(t, err)
}

func TestClientNotificationService_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockNotificationRepository(ctrl)
	svc := NewClientNotificationService(repo, fixedIDs{}, 0)
	ctx := context.Background()

	repo.EXPECT().MarkAsRead(ctx, "7").Return(nil)
	repo.EXPECT().Clear(ctx).Return(nil)
	repo.EXPECT().List(ctx).Return([]models.NotificationItem{{ID: "7", IsRead: true}}, nil)

	require.NoError(t, svc.MarkAsRead(ctx, "7"))
	require.NoError(t, svc.Clear(ctx))
	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
