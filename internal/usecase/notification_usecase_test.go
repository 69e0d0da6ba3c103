package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnaray/learnaray/internal/domain/entity"
	"github.com/learnaray/learnaray/internal/usecase"
)

func seedNotification(repo *fakeNotificationRepo, id string, status entity.NotificationStatus, age time.Duration) {
	repo.notifications = append(repo.notifications, &entity.Notification{
		ID:        id,
		UserID:    "u1",
		Title:     "New Question Received",
		Message:   "You have a new question in Getting Started",
		Status:    status,
		CreatedAt: time.Now().Add(-age),
	})
}

func TestMarkNotificationRead(t *testing.T) {
	repo := &fakeNotificationRepo{}
	seedNotification(repo, "n1", entity.NotificationUnread, time.Hour)
	uc := usecase.NewNotificationUsecase(repo, nopLogger{})

	list, err := uc.MarkNotificationRead(context.Background(), "n1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.NotificationRead, list[0].Status)
}

func TestMarkNotificationReadNotFound(t *testing.T) {
	uc := usecase.NewNotificationUsecase(&fakeNotificationRepo{}, nopLogger{})

	_, err := uc.MarkNotificationRead(context.Background(), "missing")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestSweepExpiredRemovesOnlyOldReadNotifications(t *testing.T) {
	repo := &fakeNotificationRepo{}
	seedNotification(repo, "old-read", entity.NotificationRead, 31*24*time.Hour)
	seedNotification(repo, "old-unread", entity.NotificationUnread, 31*24*time.Hour)
	seedNotification(repo, "fresh-read", entity.NotificationRead, time.Hour)
	uc := usecase.NewNotificationUsecase(repo, nopLogger{})

	deleted, err := uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := uc.GetAllNotifications(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(remaining))
	for _, n := range remaining {
		ids = append(ids, n.ID)
	}
	assert.ElementsMatch(t, []string{"old-unread", "fresh-read"}, ids)
}

func TestSweepExpiredIdempotent(t *testing.T) {
	repo := &fakeNotificationRepo{}
	seedNotification(repo, "old-read", entity.NotificationRead, 31*24*time.Hour)
	uc := usecase.NewNotificationUsecase(repo, nopLogger{})

	first, err := uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, second)
}
