package usecasecontract

import (
	"context"

	"github.com/learnaray/learnaray/internal/domain/entity"
)

// INotificationUseCase defines the interface for in-app notifications.
type INotificationUseCase interface {
	GetAllNotifications(ctx context.Context) ([]entity.Notification, error)
	// MarkNotificationRead flips the status and returns the refreshed list.
	MarkNotificationRead(ctx context.Context, id string) ([]entity.Notification, error)
	// SweepExpired deletes read notifications older than the retention window.
	// Idempotent; returns the number removed.
	SweepExpired(ctx context.Context) (int64, error)
}
