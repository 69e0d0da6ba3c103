package contract

import (
	"context"
	"time"

	"github.com/learnaray/learnaray/internal/domain/entity"
)

type INotificationRepository interface {
	CreateNotification(ctx context.Context, n *entity.Notification) error
	GetNotificationByID(ctx context.Context, id string) (*entity.Notification, error)
	// GetAllNotifications returns every notification, newest first.
	GetAllNotifications(ctx context.Context) ([]entity.Notification, error)
	UpdateNotification(ctx context.Context, n *entity.Notification) error
	// DeleteReadOlderThan removes every notification that is read and was
	// created before the cutoff. Returns the number deleted.
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	// CountCreatedBetween counts notifications created in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
