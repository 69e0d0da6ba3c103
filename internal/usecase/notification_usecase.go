package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/learnaray/learnaray/internal/domain/contract"
	"github.com/learnaray/learnaray/internal/domain/entity"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// NotificationRetention is how long read notifications are kept before the
// sweep removes them.
const NotificationRetention = 30 * 24 * time.Hour

// NotificationUsecase implements the INotificationUseCase interface.
type NotificationUsecase struct {
	notificationRepo contract.INotificationRepository
	logger           usecasecontract.IAppLogger
}

// NewNotificationUsecase creates a new NotificationUsecase instance.
func NewNotificationUsecase(repo contract.INotificationRepository, logger usecasecontract.IAppLogger) *NotificationUsecase {
	return &NotificationUsecase{notificationRepo: repo, logger: logger}
}

// check if NotificationUsecase implements the INotificationUseCase
var _ usecasecontract.INotificationUseCase = (*NotificationUsecase)(nil)

// GetAllNotifications returns every notification, newest first.
func (uc *NotificationUsecase) GetAllNotifications(ctx context.Context) ([]entity.Notification, error) {
	notifications, err := uc.notificationRepo.GetAllNotifications(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list notifications: %v", err)
		return nil, ErrInternal
	}
	return notifications, nil
}

// MarkNotificationRead flips the status to read and returns the refreshed
// list, newest first.
func (uc *NotificationUsecase) MarkNotificationRead(ctx context.Context, id string) ([]entity.Notification, error) {
	notification, err := uc.notificationRepo.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: notification not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to load notification %s: %v", id, err)
		return nil, ErrInternal
	}

	notification.Status = entity.NotificationRead
	if err := uc.notificationRepo.UpdateNotification(ctx, notification); err != nil {
		uc.logger.Errorf("failed to update notification %s: %v", id, err)
		return nil, ErrInternal
	}

	return uc.GetAllNotifications(ctx)
}

// SweepExpired deletes every read notification older than the retention
// window. Safe to run repeatedly.
func (uc *NotificationUsecase) SweepExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-NotificationRetention)
	deleted, err := uc.notificationRepo.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		uc.logger.Errorf("notification sweep failed: %v", err)
		return 0, ErrInternal
	}
	if deleted > 0 {
		uc.logger.Infof("notification sweep removed %d read notifications", deleted)
	}
	return deleted, nil
}
