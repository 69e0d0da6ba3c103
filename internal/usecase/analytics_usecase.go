package usecase

import (
	"context"
	"time"

	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// monthCounter is the slice of repository counting all three analytics
// sources share.
type monthCounter interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// AnalyticsUsecase produces last-12-months creation counts in rolling 28-day
// buckets, matching the admin dashboard contract.
type AnalyticsUsecase struct {
	users         monthCounter
	courses       monthCounter
	notifications monthCounter
	logger        usecasecontract.IAppLogger
}

// NewAnalyticsUsecase creates a new AnalyticsUsecase instance.
func NewAnalyticsUsecase(users, courses, notifications monthCounter, logger usecasecontract.IAppLogger) *AnalyticsUsecase {
	return &AnalyticsUsecase{users: users, courses: courses, notifications: notifications, logger: logger}
}

// check if AnalyticsUsecase implements the IAnalyticsUseCase
var _ usecasecontract.IAnalyticsUseCase = (*AnalyticsUsecase)(nil)

func (uc *AnalyticsUsecase) UsersAnalytics(ctx context.Context) ([]usecasecontract.MonthData, error) {
	return uc.last12Months(ctx, uc.users)
}

func (uc *AnalyticsUsecase) CoursesAnalytics(ctx context.Context) ([]usecasecontract.MonthData, error) {
	return uc.last12Months(ctx, uc.courses)
}

func (uc *AnalyticsUsecase) NotificationsAnalytics(ctx context.Context) ([]usecasecontract.MonthData, error) {
	return uc.last12Months(ctx, uc.notifications)
}

// last12Months walks twelve 28-day buckets back from tomorrow and counts
// documents created in each.
func (uc *AnalyticsUsecase) last12Months(ctx context.Context, counter monthCounter) ([]usecasecontract.MonthData, error) {
	months := make([]usecasecontract.MonthData, 0, 12)
	anchor := time.Now().AddDate(0, 0, 1)

	for i := 11; i >= 0; i-- {
		end := anchor.AddDate(0, 0, -i*28)
		start := end.AddDate(0, 0, -28)
		count, err := counter.CountCreatedBetween(ctx, start, end)
		if err != nil {
			uc.logger.Errorf("failed to count documents for analytics bucket: %v", err)
			return nil, ErrInternal
		}
		months = append(months, usecasecontract.MonthData{
			Month: end.Format("2 Jan 2006"),
			Count: count,
		})
	}
	return months, nil
}
