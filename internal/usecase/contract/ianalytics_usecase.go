package usecasecontract

import "context"

// MonthData is one rolling 28-day bucket of document counts.
type MonthData struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// IAnalyticsUseCase produces last-12-months creation counts for admin
// dashboards.
type IAnalyticsUseCase interface {
	UsersAnalytics(ctx context.Context) ([]MonthData, error)
	CoursesAnalytics(ctx context.Context) ([]MonthData, error)
	NotificationsAnalytics(ctx context.Context) ([]MonthData, error)
}
