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

func TestUsersAnalyticsBuckets(t *testing.T) {
	users := newFakeUserRepo()
	users.users["recent"] = &entity.User{ID: "recent", CreatedAt: time.Now().Add(-24 * time.Hour)}
	users.users["last-cycle"] = &entity.User{ID: "last-cycle", CreatedAt: time.Now().Add(-30 * 24 * time.Hour)}
	users.users["ancient"] = &entity.User{ID: "ancient", CreatedAt: time.Now().Add(-400 * 24 * time.Hour)}

	uc := usecase.NewAnalyticsUsecase(users, newFakeCourseRepo(), &fakeNotificationRepo{}, nopLogger{})

	months, err := uc.UsersAnalytics(context.Background())
	require.NoError(t, err)
	require.Len(t, months, 12)

	// buckets run oldest to newest and cover 28 days each
	var total int64
	for _, m := range months {
		assert.NotEmpty(t, m.Month)
		total += m.Count
	}
	// the 400-day-old user falls outside the 12-bucket window
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1), months[11].Count)
}

func TestCoursesAnalyticsEmpty(t *testing.T) {
	uc := usecase.NewAnalyticsUsecase(newFakeUserRepo(), newFakeCourseRepo(), &fakeNotificationRepo{}, nopLogger{})

	months, err := uc.CoursesAnalytics(context.Background())
	require.NoError(t, err)
	require.Len(t, months, 12)
	for _, m := range months {
		assert.Zero(t, m.Count)
	}
}
