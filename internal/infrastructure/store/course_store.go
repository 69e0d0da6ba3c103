package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnaray/learnaray/internal/domain/contract"
	"github.com/learnaray/learnaray/internal/domain/entity"
	"github.com/learnaray/learnaray/internal/infrastructure/metrics"
)

// allCoursesKey is the aggregate list entry. It carries no expiry and relies
// on explicit invalidation by every write that changes the underlying set.
const allCoursesKey = "allCourses"

// CourseStore is the read-through cache for course documents.
type CourseStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
}

func NewCourseStore(rdb *redis.Client) *CourseStore {
	return &CourseStore{
		rdb:       rdb,
		detailTTL: 7 * 24 * time.Hour, // 604800s
	}
}

var _ contract.ICourseCache = (*CourseStore)(nil)

func courseKey(courseID string) string { return fmt.Sprintf("course:%s", courseID) }

func (c *CourseStore) GetCourse(ctx context.Context, courseID string) (*entity.Course, bool, error) {
	b, err := c.rdb.Get(ctx, courseKey(courseID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.CacheMisses.WithLabelValues("course").Inc()
			return nil, false, nil
		}
		return nil, false, err
	}
	var course entity.Course
	if err := json.Unmarshal(b, &course); err != nil {
		metrics.CacheMisses.WithLabelValues("course").Inc()
		return nil, false, nil
	}
	metrics.CacheHits.WithLabelValues("course").Inc()
	return &course, true, nil
}

func (c *CourseStore) SetCourse(ctx context.Context, course *entity.Course) error {
	data, err := json.Marshal(course)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, courseKey(course.ID), data, c.detailTTL).Err()
}

func (c *CourseStore) DeleteCourse(ctx context.Context, courseID string) error {
	return c.rdb.Del(ctx, courseKey(courseID)).Err()
}

func (c *CourseStore) GetAllCourses(ctx context.Context) ([]entity.Course, bool, error) {
	b, err := c.rdb.Get(ctx, allCoursesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.CacheMisses.WithLabelValues("course_list").Inc()
			return nil, false, nil
		}
		return nil, false, err
	}
	var courses []entity.Course
	if err := json.Unmarshal(b, &courses); err != nil {
		metrics.CacheMisses.WithLabelValues("course_list").Inc()
		return nil, false, nil
	}
	metrics.CacheHits.WithLabelValues("course_list").Inc()
	return courses, true, nil
}

func (c *CourseStore) SetAllCourses(ctx context.Context, courses []entity.Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return err
	}
	// no TTL: staleness is handled by explicit invalidation
	return c.rdb.Set(ctx, allCoursesKey, data, 0).Err()
}

func (c *CourseStore) InvalidateAllCourses(ctx context.Context) error {
	return c.rdb.Del(ctx, allCoursesKey).Err()
}
