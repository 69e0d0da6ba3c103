package contract

import (
	"context"
	"time"

	"github.com/learnaray/learnaray/internal/domain/entity"
)

type ICourseRepository interface {
	CreateCourse(ctx context.Context, course *entity.Course) error
	GetCourseByID(ctx context.Context, id string) (*entity.Course, error)
	// GetAllCoursesStripped returns every course with the heavy per-section
	// fields (video url, links, suggestion, questions) excluded by projection.
	GetAllCoursesStripped(ctx context.Context) ([]entity.Course, error)
	// GetAllCourses returns every course in full, newest first.
	GetAllCourses(ctx context.Context) ([]entity.Course, error)
	// UpdateCourseFields applies a partial $set-style update and returns the
	// updated document.
	UpdateCourseFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.Course, error)
	// SaveCourse persists the whole document back, covering every nested
	// change in a single write.
	SaveCourse(ctx context.Context, course *entity.Course) error
	DeleteCourse(ctx context.Context, id string) error
	// CountCreatedBetween counts courses created in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
