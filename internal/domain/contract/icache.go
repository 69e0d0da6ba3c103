package contract

import (
	"context"

	"github.com/learnaray/learnaray/internal/domain/entity"
)

// ISessionCache holds sanitized user snapshots keyed by user id. Entries back
// refresh-token validation, so a deleted entry forces a fresh login.
type ISessionCache interface {
	GetSession(ctx context.Context, userID string) (*entity.User, bool, error)
	// SetSession writes the snapshot with the session TTL (7 days).
	SetSession(ctx context.Context, user *entity.User) error
	DeleteSession(ctx context.Context, userID string) error
}

// ICourseCache is the read-through cache for course documents. Individual
// entries carry a bounded TTL; the aggregate list carries none and relies on
// explicit invalidation.
type ICourseCache interface {
	GetCourse(ctx context.Context, courseID string) (*entity.Course, bool, error)
	// SetCourse writes the entry with the entity TTL (7 days).
	SetCourse(ctx context.Context, course *entity.Course) error
	DeleteCourse(ctx context.Context, courseID string) error

	GetAllCourses(ctx context.Context) ([]entity.Course, bool, error)
	// SetAllCourses writes the aggregate entry without expiry.
	SetAllCourses(ctx context.Context, courses []entity.Course) error
	InvalidateAllCourses(ctx context.Context) error
}
