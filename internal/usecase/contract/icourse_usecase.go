package usecasecontract

import (
	"context"

	"github.com/learnaray/learnaray/internal/domain/entity"
)

// CourseInput carries the writable catalog fields of a course. Thumbnail is
// raw image data handed to the image host when present.
type CourseInput struct {
	Name           string
	Description    string
	Price          float64
	EstimatedPrice float64
	Level          string
	Tags           []string
	Thumbnail      string
	CourseData     []entity.CourseContent
}

// ICourseUseCase defines the interface for catalog reads and the nested
// mutation engine.
type ICourseUseCase interface {
	CreateCourse(ctx context.Context, input CourseInput) (*entity.Course, error)
	EditCourse(ctx context.Context, courseID string, input CourseInput) (*entity.Course, error)
	// GetSingleCourse is a read-through cached read with heavy fields stripped.
	GetSingleCourse(ctx context.Context, courseID string) (*entity.Course, error)
	// GetAllCourses serves the unexpiring aggregate cache entry.
	GetAllCourses(ctx context.Context) ([]entity.Course, error)
	// GetCourseContent returns the full content list; the actor must own the course.
	GetCourseContent(ctx context.Context, actor *entity.User, courseID string) ([]entity.CourseContent, error)
	AddQuestion(ctx context.Context, actor *entity.User, courseID, contentID, text string) (*entity.Course, error)
	AddAnswer(ctx context.Context, actor *entity.User, courseID, contentID, questionID, text string) (*entity.Course, error)
	AddReview(ctx context.Context, actor *entity.User, courseID string, rating float64, comment string) (*entity.Course, error)
	AddReviewReply(ctx context.Context, actor *entity.User, courseID, reviewID, text string) (*entity.Course, error)
	GetAdminCourses(ctx context.Context) ([]entity.Course, error)
	DeleteCourse(ctx context.Context, courseID string) error
}
