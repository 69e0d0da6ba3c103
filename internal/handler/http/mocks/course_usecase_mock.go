package mocks

import (
	"context"
	"errors"

	"github.com/learnaray/learnaray/internal/domain/entity"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// MockCourseUsecase is a mock implementation of the course usecase interface.
type MockCourseUsecase struct {
	ShouldFailCreate     bool
	ShouldFailEdit       bool
	ShouldFailGetSingle  bool
	ShouldFailGetAll     bool
	ShouldFailGetContent bool
	ShouldFailQuestion   bool
	ShouldFailAnswer     bool
	ShouldFailReview     bool
	ShouldFailReply      bool
	ShouldFailAdminList  bool
	ShouldFailDelete     bool

	FailErr error

	MockCourse entity.Course
}

var _ usecasecontract.ICourseUseCase = (*MockCourseUsecase)(nil)

func NewMockCourseUsecase() *MockCourseUsecase {
	return &MockCourseUsecase{
		MockCourse: entity.Course{
			ID:          "mock-course-id",
			Name:        "Test Course",
			Description: "A course used in handler tests",
			Price:       49.99,
		},
	}
}

func (m *MockCourseUsecase) fail(fallback string) error {
	if m.FailErr != nil {
		return m.FailErr
	}
	return errors.New(fallback)
}

func (m *MockCourseUsecase) CreateCourse(ctx context.Context, input usecasecontract.CourseInput) (*entity.Course, error) {
	if m.ShouldFailCreate {
		return nil, m.fail("create course failed")
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) EditCourse(ctx context.Context, courseID string, input usecasecontract.CourseInput) (*entity.Course, error) {
	if m.ShouldFailEdit {
		return nil, m.fail("edit course failed")
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) GetSingleCourse(ctx context.Context, courseID string) (*entity.Course, error) {
	if m.ShouldFailGetSingle {
		return nil, m.fail("course not found")
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) GetAllCourses(ctx context.Context) ([]entity.Course, error) {
	if m.ShouldFailGetAll {
		return nil, m.fail("listing courses failed")
	}
	return []entity.Course{m.MockCourse}, nil
}

func (m *MockCourseUsecase) GetCourseContent(ctx context.Context, actor *entity.User, courseID string) ([]entity.CourseContent, error) {
	if m.ShouldFailGetContent {
		return nil, m.fail("content access denied")
	}
	return m.MockCourse.CourseData, nil
}

func (m *MockCourseUsecase) AddQuestion(ctx context.Context, actor *entity.User, courseID, contentID, text string) (*entity.Course, error) {
	if m.ShouldFailQuestion {
		return nil, m.fail("add question failed")
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) AddAnswer(ctx context.Context, actor *entity.User, courseID, contentID, questionID, text string) (*entity.Course, error) {
	if m.ShouldFailAnswer {
		return nil, m.fail("add answer failed")
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) AddReview(ctx context.Context, actor *entity.User, courseID string, rating float64, comment string) (*entity.Course, error) {
	if m.ShouldFailReview {
		return nil, m.fail("add review failed")
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) AddReviewReply(ctx context.Context, actor *entity.User, courseID, reviewID, text string) (*entity.Course, error) {
	if m.ShouldFailReply {
		return nil, m.fail("add review reply failed")
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) GetAdminCourses(ctx context.Context) ([]entity.Course, error) {
	if m.ShouldFailAdminList {
		return nil, m.fail("listing courses failed")
	}
	return []entity.Course{m.MockCourse}, nil
}

func (m *MockCourseUsecase) DeleteCourse(ctx context.Context, courseID string) error {
	if m.ShouldFailDelete {
		return m.fail("delete course failed")
	}
	return nil
}
