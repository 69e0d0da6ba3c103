package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/learnaray/learnaray/internal/domain/entity"
	handler "github.com/learnaray/learnaray/internal/handler/http"
	"github.com/learnaray/learnaray/internal/handler/http/dto"
	"github.com/learnaray/learnaray/internal/handler/http/mocks"
	"github.com/learnaray/learnaray/internal/usecase"
)

func setupCourseRouter(h *handler.CourseHandler, user *entity.User) *gin.Engine {
	r := gin.New()
	r.GET("/courses", h.GetAllCourses)
	r.GET("/courses/:id", h.GetSingleCourse)
	if user != nil {
		authed := r.Group("/", withUser(user))
		authed.GET("/courses/:id/content", h.GetCourseContent)
		authed.POST("/courses/questions", h.AddQuestion)
		authed.POST("/courses/answers", h.AddAnswer)
		authed.POST("/courses/:id/reviews", h.AddReview)
		authed.POST("/courses/reviews/replies", h.AddReviewReply)
		authed.DELETE("/courses/:id", h.DeleteCourse)
	}
	return r
}

func buyer() *entity.User {
	return &entity.User{
		ID:      "buyer-1",
		Name:    "Buyer",
		Email:   "buyer@example.com",
		Role:    entity.UserRoleUser,
		Courses: []entity.CourseAccess{{CourseID: "mock-course-id"}},
	}
}

func TestGetAllCourses(t *testing.T) {
	mockUsecase := mocks.NewMockCourseUsecase()
	h := handler.NewCourseHandler(mockUsecase)
	r := setupCourseRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courses", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-course-id")
}

func TestGetSingleCourseNotFound(t *testing.T) {
	mockUsecase := mocks.NewMockCourseUsecase()
	mockUsecase.ShouldFailGetSingle = true
	mockUsecase.FailErr = usecase.ErrNotFound
	h := handler.NewCourseHandler(mockUsecase)
	r := setupCourseRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courses/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGetCourseContentForbidden(t *testing.T) {
	mockUsecase := mocks.NewMockCourseUsecase()
	mockUsecase.ShouldFailGetContent = true
	mockUsecase.FailErr = usecase.ErrForbidden
	h := handler.NewCourseHandler(mockUsecase)
	r := setupCourseRouter(h, buyer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courses/mock-course-id/content", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddQuestion(t *testing.T) {
	mockUsecase := mocks.NewMockCourseUsecase()
	h := handler.NewCourseHandler(mockUsecase)
	r := setupCourseRouter(h, buyer())

	w := postJSON(t, r, "/courses/questions", dto.AddQuestionRequest{
		CourseID:  "mock-course-id",
		ContentID: "11111111-1111-1111-1111-111111111111",
		Question:  "What is a goroutine?",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-course-id")
}

func TestAddQuestionMissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockCourseUsecase()
	h := handler.NewCourseHandler(mockUsecase)
	r := setupCourseRouter(h, buyer())

	w := postJSON(t, r, "/courses/questions", dto.AddQuestionRequest{
		CourseID: "mock-course-id",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddQuestionInvalidContentID(t *testing.T) {
	mockUsecase := mocks.NewMockCourseUsecase()
	mockUsecase.ShouldFailQuestion = true
	mockUsecase.FailErr = usecase.ErrValidation
	h := handler.NewCourseHandler(mockUsecase)
	r := setupCourseRouter(h, buyer())

	w := postJSON(t, r, "/courses/questions", dto.AddQuestionRequest{
		CourseID:  "mock-course-id",
		ContentID: "not-a-valid-id",
		Question:  "What is a goroutine?",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddAnswer(t *testing.T) {
	mockUsecase := mocks.NewMockCourseUsecase()
	h := handler.NewCourseHandler(mockUsecase)
	r := setupCourseRouter(h, buyer())

	w := postJSON(t, r, "/courses/answers", dto.AddAnswerRequest{
		CourseID:   "mock-course-id",
		ContentID:  "11111111-1111-1111-1111-111111111111",
		QuestionID: "q1",
		Answer:     "A lightweight thread",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddReview(t *testing.T) {
	mockUsecase := mocks.NewMockCourseUsecase()
	h := handler.NewCourseHandler(mockUsecase)
	r := setupCourseRouter(h, buyer())

	w := postJSON(t, r, "/courses/mock-course-id/reviews", dto.AddReviewRequest{
		Rating:  5,
		Comment: "excellent",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddReviewForbidden(t *testing.T) {
	mockUsecase := mocks.NewMockCourseUsecase()
	mockUsecase.ShouldFailReview = true
	mockUsecase.FailErr = usecase.ErrForbidden
	h := handler.NewCourseHandler(mockUsecase)
	r := setupCourseRouter(h, buyer())

	w := postJSON(t, r, "/courses/mock-course-id/reviews", dto.AddReviewRequest{
		Rating:  5,
		Comment: "excellent",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteCourse(t *testing.T) {
	mockUsecase := mocks.NewMockCourseUsecase()
	h := handler.NewCourseHandler(mockUsecase)
	r := setupCourseRouter(h, buyer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/courses/mock-course-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Course deleted successfully")
}
