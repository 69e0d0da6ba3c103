package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnaray/learnaray/internal/handler/http/dto"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// CourseHandlerInterface defines the methods for course handler to allow
// interface-based dependency injection (for testing/mocking).
type CourseHandlerInterface interface {
	CreateCourse(*gin.Context)
	EditCourse(*gin.Context)
	GetSingleCourse(*gin.Context)
	GetAllCourses(*gin.Context)
	GetCourseContent(*gin.Context)
	AddQuestion(*gin.Context)
	AddAnswer(*gin.Context)
	AddReview(*gin.Context)
	AddReviewReply(*gin.Context)
	GetAdminCourses(*gin.Context)
	DeleteCourse(*gin.Context)
}

var _ CourseHandlerInterface = (*CourseHandler)(nil)

type CourseHandler struct {
	courseUsecase usecasecontract.ICourseUseCase
}

func NewCourseHandler(courseUsecase usecasecontract.ICourseUseCase) *CourseHandler {
	return &CourseHandler{courseUsecase: courseUsecase}
}

func courseInputFromRequest(req dto.CourseRequest) usecasecontract.CourseInput {
	return usecasecontract.CourseInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		EstimatedPrice: req.EstimatedPrice,
		Level:          req.Level,
		Tags:           req.Tags,
		Thumbnail:      req.Thumbnail,
		CourseData:     req.CourseData,
	}
}

// CreateCourse creates a catalog entry, admin only.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CourseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.CreateCourse(c.Request.Context(), courseInputFromRequest(req))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.CourseResponse{Success: true, Course: course})
}

// EditCourse applies a partial update to catalog fields, admin only.
func (h *CourseHandler) EditCourse(c *gin.Context) {
	var req dto.CourseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.EditCourse(c.Request.Context(), c.Param("id"), courseInputFromRequest(req))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseResponse{Success: true, Course: course})
}

// GetSingleCourse serves one course with heavy content fields stripped.
func (h *CourseHandler) GetSingleCourse(c *gin.Context) {
	course, err := h.courseUsecase.GetSingleCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseResponse{Success: true, Course: course})
}

// GetAllCourses serves the public catalog list.
func (h *CourseHandler) GetAllCourses(c *gin.Context) {
	courses, err := h.courseUsecase.GetAllCourses(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CoursesResponse{Success: true, Courses: courses})
}

// GetCourseContent serves the full content list for a purchased course.
func (h *CourseHandler) GetCourseContent(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "please login to access this resource")
		return
	}

	content, err := h.courseUsecase.GetCourseContent(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseContentResponse{Success: true, Content: content})
}

// AddQuestion opens a Q&A thread on a content section.
func (h *CourseHandler) AddQuestion(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "please login to access this resource")
		return
	}

	var req dto.AddQuestionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.AddQuestion(c.Request.Context(), actor, req.CourseID, req.ContentID, req.Question)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseResponse{Success: true, Course: course})
}

// AddAnswer appends a reply to an existing question.
func (h *CourseHandler) AddAnswer(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "please login to access this resource")
		return
	}

	var req dto.AddAnswerRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.AddAnswer(c.Request.Context(), actor, req.CourseID, req.ContentID, req.QuestionID, req.Answer)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseResponse{Success: true, Course: course})
}

// AddReview attaches a rated comment to a purchased course.
func (h *CourseHandler) AddReview(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "please login to access this resource")
		return
	}

	var req dto.AddReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.AddReview(c.Request.Context(), actor, c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseResponse{Success: true, Course: course})
}

// AddReviewReply appends an admin reply to a review.
func (h *CourseHandler) AddReviewReply(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "please login to access this resource")
		return
	}

	var req dto.AddReviewReplyRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.AddReviewReply(c.Request.Context(), actor, req.CourseID, req.ReviewID, req.Comment)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseResponse{Success: true, Course: course})
}

// GetAdminCourses serves the full course list straight from the store, admin only.
func (h *CourseHandler) GetAdminCourses(c *gin.Context) {
	courses, err := h.courseUsecase.GetAdminCourses(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CoursesResponse{Success: true, Courses: courses})
}

// DeleteCourse removes a course and its cache entries, admin only.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.courseUsecase.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Course deleted successfully")
}
