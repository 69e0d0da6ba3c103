package dto

import (
	"github.com/learnaray/learnaray/internal/domain/entity"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// MessageResponse is the uniform envelope for operations that return no data.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterResponse carries the activation token the client must echo back
// together with the emailed code.
type RegisterResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ActivationToken string `json:"activation_token"`
}

// UserResponse wraps a sanitized user.
type UserResponse struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}

// UsersResponse wraps the admin user list.
type UsersResponse struct {
	Success bool          `json:"success"`
	Users   []entity.User `json:"users"`
}

// LoginResponse carries the user and the token pair. Tokens also travel as
// HTTP-only cookies; the body copy is for non-browser clients.
type LoginResponse struct {
	Success      bool         `json:"success"`
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// CourseResponse wraps a single course document.
type CourseResponse struct {
	Success bool           `json:"success"`
	Course  *entity.Course `json:"course"`
}

// CoursesResponse wraps a course list.
type CoursesResponse struct {
	Success bool            `json:"success"`
	Courses []entity.Course `json:"courses"`
}

// CourseContentResponse wraps the full content list of a purchased course.
type CourseContentResponse struct {
	Success bool                   `json:"success"`
	Content []entity.CourseContent `json:"content"`
}

// NotificationsResponse wraps the notification list.
type NotificationsResponse struct {
	Success       bool                  `json:"success"`
	Notifications []entity.Notification `json:"notifications"`
}

// AnalyticsResponse wraps the rolling 12-month creation counts.
type AnalyticsResponse struct {
	Success bool                        `json:"success"`
	Months  []usecasecontract.MonthData `json:"months"`
}
