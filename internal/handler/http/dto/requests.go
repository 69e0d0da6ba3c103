package dto

import "github.com/learnaray/learnaray/internal/domain/entity"

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ActivateRequest echoes the activation token with the emailed code.
type ActivateRequest struct {
	ActivationToken string `json:"activation_token" binding:"required"`
	ActivationCode  string `json:"activation_code" binding:"required"`
}

// LoginRequest is the credential login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserInfoRequest updates profile fields of the current user.
type UpdateUserInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdatePasswordRequest changes the current user's password.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateAvatarRequest carries raw image data for the image host.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// UpdateUserRoleRequest changes a user's role, addressed by email.
type UpdateUserRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// CourseRequest is the create/edit payload for a course.
type CourseRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Description    string                 `json:"description" binding:"required"`
	Price          float64                `json:"price" binding:"required"`
	EstimatedPrice float64                `json:"estimated_price"`
	Level          string                 `json:"level"`
	Tags           []string               `json:"tags"`
	Thumbnail      string                 `json:"thumbnail"`
	CourseData     []entity.CourseContent `json:"course_data"`
}

// AddQuestionRequest opens a Q&A thread on a content section.
type AddQuestionRequest struct {
	CourseID  string `json:"course_id" binding:"required"`
	ContentID string `json:"content_id" binding:"required"`
	Question  string `json:"question" binding:"required"`
}

// AddAnswerRequest appends a reply to a question.
type AddAnswerRequest struct {
	CourseID   string `json:"course_id" binding:"required"`
	ContentID  string `json:"content_id" binding:"required"`
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// AddReviewRequest attaches a rated comment to a course.
type AddReviewRequest struct {
	Rating  float64 `json:"rating" binding:"required"`
	Comment string  `json:"comment" binding:"required"`
}

// AddReviewReplyRequest appends a reply to a review.
type AddReviewReplyRequest struct {
	CourseID string `json:"course_id" binding:"required"`
	ReviewID string `json:"review_id" binding:"required"`
	Comment  string `json:"comment" binding:"required"`
}
