package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnaray/learnaray/internal/domain/entity"
	"github.com/learnaray/learnaray/internal/handler/http/dto"
	"github.com/learnaray/learnaray/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Success: false, Message: message})
}

// MessageHandler centralizes success message responses.
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Success: true, Message: message})
}

// SuccessHandler centralizes success responses with a payload.
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// BindAndValidate binds JSON request and validates it.
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// UsecaseErrorHandler maps the sentinel error taxonomy onto status codes.
func UsecaseErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrConflict):
		ErrorHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, usecase.ErrUnauthorized):
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}

// CurrentUser pulls the authenticated user set by the auth middleware.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
