package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnaray/learnaray/internal/domain/entity"
	"github.com/learnaray/learnaray/internal/handler/http/dto"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow
// interface-based dependency injection (for testing/mocking).
type UserHandlerInterface interface {
	Register(*gin.Context)
	Activate(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	RefreshToken(*gin.Context)
	GetUserInfo(*gin.Context)
	UpdateUserInfo(*gin.Context)
	UpdatePassword(*gin.Context)
	UpdateAvatar(*gin.Context)
	GetAllUsers(*gin.Context)
	UpdateUserRole(*gin.Context)
	DeleteUser(*gin.Context)
}

var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	config      usecasecontract.IConfigProvider
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, config usecasecontract.IConfigProvider) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		config:      config,
	}
}

// Register handles signup. Nothing is persisted yet; the client receives an
// activation token and the code arrives by mail.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	token, err := h.userUsecase.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.RegisterResponse{
		Success:         true,
		Message:         "Please check your email to activate your account",
		ActivationToken: token,
	})
}

// Activate verifies the token and code pair and persists the user.
func (h *UserHandler) Activate(c *gin.Context) {
	var req dto.ActivateRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Activate(c.Request.Context(), req.ActivationToken, req.ActivationCode)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.UserResponse{Success: true, User: user})
}

// Login authenticates credentials and sets the auth cookie pair.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	setAuthCookies(c, h.config, accessToken, refreshToken)
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		Success:      true,
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout drops the session entry and expires both cookies.
func (h *UserHandler) Logout(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "please login to access this resource")
		return
	}

	if err := h.userUsecase.Logout(c.Request.Context(), user.ID); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	clearAuthCookies(c, h.config)
	MessageHandler(c, http.StatusOK, "Logged out successfully")
}

// RefreshToken exchanges the refresh cookie for a fresh token pair.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		ErrorHandler(c, http.StatusUnauthorized, "could not refresh token")
		return
	}

	user, accessToken, newRefreshToken, err := h.userUsecase.RefreshSession(c.Request.Context(), refreshToken)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	setAuthCookies(c, h.config, accessToken, newRefreshToken)
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		Success:      true,
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	})
}

// GetUserInfo returns the current user's profile.
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "please login to access this resource")
		return
	}

	user, err := h.userUsecase.GetUserInfo(c.Request.Context(), actor.ID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserResponse{Success: true, User: user})
}

// UpdateUserInfo updates the current user's name and email.
func (h *UserHandler) UpdateUserInfo(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "please login to access this resource")
		return
	}

	var req dto.UpdateUserInfoRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.UpdateUserInfo(c.Request.Context(), actor.ID, req.Name, req.Email)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserResponse{Success: true, User: user})
}

// UpdatePassword changes the current user's password.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "please login to access this resource")
		return
	}

	var req dto.UpdatePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.UpdatePassword(c.Request.Context(), actor.ID, req.OldPassword, req.NewPassword)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserResponse{Success: true, User: user})
}

// UpdateAvatar replaces the current user's hosted avatar image.
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "please login to access this resource")
		return
	}

	var req dto.UpdateAvatarRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.UpdateAvatar(c.Request.Context(), actor.ID, req.Avatar)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserResponse{Success: true, User: user})
}

// GetAllUsers returns every user, admin only.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userUsecase.GetAllUsers(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UsersResponse{Success: true, Users: users})
}

// UpdateUserRole changes a user's role by email, admin only.
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req dto.UpdateUserRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.UpdateUserRole(c.Request.Context(), req.Email, entity.UserRole(req.Role))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserResponse{Success: true, User: user})
}

// DeleteUser removes a user and their session, admin only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	if err := h.userUsecase.DeleteUser(c.Request.Context(), userID); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted successfully")
}
