package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnaray/learnaray/internal/handler/http/dto"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

type AnalyticsHandler struct {
	analyticsUsecase usecasecontract.IAnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUsecase usecasecontract.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// GetUsersAnalytics serves last-12-months user signups, admin only.
func (h *AnalyticsHandler) GetUsersAnalytics(c *gin.Context) {
	months, err := h.analyticsUsecase.UsersAnalytics(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AnalyticsResponse{Success: true, Months: months})
}

// GetCoursesAnalytics serves last-12-months course creations, admin only.
func (h *AnalyticsHandler) GetCoursesAnalytics(c *gin.Context) {
	months, err := h.analyticsUsecase.CoursesAnalytics(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AnalyticsResponse{Success: true, Months: months})
}

// GetNotificationsAnalytics serves last-12-months notification volume, admin only.
func (h *AnalyticsHandler) GetNotificationsAnalytics(c *gin.Context) {
	months, err := h.analyticsUsecase.NotificationsAnalytics(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AnalyticsResponse{Success: true, Months: months})
}
