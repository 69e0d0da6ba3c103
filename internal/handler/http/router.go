package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/learnaray/learnaray/internal/handler/http/middleware"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

type Router struct {
	userHandler         *UserHandler
	courseHandler       *CourseHandler
	notificationHandler *NotificationHandler
	analyticsHandler    *AnalyticsHandler
	authHandler         *AuthHandler
	tokens              middleware.TokenParser
	sessions            middleware.SessionReader
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	courseUsecase usecasecontract.ICourseUseCase,
	notificationUsecase usecasecontract.INotificationUseCase,
	analyticsUsecase usecasecontract.IAnalyticsUseCase,
	tokens middleware.TokenParser,
	sessions middleware.SessionReader,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		userHandler:         NewUserHandler(userUsecase, config),
		courseHandler:       NewCourseHandler(courseUsecase),
		notificationHandler: NewNotificationHandler(notificationUsecase),
		analyticsHandler:    NewAnalyticsHandler(analyticsUsecase),
		authHandler:         NewAuthHandler(userUsecase, config),
		tokens:              tokens,
		sessions:            sessions,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/activate", r.userHandler.Activate)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	// Public catalog routes
	courses := v1.Group("/courses")
	{
		courses.GET("", r.courseHandler.GetAllCourses)
		courses.GET("/:id", r.courseHandler.GetSingleCourse)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(r.tokens, r.sessions))
	{
		protected.POST("/auth/logout", r.userHandler.Logout)

		protected.GET("/me", r.userHandler.GetUserInfo)
		protected.PUT("/me", r.userHandler.UpdateUserInfo)
		protected.PUT("/me/password", r.userHandler.UpdatePassword)
		protected.PUT("/me/avatar", r.userHandler.UpdateAvatar)

		protected.GET("/courses/:id/content", r.courseHandler.GetCourseContent)
		protected.POST("/courses/questions", r.courseHandler.AddQuestion)
		protected.POST("/courses/answers", r.courseHandler.AddAnswer)
		protected.POST("/courses/:id/reviews", r.courseHandler.AddReview)

		// Admin routes
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/users", r.userHandler.GetAllUsers)
			admin.PUT("/users/role", r.userHandler.UpdateUserRole)
			admin.DELETE("/users/:id", r.userHandler.DeleteUser)

			admin.GET("/courses", r.courseHandler.GetAdminCourses)
			admin.POST("/courses", r.courseHandler.CreateCourse)
			admin.PUT("/courses/:id", r.courseHandler.EditCourse)
			admin.DELETE("/courses/:id", r.courseHandler.DeleteCourse)
			admin.POST("/courses/reviews/replies", r.courseHandler.AddReviewReply)

			admin.GET("/notifications", r.notificationHandler.GetAllNotifications)
			admin.PUT("/notifications/:id", r.notificationHandler.MarkNotificationRead)

			admin.GET("/analytics/users", r.analyticsHandler.GetUsersAnalytics)
			admin.GET("/analytics/courses", r.analyticsHandler.GetCoursesAnalytics)
			admin.GET("/analytics/notifications", r.analyticsHandler.GetNotificationsAnalytics)
		}
	}
}
