package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/learnaray/learnaray/internal/domain/contract"
	handlerHttp "github.com/learnaray/learnaray/internal/handler/http"
	redisclient "github.com/learnaray/learnaray/internal/infrastructure/cache"
	"github.com/learnaray/learnaray/internal/infrastructure/config"
	"github.com/learnaray/learnaray/internal/infrastructure/database"
	"github.com/learnaray/learnaray/internal/infrastructure/external_services"
	"github.com/learnaray/learnaray/internal/infrastructure/jwt"
	"github.com/learnaray/learnaray/internal/infrastructure/logger"
	"github.com/learnaray/learnaray/internal/infrastructure/mailqueue"
	passwordservice "github.com/learnaray/learnaray/internal/infrastructure/password_service"
	randomgenerator "github.com/learnaray/learnaray/internal/infrastructure/random_generator"
	"github.com/learnaray/learnaray/internal/infrastructure/repository/mongodb"
	"github.com/learnaray/learnaray/internal/infrastructure/scheduler"
	"github.com/learnaray/learnaray/internal/infrastructure/store"
	"github.com/learnaray/learnaray/internal/infrastructure/uuidgen"
	"github.com/learnaray/learnaray/internal/infrastructure/validator"
	"github.com/learnaray/learnaray/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Fatal("REDIS_URL environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Client.Database(dbName)

	// Redis backs sessions and the course cache
	rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
	defer redisclient.Close(rdb)

	// Register custom validators
	validator.RegisterCustomValidators()

	router := gin.Default()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewUserRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	// Dependency Injection: Caches
	sessionCache := store.NewSessionStore(rdb)
	courseCache := store.NewCourseStore(rdb)

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	appLogger := logger.NewAppLogger(os.Getenv("APP_ENV"))
	hasher := passwordservice.NewHasher()
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewUUIDGenerator()

	activationSecret := os.Getenv("ACTIVATION_TOKEN_SECRET")
	accessSecret := os.Getenv("ACCESS_TOKEN_SECRET")
	refreshSecret := os.Getenv("REFRESH_TOKEN_SECRET")
	if activationSecret == "" || accessSecret == "" || refreshSecret == "" {
		log.Fatal("token secret environment variables not set")
	}
	tokenService := jwt.NewManager(
		activationSecret, accessSecret, refreshSecret,
		appConfig.GetActivationTokenExpiry(),
		appConfig.GetAccessTokenExpiry(),
		appConfig.GetRefreshTokenExpiry(),
	)

	mailService := external_services.NewEmailService(
		os.Getenv("EMAIL_HOST"),
		os.Getenv("EMAIL_PORT"),
		os.Getenv("EMAIL_USERNAME"),
		os.Getenv("EMAIL_APP_PASSWORD"),
		os.Getenv("EMAIL_FROM"),
	)

	imageService, err := external_services.NewImageService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Failed to init image service: %v", err)
	}

	// Mail goes through AMQP when a broker is configured, otherwise inline SMTP
	var mailDispatcher contract.IMailDispatcher
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		publisher, err := mailqueue.NewPublisher(amqpURL, os.Getenv("MAIL_QUEUE_NAME"))
		if err != nil {
			log.Fatalf("Failed to connect to AMQP broker: %v", err)
		}
		defer publisher.Close()
		mailDispatcher = publisher
	} else {
		mailDispatcher = mailqueue.NewSyncDispatcher(mailService)
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, sessionCache, tokenService, hasher, mailDispatcher, imageService, appLogger, appConfig, appValidator, uuidGenerator, randomGenerator)
	courseUsecase := usecase.NewCourseUsecase(courseRepo, notificationRepo, courseCache, imageService, mailDispatcher, appLogger, uuidGenerator)
	notificationUsecase := usecase.NewNotificationUsecase(notificationRepo, appLogger)
	analyticsUsecase := usecase.NewAnalyticsUsecase(userRepo, courseRepo, notificationRepo, appLogger)

	// Nightly retention sweep for read notifications
	sweeper := scheduler.NewNotificationSweeper(notificationUsecase, appLogger)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start notification sweeper: %v", err)
	}
	defer sweeper.Stop()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, courseUsecase, notificationUsecase, analyticsUsecase, tokenService, sessionCache, appConfig)
	appRouter.SetupRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
