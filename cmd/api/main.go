package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"picklrzone/internal/adapter/api"
	"picklrzone/internal/adapter/api/handler"
	apimiddleware "picklrzone/internal/adapter/api/middleware"
	"picklrzone/internal/adapter/api/router"
	"picklrzone/internal/adapter/repository"
	"picklrzone/internal/adapter/repository/memory"
	domainrepo "picklrzone/internal/domain/repository"
	"picklrzone/internal/domain/service"
	"picklrzone/internal/infrastructure/cache"
	"picklrzone/internal/infrastructure/firebase"
	"picklrzone/internal/infrastructure/ratelimit"
	"picklrzone/internal/infrastructure/storage"
	"picklrzone/internal/infrastructure/websocket"
	"picklrzone/internal/usecase"
	"picklrzone/pkg/config"
	"picklrzone/pkg/logger"
	"picklrzone/pkg/response"
)

type repositories struct {
	users       domainrepo.UserRepository
	courses     domainrepo.CourseRepository
	reviews     domainrepo.ReviewRepository
	enrollments domainrepo.EnrollmentRepository
	bookings    domainrepo.BookingRepository
	submissions domainrepo.SubmissionRepository
	chats       domainrepo.ChatRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Setup(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := credentialOptions(cfg)

	var authClient usecase.FirebaseAuthClient
	var firestoreClient *firestore.Client
	if cfg.FirebaseProject != "" {
		firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
		if err != nil {
			logger.Logger().Fatal().Err(err).Msg("Failed to initialize Firebase")
		}

		fbAuth, err := firebaseApp.Auth(ctx)
		if err != nil {
			logger.Logger().Fatal().Err(err).Msg("Failed to initialize Firebase Auth")
		}
		authClient = firebase.NewFirebaseAuthClient(fbAuth)

		if cfg.StorageDriver != "memory" {
			firestoreClient, err = firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
			if err != nil {
				logger.Logger().Fatal().Err(err).Msg("Failed to create Firestore client")
			}
			defer firestoreClient.Close()
		}
	}

	if cfg.IsDevelopment() {
		logger.Warn("Development tokens (%s<uid>) are accepted", firebase.DevTokenPrefix)
		authClient = firebase.NewDevAuthClient(authClient)
	}
	if authClient == nil {
		logger.Logger().Fatal().Msg("FIREBASE_PROJECT_ID is required outside development")
	}

	repos := buildRepositories(firestoreClient)
	repos.courses = withCourseCache(ctx, cfg, repos.courses)

	var checkout service.CheckoutGateway
	if cfg.StripeSecretKey != "" {
		checkout = service.NewStripeCheckoutService(cfg.StripeSecretKey)
	} else {
		if !cfg.IsDevelopment() {
			logger.Logger().Fatal().Msg("STRIPE_SECRET_KEY is required outside development")
		}
		logger.Warn("STRIPE_SECRET_KEY not set, checkout sessions are simulated and paid immediately")
		checkout = service.NewSimplifiedCheckoutService()
	}

	var uploads service.FileUploadService
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.ServiceAccountID, cfg.UploadURLExpiry, cfg.CORSOrigins, opts...)
		if err != nil {
			logger.Logger().Fatal().Err(err).Msg("Failed to initialize Cloud Storage")
		}
		defer storageClient.Close()
		uploads = storageClient
	} else {
		logger.Info("STORAGE_BUCKET not set, video upload URLs are disabled")
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	rateLimiter := ratelimit.NewRateLimiter(map[string]ratelimit.Limit{
		usecase.ActionSendMessage:        {Burst: cfg.RateLimitMessages, Window: cfg.RateLimitMessageWindow},
		usecase.ActionCreateConversation: {Burst: cfg.RateLimitConversations, Window: cfg.RateLimitConvWindow},
	})
	rateLimiter.StartCleanupRoutine(ctx)

	authUseCase := usecase.NewAuthUseCase(repos.users, authClient)
	userUseCase := usecase.NewUserUseCase(repos.users)
	courseUseCase := usecase.NewCourseUseCase(repos.courses, repos.users)
	reviewUseCase := usecase.NewReviewUseCase(repos.courses, repos.reviews, repos.users)
	paymentUseCase := usecase.NewPaymentUseCase(repos.courses, repos.enrollments, checkout, cfg.ClientURL)
	bookingUseCase := usecase.NewBookingUseCase(repos.bookings, repos.courses, repos.enrollments, repos.users, wsManager)
	submissionUseCase := usecase.NewSubmissionUseCase(repos.submissions, repos.courses, repos.enrollments, repos.users, uploads, wsManager)
	chatUseCase := usecase.NewChatUseCase(repos.chats, repos.users, authClient, wsManager, rateLimiter)

	handler.Setup(authUseCase, userUseCase, courseUseCase, reviewUseCase, paymentUseCase, bookingUseCase, submissionUseCase, chatUseCase)
	handler.SetupHealthHandler()
	handler.SetupDevTokenHandler(authUseCase, userUseCase)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.Validator = api.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(apimiddleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(middleware.BodyLimit("2M"))

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware, cfg.CORSOrigins)

	router.Setup(e, authMiddleware, rateLimiter, wsHandler)
	router.SetupDevRouter(e, cfg.Environment)

	go func() {
		logger.Info("Starting server on port %s (%s, storage=%s)", cfg.ServerPort, cfg.Environment, cfg.StorageDriver)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger().Fatal().Err(err).Msg("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}

// credentialOptions prefers inline service account JSON (production) over a
// key file (local development). Neither falls back to application default
// credentials.
func credentialOptions(cfg *config.Config) []option.ClientOption {
	if cfg.FirebaseServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON))}
	}

	if cfg.FirebaseServiceAccountPath != "" {
		if _, err := os.Stat(cfg.FirebaseServiceAccountPath); err != nil {
			logger.Logger().Fatal().Err(err).Str("path", cfg.FirebaseServiceAccountPath).Msg("Service account file is not readable")
		}
		logger.Info("Using Firebase service account from file: %s", cfg.FirebaseServiceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)}
	}

	return nil
}

func buildRepositories(client *firestore.Client) repositories {
	if client == nil {
		logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return repositories{
			users:       memory.NewUserRepository(store),
			courses:     memory.NewCourseRepository(store),
			reviews:     memory.NewReviewRepository(store),
			enrollments: memory.NewEnrollmentRepository(store),
			bookings:    memory.NewBookingRepository(store),
			submissions: memory.NewSubmissionRepository(store),
			chats:       memory.NewChatRepository(store),
		}
	}

	return repositories{
		users:       repository.NewFirestoreUserRepository(client),
		courses:     repository.NewFirestoreCourseRepository(client),
		reviews:     repository.NewFirestoreReviewRepository(client),
		enrollments: repository.NewFirestoreEnrollmentRepository(client),
		bookings:    repository.NewFirestoreBookingRepository(client),
		submissions: repository.NewFirestoreSubmissionRepository(client),
		chats:       repository.NewFirestoreChatRepository(client),
	}
}

// withCourseCache wraps the catalog in the Redis read-through cache when
// REDIS_ADDR is set. An unreachable Redis disables the cache instead of
// failing startup.
func withCourseCache(ctx context.Context, cfg *config.Config, courses domainrepo.CourseRepository) domainrepo.CourseRepository {
	if cfg.RedisAddr == "" {
		return courses
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("Redis unavailable at %s, course cache disabled: %v", cfg.RedisAddr, err)
		return courses
	}

	logger.Info("Course cache enabled (ttl %v)", cfg.CacheTTL)
	return repository.NewCachedCourseRepository(courses, cache.NewRedisCache(client, "picklrzone:"), cfg.CacheTTL)
}
