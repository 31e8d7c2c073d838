package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"tradeport/internal/adapter/api"
	"tradeport/internal/adapter/api/handler"
	apimiddleware "tradeport/internal/adapter/api/middleware"
	"tradeport/internal/adapter/api/router"
	"tradeport/internal/adapter/repository"
	"tradeport/internal/infrastructure/firebase"
	"tradeport/internal/infrastructure/ratelimit"
	"tradeport/internal/usecase"
	"tradeport/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production), file path as a
	// local-development fallback.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	quotationRepo := repository.NewFirestoreQuotationRepository(firestoreClient)
	progressRepo := repository.NewFirestoreProfileProgressRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, userRepo)
	onboardingUseCase := usecase.NewOnboardingUseCase(progressRepo, userRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, userRepo)

	handler.Setup(quotationUseCase, onboardingUseCase, reviewUseCase)
	handler.SetupHealthHandler(firebaseAuthClient)
	handler.SetupDevTokenHandler(firebaseAuthClient, userRepo)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	guestLimiter := ratelimit.NewRateLimiter(cfg.GuestQuoteLimit, time.Duration(cfg.GuestQuoteWindow)*time.Second)
	go func() {
		for range time.Tick(10 * time.Minute) {
			guestLimiter.Cleanup()
		}
	}()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(guestLimiter)

	router.Setup(e, authMiddleware, adminMiddleware, rateLimitMiddleware)
	router.SetupDevRouter(e, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
