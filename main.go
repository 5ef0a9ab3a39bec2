package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	api "handoff-backend/cmd/api"
	authRepo "handoff-backend/internal/auth/repository"
	authUsecase "handoff-backend/internal/auth/usecase"
	catalogRepo "handoff-backend/internal/catalog/repository"
	catalogUsecase "handoff-backend/internal/catalog/usecase"
	uploadRepo "handoff-backend/internal/upload/repository"
	uploadUsecase "handoff-backend/internal/upload/usecase"
	"handoff-backend/pkg/config"
	"handoff-backend/pkg/firebase"
	"handoff-backend/pkg/identitytoolkit"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Initialize Firebase clients (auth, document store, object store)
	app, err := firebase.NewApp(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile, cfg.StorageBucket)
	if err != nil {
		log.Fatal("Failed to initialize Firebase:", err)
	}
	defer app.Close()

	// Initialize Redis for the session mirror
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("Invalid REDIS_URL:", err)
	}
	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis unavailable, session mirror degraded: %v", err)
	}

	// Initialize repositories (dependency injection)
	identityRepository := authRepo.NewIdentityRepository(app.Auth)
	sessionMirror := authRepo.NewSessionMirror(redisClient)
	productRepository := catalogRepo.NewProductRepository(app.Firestore)
	objectStore := uploadRepo.NewObjectStore(app.Bucket, cfg.StorageBucket)

	// Initialize use cases (dependency injection)
	toolkitClient := identitytoolkit.NewClient(cfg.FirebaseAPIKey)
	authUsecaseInstance := authUsecase.NewAuthUsecase(identityRepository, sessionMirror, toolkitClient, cfg.InstitutionDomain)
	uploadUsecaseInstance := uploadUsecase.NewUploadUsecase(objectStore, cfg.MaxUploadBytes)
	catalogUsecaseInstance := catalogUsecase.NewCatalogUsecase(productRepository, uploadUsecaseInstance)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, catalogUsecaseInstance, uploadUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
