package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forkcast/backend/config"
	"github.com/forkcast/backend/internal/api"
	"github.com/forkcast/backend/internal/database"
	"github.com/forkcast/backend/internal/middleware"
	"github.com/forkcast/backend/internal/model"
	"github.com/forkcast/backend/internal/router"
	"github.com/forkcast/backend/internal/search"
	"github.com/forkcast/backend/internal/server"
	"github.com/forkcast/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Ping(ctx, cfg); err != nil {
		log.Fatalf("Database unreachable: %v", err)
	}
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Artifacts are a startup requirement: without a valid encoder,
	// imputer and model the service must not serve recommendations.
	loader := service.NewArtifactLoader()
	preprocessor, err := loader.LoadPreprocessor(ctx, cfg.EncoderPath, cfg.ImputerPath)
	if err != nil {
		log.Fatalf("Failed to load preprocessor artifacts: %v", err)
	}
	ratingModel, err := loader.LoadModel(ctx, cfg.ModelPath)
	if err != nil {
		log.Fatalf("Failed to load rating model: %v", err)
	}
	freq, err := loader.LoadFrequencyDict(ctx, cfg.DictionaryPath)
	if err != nil {
		log.Fatalf("Failed to load frequency dictionary: %v", err)
	}

	var catalog []model.Recipe
	if err := db.WithContext(ctx).Find(&catalog).Error; err != nil {
		log.Fatalf("Failed to load recipe catalog: %v", err)
	}
	catalogRefs := make([]*model.Recipe, len(catalog))
	for i := range catalog {
		catalogRefs[i] = &catalog[i]
	}
	log.Printf("Loaded %d catalog recipes", len(catalogRefs))

	engine := search.NewGormEngine(db)
	bookmarks := service.NewBookmarkService(db)
	recommender, err := service.NewRecommender(engine, bookmarks, preprocessor, ratingModel, catalogRefs)
	if err != nil {
		log.Fatalf("Failed to score catalog: %v", err)
	}
	searchService := service.NewSearchService(engine, service.NewSpeller(freq))
	tokenService := service.NewTokenService(cfg.JWTSecret)

	var searchLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Failed to connect to Redis, rate limiting disabled: %v", err)
	} else {
		searchLimiter = middleware.NewSearchRateLimiter(redisClient)
	}

	r := router.SetupRouter(
		api.NewSearchHandler(searchService),
		api.NewRecipeHandler(engine),
		api.NewRecommendHandler(recommender),
		api.NewBookmarkHandler(bookmarks),
		tokenService,
		searchLimiter,
	)
	srv := server.New(r, cfg.ServerHost+":"+cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
