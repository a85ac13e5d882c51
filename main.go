package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogicum/config"
	"blogicum/helper"
	"blogicum/logger"
	"blogicum/repositories"
	"blogicum/routes"
	"blogicum/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Fatalf("load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Error.Fatalf("init database: %v", err)
	}

	// Token revocation
	var revoked services.RevocationStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping().Err(); err != nil {
			logger.Error.Fatalf("connect redis %s: %v", cfg.RedisAddr, err)
		}
		defer client.Close()
		revoked = services.NewRedisRevocationStore(client)
	} else {
		logger.Warn.Println("REDIS_ADDR not set, revoked tokens are kept in memory")
		revoked = services.NewMemoryRevocationStore()
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	validate := helper.NewHTTPHelper()
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration, revoked)
	media := services.NewDiskMediaStore(cfg.MediaDir)

	router := routes.Setup(routes.App{
		Auth:       services.NewAuthService(userRepo, tokens, validate),
		Tokens:     tokens,
		Posts:      services.NewPostService(postRepo, commentRepo, categoryRepo, locationRepo, media, validate),
		Comments:   services.NewCommentService(postRepo, commentRepo, validate),
		Profiles:   services.NewProfileService(userRepo, postRepo, validate),
		Categories: services.NewCategoryService(categoryRepo, validate),
		Locations:  services.NewLocationService(locationRepo, validate),
		MediaURL:   cfg.MediaURL,
		MediaDir:   cfg.MediaDir,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info.Println("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error.Printf("shutdown: %v", err)
	}
}
