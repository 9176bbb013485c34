package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/freeboard/board-client/internal/core/service"
	"github.com/freeboard/board-client/internal/infrastructure/backend"
	"github.com/freeboard/board-client/internal/infrastructure/config"
	"github.com/freeboard/board-client/internal/infrastructure/redisstore"
	"github.com/freeboard/board-client/internal/web"
	"github.com/freeboard/board-client/internal/web/middleware"
	"github.com/freeboard/board-client/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	apiClient := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	sessionStore := redisstore.NewSessionStore(redisClient, cfg.SessionTTL)

	sessions := service.NewSessionService(apiClient, sessionStore, cfg.VerifyInterval, log)
	posts := service.NewPostService(apiClient)
	comments := service.NewCommentService(apiClient)
	admins := service.NewAdminService(apiClient)

	codec := middleware.NewCookieCodec(cfg.SessionSecret, cfg.SessionTTL)

	e, err := web.NewRouter(web.Deps{
		Sessions: sessions,
		Posts:    posts,
		Comments: comments,
		Admins:   admins,
		Codec:    codec,
		Redis:    redisClient,
		Backend:  apiClient,
		Log:      log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting board client")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
