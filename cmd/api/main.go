package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/reelmark/reelmark-go/internal/config"
	"github.com/reelmark/reelmark-go/internal/handler"
	"github.com/reelmark/reelmark-go/internal/repository"
	"github.com/reelmark/reelmark-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("unable to connect to the database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected")

	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL))
	movieHandler := handler.NewMovieHandler(service.NewMovieService(movieRepo))
	bookmarkHandler := handler.NewBookmarkHandler(service.NewBookmarkService(movieRepo))

	r := handler.NewRouter(authHandler, movieHandler, bookmarkHandler, cfg.JWTSecret)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
