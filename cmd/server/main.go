package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/openai/openai-go/option"

	"github.com/daap14/authprofile/internal/api"
	"github.com/daap14/authprofile/internal/api/handler"
	"github.com/daap14/authprofile/internal/auth"
	"github.com/daap14/authprofile/internal/chat"
	"github.com/daap14/authprofile/internal/config"
	"github.com/daap14/authprofile/internal/migrations"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)
	if envErr != nil {
		slog.Debug("no .env file loaded; relying on process environment", "error", envErr)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := migrations.Run(ctx, pool); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenCodec([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.TokenTTL)
	authService := auth.NewService(auth.NewRepository(pool), hasher, tokens)

	var chatClient chat.Replier
	if cfg.OpenAIAPIKey != "" {
		client, err := chat.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ChatTimeout,
			option.WithMaxRetries(cfg.ChatMaxRetries))
		if err != nil {
			slog.Error("failed to create chat client", "error", err)
			os.Exit(1)
		}
		chatClient = client
	} else {
		slog.Warn("OPENAI_API_KEY is not set; chat endpoint disabled")
	}

	deps := api.RouterDeps{
		DBPinger:        pool,
		Version:         cfg.Version,
		APIPrefix:       cfg.APIPrefix,
		AuthService:     authService,
		Chat:            chatClient,
		ChatRequireAuth: cfg.ChatRequireAuth,
		CORSOrigins:     cfg.CORSAllowedOrigins,
	}
	if cfg.IsDev() && !cfg.DevAdminEnabled() {
		slog.Warn("DEV_ADMIN_PASSWORD is not set; admin provisioning route disabled")
	}
	if cfg.DevAdminEnabled() {
		slog.Warn("development routes enabled", "env", cfg.Env)
		deps.DevAdmin = &handler.DevAdmin{
			Name:     cfg.DevAdminName,
			Email:    cfg.DevAdminEmail,
			Password: cfg.DevAdminPassword,
		}
	}

	router := api.NewRouter(deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Duration(cfg.ChatMaxRetries+1)*cfg.ChatTimeout + 15*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting authprofile server", "port", cfg.Port, "version", cfg.Version, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(logHandler))
}
