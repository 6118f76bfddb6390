package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"sapientdcs/contactus"
	"sapientdcs/dynamodb"
	"sapientdcs/httpserver"
	"sapientdcs/pkg/config"
	"sapientdcs/pkg/logger"
	"sapientdcs/pkg/sentry"
	"sapientdcs/postgres"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	if cfg.Auth.JWTSecret == "" {
		slog.Error("AUTH_JWT_SECRET is required")
		os.Exit(1)
	}

	zlog, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		slog.Error("Cannot build logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := newRepository(ctx, cfg)
	if err != nil {
		slog.Error("Cannot open storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}

	server := httpserver.Default(cfg)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.Logger = zlog
	server.SubmissionService = contactus.NewUsecase(repo)

	go func() {
		slog.Info("server started!", "addr", server.Addr, "storage", cfg.StorageDriver)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		return
	}
	slog.Info("server stopped")
}

func newRepository(ctx context.Context, cfg *config.Config) (contactus.Repository, error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		return dynamodb.Open(ctx, dynamodb.Options{
			Region:       cfg.DynamoDB.Region,
			Endpoint:     cfg.DynamoDB.Endpoint,
			AccessKey:    cfg.DynamoDB.AccessKey,
			SecretKey:    cfg.DynamoDB.SecretKey,
			SessionToken: cfg.DynamoDB.SessionToken,
			Table:        cfg.DynamoDB.SubmissionsTable,
		})
	default:
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     strconv.Itoa(cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			return nil, err
		}
		return postgres.NewSubmissionRepository(db), nil
	}
}
