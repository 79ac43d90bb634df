package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"office-hours/internal/app"
	"office-hours/internal/config"
	"office-hours/internal/domain"
	"office-hours/internal/logger"
	"office-hours/internal/repository"
	"office-hours/internal/service"
	"office-hours/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	zapLogger.Debug("config loaded",
		zap.String("listen_addr", cfg.ListenAddr()),
		zap.String("timezone", cfg.Timezone),
		zap.String("store_driver", cfg.StoreDriver),
	)

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(shutdownCtx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to open override store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeStore()

	clock := service.NewZoneClock(cfg.Timezone, zapLogger)
	application := app.New(store, domain.OfficeWeek(), clock, app.Options{
		StaticDir:      cfg.StaticDir,
		AdminRateLimit: cfg.AdminRateLimit,
	}, zapLogger)

	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           application.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-shutdownCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			zapLogger.Error("http shutdown error", zap.Error(err))
		}
	}()

	zapLogger.Info("office-hours listening", zap.String("addr", cfg.ListenAddr()))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zapLogger.Fatal("http server error", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}

func openStore(ctx context.Context, cfg config.Config, zapLogger *zap.Logger) (repository.OverrideStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		return openPostgresStore(ctx, cfg.Postgres, zapLogger)
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				zapLogger.Error("close redis", zap.Error(err))
			}
		}
		return repository.NewRedisOverrideStore(client, cfg.Redis.Key), closeFn, nil
	case config.StoreMinio:
		client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("minio client: %w", err)
		}
		if err := repository.EnsureBucket(ctx, client, cfg.Minio.Bucket); err != nil {
			return nil, nil, err
		}
		return repository.NewMinioOverrideStore(client, cfg.Minio.Bucket, cfg.Minio.Object), func() {}, nil
	default:
		zapLogger.Debug("using file store", zap.String("path", cfg.DataFile))
		return repository.NewFileOverrideStore(cfg.DataFile), func() {}, nil
	}
}

func openPostgresStore(ctx context.Context, cfg config.Postgres, zapLogger *zap.Logger) (repository.OverrideStore, func(), error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	zapLogger.Debug("database connection successful")

	if err := migrations.Up(ctx, db, zapLogger); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	zapLogger.Debug("migrations completed successfully")

	closeFn := func() {
		if err := db.Close(); err != nil {
			zapLogger.Error("close database", zap.Error(err))
		}
	}
	return repository.NewPostgresOverrideStore(repository.NewPostgresTxManager(db)), closeFn, nil
}
