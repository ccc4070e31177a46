// Package main runs the volunteer event discovery HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/helping-hands/discovery/config"
	"github.com/helping-hands/discovery/internal/discovery"
	"github.com/helping-hands/discovery/internal/events"
	"github.com/helping-hands/discovery/internal/organizations"
	"github.com/helping-hands/discovery/internal/roles"
	"github.com/helping-hands/discovery/pkg/database"
	"github.com/helping-hands/discovery/pkg/redis"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), int32(cfg.Database.MaxConns), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := database.Migrate(ctx, pool); err != nil {
			logger.Fatal("migrate", zap.Error(err))
		}
	}

	eventRepo := events.NewRepository(pool)
	roleRepo := roles.NewRepository(pool)

	// Roles are read on every scoped discovery; cache them when Redis is configured.
	var roleLister roles.Lister = roleRepo
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			logger.Warn("roles cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			roleLister = roles.NewCache(rdb.Client, roleRepo, cfg.Redis.RolesTTL, logger)
		}
	}

	discoverySvc := discovery.NewService(eventRepo, roleLister, cfg.Discovery.Pushdown, logger)

	router := newRouter(cfg.Server, logger,
		events.NewHandler(eventRepo, logger),
		organizations.NewHandler(organizations.NewRepository(pool), logger),
		roles.NewHandler(roleLister, logger),
		discovery.NewHandler(discoverySvc, logger),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.String("port", cfg.Server.Port),
			zap.Bool("pushdown", cfg.Discovery.Pushdown),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
