package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mohammadpnp/contact-import/internal/bootstrap"
	"github.com/mohammadpnp/contact-import/internal/config"
	"github.com/mohammadpnp/contact-import/internal/infrastructure/db"
	"github.com/mohammadpnp/contact-import/internal/logger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      "stdout",
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gdb, pool, err := db.Open(context.Background(), cfg.Database.URL, zlog)
	if err != nil {
		zlog.Fatal("failed to connect database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(gdb, zlog); err != nil {
			zlog.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	services := bootstrap.NewServices(gdb, pool, zlog)
	server := bootstrap.NewHTTPServer(cfg.Import, services, zlog)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	go func() {
		zlog.Info("http server listening", zap.String("addr", addr))
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
