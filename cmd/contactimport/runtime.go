package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mohammadpnp/contact-import/internal/bootstrap"
	"github.com/mohammadpnp/contact-import/internal/config"
	"github.com/mohammadpnp/contact-import/internal/infrastructure/db"
	"github.com/mohammadpnp/contact-import/internal/logger"
	"go.uber.org/zap"
)

type cliRuntime struct {
	cfg      config.Config
	log      *zap.Logger
	services bootstrap.Services
	close    func()
}

// openRuntime loads config and connects the database. Logs go to stderr so stdout stays JSON.
func openRuntime(ctx context.Context, opts *globalOptions) (*cliRuntime, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	zlog, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stderr",
	})
	if err != nil {
		return nil, err
	}

	gdb, pool, err := db.Open(ctx, cfg.Database.URL, zlog)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := db.Migrate(gdb, zlog); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return &cliRuntime{
		cfg:      cfg,
		log:      zlog,
		services: bootstrap.NewServices(gdb, pool, zlog),
		close: func() {
			pool.Close()
			_ = zlog.Sync()
		},
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
