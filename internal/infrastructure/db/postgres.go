package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mohammadpnp/contact-import/internal/infrastructure/db/models"
	"github.com/mohammadpnp/contact-import/internal/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = time.Second

// Open connects gorm and a pgx pool to the same database.
func Open(ctx context.Context, databaseURL string, log *zap.Logger) (*gorm.DB, *pgxpool.Pool, error) {
	gdb, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                 logger.NewGormLogger(log, gormlogger.Warn, slowQueryThreshold),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return gdb, pool, nil
}

// Migrate creates or updates the contact import tables.
func Migrate(gdb *gorm.DB, log *zap.Logger) error {
	if err := gdb.AutoMigrate(&models.Company{}, &models.Contact{}, &models.ImportRun{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("database migrations applied")
	return nil
}
