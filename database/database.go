package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	DSN        string
	Production bool
	Log        *logrus.Logger
}

// Open connects to PostgreSQL, verifies the connection and bootstraps the
// schema. The caller owns the returned handle and must Close it.
func Open(ctx context.Context, opts Options) (*gorm.DB, error) {
	if opts.DSN == "" {
		return nil, fmt.Errorf("database: DATABASE_URL not set")
	}

	gormCfg := &gorm.Config{SkipDefaultTransaction: true}
	if opts.Log != nil {
		gormCfg.Logger = logger.New(opts.Log, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(postgres.Open(withSSLMode(opts.DSN, opts.Production)), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	if err := InitSchema(ctx, db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	if opts.Log != nil {
		opts.Log.Info("✅ Database schema initialized successfully")
	}
	return db, nil
}

// InitSchema runs every schema statement in a single transaction. Any
// failure rolls the whole bootstrap back.
func InitSchema(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range SchemaStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("database: bootstrap schema: %w", err)
	}
	return nil
}

// Close releases the pool behind a gorm handle.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withSSLMode requires TLS in production unless the DSN already says
// otherwise. Managed hosts use certificates we do not verify.
func withSSLMode(dsn string, production bool) string {
	if !production || strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		// key=value form
		return strings.TrimSpace(dsn) + " sslmode=require"
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "sslmode=require"
}
