// migrate copies the JSON file store into PostgreSQL in one transaction.
// Users and artworks already in the database are left alone; the about,
// contact and settings singletons are overwritten.
//
// Usage:
//
//	migrate -data-dir ./data -database-url postgres://...
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"chitrakala-api/config"
	"chitrakala-api/database"
	"chitrakala-api/internal/migrate"
	"chitrakala-api/internal/store/filestore"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	dataDir := flag.String("data-dir", cfg.DataDir, "Directory holding the JSON documents")
	dsn := flag.String("database-url", cfg.DatabaseURL, "Target PostgreSQL URL")
	flag.Parse()

	log := config.NewLogger(cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src, err := filestore.New(*dataDir)
	if err != nil {
		log.WithError(err).Fatal("❌ Cannot open data directory")
	}

	db, err := database.Open(ctx, database.Options{DSN: *dsn, Production: cfg.Production, Log: log})
	if err != nil {
		log.WithError(err).Fatal("❌ Cannot connect to PostgreSQL")
	}
	defer database.Close(db)

	log.Info("🔄 Starting migration to PostgreSQL...")
	report, err := migrate.Data(ctx, src, db, log)
	if err != nil {
		log.WithError(err).Error("❌ Migration failed, nothing was written")
		database.Close(db)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"users":            report.Users,
		"users_skipped":    report.UsersSkipped,
		"artworks":         report.Artworks,
		"artworks_skipped": report.ArtworksSkipped,
		"art_forms":        report.ArtForms,
	}).Info("✅ Migration completed successfully")
}
