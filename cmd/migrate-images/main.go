// migrate-images moves artwork upload files into PostgreSQL and points each
// artwork at its database image URL. Artworks that already have bytes are
// skipped, so the tool can be re-run.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"chitrakala-api/config"
	"chitrakala-api/database"
	"chitrakala-api/internal/migrate"
	"chitrakala-api/internal/store/pgstore"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	uploadsDir := flag.String("uploads-dir", cfg.UploadsDir, "Directory holding uploaded images")
	baseURL := flag.String("base-url", cfg.BaseURL, "Public base URL used for image links")
	dsn := flag.String("database-url", cfg.DatabaseURL, "PostgreSQL URL")
	flag.Parse()

	log := config.NewLogger(cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := database.Open(ctx, database.Options{DSN: *dsn, Production: cfg.Production, Log: log})
	if err != nil {
		log.WithError(err).Fatal("❌ Cannot connect to PostgreSQL")
	}
	s := pgstore.New(db)
	defer s.Close()

	report, err := migrate.Images(ctx, migrate.ImageConfig{UploadsDir: *uploadsDir, BaseURL: *baseURL}, s, log)
	if report != nil {
		log.WithFields(logrus.Fields{
			"total":          report.Total,
			"migrated":       len(report.Migrated),
			"skipped":        len(report.Skipped),
			"already_stored": len(report.AlreadyStored),
		}).Info("📊 Image migration summary")
		for _, id := range report.Skipped {
			log.WithField("id", id).Warn("⚠️  No upload found")
		}
	}
	if err != nil {
		log.WithError(err).Error("❌ Image migration failed")
		s.Close()
		os.Exit(1)
	}
}
