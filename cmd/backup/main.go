// backup writes a JSON snapshot of the configured content store. Password
// hashes and image bytes are left out.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"chitrakala-api/config"
	"chitrakala-api/internal/migrate"
	"chitrakala-api/internal/store"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	dir := flag.String("dir", cfg.BackupsDir, "Directory the backup file is written to")
	flag.Parse()

	log := config.NewLogger(cfg.LogLevel)
	ctx := context.Background()

	s, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("❌ Failed to open content store")
	}
	defer s.Close()

	path, b, err := migrate.Backup(ctx, s, *dir, time.Now().UTC(), log)
	if err != nil {
		log.WithError(err).Error("❌ Backup failed")
		s.Close()
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"file":      path,
		"users":     len(b.Data.Users),
		"artworks":  len(b.Data.Artworks),
		"art_forms": len(b.Data.ArtForms),
	}).Info("✅ Backup completed successfully")
}
