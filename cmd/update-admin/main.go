// update-admin sets the username and password of every admin user in the
// configured content store.
//
// Usage:
//
//	update-admin -username curator -password '...'
package main

import (
	"context"
	"flag"
	"os"

	"chitrakala-api/config"
	"chitrakala-api/internal/migrate"
	"chitrakala-api/internal/store"
)

func main() {
	cfg := config.Load()
	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "New admin username")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "New admin password")
	flag.Parse()

	log := config.NewLogger(cfg.LogLevel)
	ctx := context.Background()

	s, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("❌ Failed to open content store")
	}
	defer s.Close()

	log.Info("🔐 Updating admin credentials...")
	n, err := migrate.UpdateAdminCredentials(ctx, s, *username, *password)
	if err != nil {
		log.WithError(err).Error("❌ Error updating admin credentials")
		s.Close()
		os.Exit(1)
	}
	log.WithField("username", *username).WithField("admins", n).Info("✅ Admin credentials updated successfully")
}
