// Package store picks the content backend for the process.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chitrakala-api/config"
	"chitrakala-api/database"
	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/store/filestore"
	"chitrakala-api/internal/store/pgstore"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultAdminID       = "admin-1"
	DefaultAdminUsername = "admin"
)

// Open returns the relational store when DATABASE_URL is set and the file
// store otherwise. The choice holds for the life of the process.
func Open(ctx context.Context, cfg *config.Config, log *logrus.Logger) (content.Store, error) {
	if cfg.UseDatabase() {
		db, err := database.Open(ctx, database.Options{
			DSN:        cfg.DatabaseURL,
			Production: cfg.Production,
			Log:        log,
		})
		if err != nil {
			return nil, err
		}
		log.Info("🗄️  Using PostgreSQL content store")
		return pgstore.New(db), nil
	}

	fs, err := filestore.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("store: open data dir: %w", err)
	}
	log.WithField("dir", cfg.DataDir).Info("📁 Using JSON file content store")
	return fs, nil
}

// EnsureDefaultAdmin creates admin-1 when no user exists. With reset set the
// admin credentials go back to the default username and password: the file
// store drops users.json first, the relational store rewrites admin rows.
func EnsureDefaultAdmin(ctx context.Context, s content.Store, password string, reset bool, log *logrus.Logger) error {
	if password == "" {
		return errors.New("store: default admin password not configured")
	}

	if reset {
		if fs, ok := s.(*filestore.Store); ok {
			if err := fs.RemoveUsers(); err != nil {
				return err
			}
			log.Warn("⚠️  Users file deleted, resetting admin password")
		}
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		return err
	}

	if len(users) > 0 && !reset {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if len(users) > 0 {
		n, err := s.UpdateAdminCredentials(ctx, DefaultAdminUsername, string(hash))
		if err != nil {
			return err
		}
		if n > 0 {
			log.WithField("admins", n).Warn("⚠️  Admin credentials reset")
			return nil
		}
	}

	err = s.CreateUser(ctx, &content.User{
		ID:        DefaultAdminID,
		Username:  DefaultAdminUsername,
		Password:  string(hash),
		Role:      content.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	log.WithField("username", DefaultAdminUsername).Info("✅ Default admin created")
	return nil
}
