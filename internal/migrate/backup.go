package migrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chitrakala-api/internal/domain/content"

	"github.com/sirupsen/logrus"
)

const backupVersion = "1.0"

// BackupFile is the on-disk backup. Password hashes and image bytes are
// never included.
type BackupFile struct {
	Timestamp time.Time  `json:"timestamp"`
	Version   string     `json:"version"`
	Data      BackupData `json:"data"`
}

type BackupData struct {
	Users    []BackupUser      `json:"users"`
	Artworks []content.Artwork `json:"artworks"`
	About    *content.About    `json:"about,omitempty"`
	ArtForms []content.ArtForm `json:"art_forms"`
	Contact  *content.Contact  `json:"contact,omitempty"`
	Settings *content.Settings `json:"settings,omitempty"`
}

type BackupUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Backup writes dir/backup_<timestamp>.json and returns its path.
func Backup(ctx context.Context, src Source, dir string, now time.Time, log *logrus.Logger) (string, *BackupFile, error) {
	log.Info("🔄 Starting database backup...")

	b := &BackupFile{Timestamp: now.UTC(), Version: backupVersion}

	users, err := src.ListUsers(ctx)
	if err != nil {
		return "", nil, err
	}
	b.Data.Users = make([]BackupUser, 0, len(users))
	for _, u := range users {
		b.Data.Users = append(b.Data.Users, BackupUser{ID: u.ID, Username: u.Username, Role: u.Role, CreatedAt: u.CreatedAt})
	}

	if b.Data.Artworks, err = src.ListArtworks(ctx); err != nil {
		return "", nil, err
	}

	b.Data.ArtForms = []content.ArtForm{}
	if about, err := src.GetAbout(ctx); err == nil {
		b.Data.ArtForms = about.ArtForms
		b.Data.About = about
	} else if !errors.Is(err, content.ErrNotFound) {
		return "", nil, err
	}

	if c, err := src.GetContact(ctx); err == nil {
		b.Data.Contact = c
	} else if !errors.Is(err, content.ErrNotFound) {
		return "", nil, err
	}

	if s, err := src.GetSettings(ctx); err == nil {
		b.Data.Settings = s
	} else if !errors.Is(err, content.ErrNotFound) {
		return "", nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", nil, fmt.Errorf("migrate: backups dir: %w", err)
	}
	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", nil, err
	}
	path := filepath.Join(dir, "backup_"+now.UTC().Format("2006-01-02T15-04-05")+".json")
	if err := os.WriteFile(path, out, 0644); err != nil {
		return "", nil, err
	}

	log.WithFields(logrus.Fields{
		"file":      path,
		"users":     len(b.Data.Users),
		"artworks":  len(b.Data.Artworks),
		"art_forms": len(b.Data.ArtForms),
		"about":     b.Data.About != nil,
		"contact":   b.Data.Contact != nil,
		"settings":  b.Data.Settings != nil,
	}).Info("✅ Backup completed successfully!")
	log.Warn("⚠️  Image data is NOT included in backups")
	return path, b, nil
}
