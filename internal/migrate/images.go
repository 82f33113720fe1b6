package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/media"

	"github.com/sirupsen/logrus"
)

// ImageTarget is the part of the relational store the image migration
// writes through.
type ImageTarget interface {
	ListArtworks(ctx context.Context) ([]content.Artwork, error)
	GetArtworkImage(ctx context.Context, id string) (*content.Image, error)
	StoreArtworkImage(ctx context.Context, id string, img content.Image) error
	SetArtworkImageURL(ctx context.Context, id, url string) error
}

type ImageConfig struct {
	UploadsDir string
	BaseURL    string
}

type ImageReport struct {
	Total         int
	Migrated      []string
	Skipped       []string
	AlreadyStored []string
}

// Images moves artwork upload files into the database one artwork at a
// time. Work done before a failure stays committed.
func Images(ctx context.Context, cfg ImageConfig, target ImageTarget, log *logrus.Logger) (*ImageReport, error) {
	log.Info("🖼️  Starting image migration to PostgreSQL...")

	artworks, err := target.ListArtworks(ctx)
	if err != nil {
		return nil, err
	}
	files, err := listUploads(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}

	report := &ImageReport{Total: len(artworks)}
	for _, a := range artworks {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		existing, err := target.GetArtworkImage(ctx, a.ID)
		if err != nil {
			return report, fmt.Errorf("migrate: read image %s: %w", a.ID, err)
		}
		if !existing.Empty() {
			log.Infof("  ⏭️  Skipping %s - already in database", a.ID)
			report.AlreadyStored = append(report.AlreadyStored, a.ID)
			continue
		}

		name := matchUpload(a, files)
		if name == "" {
			log.Warnf("  ⚠️  No image file found for %s", a.ID)
			report.Skipped = append(report.Skipped, a.ID)
			continue
		}

		if err := migrateOne(ctx, cfg, target, a.ID, filepath.Join(cfg.UploadsDir, name)); err != nil {
			return report, err
		}
		log.Infof("  ✅ Migrated & compressed %s: %s", a.ID, name)
		report.Migrated = append(report.Migrated, a.ID)
	}

	log.WithFields(logrus.Fields{
		"total":    report.Total,
		"migrated": len(report.Migrated),
		"skipped":  len(report.Skipped),
	}).Info("✅ Image migration completed successfully!")
	return report, nil
}

func migrateOne(ctx context.Context, cfg ImageConfig, target ImageTarget, id, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := media.Compress(f)
	if err != nil {
		return fmt.Errorf("migrate: %s: %w", id, err)
	}
	if err := target.StoreArtworkImage(ctx, id, content.Image{Data: data, MimeType: media.MimeJPEG}); err != nil {
		return err
	}
	return target.SetArtworkImageURL(ctx, id, content.ArtworkImageURL(cfg.BaseURL, id))
}

func listUploads(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("migrate: read uploads: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// matchUpload finds the file for an artwork: first the name after
// "/uploads/" in its image URL, then any file starting with the numeric part
// of its id.
func matchUpload(a content.Artwork, files []string) string {
	if _, name, ok := strings.Cut(a.Image, "/uploads/"); ok && name != "" {
		for _, f := range files {
			if f == name {
				return f
			}
		}
	}

	number := content.ArtworkNumber(a.ID)
	if number == "" {
		return ""
	}
	for _, f := range files {
		if strings.HasPrefix(f, number) {
			return f
		}
	}
	return ""
}
