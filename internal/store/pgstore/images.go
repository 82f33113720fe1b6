package pgstore

import (
	"context"

	"chitrakala-api/internal/domain/content"
)

// blobRow receives a single bytes/mime pair from any owning table.
type blobRow struct {
	Data     []byte
	MimeType *string
}

func (s *Store) StoreArtworkImage(ctx context.Context, id string, img content.Image) error {
	return s.storeBlob(ctx, "artworks", "id = ?", id, "image_data", "image_mime_type", img)
}

func (s *Store) GetArtworkImage(ctx context.Context, id string) (*content.Image, error) {
	return s.getBlob(ctx, "artworks", "id = ?", id, "image_data", "image_mime_type")
}

// StoreAboutImage needs the about row to exist; write the page first.
func (s *Store) StoreAboutImage(ctx context.Context, img content.Image) error {
	return s.storeBlob(ctx, "about", "id = ?", singletonID, "story_image_data", "story_image_mime_type", img)
}

func (s *Store) GetAboutImage(ctx context.Context) (*content.Image, error) {
	return s.getBlob(ctx, "about", "id = ?", singletonID, "story_image_data", "story_image_mime_type")
}

func (s *Store) StoreLogoImage(ctx context.Context, img content.Image) error {
	return s.storeBlob(ctx, "settings", "id = ?", singletonID, "logo_data", "logo_mime_type", img)
}

func (s *Store) GetLogoImage(ctx context.Context) (*content.Image, error) {
	return s.getBlob(ctx, "settings", "id = ?", singletonID, "logo_data", "logo_mime_type")
}

func (s *Store) storeBlob(ctx context.Context, table, where string, key any, dataCol, mimeCol string, img content.Image) error {
	res := s.db.WithContext(ctx).
		Table(table).
		Where(where, key).
		Updates(map[string]any{dataCol: img.Data, mimeCol: img.MimeType})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}

// getBlob returns ErrNotFound when the owner row is missing and an empty
// Image when the row has no bytes.
func (s *Store) getBlob(ctx context.Context, table, where string, key any, dataCol, mimeCol string) (*content.Image, error) {
	var row blobRow
	err := s.db.WithContext(ctx).
		Table(table).
		Select(dataCol+" AS data, "+mimeCol+" AS mime_type").
		Where(where, key).
		Take(&row).Error
	if err != nil {
		return nil, mapError(err)
	}

	img := &content.Image{Data: row.Data}
	if row.MimeType != nil {
		img.MimeType = *row.MimeType
	}
	return img, nil
}
