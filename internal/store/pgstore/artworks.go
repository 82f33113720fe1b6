package pgstore

import (
	"context"
	"time"

	"chitrakala-api/internal/domain/content"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListArtworks(ctx context.Context) ([]content.Artwork, error) {
	var rows []artworkRow
	err := s.db.WithContext(ctx).
		Select(artworkColumns).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]content.Artwork, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (s *Store) GetArtwork(ctx context.Context, id string) (*content.Artwork, error) {
	var row artworkRow
	err := s.db.WithContext(ctx).
		Select(artworkColumns).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, mapError(err)
	}
	a := row.toDomain()
	return &a, nil
}

// CreateArtwork inserts a new row. A duplicate id surfaces as ErrConflict.
func (s *Store) CreateArtwork(ctx context.Context, a *content.Artwork) (*content.Artwork, error) {
	row := toArtworkRow(a)
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, mapError(err)
	}
	out := row.toDomain()
	return &out, nil
}

func (s *Store) UpdateArtwork(ctx context.Context, id string, a *content.Artwork) (*content.Artwork, error) {
	sizes := a.Sizes
	if sizes == nil {
		sizes = []content.SizePrice{}
	}
	res := s.db.WithContext(ctx).
		Model(&artworkRow{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       a.Title,
			"category":    a.Category,
			"price":       a.Price,
			"description": a.Description,
			"dimensions":  a.Dimensions,
			"materials":   a.Materials,
			"image":       a.Image,
			"featured":    a.Featured,
			"sizes":       datatypes.NewJSONSlice(sizes),
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, content.ErrNotFound
	}
	return s.GetArtwork(ctx, id)
}

// DeleteArtwork is unconditional: a missing id is not an error.
func (s *Store) DeleteArtwork(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&artworkRow{}).Error
	return mapError(err)
}

// SetArtworkImageURL rewrites only the image column.
func (s *Store) SetArtworkImageURL(ctx context.Context, id, url string) error {
	res := s.db.WithContext(ctx).
		Model(&artworkRow{}).
		Where("id = ?", id).
		Update("image", url)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}

// InsertArtworkIfAbsent inserts inside tx and leaves an existing row with the
// same id untouched. It reports whether a row was written.
func InsertArtworkIfAbsent(tx *gorm.DB, a *content.Artwork) (bool, error) {
	row := toArtworkRow(a)
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return false, mapError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
