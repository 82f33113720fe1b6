package filestore

import (
	"context"
	"sort"
	"time"

	"chitrakala-api/internal/domain/content"
)

// fileArtwork is the on-disk shape. Older documents use "size" for the
// dimensions label and camelCase timestamps; both are still read.
type fileArtwork struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Category    string              `json:"category"`
	Price       float64             `json:"price"`
	Description string              `json:"description"`
	Dimensions  string              `json:"dimensions,omitempty"`
	Size        string              `json:"size,omitempty"`
	Materials   string              `json:"materials"`
	Image       string              `json:"image"`
	Featured    bool                `json:"featured"`
	Sizes       []content.SizePrice `json:"sizes,omitempty"`

	CreatedAt       *time.Time `json:"created_at,omitempty"`
	LegacyCreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	LegacyUpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (f fileArtwork) toDomain() content.Artwork {
	a := content.Artwork{
		ID:          f.ID,
		Title:       f.Title,
		Category:    f.Category,
		Price:       f.Price,
		Description: f.Description,
		Dimensions:  f.Dimensions,
		Materials:   f.Materials,
		Image:       f.Image,
		Featured:    f.Featured,
		Sizes:       f.Sizes,
	}
	if a.Dimensions == "" {
		a.Dimensions = f.Size
	}
	switch {
	case f.CreatedAt != nil:
		a.CreatedAt = *f.CreatedAt
	case f.LegacyCreatedAt != nil:
		a.CreatedAt = *f.LegacyCreatedAt
	}
	if f.UpdatedAt != nil {
		a.UpdatedAt = f.UpdatedAt
	} else {
		a.UpdatedAt = f.LegacyUpdatedAt
	}
	a.Normalize()
	return a
}

func fromDomain(a content.Artwork) fileArtwork {
	created := a.CreatedAt
	return fileArtwork{
		ID:          a.ID,
		Title:       a.Title,
		Category:    a.Category,
		Price:       a.Price,
		Description: a.Description,
		Dimensions:  a.Dimensions,
		Materials:   a.Materials,
		Image:       a.Image,
		Featured:    a.Featured,
		Sizes:       a.Sizes,
		CreatedAt:   &created,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (s *Store) loadArtworks() ([]content.Artwork, error) {
	var docs []fileArtwork
	if _, err := s.readEntity(docArtworks, &docs); err != nil {
		return nil, err
	}
	out := make([]content.Artwork, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *Store) saveArtworks(list []content.Artwork) error {
	docs := make([]fileArtwork, 0, len(list))
	for _, a := range list {
		docs = append(docs, fromDomain(a))
	}
	return s.writeEntity(docArtworks, docs)
}

func (s *Store) ListArtworks(ctx context.Context) ([]content.Artwork, error) {
	list, err := s.loadArtworks()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (s *Store) GetArtwork(ctx context.Context, id string) (*content.Artwork, error) {
	list, err := s.loadArtworks()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, content.ErrNotFound
}

func (s *Store) CreateArtwork(ctx context.Context, a *content.Artwork) (*content.Artwork, error) {
	list, err := s.loadArtworks()
	if err != nil {
		return nil, err
	}
	for _, existing := range list {
		if existing.ID == a.ID {
			return nil, content.ErrConflict
		}
	}

	created := *a
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	created.UpdatedAt = nil
	created.Normalize()

	list = append(list, created)
	if err := s.saveArtworks(list); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateArtwork(ctx context.Context, id string, a *content.Artwork) (*content.Artwork, error) {
	list, err := s.loadArtworks()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		now := time.Now().UTC()
		updated := *a
		updated.ID = id
		updated.CreatedAt = list[i].CreatedAt
		updated.UpdatedAt = &now
		updated.Normalize()

		list[i] = updated
		if err := s.saveArtworks(list); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, content.ErrNotFound
}

func (s *Store) DeleteArtwork(ctx context.Context, id string) error {
	list, err := s.loadArtworks()
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			return s.saveArtworks(list)
		}
	}
	return content.ErrNotFound
}
