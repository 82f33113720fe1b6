package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chitrakala-api/internal/domain/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return s
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMissingDocumentsReturnDefaults(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	artworks, err := s.ListArtworks(ctx)
	require.NoError(t, err)
	assert.Empty(t, artworks)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	_, err = s.GetAbout(ctx)
	assert.ErrorIs(t, err, content.ErrNotFound)
	_, err = s.GetContact(ctx)
	assert.ErrorIs(t, err, content.ErrNotFound)
	_, err = s.GetSettings(ctx)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestArtworkRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	in := &content.Artwork{
		ID:          "art-1700000000000",
		Title:       "Peacock Mandala",
		Category:    content.CategoryDotMandala,
		Price:       2500,
		Description: "Dot work on canvas",
		Dimensions:  "12 x 12 in",
		Materials:   "Acrylic",
		Image:       "http://localhost:5000/uploads/1700000000000-1.jpg",
		Featured:    true,
		Sizes: []content.SizePrice{
			{SizeLabel: "12x12", Price: 2500},
			{SizeLabel: "8x8", Price: 1500},
			{SizeLabel: "18x18", Price: 4200},
		},
	}
	created, err := s.CreateArtwork(ctx, in)
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetArtwork(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Category, got.Category)
	assert.Equal(t, in.Price, got.Price)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.Dimensions, got.Dimensions)
	assert.Equal(t, in.Materials, got.Materials)
	assert.Equal(t, in.Image, got.Image)
	assert.Equal(t, in.Featured, got.Featured)
	assert.Equal(t, in.Sizes, got.Sizes)
}

func TestCreateArtworkDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	a := &content.Artwork{ID: "art-1", Title: "One", Category: content.CategoryLippanArt}
	_, err := s.CreateArtwork(ctx, a)
	require.NoError(t, err)

	_, err = s.CreateArtwork(ctx, a)
	assert.ErrorIs(t, err, content.ErrConflict)
}

func TestUpdateAndDeleteArtwork(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.UpdateArtwork(ctx, "art-missing", &content.Artwork{Title: "x"})
	assert.ErrorIs(t, err, content.ErrNotFound)

	created, err := s.CreateArtwork(ctx, &content.Artwork{ID: "art-2", Title: "Old", Price: 10})
	require.NoError(t, err)

	updated, err := s.UpdateArtwork(ctx, "art-2", &content.Artwork{Title: "New", Price: 20})
	require.NoError(t, err)
	assert.Equal(t, "art-2", updated.ID)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	require.NotNil(t, updated.UpdatedAt)

	require.NoError(t, s.DeleteArtwork(ctx, "art-2"))
	_, err = s.GetArtwork(ctx, "art-2")
	assert.ErrorIs(t, err, content.ErrNotFound)
	assert.ErrorIs(t, s.DeleteArtwork(ctx, "art-2"), content.ErrNotFound)
}

func TestListArtworksNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"art-a", "art-b", "art-c"} {
		_, err := s.CreateArtwork(ctx, &content.Artwork{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}

	list, err := s.ListArtworks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "art-c", list[0].ID)
	assert.Equal(t, "art-a", list[2].ID)
}

func TestReadsLegacyArtworkShape(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	legacy := `[{"id":"art-1770419263457","title":"Lippan Mirror","category":"lippan-art",
	"price":1200,"size":"10 inch","materials":"Clay","image":"/uploads/1770419263457-804127379.jpg",
	"featured":false,"createdAt":"2025-02-06T22:27:43.457Z"}]`
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "artworks.json"), []byte(legacy), 0644))

	got, err := s.GetArtwork(ctx, "art-1770419263457")
	require.NoError(t, err)
	assert.Equal(t, "10 inch", got.Dimensions)
	assert.Equal(t, 2025, got.CreatedAt.Year())
	assert.NotNil(t, got.Sizes)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.CreateUser(ctx, &content.User{ID: "admin-1", Username: "Admin", Password: "h", Role: content.RoleAdmin}))
	assert.ErrorIs(t, s.CreateUser(ctx, &content.User{ID: "admin-2", Username: "admin"}), content.ErrConflict)

	u, err := s.GetUserByUsername(ctx, "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", u.ID)

	n, err := s.UpdateAdminCredentials(ctx, "curator", "h2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	u, err = s.GetUserByUsername(ctx, "curator")
	require.NoError(t, err)
	assert.Equal(t, "h2", u.Password)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, content.ErrNotFound)

	require.NoError(t, s.RemoveUsers())
	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	require.NoError(t, s.RemoveUsers())
}

func TestSingletonsWholeDocumentReplace(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	first := &content.Contact{Emails: []string{"a@example.com", "b@example.com"}, Phone: "111", ShowHours: true}
	require.NoError(t, s.UpdateContact(ctx, first))
	second := &content.Contact{Emails: []string{"c@example.com"}}
	require.NoError(t, s.UpdateContact(ctx, second))

	got, err := s.GetContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c@example.com"}, got.Emails)
	assert.Empty(t, got.Phone)
	assert.False(t, got.ShowHours)

	require.NoError(t, s.UpdateSettings(ctx, &content.Settings{SiteName: "One", Tagline: "t"}))
	require.NoError(t, s.UpdateSettings(ctx, &content.Settings{SiteName: "Two"}))
	st, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Two", st.SiteName)
	assert.Empty(t, st.Tagline)
}

func TestUpdateAboutStampsDisplayOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	about := &content.About{
		Story: content.Story{Title: "Story", Paragraphs: []string{"p1", "p2"}},
		ArtForms: []content.ArtForm{
			{ID: "f-b", Title: "B", DisplayOrder: 9},
			{ID: "f-a", Title: "A", DisplayOrder: 3},
		},
	}
	require.NoError(t, s.UpdateAbout(ctx, about))

	got, err := s.GetAbout(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, got.Story.Paragraphs)
	require.Len(t, got.ArtForms, 2)
	assert.Equal(t, "f-b", got.ArtForms[0].ID)
	assert.Equal(t, 0, got.ArtForms[0].DisplayOrder)
	assert.Equal(t, 1, got.ArtForms[1].DisplayOrder)
	// caller's slice is untouched
	assert.Equal(t, 9, about.ArtForms[0].DisplayOrder)
}

func TestUpdateAboutAssignsMissingIDs(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.UpdateAbout(ctx, &content.About{ArtForms: []content.ArtForm{{Title: "X"}, {ID: "f-1", Title: "Y"}}}))
	first, err := s.GetAbout(ctx)
	require.NoError(t, err)
	require.Len(t, first.ArtForms, 2)
	assert.NotEmpty(t, first.ArtForms[0].ID)
	assert.Equal(t, "f-1", first.ArtForms[1].ID)

	// re-saving what was read keeps the assigned id
	require.NoError(t, s.UpdateAbout(ctx, first))
	second, err := s.GetAbout(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ArtForms[0].ID, second.ArtForms[0].ID)
}

func TestPartialSingletonsKeepDefaultFlags(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "contact.json"), []byte(`{"emails":["a@b.co"]}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "settings.json"), []byte(`{"siteName":"S"}`), 0644))

	c, err := s.GetContact(ctx)
	require.NoError(t, err)
	assert.True(t, c.ShowHours)
	assert.True(t, c.ShowAddress)
	assert.Equal(t, []string{"a@b.co"}, c.Emails)

	st, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, st.ShowSocial)
	assert.True(t, st.Developer.ShowCredit)
	assert.Empty(t, st.Copyright)
}

func TestCorruptDocument(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "settings.json"), []byte("{not json"), 0644))
	_, err := s.GetSettings(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, content.ErrNotFound)
}
