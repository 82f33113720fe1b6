package artworks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	_ "image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chitrakala-api/internal/api/apitest"
	"chitrakala-api/internal/domain/content"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:5000"

type clock struct{ t time.Time }

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func newRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/artworks", h.List)
	r.GET("/api/artworks/:id", h.Get)
	r.POST("/api/artworks", h.Create)
	r.PUT("/api/artworks/:id", h.Update)
	r.DELETE("/api/artworks/:id", h.Delete)
	return r
}

func send(t *testing.T, r http.Handler, method, path string, fields map[string]string, files ...apitest.FormFile) *httptest.ResponseRecorder {
	t.Helper()
	body, ct := apitest.Multipart(t, fields, files...)
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) content.Artwork {
	t.Helper()
	var a content.Artwork
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	return a
}

func TestCreateValidation(t *testing.T) {
	h := &Handler{Store: apitest.NewFileStore(t), BaseURL: baseURL, UploadsDir: t.TempDir(), Log: apitest.Logger()}
	r := newRouter(h)

	cases := []map[string]string{
		{"category": content.CategoryDotMandala, "price": "10"},
		{"title": "x", "category": "oil-painting", "price": "10"},
		{"title": "x", "category": content.CategoryDotMandala, "price": "-1"},
		{"title": "x", "category": content.CategoryDotMandala, "price": "NaN"},
		{"title": "x", "category": content.CategoryDotMandala, "price": "Inf"},
		{"title": "x", "category": content.CategoryDotMandala},
		{"title": "x", "category": content.CategoryDotMandala, "sizes": "not json"},
	}
	for _, fields := range cases {
		assert.Equal(t, http.StatusBadRequest, send(t, r, http.MethodPost, "/api/artworks", fields).Code, fields)
	}

	rec := send(t, r, http.MethodPost, "/api/artworks",
		map[string]string{"title": "x", "category": content.CategoryDotMandala, "price": "10"},
		apitest.FormFile{Field: "image", Filename: "notes.txt", Data: []byte("hello")})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFileModeLifecycle(t *testing.T) {
	uploads := t.TempDir()
	clk := &clock{t: time.UnixMilli(1700000000000).UTC()}
	h := &Handler{Store: apitest.NewFileStore(t), BaseURL: baseURL, UploadsDir: uploads, Log: apitest.Logger(), Now: clk.now}
	r := newRouter(h)

	rec := send(t, r, http.MethodPost, "/api/artworks", map[string]string{
		"title":     "Peacock",
		"category":  content.CategoryDotMandala,
		"price":     "2500",
		"size":      "12x12",
		"materials": "Acrylic",
		"featured":  "true",
		"sizes":     `[{"size_label":"8x8","price":1500},{"size_label":" ","price":1}]`,
	}, apitest.FormFile{Field: "image", Filename: "peacock.png", Data: apitest.PNG(t, 10, 10)})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode(t, rec)
	assert.Equal(t, "art-1700000000001", created.ID)
	assert.Equal(t, "12x12", created.Dimensions)
	assert.True(t, created.Featured)
	assert.Equal(t, []content.SizePrice{{SizeLabel: "8x8", Price: 1500}}, created.Sizes)
	require.True(t, strings.HasPrefix(created.Image, baseURL+"/uploads/1700000000001-"))
	oldFile := filepath.Join(uploads, strings.TrimPrefix(created.Image, baseURL+"/uploads/"))
	assert.FileExists(t, oldFile)

	// featured is not sent, so it stays true; the old upload is replaced
	rec = send(t, r, http.MethodPut, "/api/artworks/"+created.ID, map[string]string{"title": "Peacock II"},
		apitest.FormFile{Field: "image", Filename: "peacock2.jpg", Data: apitest.PNG(t, 4, 4)})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode(t, rec)
	assert.Equal(t, "Peacock II", updated.Title)
	assert.Equal(t, 2500.0, updated.Price)
	assert.True(t, updated.Featured)
	assert.NotEqual(t, created.Image, updated.Image)
	assert.NoFileExists(t, oldFile)

	rec = send(t, r, http.MethodPut, "/api/artworks/"+created.ID, map[string]string{"featured": "false"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode(t, rec).Featured)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/artworks/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	entries, err := os.ReadDir(uploads)
	require.NoError(t, err)
	assert.Empty(t, entries)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/artworks/"+created.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = send(t, r, http.MethodPut, "/api/artworks/"+created.ID, map[string]string{"title": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDatabaseModeStoresCompressedBytes(t *testing.T) {
	s := apitest.NewImageBackedStore(t)
	clk := &clock{t: time.UnixMilli(1700000000000).UTC()}
	h := &Handler{Store: s, Images: s, BaseURL: baseURL, Log: apitest.Logger(), Now: clk.now}
	r := newRouter(h)

	rec := send(t, r, http.MethodPost, "/api/artworks", map[string]string{
		"title": "Lippan Mirror", "category": content.CategoryLippanArt,
		"sizes": `[{"size_label":"A","price":900},{"size_label":"B","price":700}]`,
	}, apitest.FormFile{Field: "image", Filename: "mirror.png", Data: apitest.PNG(t, 2500, 1000)})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode(t, rec)
	assert.Equal(t, 700.0, created.Price, "price falls back to the cheapest size")
	assert.Equal(t, baseURL+"/api/images/artworks/art-1700000000001?v=1700000000001", created.Image)

	img, err := s.GetArtworkImage(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.MimeType)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1920, cfg.Width)

	rec = send(t, r, http.MethodPut, "/api/artworks/"+created.ID, map[string]string{"materials": "Clay"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.Image, decode(t, rec).Image)

	rec = send(t, r, http.MethodPut, "/api/artworks/"+created.ID, map[string]string{},
		apitest.FormFile{Field: "image", Filename: "mirror.gif", Data: apitest.PNG(t, 5, 5)})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, baseURL+"/api/images/artworks/art-1700000000001?v=1700000000003", decode(t, rec).Image)
}

type brokenArtworkImages struct {
	*apitest.ImageBackedStore
}

func (brokenArtworkImages) StoreArtworkImage(context.Context, string, content.Image) error {
	return errors.New("image write failed")
}

func TestDatabaseModeImageFailureKeepsOldVersion(t *testing.T) {
	ctx := context.Background()
	s := apitest.NewImageBackedStore(t)
	clk := &clock{t: time.UnixMilli(1700000000000).UTC()}
	h := &Handler{Store: s, Images: s, BaseURL: baseURL, Log: apitest.Logger(), Now: clk.now}
	r := newRouter(h)

	rec := send(t, r, http.MethodPost, "/api/artworks", map[string]string{
		"title": "Dot Mandala", "category": content.CategoryDotMandala, "price": "300",
	}, apitest.FormFile{Field: "image", Filename: "m.png", Data: apitest.PNG(t, 10, 10)})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	before, err := s.GetArtworkImage(ctx, created.ID)
	require.NoError(t, err)

	h.Images = brokenArtworkImages{s}
	rec = send(t, r, http.MethodPut, "/api/artworks/"+created.ID, map[string]string{"title": "Renamed"},
		apitest.FormFile{Field: "image", Filename: "n.png", Data: apitest.PNG(t, 20, 20)})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	got, err := s.GetArtwork(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Image, got.Image)
	assert.Equal(t, "Dot Mandala", got.Title)
	after, err := s.GetArtworkImage(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Data, after.Data)
}

func TestSameMillisecondCreateConflicts(t *testing.T) {
	fixed := time.UnixMilli(1700000000000).UTC()
	h := &Handler{Store: apitest.NewFileStore(t), BaseURL: baseURL, UploadsDir: t.TempDir(), Log: apitest.Logger(),
		Now: func() time.Time { return fixed }}
	r := newRouter(h)

	fields := map[string]string{"title": "x", "category": content.CategoryTextileDesign, "price": "1"}
	assert.Equal(t, http.StatusCreated, send(t, r, http.MethodPost, "/api/artworks", fields).Code)
	assert.Equal(t, http.StatusConflict, send(t, r, http.MethodPost, "/api/artworks", fields).Code)
}

func TestListFiltersByCategory(t *testing.T) {
	ctx := context.Background()
	s := apitest.NewFileStore(t)
	for id, cat := range map[string]string{"art-1": content.CategoryDotMandala, "art-2": content.CategoryLippanArt, "art-3": content.CategoryDotMandala} {
		_, err := s.CreateArtwork(ctx, &content.Artwork{ID: id, Title: id, Category: cat})
		require.NoError(t, err)
	}
	r := newRouter(&Handler{Store: s, Log: apitest.Logger()})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/artworks?category=dot-mandala", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list []content.Artwork
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/artworks", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 3)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/artworks/art-404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
