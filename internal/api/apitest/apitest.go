// Package apitest provides fixtures for handler tests.
package apitest

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"sync"
	"testing"

	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/store/filestore"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// ImageBackedStore is a file store that also keeps images in memory, so
// handlers take their database code paths.
type ImageBackedStore struct {
	*filestore.Store

	mu       sync.Mutex
	artworks map[string]content.Image
	about    *content.Image
	logo     *content.Image
}

var _ content.ImageStore = (*ImageBackedStore)(nil)

func NewFileStore(t *testing.T) *filestore.Store {
	t.Helper()
	s, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	return s
}

func NewImageBackedStore(t *testing.T) *ImageBackedStore {
	return &ImageBackedStore{Store: NewFileStore(t), artworks: map[string]content.Image{}}
}

func (s *ImageBackedStore) StoreArtworkImage(ctx context.Context, id string, img content.Image) error {
	if _, err := s.GetArtwork(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artworks[id] = img
	return nil
}

func (s *ImageBackedStore) GetArtworkImage(ctx context.Context, id string) (*content.Image, error) {
	if _, err := s.GetArtwork(ctx, id); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	img := s.artworks[id]
	return &img, nil
}

func (s *ImageBackedStore) StoreAboutImage(ctx context.Context, img content.Image) error {
	if _, err := s.GetAbout(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.about = &img
	return nil
}

func (s *ImageBackedStore) GetAboutImage(ctx context.Context) (*content.Image, error) {
	if _, err := s.GetAbout(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.about == nil {
		return &content.Image{}, nil
	}
	img := *s.about
	return &img, nil
}

func (s *ImageBackedStore) StoreLogoImage(ctx context.Context, img content.Image) error {
	if _, err := s.GetSettings(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logo = &img
	return nil
}

func (s *ImageBackedStore) GetLogoImage(ctx context.Context) (*content.Image, error) {
	if _, err := s.GetSettings(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logo == nil {
		return &content.Image{}, nil
	}
	img := *s.logo
	return &img, nil
}

func Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func PNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{G: 180, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// FormFile is one file part of a multipart body.
type FormFile struct {
	Field    string
	Filename string
	Data     []byte
}

// Multipart encodes fields and files and returns the body with its
// content type.
func Multipart(t *testing.T, fields map[string]string, files ...FormFile) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		require.NoError(t, err)
		_, err = part.Write(f.Data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}
