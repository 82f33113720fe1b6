// Package upload reads image uploads from multipart forms and manages files
// under the uploads directory.
package upload

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/media"

	"github.com/gin-gonic/gin"
)

type File struct {
	Data     []byte
	MimeType string
	Ext      string
}

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}

// Read returns the image in form field, or nil when the request has none.
// Size, extension and sniffed type are checked.
func Read(c *gin.Context, field string) (*File, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, &content.ValidationError{Field: field, Message: err.Error()}
	}
	if fh.Size > media.MaxUploadBytes {
		return nil, &content.ValidationError{Field: field, Message: "file too large (max 5MB)"}
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return nil, &content.ValidationError{Field: field, Message: media.ErrUnsupportedType.Error()}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, media.MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > media.MaxUploadBytes {
		return nil, &content.ValidationError{Field: field, Message: "file too large (max 5MB)"}
	}

	mime, err := media.DetectUpload(data)
	if err != nil {
		return nil, &content.ValidationError{Field: field, Message: media.ErrUnsupportedType.Error()}
	}
	return &File{Data: data, MimeType: mime, Ext: ext}, nil
}

// Save writes f into dir as <millis>-<random><ext> and returns the name.
func Save(dir string, f *File, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.Intn(1_000_000_000), f.Ext)
	if err := os.WriteFile(filepath.Join(dir, name), f.Data, 0644); err != nil {
		return "", err
	}
	return name, nil
}

// PublicURL is where the static /uploads route serves name.
func PublicURL(baseURL, name string) string {
	return strings.TrimRight(baseURL, "/") + "/uploads/" + name
}

// Remove deletes the uploaded file an image URL points at. URLs outside
// /uploads/ and files already gone are ignored.
func Remove(dir, imageURL string) error {
	_, name, ok := strings.Cut(imageURL, "/uploads/")
	if !ok || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Versioned appends a cache-busting version to a database image URL.
func Versioned(url string, t time.Time) string {
	return fmt.Sprintf("%s?v=%d", url, t.UnixMilli())
}
