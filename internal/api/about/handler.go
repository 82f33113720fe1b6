package about

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"chitrakala-api/internal/api/images"
	"chitrakala-api/internal/api/respond"
	"chitrakala-api/internal/api/upload"
	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/media"
	"chitrakala-api/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Store      content.Store
	Images     content.ImageStore
	Cache      *images.Cache
	BaseURL    string
	UploadsDir string
	Metrics    *observability.Metrics
	Log        *logrus.Logger
	Now        func() time.Time
}

// current returns the stored page, or the defaults when it was never saved.
func (h *Handler) current(ctx context.Context) (*content.About, error) {
	a, err := h.Store.GetAbout(ctx)
	if errors.Is(err, content.ErrNotFound) {
		d := content.DefaultAbout()
		return &d, nil
	}
	return a, err
}

// GET /api/about
func (h *Handler) Get(c *gin.Context) {
	a, err := h.current(c.Request.Context())
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to fetch about page")
		return
	}
	c.JSON(http.StatusOK, a)
}

// PUT /api/about
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var in content.About
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Invalid(c, "body", "must be a JSON about page")
		return
	}
	if err := clean(&in); err != nil {
		respond.Error(c, h.Log, err, "")
		return
	}

	if err := h.Store.UpdateAbout(ctx, &in); err != nil {
		respond.Error(c, h.Log, err, "Failed to update about page")
		return
	}
	out, err := h.current(ctx)
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to update about page")
		return
	}

	h.Log.Info("✅ About page updated")
	c.JSON(http.StatusOK, gin.H{"message": "About page updated successfully", "data": out})
}

// clean trims the page and drops blank paragraphs. Art forms need a title.
func clean(a *content.About) error {
	a.Normalize()
	a.Story.Title = strings.TrimSpace(a.Story.Title)

	paragraphs := make([]string, 0, len(a.Story.Paragraphs))
	for _, p := range a.Story.Paragraphs {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	a.Story.Paragraphs = paragraphs

	for i := range a.ArtForms {
		a.ArtForms[i].Title = strings.TrimSpace(a.ArtForms[i].Title)
		if a.ArtForms[i].Title == "" {
			return &content.ValidationError{Field: "artForms", Message: "every art form needs a title"}
		}
	}
	return nil
}

// POST /api/about/upload-image
func (h *Handler) UploadImage(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := upload.Read(c, "image")
	if err != nil {
		respond.Error(c, h.Log, err, "")
		return
	}
	if file == nil {
		respond.Invalid(c, "image", "no image file provided")
		return
	}
	if h.Metrics != nil {
		h.Metrics.UploadBytes.WithLabelValues("about").Observe(float64(len(file.Data)))
	}

	page, err := h.current(ctx)
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to upload image")
		return
	}
	previous := page.Story.Image

	now := time.Now().UTC()
	if h.Now != nil {
		now = h.Now()
	}

	var url string
	if h.Images != nil {
		compressed, err := media.Compress(bytes.NewReader(file.Data))
		if err != nil {
			respond.Error(c, h.Log, &content.ValidationError{Field: "image", Message: err.Error()}, "")
			return
		}
		url = upload.Versioned(content.AboutImageURL(h.BaseURL), now)
		page.Story.Image = url
		// the row must exist before its image columns can be written
		if err := h.Store.UpdateAbout(ctx, page); err != nil {
			respond.Error(c, h.Log, err, "Failed to upload image")
			return
		}
		if err := h.Images.StoreAboutImage(ctx, content.Image{Data: compressed, MimeType: media.MimeJPEG}); err != nil {
			respond.Error(c, h.Log, err, "Failed to upload image")
			return
		}
		if h.Cache != nil {
			h.Cache.Invalidate(images.KeyAbout)
		}
	} else {
		name, err := upload.Save(h.UploadsDir, file, now)
		if err != nil {
			respond.Error(c, h.Log, err, "Failed to upload image")
			return
		}
		url = upload.PublicURL(h.BaseURL, name)
		page.Story.Image = url
		if err := h.Store.UpdateAbout(ctx, page); err != nil {
			_ = upload.Remove(h.UploadsDir, url)
			respond.Error(c, h.Log, err, "Failed to upload image")
			return
		}
		if err := upload.Remove(h.UploadsDir, previous); err != nil {
			h.Log.WithError(err).Warn("⚠️  Could not remove previous about image")
		}
	}

	h.Log.WithField("url", url).Info("🖼️ About image uploaded")
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
