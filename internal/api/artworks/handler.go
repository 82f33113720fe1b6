package artworks

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"chitrakala-api/internal/api/respond"
	"chitrakala-api/internal/api/upload"
	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/media"
	"chitrakala-api/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler serves /api/artworks. With Images set, uploads are compressed
// into the database; otherwise they are written under UploadsDir.
type Handler struct {
	Store      content.Store
	Images     content.ImageStore
	BaseURL    string
	UploadsDir string
	Metrics    *observability.Metrics
	Log        *logrus.Logger
	Now        func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

// GET /api/artworks?category=
func (h *Handler) List(c *gin.Context) {
	all, err := h.Store.ListArtworks(c.Request.Context())
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to fetch artworks")
		return
	}

	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusOK, all)
		return
	}
	out := make([]content.Artwork, 0, len(all))
	for _, a := range all {
		if a.Category == category {
			out = append(out, a)
		}
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/artworks/:id
func (h *Handler) Get(c *gin.Context) {
	a, err := h.Store.GetArtwork(c.Request.Context(), c.Param("id"))
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to fetch artwork")
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /api/artworks
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	a, err := readForm(c).newArtwork()
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to create artwork")
		return
	}
	file, err := upload.Read(c, "image")
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to create artwork")
		return
	}

	now := h.now()
	a.ID = content.NewArtworkID(now)
	a.CreatedAt = now

	var compressed []byte
	var savedName string
	if file != nil {
		h.observeUpload(file)
		if h.Images != nil {
			if compressed, err = media.Compress(bytes.NewReader(file.Data)); err != nil {
				respond.Error(c, h.Log, &content.ValidationError{Field: "image", Message: err.Error()}, "")
				return
			}
			a.Image = upload.Versioned(content.ArtworkImageURL(h.BaseURL, a.ID), now)
		} else {
			if savedName, err = upload.Save(h.UploadsDir, file, now); err != nil {
				respond.Error(c, h.Log, err, "Failed to create artwork")
				return
			}
			a.Image = upload.PublicURL(h.BaseURL, savedName)
		}
	}

	created, err := h.Store.CreateArtwork(ctx, a)
	if err != nil {
		if savedName != "" {
			_ = upload.Remove(h.UploadsDir, a.Image)
		}
		respond.Error(c, h.Log, err, "Failed to create artwork")
		return
	}

	if compressed != nil {
		err := h.Images.StoreArtworkImage(ctx, created.ID, content.Image{Data: compressed, MimeType: media.MimeJPEG})
		if err != nil {
			if derr := h.Store.DeleteArtwork(ctx, created.ID); derr != nil {
				h.Log.WithError(derr).WithField("id", created.ID).Error("❌ Failed to remove artwork after image error")
			}
			respond.Error(c, h.Log, err, "Failed to create artwork")
			return
		}
	}

	h.Log.WithField("id", created.ID).Info("✅ Artwork created")
	c.JSON(http.StatusCreated, created)
}

// PUT /api/artworks/:id
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	existing, err := h.Store.GetArtwork(ctx, id)
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to update artwork")
		return
	}

	_, featuredSent := c.GetPostForm("featured")
	updated, err := readForm(c).applyTo(*existing, featuredSent)
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to update artwork")
		return
	}
	file, err := upload.Read(c, "image")
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to update artwork")
		return
	}

	now := h.now()
	replacedFile := false
	var compressed []byte
	if file != nil {
		h.observeUpload(file)
		if h.Images != nil {
			compressed, err = media.Compress(bytes.NewReader(file.Data))
			if err != nil {
				respond.Error(c, h.Log, &content.ValidationError{Field: "image", Message: err.Error()}, "")
				return
			}
			updated.Image = upload.Versioned(content.ArtworkImageURL(h.BaseURL, id), now)
		} else {
			name, err := upload.Save(h.UploadsDir, file, now)
			if err != nil {
				respond.Error(c, h.Log, err, "Failed to update artwork")
				return
			}
			updated.Image = upload.PublicURL(h.BaseURL, name)
			replacedFile = true
		}
	}

	out, err := h.Store.UpdateArtwork(ctx, id, updated)
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to update artwork")
		return
	}

	// The bytes go in only once the row carries the new ?v= URL. If they
	// fail, the row goes back to the old URL which still matches the old bytes.
	if compressed != nil {
		if err := h.Images.StoreArtworkImage(ctx, id, content.Image{Data: compressed, MimeType: media.MimeJPEG}); err != nil {
			if _, rerr := h.Store.UpdateArtwork(ctx, id, existing); rerr != nil {
				h.Log.WithError(rerr).WithField("id", id).Error("❌ Failed to restore artwork after image error")
			}
			respond.Error(c, h.Log, err, "Failed to update artwork")
			return
		}
	}

	if replacedFile {
		if err := upload.Remove(h.UploadsDir, existing.Image); err != nil {
			h.Log.WithError(err).Warn("⚠️  Could not remove replaced upload")
		}
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/artworks/:id
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	existing, err := h.Store.GetArtwork(ctx, id)
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to delete artwork")
		return
	}

	if err := h.Store.DeleteArtwork(ctx, id); err != nil {
		respond.Error(c, h.Log, err, "Failed to delete artwork")
		return
	}
	if err := upload.Remove(h.UploadsDir, existing.Image); err != nil {
		h.Log.WithError(err).Warn("⚠️  Could not remove artwork upload")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted successfully"})
}

func (h *Handler) observeUpload(f *upload.File) {
	if h.Metrics != nil {
		h.Metrics.UploadBytes.WithLabelValues("artwork").Observe(float64(len(f.Data)))
	}
}
