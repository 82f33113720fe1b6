package images

import (
	"errors"
	"net/http"

	"chitrakala-api/internal/domain/content"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	noCache   = "no-cache, no-store, must-revalidate"
	immutable = "public, max-age=31536000, immutable"
)

// Handler serves images stored in the database. Images is nil when the
// process runs on the file store; every route then answers 404.
type Handler struct {
	Images content.ImageStore
	Cache  *Cache
	Log    *logrus.Logger
}

// GET /api/images/artworks/:id
func (h *Handler) Artwork(c *gin.Context) {
	if h.Images == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	img, err := h.Images.GetArtworkImage(c.Request.Context(), c.Param("id"))
	h.write(c, img, err, noCache)
}

// GET /api/images/about
func (h *Handler) About(c *gin.Context) {
	h.cached(c, KeyAbout, func() (*content.Image, error) {
		return h.Images.GetAboutImage(c.Request.Context())
	})
}

// GET /api/images/logo
func (h *Handler) Logo(c *gin.Context) {
	h.cached(c, KeyLogo, func() (*content.Image, error) {
		return h.Images.GetLogoImage(c.Request.Context())
	})
}

func (h *Handler) cached(c *gin.Context, key string, fetch func() (*content.Image, error)) {
	if h.Images == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	img, err := h.Cache.Get(key, fetch)
	h.write(c, img, err, immutable)
}

func (h *Handler) write(c *gin.Context, img *content.Image, err error, cacheControl string) {
	if errors.Is(err, content.ErrNotFound) || (err == nil && img.Empty()) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("❌ Error serving image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch image"})
		return
	}

	mime := img.MimeType
	if mime == "" {
		mime = "image/jpeg"
	}
	c.Header("Cache-Control", cacheControl)
	c.Data(http.StatusOK, mime, img.Data)
}
