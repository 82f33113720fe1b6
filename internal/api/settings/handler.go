package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"chitrakala-api/internal/api/images"
	"chitrakala-api/internal/api/respond"
	"chitrakala-api/internal/api/upload"
	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler serves the site settings. Logos keep their uploaded format; in
// database mode they are stored uncompressed so transparency survives.
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

func (h *Handler) current(ctx context.Context) (*content.Settings, error) {
	st, err := h.Store.GetSettings(ctx)
	if errors.Is(err, content.ErrNotFound) {
		d := content.DefaultSettings()
		return &d, nil
	}
	return st, err
}

// GET /api/settings and /settings
func (h *Handler) Get(c *gin.Context) {
	st, err := h.current(c.Request.Context())
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, st)
}

// PUT /api/settings and /settings. The body is JSON, or multipart with the
// JSON document in "settings" and an optional "developerLogo" file.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := readSettings(c)
	if err != nil {
		respond.Error(c, h.Log, err, "")
		return
	}
	logo, err := upload.Read(c, "developerLogo")
	if err != nil {
		respond.Error(c, h.Log, err, "")
		return
	}

	existing, err := h.current(ctx)
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to update settings")
		return
	}
	// the logo URL is managed here; clients echo it back or leave it out
	if in.Developer.Logo == "" {
		in.Developer.Logo = existing.Developer.Logo
	}

	if logo == nil {
		if err := h.Store.UpdateSettings(ctx, in); err != nil {
			respond.Error(c, h.Log, err, "Failed to update settings")
			return
		}
		h.done(c, in)
		return
	}

	if h.Metrics != nil {
		h.Metrics.UploadBytes.WithLabelValues("logo").Observe(float64(len(logo.Data)))
	}
	now := time.Now().UTC()
	if h.Now != nil {
		now = h.Now()
	}

	if h.Images != nil {
		in.Developer.Logo = upload.Versioned(content.LogoImageURL(h.BaseURL), now)
		if err := h.Store.UpdateSettings(ctx, in); err != nil {
			respond.Error(c, h.Log, err, "Failed to update settings")
			return
		}
		if err := h.Images.StoreLogoImage(ctx, content.Image{Data: logo.Data, MimeType: logo.MimeType}); err != nil {
			respond.Error(c, h.Log, err, "Failed to update settings")
			return
		}
		if h.Cache != nil {
			h.Cache.Invalidate(images.KeyLogo)
		}
		h.done(c, in)
		return
	}

	name, err := upload.Save(h.UploadsDir, logo, now)
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to update settings")
		return
	}
	previous := existing.Developer.Logo
	in.Developer.Logo = upload.PublicURL(h.BaseURL, name)
	if err := h.Store.UpdateSettings(ctx, in); err != nil {
		_ = upload.Remove(h.UploadsDir, in.Developer.Logo)
		respond.Error(c, h.Log, err, "Failed to update settings")
		return
	}
	if previous != in.Developer.Logo {
		if err := upload.Remove(h.UploadsDir, previous); err != nil {
			h.Log.WithError(err).Warn("⚠️  Could not remove previous logo")
		}
	}
	h.done(c, in)
}

func (h *Handler) done(c *gin.Context, st *content.Settings) {
	h.Log.Info("✅ Site settings updated")
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully", "data": st})
}

func readSettings(c *gin.Context) (*content.Settings, error) {
	var st content.Settings
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		raw := c.PostForm("settings")
		if raw == "" {
			return nil, &content.ValidationError{Field: "settings", Message: "is required"}
		}
		if err := json.Unmarshal([]byte(raw), &st); err != nil {
			return nil, &content.ValidationError{Field: "settings", Message: "must be a JSON settings document"}
		}
	} else if err := c.ShouldBindJSON(&st); err != nil {
		return nil, &content.ValidationError{Field: "body", Message: "must be a JSON settings document"}
	}

	st.SiteName = strings.TrimSpace(st.SiteName)
	if st.SiteName == "" {
		return nil, &content.ValidationError{Field: "siteName", Message: "is required"}
	}
	return &st, nil
}
