package admin

import (
	"net/http"
	"time"

	"chitrakala-api/internal/api/respond"
	"chitrakala-api/internal/domain/content"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Store content.Store
	Log   *logrus.Logger
}

type AdminUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminStats struct {
	TotalArtworks   int            `json:"total_artworks"`
	FeaturedCount   int            `json:"featured_count"`
	ArtworksPerCat  map[string]int `json:"artworks_per_category"`
	TotalUsers      int            `json:"total_users"`
	LatestArtworkAt *time.Time     `json:"latest_artwork_at,omitempty"`
}

// GET /api/admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	artworks, err := h.Store.ListArtworks(ctx)
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to load dashboard")
		return
	}
	users, err := h.Store.ListUsers(ctx)
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to load dashboard")
		return
	}

	stats := AdminStats{
		TotalArtworks:  len(artworks),
		ArtworksPerCat: make(map[string]int, len(content.Categories)),
		TotalUsers:     len(users),
	}
	for _, cat := range content.Categories {
		stats.ArtworksPerCat[cat] = 0
	}
	for _, a := range artworks {
		stats.ArtworksPerCat[a.Category]++
		if a.Featured {
			stats.FeaturedCount++
		}
	}
	// newest first
	if len(artworks) > 0 {
		t := artworks[0].CreatedAt
		stats.LatestArtworkAt = &t
	}

	c.JSON(http.StatusOK, stats)
}

// GET /api/admin/users. Password hashes never leave the store.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		respond.Error(c, h.Log, err, "Failed to load users")
		return
	}

	out := make([]AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, AdminUser{ID: u.ID, Username: u.Username, Role: u.Role, CreatedAt: u.CreatedAt})
	}
	c.JSON(http.StatusOK, out)
}
