package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chitrakala-api/internal/api/apitest"
	"chitrakala-api/internal/domain/content"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardAndUsers(t *testing.T) {
	ctx := context.Background()
	s := apitest.NewFileStore(t)
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, a := range []content.Artwork{
		{ID: "art-1", Category: content.CategoryDotMandala, Featured: true},
		{ID: "art-2", Category: content.CategoryDotMandala},
		{ID: "art-3", Category: content.CategoryLippanArt, Featured: true},
	} {
		a.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		_, err := s.CreateArtwork(ctx, &a)
		require.NoError(t, err)
	}
	require.NoError(t, s.CreateUser(ctx, &content.User{ID: "admin-1", Username: "admin", Password: "secret-hash", Role: content.RoleAdmin}))

	gin.SetMode(gin.TestMode)
	h := &Handler{Store: s, Log: apitest.Logger()}
	r := gin.New()
	r.GET("/dashboard", h.Dashboard)
	r.GET("/users", h.ListUsers)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var stats AdminStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalArtworks)
	assert.Equal(t, 2, stats.FeaturedCount)
	assert.Equal(t, map[string]int{"dot-mandala": 2, "lippan-art": 1, "textile-design": 0}, stats.ArtworksPerCat)
	assert.Equal(t, 1, stats.TotalUsers)
	require.NotNil(t, stats.LatestArtworkAt)
	assert.True(t, base.Add(2*time.Hour).Equal(*stats.LatestArtworkAt))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
}
