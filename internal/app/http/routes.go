package routes

import (
	"net/http"

	"chitrakala-api/internal/api/about"
	adminapi "chitrakala-api/internal/api/admin"
	"chitrakala-api/internal/api/artworks"
	authapi "chitrakala-api/internal/api/auth"
	"chitrakala-api/internal/api/contact"
	"chitrakala-api/internal/api/images"
	"chitrakala-api/internal/api/settings"
	"chitrakala-api/internal/app/http/middleware"
	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps is everything the route table needs. Images is nil on the file
// store; uploads are then written to UploadsDir and served from /uploads.
type Deps struct {
	Store      content.Store
	Images     content.ImageStore
	ImageCache *images.Cache
	Metrics    *observability.Metrics
	Log        *logrus.Logger

	JWTSecret  []byte
	BaseURL    string
	UploadsDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics, d.Log))
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		mode := "file"
		if d.Images != nil {
			mode = "database"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": mode})
	})

	if d.Images == nil {
		r.Static("/uploads", d.UploadsDir)
	}

	authH := &authapi.Handler{Store: d.Store, Secret: d.JWTSecret, Log: d.Log}
	artworkH := &artworks.Handler{Store: d.Store, Images: d.Images, BaseURL: d.BaseURL, UploadsDir: d.UploadsDir, Metrics: d.Metrics, Log: d.Log}
	aboutH := &about.Handler{Store: d.Store, Images: d.Images, Cache: d.ImageCache, BaseURL: d.BaseURL, UploadsDir: d.UploadsDir, Metrics: d.Metrics, Log: d.Log}
	contactH := &contact.Handler{Store: d.Store, Log: d.Log}
	settingsH := &settings.Handler{Store: d.Store, Images: d.Images, Cache: d.ImageCache, BaseURL: d.BaseURL, UploadsDir: d.UploadsDir, Metrics: d.Metrics, Log: d.Log}
	adminH := &adminapi.Handler{Store: d.Store, Log: d.Log}
	imageH := &images.Handler{Images: d.Images, Cache: d.ImageCache, Log: d.Log}

	// Public
	api := r.Group("/api")
	api.POST("/auth/login", authH.Login)
	api.GET("/artworks", artworkH.List)
	api.GET("/artworks/:id", artworkH.Get)
	api.GET("/about", aboutH.Get)
	api.GET("/contact", contactH.Get)
	api.GET("/settings", settingsH.Get)
	api.GET("/images/artworks/:id", imageH.Artwork)
	api.GET("/images/about", imageH.About)
	api.GET("/images/logo", imageH.Logo)

	// the admin settings page talks to the un-prefixed path
	r.GET("/settings", settingsH.Get)

	// Admin
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(d.JWTSecret))
	admin.GET("/api/auth/verify", authH.Verify)

	editor := admin.Group("/")
	editor.Use(middleware.RequireRole(content.RoleAdmin), middleware.SanitizeAndCleanInputMiddleware())
	editor.POST("/api/artworks", artworkH.Create)
	editor.PUT("/api/artworks/:id", artworkH.Update)
	editor.DELETE("/api/artworks/:id", artworkH.Delete)
	editor.PUT("/api/about", aboutH.Update)
	editor.POST("/api/about/upload-image", aboutH.UploadImage)
	editor.PUT("/api/contact", contactH.Update)
	editor.PUT("/api/settings", settingsH.Update)
	editor.PUT("/settings", settingsH.Update)
	editor.GET("/api/admin/dashboard", adminH.Dashboard)
	editor.GET("/api/admin/users", adminH.ListUsers)
}
