package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"chitrakala-api/config"
	"chitrakala-api/internal/api/images"
	routes "chitrakala-api/internal/app/http"
	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/observability"
	"chitrakala-api/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel)
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	secret := cfg.MustJWTSecret()

	ctx := context.Background()
	s, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("❌ Failed to open content store")
	}
	defer s.Close()

	if cfg.DefaultAdminPassword == "" {
		log.Warn("⚠️  DEFAULT_ADMIN_PASSWORD not set, skipping admin bootstrap")
	} else if err := store.EnsureDefaultAdmin(ctx, s, cfg.DefaultAdminPassword, cfg.ResetAdmin, log); err != nil {
		log.WithError(err).Fatal("❌ Failed to initialize admin user")
	}

	imageStore, _ := s.(content.ImageStore)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigin, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.CORSOrigin != "*",
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Store:      s,
		Images:     imageStore,
		ImageCache: images.NewCache(10*time.Minute, metrics),
		Metrics:    metrics,
		Log:        log,
		JWTSecret:  []byte(secret),
		BaseURL:    cfg.BaseURL,
		UploadsDir: cfg.UploadsDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("🚀 Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("❌ Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("❌ Forced shutdown")
	}
}
