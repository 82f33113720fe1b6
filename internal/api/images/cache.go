package images

import (
	"time"

	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/observability"

	"github.com/patrickmn/go-cache"
)

const (
	KeyAbout = "about"
	KeyLogo  = "logo"
)

// Cache keeps the about and logo images in memory. Uploads call Invalidate.
type Cache struct {
	c       *cache.Cache
	metrics *observability.Metrics
}

func NewCache(ttl time.Duration, metrics *observability.Metrics) *Cache {
	return &Cache{c: cache.New(ttl, 2*ttl), metrics: metrics}
}

// Get returns the cached image for key, calling fetch on a miss. Empty
// images are not cached.
func (c *Cache) Get(key string, fetch func() (*content.Image, error)) (*content.Image, error) {
	if v, found := c.c.Get(key); found {
		c.count(true, key)
		return v.(*content.Image), nil
	}
	c.count(false, key)

	img, err := fetch()
	if err != nil {
		return nil, err
	}
	if !img.Empty() {
		c.c.Set(key, img, cache.DefaultExpiration)
	}
	return img, nil
}

func (c *Cache) Invalidate(key string) {
	c.c.Delete(key)
}

func (c *Cache) count(hit bool, key string) {
	if c.metrics == nil {
		return
	}
	if hit {
		c.metrics.ImageCacheHitsTotal.WithLabelValues(key).Inc()
	} else {
		c.metrics.ImageCacheMissesTotal.WithLabelValues(key).Inc()
	}
}
