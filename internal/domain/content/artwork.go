package content

import (
	"fmt"
	"strings"
	"time"
)

const (
	CategoryDotMandala    = "dot-mandala"
	CategoryLippanArt     = "lippan-art"
	CategoryTextileDesign = "textile-design"
)

var Categories = []string{CategoryDotMandala, CategoryLippanArt, CategoryTextileDesign}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// SizePrice is one size/price tier. When an artwork has sizes they are
// authoritative for display; Price and Dimensions stay for older clients.
type SizePrice struct {
	SizeLabel string  `json:"size_label"`
	Price     float64 `json:"price"`
}

type Artwork struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Category    string      `json:"category"`
	Price       float64     `json:"price"`
	Description string      `json:"description"`
	Dimensions  string      `json:"dimensions"`
	Materials   string      `json:"materials"`
	Image       string      `json:"image"`
	Featured    bool        `json:"featured"`
	Sizes       []SizePrice `json:"sizes"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

const artworkIDPrefix = "art-"

// NewArtworkID derives an id from the creation instant. Two creations in the
// same millisecond collide; the store reports that as ErrConflict.
func NewArtworkID(now time.Time) string {
	return fmt.Sprintf("%s%d", artworkIDPrefix, now.UnixMilli())
}

// ArtworkNumber returns the numeric part of an artwork id ("art-123" -> "123").
func ArtworkNumber(id string) string {
	return strings.TrimPrefix(id, artworkIDPrefix)
}

// Normalize fills nil collections so responses never carry null.
func (a *Artwork) Normalize() {
	if a.Sizes == nil {
		a.Sizes = []SizePrice{}
	}
}

// DisplayPrice is the lowest tier price when sizes exist, else Price.
func (a *Artwork) DisplayPrice() float64 {
	if len(a.Sizes) == 0 {
		return a.Price
	}
	min := a.Sizes[0].Price
	for _, s := range a.Sizes[1:] {
		if s.Price < min {
			min = s.Price
		}
	}
	return min
}

// ArtworkImageURL is the database-backed image endpoint for an artwork.
func ArtworkImageURL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/api/images/artworks/" + id
}

func AboutImageURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/api/images/about"
}

func LogoImageURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/api/images/logo"
}
