package artworks

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"chitrakala-api/internal/domain/content"

	"github.com/gin-gonic/gin"
)

// artworkForm is the multipart body of create and update. Empty strings
// mean "not sent".
type artworkForm struct {
	Title       string
	Category    string
	Description string
	Price       string
	Dimensions  string
	Materials   string
	Featured    string
	Sizes       string
}

func readForm(c *gin.Context) artworkForm {
	f := artworkForm{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Category:    strings.TrimSpace(c.PostForm("category")),
		Description: c.PostForm("description"),
		Price:       strings.TrimSpace(c.PostForm("price")),
		Dimensions:  strings.TrimSpace(c.PostForm("dimensions")),
		Materials:   strings.TrimSpace(c.PostForm("materials")),
		Featured:    c.PostForm("featured"),
		Sizes:       strings.TrimSpace(c.PostForm("sizes")),
	}
	// older admin builds send the size label as "size"
	if f.Dimensions == "" {
		f.Dimensions = strings.TrimSpace(c.PostForm("size"))
	}
	return f
}

func parsePrice(raw string) (float64, error) {
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0, &content.ValidationError{Field: "price", Message: "must be a non-negative number"}
	}
	return p, nil
}

func parseSizes(raw string) ([]content.SizePrice, error) {
	var sizes []content.SizePrice
	if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
		return nil, &content.ValidationError{Field: "sizes", Message: "must be a JSON list of {size_label, price}"}
	}
	out := make([]content.SizePrice, 0, len(sizes))
	for _, s := range sizes {
		s.SizeLabel = strings.TrimSpace(s.SizeLabel)
		if s.SizeLabel == "" {
			continue
		}
		if s.Price < 0 {
			return nil, &content.ValidationError{Field: "sizes", Message: "prices must be non-negative"}
		}
		out = append(out, s)
	}
	return out, nil
}

// newArtwork validates a create form.
func (f artworkForm) newArtwork() (*content.Artwork, error) {
	if f.Title == "" {
		return nil, &content.ValidationError{Field: "title", Message: "is required"}
	}
	if !content.ValidCategory(f.Category) {
		return nil, &content.ValidationError{Field: "category", Message: "must be one of " + strings.Join(content.Categories, ", ")}
	}

	a := &content.Artwork{
		Title:       f.Title,
		Category:    f.Category,
		Description: f.Description,
		Dimensions:  f.Dimensions,
		Materials:   f.Materials,
		Featured:    f.Featured == "true",
		Sizes:       []content.SizePrice{},
	}
	if f.Sizes != "" {
		sizes, err := parseSizes(f.Sizes)
		if err != nil {
			return nil, err
		}
		a.Sizes = sizes
	}
	switch {
	case f.Price != "":
		p, err := parsePrice(f.Price)
		if err != nil {
			return nil, err
		}
		a.Price = p
	case len(a.Sizes) > 0:
		a.Price = a.DisplayPrice()
	default:
		return nil, &content.ValidationError{Field: "price", Message: "is required"}
	}
	return a, nil
}

// applyTo merges an update form over existing. Fields not sent keep their
// current value; featured is only changed when sent.
func (f artworkForm) applyTo(existing content.Artwork, featuredSent bool) (*content.Artwork, error) {
	a := existing
	if f.Title != "" {
		a.Title = f.Title
	}
	if f.Category != "" {
		if !content.ValidCategory(f.Category) {
			return nil, &content.ValidationError{Field: "category", Message: "must be one of " + strings.Join(content.Categories, ", ")}
		}
		a.Category = f.Category
	}
	if f.Description != "" {
		a.Description = f.Description
	}
	if f.Price != "" {
		p, err := parsePrice(f.Price)
		if err != nil {
			return nil, err
		}
		a.Price = p
	}
	if f.Dimensions != "" {
		a.Dimensions = f.Dimensions
	}
	if f.Materials != "" {
		a.Materials = f.Materials
	}
	if featuredSent {
		a.Featured = f.Featured == "true"
	}
	if f.Sizes != "" {
		sizes, err := parseSizes(f.Sizes)
		if err != nil {
			return nil, err
		}
		a.Sizes = sizes
	}
	return &a, nil
}
