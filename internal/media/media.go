// Package media prepares uploaded images for storage.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const (
	MaxDimension   = 1920
	JPEGQuality    = 85
	MaxUploadBytes = 5 << 20

	MimeJPEG = "image/jpeg"
)

var ErrUnsupportedType = errors.New("only image files are allowed")

var allowedUploads = []string{"image/jpeg", "image/png", "image/gif"}

// Compress decodes an image, fits it inside MaxDimension x MaxDimension
// without enlarging, and re-encodes it as JPEG.
func Compress(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("media: decode: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > MaxDimension || b.Dy() > MaxDimension {
		img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("media: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// DetectUpload sniffs the content type and rejects anything but jpeg, png
// and gif.
func DetectUpload(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedUploads...) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}
	return mt.String(), nil
}

// Extension returns the file extension for a sniffed type, dot included.
func Extension(data []byte) string {
	return mimetype.Detect(data).Extension()
}
