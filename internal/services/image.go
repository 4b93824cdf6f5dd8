// Package services holds request-shaping helpers that sit between the
// handlers and the remote API.
package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// Product images are bounded before the multipart forward so an oversized
// upload never travels to the backend. Storage of the image stays the
// backend's concern.
const (
	maxImageWidth  = 1200
	maxImageHeight = 1200
	jpegQuality    = 85
)

// ImageService validates and downscales product images supplied through
// the admin forms.
type ImageService struct{}

// NewImageService creates a new image service.
func NewImageService() *ImageService {
	return &ImageService{}
}

// PreparedImage is a normalized image ready to forward as multipart.
type PreparedImage struct {
	Data     *bytes.Buffer
	Filename string
	Width    int
	Height   int
}

// Prepare decodes the upload, rejects anything that is not a readable
// image, and downscales it to the configured bounds. Output is always
// JPEG, so the forwarded filename is normalized too.
func (s *ImageService) Prepare(upload io.Reader, filename string) (*PreparedImage, error) {
	img, err := imaging.Decode(upload)
	if err != nil {
		return nil, fmt.Errorf("unsupported or corrupt image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageWidth || bounds.Dy() > maxImageHeight {
		img = imaging.Fit(img, maxImageWidth, maxImageHeight, imaging.Lanczos)
	}

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &PreparedImage{
		Data:     buf,
		Filename: normalizeFilename(filename),
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
	}, nil
}

func normalizeFilename(name string) string {
	if name == "" {
		return "product.jpg"
	}
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i] + ".jpg"
		}
	}
	return name + ".jpg"
}
