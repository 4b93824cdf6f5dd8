package services

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 120, G: 60, B: 30, A: 255})
	buf := &bytes.Buffer{}
	require.NoError(t, imaging.Encode(buf, img, imaging.PNG))
	return buf
}

func TestImageService_Prepare(t *testing.T) {
	svc := NewImageService()

	t.Run("passes small images through at original size", func(t *testing.T) {
		prepared, err := svc.Prepare(encodePNG(t, 640, 480), "photo.png")
		require.NoError(t, err)

		assert.Equal(t, 640, prepared.Width)
		assert.Equal(t, 480, prepared.Height)
		assert.Equal(t, "photo.jpg", prepared.Filename)

		decoded, err := imaging.Decode(prepared.Data)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 640, 480), decoded.Bounds())
	})

	t.Run("downscales oversized images preserving aspect ratio", func(t *testing.T) {
		prepared, err := svc.Prepare(encodePNG(t, 2400, 1200), "banner.png")
		require.NoError(t, err)

		assert.Equal(t, 1200, prepared.Width)
		assert.Equal(t, 600, prepared.Height)
	})

	t.Run("rejects non-image uploads", func(t *testing.T) {
		_, err := svc.Prepare(strings.NewReader("definitely not an image"), "evil.png")
		assert.Error(t, err)
	})
}

func TestNormalizeFilename(t *testing.T) {
	assert.Equal(t, "photo.jpg", normalizeFilename("photo.png"))
	assert.Equal(t, "photo.jpg", normalizeFilename("photo.jpg"))
	assert.Equal(t, "archive.tar.jpg", normalizeFilename("archive.tar.gz"))
	assert.Equal(t, "photo.jpg", normalizeFilename("photo"))
	assert.Equal(t, "product.jpg", normalizeFilename(""))
}
