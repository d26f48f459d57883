// Package imageprep normalizes disc photos into a bounded JPEG encoding
// suitable for upload to a vision model.
package imageprep

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	_ "image/gif"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

const (
	// MaxDimension is the largest side length sent to a provider. Larger
	// images are scaled down, never up.
	MaxDimension = 2048

	// JPEGQuality is the re-encode quality for normalized images.
	JPEGQuality = 80

	// MediaType is the media type of every normalized image.
	MediaType = "image/jpeg"
)

// Normalize decodes the image at path and re-encodes it as an RGB JPEG with
// both dimensions bounded by MaxDimension. Transparency is composited over
// an opaque white background so stripped alpha does not leave dark artifacts.
func Normalize(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = flattenOntoWhite(img)

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > MaxDimension || height > MaxDimension {
		if width >= height {
			img = resize.Resize(MaxDimension, 0, img, resize.Lanczos3)
		} else {
			img = resize.Resize(0, MaxDimension, img, resize.Lanczos3)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}

// flattenOntoWhite draws the image over an opaque white background,
// producing an RGB-equivalent image regardless of the source color model.
func flattenOntoWhite(img image.Image) image.Image {
	bounds := img.Bounds()
	background := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(background, background.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(background, background.Bounds(), img, bounds.Min, draw.Over)
	return background
}
