package imageprep

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeJPEG(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 130, B: 140, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeTransparentPNG(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// Fully transparent; naive alpha stripping would produce black.

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodeNormalized(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode normalized output: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("normalized output format = %s, want jpeg", format)
	}
	return img
}

func TestNormalizeKeepsSmallDimensions(t *testing.T) {
	path := writeJPEG(t, 1000, 800)

	data, err := Normalize(path)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	img := decodeNormalized(t, data)
	bounds := img.Bounds()
	if bounds.Dx() != 1000 || bounds.Dy() != 800 {
		t.Errorf("dimensions = %dx%d, want 1000x800 (no upscaling or downscaling)", bounds.Dx(), bounds.Dy())
	}
}

func TestNormalizeResizesLargeImages(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "landscape above bound",
			width:      4000,
			height:     3000,
			wantWidth:  2048,
			wantHeight: 1536,
		},
		{
			name:       "portrait above bound",
			width:      3000,
			height:     4000,
			wantWidth:  1536,
			wantHeight: 2048,
		},
		{
			name:       "exactly at bound stays untouched",
			width:      2048,
			height:     100,
			wantWidth:  2048,
			wantHeight: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeJPEG(t, tt.width, tt.height)

			data, err := Normalize(path)
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}

			img := decodeNormalized(t, data)
			bounds := img.Bounds()
			if bounds.Dx() != tt.wantWidth || bounds.Dy() != tt.wantHeight {
				t.Errorf("dimensions = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestNormalizeCompositesAlphaOverWhite(t *testing.T) {
	path := writeTransparentPNG(t, 64, 64)

	data, err := Normalize(path)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	img := decodeNormalized(t, data)
	r, g, b, _ := img.At(32, 32).RGBA()
	// JPEG is lossy; just verify the transparent region came out near-white
	// rather than black.
	if r>>8 < 240 || g>>8 < 240 || b>>8 < 240 {
		t.Errorf("transparent pixel composited to (%d, %d, %d), want near white", r>>8, g>>8, b>>8)
	}
}

func TestNormalizeRejectsCorruptImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.jpg")
	if err := os.WriteFile(path, []byte("not an image at all"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Normalize(path); err == nil {
		t.Error("expected error for corrupt image, got nil")
	}
}

func TestNormalizeMissingFile(t *testing.T) {
	if _, err := Normalize(filepath.Join(t.TempDir(), "nope.jpg")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
