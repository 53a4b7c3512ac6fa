package loaders

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/df07/go-pathtracer/pkg/core"
)

func writeTestImage(t *testing.T, path string, encode func(*os.File, image.Image) error) {
	t.Helper()

	// 2x2 image: white, red / green, blue
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

// TestLoadImage writes small images in several formats and verifies loading
func TestLoadImage(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		encode func(*os.File, image.Image) error
	}{
		{"png", "test.png", func(f *os.File, img image.Image) error { return png.Encode(f, img) }},
		{"bmp", "test.bmp", func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(t.TempDir(), tt.file)
			writeTestImage(t, testFile, tt.encode)

			imageData, err := LoadImage(testFile)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}

			if imageData.Width != 2 || imageData.Height != 2 {
				t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
			}
			if len(imageData.Pixels) != 4 {
				t.Fatalf("Expected 4 pixels, got %d", len(imageData.Pixels))
			}

			checkColor := func(name string, got, expected core.Vec3) {
				const tolerance = 0.01
				if math.Abs(got.X-expected.X) > tolerance ||
					math.Abs(got.Y-expected.Y) > tolerance ||
					math.Abs(got.Z-expected.Z) > tolerance {
					t.Errorf("%s: expected %v, got %v", name, expected, got)
				}
			}

			// Row-major, top row first
			checkColor("Top-left (white)", imageData.Pixels[0], core.NewVec3(1, 1, 1))
			checkColor("Top-right (red)", imageData.Pixels[1], core.NewVec3(1, 0, 0))
			checkColor("Bottom-left (green)", imageData.Pixels[2], core.NewVec3(0, 1, 0))
			checkColor("Bottom-right (blue)", imageData.Pixels[3], core.NewVec3(0, 0, 1))
		})
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

// TestLoadImageCorrupt verifies that undecodable files return an error
func TestLoadImageCorrupt(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(testFile, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := LoadImage(testFile); err == nil {
		t.Error("Expected decode error for corrupt file, got nil")
	}
}

func TestSRGBToLinear(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{1, 1},
		{0.04045, 0.04045 / 12.92},
		{0.5, 0.21404114048223255},
	}

	for _, tt := range tests {
		if got := SRGBToLinear(tt.in); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("SRGBToLinear(%f) = %f, want %f", tt.in, got, tt.expected)
		}
	}
}
