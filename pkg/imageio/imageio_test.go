package imageio

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func testImage() *renderer.Image {
	img := renderer.NewImage(2, 2)
	img.Set(0, 0, core.NewVec3(1, 0, 0))
	img.Set(1, 0, core.NewVec3(0, 0.25, 0))
	img.Set(0, 1, core.NewVec3(0, 0, 4))
	img.Set(1, 1, core.NewVec3(0.5, 0.5, 0.5))
	return img
}

// failingWriter rejects every write
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, os.ErrClosed }

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testImage()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 128 0\n" +
		"0 0 255\n" +
		"181 181 181\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%s", buf.String())
	}
}

func TestWritePPM_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, renderer.NewImage(0, 0)); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	if buf.String() != "P3\n0 0\n255\n" {
		t.Errorf("Expected header only, got %q", buf.String())
	}
}

func TestWritePPM_WriterError(t *testing.T) {
	if err := WritePPM(failingWriter{}, testImage()); err == nil {
		t.Error("Expected error from failing writer")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testImage()); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != 2 || decoded.Bounds().Dy() != 2 {
		t.Fatalf("Expected 2x2 PNG, got %v", decoded.Bounds())
	}
	r, g, b, _ := decoded.At(1, 1).RGBA()
	if r>>8 != 181 || g>>8 != 181 || b>>8 != 181 {
		t.Errorf("Expected grey 181, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestSaveImage(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		expectError bool
		prefix      string
	}{
		{"ppm", "out.ppm", false, "P3\n"},
		{"png uppercase extension", "out.PNG", false, "\x89PNG"},
		{"nested directory", filepath.Join("a", "b", "out.ppm"), false, "P3\n"},
		{"unsupported", "out.bmp", true, ""},
		{"no extension", "out", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			err := SaveImage(path, testImage())
			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error")
				}
				if _, statErr := os.Stat(path); statErr == nil {
					t.Error("Expected no file to be created")
				}
				return
			}
			if err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Read back failed: %v", err)
			}
			if !strings.HasPrefix(string(data), tt.prefix) {
				t.Errorf("Expected file to start with %q", tt.prefix)
			}
		})
	}
}

func TestSaveImage_UnwritablePath(t *testing.T) {
	// A regular file cannot act as a parent directory
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := SaveImage(filepath.Join(blocker, "out.ppm"), testImage()); err == nil {
		t.Error("Expected error writing beneath a regular file")
	}
}
