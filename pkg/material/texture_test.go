package material

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// captureLogger records formatted log lines
type captureLogger struct {
	lines []string
}

func (c *captureLogger) Printf(format string, args ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

func TestCheckerTexture_Parity(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewSolidCheckerTexture(2.0, even, odd)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"origin cell", core.NewVec3(0.5, 0.5, 0.5), even},
		{"one cell over in x", core.NewVec3(2.5, 0.5, 0.5), odd},
		{"diagonal neighbor", core.NewVec3(2.5, 2.5, 0.5), even},
		{"negative x cell", core.NewVec3(-0.5, 0.5, 0.5), odd},
		{"negative in all axes", core.NewVec3(-0.5, -0.5, -0.5), odd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Value(0, 0, tt.point); got != tt.expected {
				t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, got)
			}
		})
	}
}

func TestNamedColor(t *testing.T) {
	cyan, err := NamedColor("cyan")
	if err != nil {
		t.Fatalf("NamedColor failed: %v", err)
	}
	if cyan != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected linear cyan (0,1,1), got %v", cyan)
	}

	if _, err := NamedColor("not-a-color"); err == nil {
		t.Error("Expected error for unknown color name")
	}
}

func TestImageTexture_Value(t *testing.T) {
	// Layout (image rows, top first):
	//   white black
	//   red   blue
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	red := core.NewVec3(1, 0, 0)
	blue := core.NewVec3(0, 0, 1)
	texture := NewImageTexture(2, 2, []core.Vec3{white, black, red, blue})

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"bottom-left", 0.1, 0.1, red},
		{"bottom-right", 0.9, 0.1, blue},
		{"top-left", 0.1, 0.9, white},
		{"top-right", 0.9, 0.9, black},
		{"u and v of exactly 1", 1.0, 1.0, black},
		{"clamped below", -3, -3, red},
		{"clamped above", 5, 5, black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Value(tt.u, tt.v, core.Vec3{}); got != tt.expected {
				t.Errorf("UV(%f,%f): expected %v, got %v", tt.u, tt.v, tt.expected, got)
			}
		})
	}
}

func TestImageTexture_EmptyIsFallback(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	if got := texture.Value(0.5, 0.5, core.Vec3{}); got != FallbackTexture().Color {
		t.Errorf("Expected fallback color for empty image, got %v", got)
	}
}

func TestLoadImageTexture_MissingFileFallsBackToCyan(t *testing.T) {
	logger := &captureLogger{}
	texture := LoadImageTexture(filepath.Join(t.TempDir(), "missing.png"), logger)

	if got := texture.Value(0.5, 0.5, core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan fallback, got %v", got)
	}
	if len(logger.lines) != 1 {
		t.Errorf("Expected one warning, got %d: %v", len(logger.lines), logger.lines)
	}
}

func TestLoadImageTexture_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "red.png")
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	f.Close()

	texture := LoadImageTexture(path, nil)
	if got := texture.Value(0.5, 0.5, core.Vec3{}); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red, got %v", got)
	}
}

func TestPerlin_Deterministic(t *testing.T) {
	a := NewPerlin(core.NewSeededSampler(3))
	b := NewPerlin(core.NewSeededSampler(3))

	p := core.NewVec3(1.3, -2.7, 4.1)
	if a.Noise(p) != b.Noise(p) {
		t.Error("Expected identical noise from equally seeded generators")
	}

	// Gradient noise vanishes on lattice points
	if n := a.Noise(core.NewVec3(3, -1, 7)); n != 0 {
		t.Errorf("Expected zero noise on lattice point, got %f", n)
	}
}

func TestNoiseTexture_Range(t *testing.T) {
	texture := NewNoiseTexture(4, core.NewSeededSampler(9))
	sampler := core.NewSeededSampler(10)

	for i := 0; i < 500; i++ {
		c := texture.Value(0, 0, core.RandomVec3(sampler, -10, 10))
		if c.X < 0 || c.X > 1 || c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Expected grey level in [0,1], got %v", c)
		}
	}
}
