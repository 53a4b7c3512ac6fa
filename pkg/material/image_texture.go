package material

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// ImageTexture provides color from a 2D image of linear-space pixels
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], top row first
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// FallbackTexture is substituted for image textures whose file cannot be loaded.
// Bright cyan makes the missing asset obvious in the render.
func FallbackTexture() *SolidColor {
	return NewSolidColor(ColorFromRGBA(colornames.Cyan))
}

// LoadImageTexture loads an image file as a texture. A missing or corrupt file
// does not abort the render: the failure is logged and FallbackTexture is used.
func LoadImageTexture(filename string, logger core.Logger) Texture {
	imageData, err := loaders.LoadImage(filename)
	if err != nil {
		core.LoggerOrNop(logger).Printf("warning: %v; using fallback texture\n", err)
		return FallbackTexture()
	}
	return NewImageTexture(imageData.Width, imageData.Height, imageData.Pixels)
}

// Value samples the texture with nearest-neighbor filtering.
// UV is clamped to [0,1]; V=0 is the bottom row of the image.
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 {
		return FallbackTexture().Color
	}

	unit := core.NewInterval(0, 1)
	u = unit.Clamp(u)
	v = 1.0 - unit.Clamp(v) // Flip V to image row order

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// u or v of exactly 1 lands one past the edge
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
