package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Image holds linear-space colors in row-major order, row 0 at the top
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage allocates a black image. Panics on negative dimensions.
func NewImage(width, height int) *Image {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("image: negative dimensions %dx%d", width, height))
	}
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the linear color at (x, y)
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Set stores the linear color at (x, y)
func (img *Image) Set(x, y int, c core.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// SetLine copies one scanline of colors into row y
func (img *Image) SetLine(y int, line []core.Vec3) {
	copy(img.Pixels[y*img.Width:(y+1)*img.Width], line)
}

// ToRGBA converts the image to 8-bit sRGB-ish output using ColorToRGB8
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := ColorToRGB8(img.At(x, y))
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}

// intensity is the output clamp range; 0.999 keeps 256*x below 256
var intensity = core.NewInterval(0.0, 0.999)

// ColorToRGB8 maps a linear color to output bytes: gamma 2 (square root),
// clamp to [0, 0.999], scale by 256 and truncate.
func ColorToRGB8(c core.Vec3) (r, g, b uint8) {
	return channelToByte(c.X), channelToByte(c.Y), channelToByte(c.Z)
}

func channelToByte(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(linearToGamma(linear)))
}

// linearToGamma also maps NaN and negatives to 0
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}
