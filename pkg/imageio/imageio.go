// Package imageio writes rendered images to disk
package imageio

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// WritePPM writes img as a plain-text PPM (P3): a header followed by one
// "R G B" line per pixel, top row first
func WritePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return errors.Wrap(err, "write ppm header")
	}

	for _, c := range img.Pixels {
		r, g, b := renderer.ColorToRGB8(c)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return errors.Wrap(err, "write ppm pixel")
		}
	}

	return errors.Wrap(bw.Flush(), "flush ppm")
}

// WritePNG writes img as an 8-bit PNG
func WritePNG(w io.Writer, img *renderer.Image) error {
	return errors.Wrap(png.Encode(w, img.ToRGBA()), "encode png")
}

// SaveImage writes img to path, choosing the format from the extension
// (.ppm or .png). Parent directories are created as needed.
func SaveImage(path string, img *renderer.Image) (err error) {
	var write func(io.Writer, *renderer.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		write = WritePPM
	case ".png":
		write = WritePNG
	default:
		return errors.Errorf("unsupported output format %q (use .ppm or .png)", ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create output directory %s", dir)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "close %s", path)
		}
	}()

	return errors.Wrapf(write(file, img), "save %s", path)
}
