// Package canvas collects finished pixel colors into a raster buffer and
// persists it as a binary PPM (P6) image or converts it for PNG encoding.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/cgj/go-simple-raytracer/pkg/core"
)

// Canvas owns a contiguous width×height×3 byte buffer, allocated once for
// the lifetime of the image. Rows are stored top-to-bottom; Set addresses
// pixels with row 0 at the bottom, matching the renderer's pixel grid.
type Canvas struct {
	width, height int
	pix           []byte
}

// NewCanvas creates a canvas for a width×height image
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*3),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

func clamp(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// Set writes a pixel color at (x, y), y counted from the bottom row. Each
// channel is scaled by 255 and clamped to [0,255]; this is the only place
// colors leave the [0,1] floating-point domain.
func (c *Canvas) Set(x, y int, col core.Color) {
	i := ((c.height-y-1)*c.width + x) * 3
	c.pix[i+0] = clamp(int(col.R * 255))
	c.pix[i+1] = clamp(int(col.G * 255))
	c.pix[i+2] = clamp(int(col.B * 255))
}

// Pix returns the raw pixel buffer, rows top-to-bottom
func (c *Canvas) Pix() []byte { return c.pix }

// WritePPM writes the image in binary PPM (P6) format
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", c.width, c.height); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}
	if _, err := w.Write(c.pix); err != nil {
		return fmt.Errorf("writing PPM pixels: %w", err)
	}
	return nil
}

// SavePPM writes the image to a file in binary PPM (P6) format
func (c *Canvas) SavePPM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.WritePPM(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// Image converts the canvas to an image.RGBA for PNG encoding
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			i := (y*c.width + x) * 3
			img.SetRGBA(x, y, color.RGBA{
				R: c.pix[i+0],
				G: c.pix[i+1],
				B: c.pix[i+2],
				A: 255,
			})
		}
	}
	return img
}
