// Package hud rasterizes the on-screen telemetry text.
package hud

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Layout
const (
	Padding = 4
	OffsetX = 10
	OffsetY = 10
)

var (
	Background = color.NRGBA{0, 0, 0, 100}
	Foreground = color.White
)

// Rasterize draws lines top to bottom onto a translucent box sized to fit.
// It returns nil for no lines.
func Rasterize(lines []string) *image.RGBA {
	if len(lines) == 0 {
		return nil
	}

	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*Padding, len(lines)*lineHeight+2*Padding))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Foreground),
		Face: face,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(Padding, Padding+i*lineHeight+ascent)
		drawer.DrawString(line)
	}

	return img
}

// Quad returns a textured rectangle at (x, y) in pixel space with Y down,
// as x, y, u, v per corner, and its triangle indices.
func Quad(x, y, width, height float32) ([]float32, []uint32) {
	vertices := []float32{
		x, y, 0, 0,
		x + width, y, 1, 0,
		x + width, y + height, 1, 1,
		x, y + height, 0, 1,
	}
	return vertices, []uint32{0, 1, 2, 0, 2, 3}
}
