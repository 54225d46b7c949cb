package render

import (
	"image"
	"image/color"
	"image/draw"

	"conway-ca/internal/core"
)

// Canvas is a surface that can fill axis-aligned rectangles.
type Canvas interface {
	FillRect(r image.Rectangle, c color.Color)
}

// Draw paints f onto dst: one cellSize x cellSize rectangle per cell at
// (x*cellSize, y*cellSize), fg for live cells and bg for dead ones, in
// row-major order.
func Draw(dst Canvas, f core.Frame, cellSize int, fg, bg color.Color) {
	r := core.NewBitReader(f.Bits)
	for y := 0; y < f.Size.H; y++ {
		for x := 0; x < f.Size.W; x++ {
			c := bg
			if r.Next() == 1 {
				c = fg
			}
			dst.FillRect(image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize), c)
		}
	}
}

// ImageCanvas adapts a draw.Image to Canvas.
type ImageCanvas struct {
	Img draw.Image
}

// FillRect fills r clipped to the image bounds.
func (c ImageCanvas) FillRect(r image.Rectangle, col color.Color) {
	draw.Draw(c.Img, r.Intersect(c.Img.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)
}
