//go:build ebiten

package render

import (
	"image/color"

	"conway-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads packed frames into an image with one pixel per cell
// and draws it scaled up to the cell size.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.W*size.H)}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit uploads f into the painter image and draws it at cellSize pixels per
// cell. Frames of a different size are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, f core.Frame, on, off color.Color, cellSize int) {
	if f.Size != gp.size {
		return
	}
	fillBitsRGBA(gp.buf, f, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid size the painter was built for.
func (gp *GridPainter) Size() core.Size { return gp.size }

// Dispose releases the GPU image.
func (gp *GridPainter) Dispose() { gp.img.Dispose() }
