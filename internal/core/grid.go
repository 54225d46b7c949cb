package core

import "errors"

// ErrEmptyGrid is returned when a grid would hold no cells.
var ErrEmptyGrid = errors.New("core: grid has no cells")

// PackedLen returns the number of bytes needed to hold rows*cols bits.
func PackedLen(rows, cols int) int { return (rows*cols + 7) / 8 }

// BitGrid stores a 2D boolean grid as one bit per cell in row-major order.
// Cell (x, y) lives at linear index y*Cols+x, packed most significant bit
// first. Padding bits past Rows*Cols are kept at zero.
type BitGrid struct {
	Rows, Cols int
	data       []byte
}

// NewBitGrid allocates a zeroed grid. Both dimensions must be positive.
func NewBitGrid(rows, cols int) (*BitGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &BitGrid{Rows: rows, Cols: cols, data: make([]byte, PackedLen(rows, cols))}, nil
}

// Bytes exposes the packed backing slice.
func (g *BitGrid) Bytes() []byte { return g.data }

// Index returns the linear cell index for coordinates (x, y).
func (g *BitGrid) Index(x, y int) int { return y*g.Cols + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BitGrid) Wrap(x, y int) (int, int) {
	x = (x%g.Cols + g.Cols) % g.Cols
	y = (y%g.Rows + g.Rows) % g.Rows
	return x, y
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *BitGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// Cell returns the bit at (x, y). With wrap set, coordinates wrap around the
// torus; otherwise anything off the grid reads as dead.
func (g *BitGrid) Cell(x, y int, wrap bool) uint8 {
	if wrap {
		x, y = g.Wrap(x, y)
	} else if !g.InBounds(x, y) {
		return 0
	}
	idx := g.Index(x, y)
	return (g.data[idx/8] >> (7 - idx%8)) & 1
}

// Set writes a single in-bounds cell. Step code writes through BitWriter
// instead; Set is for seeding patterns.
func (g *BitGrid) Set(x, y int, alive bool) {
	idx := g.Index(x, y)
	mask := byte(1) << (7 - idx%8)
	if alive {
		g.data[idx/8] |= mask
		return
	}
	g.data[idx/8] &^= mask
}

// Population counts live cells.
func (g *BitGrid) Population() int {
	n := 0
	for _, b := range g.data {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// CopyFrom overwrites g with the contents of src. Dimensions must match.
func (g *BitGrid) CopyFrom(src *BitGrid) {
	copy(g.data, src.data)
}

// Clear fills the grid with dead cells.
func (g *BitGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// clearPadding zeroes the bits after the last cell of the final byte.
func (g *BitGrid) clearPadding() {
	rem := (g.Rows * g.Cols) % 8
	if rem == 0 {
		return
	}
	g.data[len(g.data)-1] &= byte(0xFF) << (8 - rem)
}
