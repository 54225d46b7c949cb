package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Dims derives the grid size that fits a viewport of width x height pixels
// with square cells of cellSize pixels. Each dimension is at least one cell.
func Dims(width, height, cellSize int) Size {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Size{W: max(width/cellSize, 1), H: max(height/cellSize, 1)}
}

// Frame is a read-only view of one generation for the render path. Bits is
// packed the same way as BitGrid and must not be modified.
type Frame struct {
	Size       Size
	Bits       []byte
	Generation int
}

// Cell returns the bit at in-bounds coordinates (x, y).
func (f Frame) Cell(x, y int) uint8 {
	idx := y*f.Size.W + x
	return (f.Bits[idx/8] >> (7 - idx%8)) & 1
}
