package life

import "conway-ca/internal/core"

// NextGeneration applies B3/S23 to cur and writes the result into next in
// row-major order. cur is only read; both grids must share the same size.
func NextGeneration(cur, next *core.BitGrid, wrap bool) {
	rows, cols := cur.Rows, cur.Cols
	w := core.NewBitWriter(next.Bytes())
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					neighbors += int(cur.Cell(x+dx, y+dy, wrap))
				}
			}
			alive := cur.Cell(x, y, false) == 1
			var bit uint8
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				bit = 1
			}
			w.PushBit(bit)
		}
	}
	w.Flush()
}
