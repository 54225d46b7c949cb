package life

import (
	"math/rand/v2"

	"conway-ca/internal/core"
)

// DoubleBuffer owns the two generation grids. The frame counter selects the
// pair by parity: even frames read B and write A, odd frames read A and
// write B.
type DoubleBuffer struct {
	grids [2]*core.BitGrid // A, B
	frame int
}

// NewDoubleBuffer allocates both grids for rows x cols cells.
func NewDoubleBuffer(rows, cols int) (*DoubleBuffer, error) {
	a, err := core.NewBitGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	b, err := core.NewBitGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	return &DoubleBuffer{grids: [2]*core.BitGrid{a, b}}, nil
}

// Current is the generation being read this frame.
func (b *DoubleBuffer) Current() *core.BitGrid { return b.grids[1-b.frame&1] }

// Next is the grid written this frame.
func (b *DoubleBuffer) Next() *core.BitGrid { return b.grids[b.frame&1] }

// Flip advances the frame counter, swapping the roles of the two grids.
func (b *DoubleBuffer) Flip() { b.frame++ }

// Frame reports the frame counter.
func (b *DoubleBuffer) Frame() int { return b.frame }

// Randomize fills A with random cells and copies it to B so both hold the
// same generation 0, then rewinds the frame counter.
func (b *DoubleBuffer) Randomize(r *rand.Rand) {
	b.grids[0].Randomize(r)
	b.grids[1].CopyFrom(b.grids[0])
	b.frame = 0
}

// Load writes the same pattern into both grids through the sequential
// writer and rewinds the frame counter.
func (b *DoubleBuffer) Load(alive func(x, y int) bool) {
	g := b.grids[0]
	w := core.NewBitWriter(g.Bytes())
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			var bit uint8
			if alive(x, y) {
				bit = 1
			}
			w.PushBit(bit)
		}
	}
	w.Flush()
	b.grids[1].CopyFrom(g)
	b.frame = 0
}
