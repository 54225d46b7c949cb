package life

import (
	"conway-ca/internal/core"
)

// Sim is the simulation context: dimensions, both generation grids, edge
// policy, convergence history and the frame counter. It is not safe for
// concurrent use.
type Sim struct {
	rows, cols int
	wrap       bool
	buf        *DoubleBuffer
	det        Detector
	state      State
	gen        int
}

// New returns a simulation with dead grids of rows x cols cells.
func New(rows, cols int, wrap bool) (*Sim, error) {
	buf, err := NewDoubleBuffer(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Sim{rows: rows, cols: cols, wrap: wrap, buf: buf}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cols, H: s.rows} }

// Wrap reports the edge policy.
func (s *Sim) Wrap() bool { return s.wrap }

// SetWrap changes the edge policy; the next computed generation uses it.
func (s *Sim) SetWrap(wrap bool) { s.wrap = wrap }

// State returns the last classification.
func (s *Sim) State() State { return s.state }

// Generation counts generations computed since the last reset.
func (s *Sim) Generation() int { return s.gen }

// Cells exposes the packed bits of the generation on display.
func (s *Sim) Cells() []byte { return s.buf.Current().Bytes() }

// Frame returns a read-only view of the generation on display.
func (s *Sim) Frame() core.Frame {
	return core.Frame{Size: s.Size(), Bits: s.Cells(), Generation: s.gen}
}

// Buffers exposes the double buffer.
func (s *Sim) Buffers() *DoubleBuffer { return s.buf }

// Reset randomizes the board using the provided seed and clears history.
func (s *Sim) Reset(seed int64) {
	s.buf.Randomize(core.NewRNG(seed).Source())
	s.restart()
}

// Load sets generation 0 to the given pattern and clears history.
func (s *Sim) Load(alive func(x, y int) bool) {
	s.buf.Load(alive)
	s.restart()
}

func (s *Sim) restart() {
	s.det.Reset()
	s.state = Progressing
	s.gen = 0
}

// Advance runs one tick. While progressing, the displayed generation is
// classified first and, if it is new, the next generation is computed and
// becomes the displayed one. Once oscillating, each tick only flips which
// of the two cached states is displayed. A stable grid is left alone.
func (s *Sim) Advance() State {
	switch s.state {
	case Progressing:
		s.state = s.det.Classify(s.buf.Current().Bytes())
		switch s.state {
		case Progressing:
			NextGeneration(s.buf.Current(), s.buf.Next(), s.wrap)
			s.buf.Flip()
			s.gen++
		case Oscillating:
			s.buf.Flip()
		}
	case Oscillating:
		s.buf.Flip()
	}
	return s.state
}

// Run ticks until the grid stops progressing or maxTicks ticks have run,
// and returns the final state with the number of ticks taken.
func (s *Sim) Run(maxTicks int) (State, int) {
	ticks := 0
	for ticks < maxTicks && s.state == Progressing {
		s.Advance()
		ticks++
	}
	return s.state, ticks
}
