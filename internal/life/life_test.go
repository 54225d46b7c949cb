package life

import (
	"slices"
	"testing"

	"conway-ca/internal/core"
)

func cellsOf(points ...[2]int) func(x, y int) bool {
	set := map[[2]int]bool{}
	for _, p := range points {
		set[p] = true
	}
	return func(x, y int) bool { return set[[2]int{x, y}] }
}

func newSim(t *testing.T, rows, cols int, wrap bool) *Sim {
	t.Helper()
	s, err := New(rows, cols, wrap)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", rows, cols, err)
	}
	return s
}

func TestBlinkerOscillation(t *testing.T) {
	life := newSim(t, 5, 5, true)
	life.Load(cellsOf([2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}))

	life.Advance()
	frame := life.Frame()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := frame.Cell(x, y) == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Advance()
	frame = life.Frame()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := frame.Cell(x, y) == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerDetectedAsOscillating(t *testing.T) {
	for _, wrap := range []bool{true, false} {
		life := newSim(t, 5, 5, wrap)
		life.Load(cellsOf([2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}))
		vertical := slices.Clone(life.Cells())

		horizontalGrid, _ := core.NewBitGrid(5, 5)
		NextGeneration(life.Buffers().Current(), horizontalGrid, wrap)
		horizontal := slices.Clone(horizontalGrid.Bytes())

		if got := life.Advance(); got != Progressing {
			t.Fatalf("wrap=%v: first tick=%v, expected progressing", wrap, got)
		}
		if got := life.Advance(); got != Progressing {
			t.Fatalf("wrap=%v: second tick=%v, expected progressing", wrap, got)
		}
		if life.Generation() != 2 {
			t.Fatalf("wrap=%v: generation=%d, expected 2", wrap, life.Generation())
		}
		if got := life.Advance(); got != Oscillating {
			t.Fatalf("wrap=%v: third tick=%v, expected oscillating", wrap, got)
		}

		// The display now alternates between the two cached phases without
		// computing new generations.
		if !slices.Equal(life.Cells(), horizontal) {
			t.Fatalf("wrap=%v: displayed state after detection should be horizontal", wrap)
		}
		life.Advance()
		if !slices.Equal(life.Cells(), vertical) {
			t.Fatalf("wrap=%v: display should flip back to vertical", wrap)
		}
		life.Advance()
		if !slices.Equal(life.Cells(), horizontal) {
			t.Fatalf("wrap=%v: display should flip to horizontal again", wrap)
		}
		if life.Generation() != 2 {
			t.Fatalf("wrap=%v: oscillating ticks must not compute, generation=%d", wrap, life.Generation())
		}
	}
}

func TestEmptyGridStableAfterOneStep(t *testing.T) {
	life := newSim(t, 6, 9, true)
	life.Load(func(x, y int) bool { return false })

	if got := life.Advance(); got != Progressing {
		t.Fatalf("first tick=%v, expected progressing", got)
	}
	if life.Generation() != 1 {
		t.Fatalf("generation=%d, expected 1", life.Generation())
	}
	if got := life.Advance(); got != Stable {
		t.Fatalf("second tick=%v, expected stable", got)
	}
	if life.Generation() != 1 {
		t.Fatalf("stable tick must not compute, generation=%d", life.Generation())
	}
	if got := life.Advance(); got != Stable {
		t.Fatalf("stable must be terminal, got %v", got)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	for _, wrap := range []bool{true, false} {
		life := newSim(t, 6, 6, wrap)
		life.Load(cellsOf([2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3}))
		before := slices.Clone(life.Cells())

		life.Advance()
		if !slices.Equal(before, life.Cells()) {
			t.Fatalf("wrap=%v: block changed after one step", wrap)
		}
		if got := life.Advance(); got != Stable {
			t.Fatalf("wrap=%v: block should be stable, got %v", wrap, got)
		}
	}
}

func TestResetClearsHistory(t *testing.T) {
	life := newSim(t, 4, 4, true)
	empty := func(x, y int) bool { return false }
	life.Load(empty)
	life.Advance()
	if got := life.Advance(); got != Stable {
		t.Fatalf("expected stable before reset, got %v", got)
	}

	life.Load(empty)
	if life.State() != Progressing {
		t.Fatalf("state after load=%v, expected progressing", life.State())
	}
	if got := life.Advance(); got != Progressing {
		t.Fatalf("first tick after reload=%v, expected progressing", got)
	}

	life.Reset(42)
	if life.Buffers().Frame() != 0 || life.Generation() != 0 {
		t.Fatal("Reset must rewind frame and generation")
	}
	if got := life.Advance(); got != Progressing {
		t.Fatalf("first tick after reset=%v, expected progressing", got)
	}
}

func TestResetSeedsBothBuffersIdentically(t *testing.T) {
	life := newSim(t, 7, 11, false)
	life.Reset(1234)
	buf := life.Buffers()
	if !slices.Equal(buf.Current().Bytes(), buf.Next().Bytes()) {
		t.Fatal("generation 0 must be identical on both buffers")
	}

	other := newSim(t, 7, 11, false)
	other.Reset(1234)
	if !slices.Equal(life.Cells(), other.Cells()) {
		t.Fatal("Reset with the same seed must be deterministic")
	}
}

func TestAdvanceAlternatesBuffers(t *testing.T) {
	life := newSim(t, 8, 8, true)
	life.Reset(5)
	buf := life.Buffers()
	first := buf.Current()
	life.Advance()
	if life.State() == Progressing && buf.Current() == first {
		t.Fatal("a computed step must make the written buffer current")
	}
	if buf.Current() == buf.Next() {
		t.Fatal("current and next must never alias")
	}
}

func TestRunStopsAtConvergence(t *testing.T) {
	life := newSim(t, 5, 5, true)
	life.Load(cellsOf([2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}))
	state, ticks := life.Run(100)
	if state != Oscillating || ticks != 3 {
		t.Fatalf("Run=%v after %d ticks, expected oscillating after 3", state, ticks)
	}

	life.Reset(11)
	state, ticks = life.Run(1)
	if ticks != 1 || state != Progressing {
		t.Fatalf("Run(1)=%v after %d ticks, expected progressing after 1", state, ticks)
	}
}
