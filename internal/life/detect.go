package life

import "github.com/cespare/xxhash/v2"

// State classifies where the simulation is heading.
type State uint8

const (
	// Progressing means the grid is still changing.
	Progressing State = iota
	// Stable means the grid reached a fixed point.
	Stable
	// Oscillating means the grid alternates between two states.
	Oscillating
)

func (s State) String() string {
	switch s {
	case Progressing:
		return "progressing"
	case Stable:
		return "stable"
	case Oscillating:
		return "oscillating"
	}
	return "unknown"
}

// Fingerprint digests a packed generation. Equal fingerprints are treated
// as equal generations; collisions are accepted.
func Fingerprint(buf []byte) uint64 { return xxhash.Sum64(buf) }

// Detector remembers the fingerprints of the last two generations.
type Detector struct {
	prev, prevPrev uint64
	seen           int // valid history entries, 0..2
}

// Classify fingerprints buf and compares it against history. Only a
// Progressing result is recorded.
func (d *Detector) Classify(buf []byte) State {
	h := Fingerprint(buf)
	if d.seen >= 1 && h == d.prev {
		return Stable
	}
	if d.seen >= 2 && h == d.prevPrev {
		return Oscillating
	}
	d.prevPrev, d.prev = d.prev, h
	if d.seen < 2 {
		d.seen++
	}
	return Progressing
}

// Reset forgets all history.
func (d *Detector) Reset() { *d = Detector{} }
