// Package sched drives a simulation at a fixed tick rate and stops
// recomputing once the simulation converges.
//
// A Scheduler holds at most one pending tick. Every tick carries the epoch
// it was armed in; Reset and Replace bump the epoch, so a tick armed before
// either call no longer fires. Scheduler is not safe for concurrent use:
// drive it from a single goroutine, either directly through Poll or through
// a Loop.
package sched

import (
	"fmt"
	"log"
	"time"

	"conway-ca/internal/core"
	"conway-ca/internal/life"
)

// Stepper is the simulation contract the scheduler needs.
type Stepper interface {
	Advance() life.State
	State() life.State
	Reset(seed int64)
}

// StablePolicy selects what happens to the timer once the grid is stable.
type StablePolicy uint8

const (
	// StableHalt stops arming ticks after a fixed point.
	StableHalt StablePolicy = iota
	// StableTick keeps ticking at the configured rate without recomputing.
	StableTick
)

func (p StablePolicy) String() string {
	if p == StableTick {
		return "tick"
	}
	return "halt"
}

// ParseStablePolicy accepts "halt" or "tick".
func ParseStablePolicy(s string) (StablePolicy, error) {
	switch s {
	case "halt", "":
		return StableHalt, nil
	case "tick":
		return StableTick, nil
	}
	return StableHalt, fmt.Errorf("sched: unknown stable policy %q", s)
}

// Tick is a pending timer firing.
type Tick struct {
	Epoch uint64
	Due   time.Time
}

// Scheduler arms ticks and runs the simulation on each firing.
type Scheduler struct {
	sim      Stepper
	interval time.Duration
	policy   StablePolicy
	logger   *log.Logger

	epoch   uint64
	pending Tick
	armed   bool
	ticks   int
}

// Option customises a Scheduler.
type Option func(*Scheduler)

// WithLogger logs state transitions to l.
func WithLogger(l *log.Logger) Option { return func(s *Scheduler) { s.logger = l } }

// WithStablePolicy selects the stable-state timer behaviour.
func WithStablePolicy(p StablePolicy) Option { return func(s *Scheduler) { s.policy = p } }

// New returns an idle scheduler for sim ticking fps times per second.
func New(sim Stepper, fps int, opts ...Option) (*Scheduler, error) {
	interval, err := core.TickInterval(fps)
	if err != nil {
		return nil, err
	}
	s := &Scheduler{sim: sim, interval: interval}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Interval returns the delay between ticks.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// SetFPS changes the tick rate. Ticks armed from now on use it.
func (s *Scheduler) SetFPS(fps int) error {
	interval, err := core.TickInterval(fps)
	if err != nil {
		return err
	}
	s.interval = interval
	return nil
}

// Policy reports the stable-state policy.
func (s *Scheduler) Policy() StablePolicy { return s.policy }

// State reports the simulation state.
func (s *Scheduler) State() life.State { return s.sim.State() }

// Ticks counts ticks fired since the last reset.
func (s *Scheduler) Ticks() int { return s.ticks }

// Pending returns the armed tick, if any.
func (s *Scheduler) Pending() (Tick, bool) { return s.pending, s.armed }

// Start fires the first tick immediately.
func (s *Scheduler) Start(now time.Time) { s.fireNow(now) }

// Poll fires the pending tick if it is due and reports whether a redraw is
// needed.
func (s *Scheduler) Poll(now time.Time) bool {
	if !s.armed || now.Before(s.pending.Due) {
		return false
	}
	return s.Fire(s.pending, now)
}

// Fire runs tick t. A tick from an older epoch, or one that is no longer
// pending, is ignored and reports false. Otherwise the simulation advances,
// the next tick is armed unless a stable grid halts the timer, and Fire
// reports that a redraw is needed.
func (s *Scheduler) Fire(t Tick, now time.Time) bool {
	if !s.armed || t.Epoch != s.epoch {
		return false
	}
	s.armed = false
	before := s.sim.State()
	state := s.sim.Advance()
	s.ticks++
	if state != before {
		s.logf("tick %d: %v -> %v", s.ticks, before, state)
	}
	if state != life.Stable || s.policy == StableTick {
		s.arm(now.Add(s.interval))
	}
	return true
}

// Reset cancels the pending tick, reseeds the simulation and fires one tick
// immediately so the new generation 0 is not skipped.
func (s *Scheduler) Reset(seed int64, now time.Time) {
	s.cancel()
	s.sim.Reset(seed)
	s.logf("reset seed=%d", seed)
	s.fireNow(now)
}

// Replace cancels the pending tick and swaps in a freshly initialized
// simulation, then fires one tick immediately.
func (s *Scheduler) Replace(sim Stepper, now time.Time) {
	s.cancel()
	s.sim = sim
	s.fireNow(now)
}

func (s *Scheduler) cancel() {
	s.epoch++
	s.armed = false
	s.ticks = 0
}

func (s *Scheduler) fireNow(now time.Time) {
	s.arm(now)
	s.Fire(s.pending, now)
}

func (s *Scheduler) arm(due time.Time) {
	s.pending = Tick{Epoch: s.epoch, Due: due}
	s.armed = true
}

func (s *Scheduler) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
