package sched

import (
	"context"
	"time"
)

// Loop runs a Scheduler on one goroutine. Ticks and commands are executed
// in order on that goroutine, and draw runs after each of them, so a draw
// never overlaps a step.
type Loop struct {
	sched *Scheduler
	draw  func()
	cmds  chan func(now time.Time)
}

// NewLoop returns a loop for s. draw may be nil.
func NewLoop(s *Scheduler, draw func()) *Loop {
	if draw == nil {
		draw = func() {}
	}
	return &Loop{sched: s, draw: draw, cmds: make(chan func(time.Time))}
}

// Do hands fn to the loop goroutine and waits until it has been accepted.
func (l *Loop) Do(ctx context.Context, fn func(now time.Time)) error {
	select {
	case l.cmds <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes ticks and commands until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	l.draw()
	for {
		var (
			fire    <-chan time.Time
			timer   *time.Timer
			pending Tick
		)
		if t, ok := l.sched.Pending(); ok {
			pending = t
			timer = time.NewTimer(time.Until(t.Due))
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			stopTimer(timer)
			return ctx.Err()
		case now := <-fire:
			if l.sched.Fire(pending, now) {
				l.draw()
			}
		case fn := <-l.cmds:
			stopTimer(timer)
			fn(time.Now())
			l.draw()
		}
	}
}

func stopTimer(t *time.Timer) {
	if t != nil {
		t.Stop()
	}
}
