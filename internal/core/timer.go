package core

import (
	"errors"
	"time"
)

// ErrInvalidFPS reports a frame rate that cannot produce a tick interval.
var ErrInvalidFPS = errors.New("core: fps must be at least 1")

// TickInterval converts a frame rate into the delay between ticks, truncated
// to whole milliseconds the same way 1000/fps does.
func TickInterval(fps int) (time.Duration, error) {
	if fps < 1 {
		return 0, ErrInvalidFPS
	}
	return time.Duration(1000/fps) * time.Millisecond, nil
}
