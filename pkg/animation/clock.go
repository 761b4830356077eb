package animation

import "time"

// Clock provides time for animations and toss velocity sampling. Tests
// inject a fake clock via SetClock to control timing deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
