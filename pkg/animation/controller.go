package animation

import (
	"fmt"
	"math"
	"time"
)

// AnimationStatus is the phase of an AnimationController.
//
// A run moves toward its target as AnimationForward (target above the
// start) or AnimationReverse, then rests as AnimationCompleted at
// UpperBound or AnimationDismissed at LowerBound.
type AnimationStatus int

const (
	// AnimationDismissed means the value rests at the lower bound.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the value is increasing.
	AnimationForward
	// AnimationReverse means the value is decreasing.
	AnimationReverse
	// AnimationCompleted means the value rests at the upper bound.
	AnimationCompleted
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController eases Value from its start to a target over Duration.
//
// Columns use one to settle a residual row offset back to zero, so Value is
// measured in pixels and the bounds are the two ends of the run.
type AnimationController struct {
	// Value is the current animated value.
	Value float64
	// Duration of a full run. Zero or less jumps straight to the target.
	Duration time.Duration
	// Curve maps linear progress to eased progress. Nil means linear.
	Curve func(float64) float64
	// LowerBound and UpperBound classify where a finished run rests.
	LowerBound, UpperBound float64

	status AnimationStatus
	ticker *Ticker
	from   float64
	target float64

	valueListeners  []func()
	statusListeners []func(AnimationStatus)
}

// NewAnimationController returns a controller at rest on [0, 1].
func NewAnimationController(duration time.Duration) *AnimationController {
	c := &AnimationController{Duration: duration, UpperBound: 1, Curve: LinearCurve}
	c.ticker = NewTicker(c.tick)
	return c
}

// AddListener registers fn to run after every value change.
func (c *AnimationController) AddListener(fn func()) {
	c.valueListeners = append(c.valueListeners, fn)
}

// AddStatusListener registers fn to run on every status transition.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) {
	c.statusListeners = append(c.statusListeners, fn)
}

// AnimateTo starts a run from the current value to target.
func (c *AnimationController) AnimateTo(target float64) {
	c.ticker.Stop()
	c.from, c.target = c.Value, target
	if target > c.Value {
		c.setStatus(AnimationForward)
	} else {
		c.setStatus(AnimationReverse)
	}
	c.ticker.Start()
}

// AnimateFromTo jumps to from and runs to target. The bounds become the two
// ends of the run.
func (c *AnimationController) AnimateFromTo(from, target float64) {
	c.ticker.Stop()
	c.LowerBound = math.Min(from, target)
	c.UpperBound = math.Max(from, target)
	c.Value = from
	c.status = AnimationDismissed
	c.notifyValue()
	c.AnimateTo(target)
}

// Stop halts a run where it is. Status keeps its in-flight value.
func (c *AnimationController) Stop() { c.ticker.Stop() }

// Status returns the current phase.
func (c *AnimationController) Status() AnimationStatus { return c.status }

// IsAnimating reports whether a run is in progress.
func (c *AnimationController) IsAnimating() bool { return c.ticker.IsActive() }

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = math.Min(float64(elapsed)/float64(c.Duration), 1)
	}
	eased := progress
	if c.Curve != nil && progress < 1 {
		eased = c.Curve(progress)
	}
	c.Value = c.from + (c.target-c.from)*eased
	c.notifyValue()
	if progress < 1 {
		return
	}
	c.ticker.Stop()
	switch {
	case c.Value <= c.LowerBound:
		c.setStatus(AnimationDismissed)
	case c.Value >= c.UpperBound:
		c.setStatus(AnimationCompleted)
	}
}

func (c *AnimationController) setStatus(s AnimationStatus) {
	if c.status == s {
		return
	}
	c.status = s
	for _, fn := range c.statusListeners {
		fn(s)
	}
}

func (c *AnimationController) notifyValue() {
	for _, fn := range c.valueListeners {
		fn()
	}
}
