package picker

import (
	"math"
	"time"

	"github.com/go-drift/picker/pkg/animation"
	"github.com/go-drift/picker/pkg/errors"
)

// Default toss thresholds in px/s.
const (
	DefaultMinTossSpeed = 200.0
	DefaultMaxTossSpeed = 5000.0
)

// TossConfig tunes fling detection.
type TossConfig struct {
	// MinSpeed is the slowest release that still flings.
	MinSpeed float64
	// MaxSpeed caps the release speed.
	MaxSpeed float64
	// Spring settles the fling. Zero uses animation.TossSpring.
	Spring animation.SpringDescription
}

func (c TossConfig) withDefaults() TossConfig {
	if c.MinSpeed <= 0 {
		c.MinSpeed = DefaultMinTossSpeed
	}
	if c.MaxSpeed <= 0 {
		c.MaxSpeed = DefaultMaxTossSpeed
	}
	if c.MaxSpeed < c.MinSpeed {
		c.MaxSpeed = c.MinSpeed
	}
	if c.Spring.Stiffness <= 0 {
		c.Spring = animation.TossSpring()
	}
	if c.Spring.Mass <= 0 {
		c.Spring.Mass = 1
	}
	return c
}

// tossHost is the column side of a toss.
type tossHost interface {
	CanMove(isDown bool) bool
	// stepsAvailable returns how many rows the column may still move, or -1
	// when unbounded.
	stepsAvailable(isDown bool) int
	shiftDistance(isDown bool) float64
	offset() float64
	tossUpdate(position float64)
	tossEnd()
}

// TossController turns a drag release into a spring-driven fling that
// settles on a row boundary.
type TossController struct {
	cfg    TossConfig
	host   tossHost
	ticker *animation.Ticker
	sim    *animation.SpringSimulation

	yStart, yEnd       float64
	timeStart, timeEnd time.Time
	speed              float64
	lastElapsed        time.Duration
}

func newTossController(host tossHost, cfg TossConfig) *TossController {
	t := &TossController{cfg: cfg.withDefaults(), host: host}
	t.ticker = animation.NewTicker(t.onFrame)
	return t
}

// SetStart records the pointer-down position and time.
func (t *TossController) SetStart(y float64) {
	t.yStart = y
	t.timeStart = animation.Now()
}

// SetEnd records the release position and time.
func (t *TossController) SetEnd(y float64) {
	t.yEnd = y
	t.timeEnd = animation.Now()
}

// Speed returns the clamped release speed of the last Play, in px/s.
// Negative speeds move content up.
func (t *TossController) Speed() float64 { return t.speed }

// IsActive reports whether a fling is in flight.
func (t *TossController) IsActive() bool { return t.ticker.IsActive() }

// Play starts a fling from the recorded release. It returns false, leaving
// the column to snap back, when the gesture took no time, was too slow, or
// points at a boundary the column cannot pass.
func (t *TossController) Play() bool {
	dt := t.timeEnd.Sub(t.timeStart)
	if dt <= 0 {
		return false
	}
	speed := (t.yEnd - t.yStart) / dt.Seconds()
	if math.Abs(speed) < t.cfg.MinSpeed {
		return false
	}
	speed = math.Max(-t.cfg.MaxSpeed, math.Min(t.cfg.MaxSpeed, speed))
	isDown := speed < 0
	if !t.host.CanMove(isDown) {
		return false
	}
	shift := t.host.shiftDistance(isDown)
	if shift <= 0 {
		return false
	}

	// A critically damped spring released at speed v covers about v/w
	// before settling; rounding up to whole rows keeps it from overshooting.
	o := t.host.offset()
	already := o
	if isDown {
		already = -o
	}
	w := math.Sqrt(t.cfg.Spring.Stiffness / t.cfg.Spring.Mass)
	rows := int(math.Ceil((math.Abs(speed)/w + already) / shift))
	if rows < 1 {
		rows = 1
	}
	if limit := t.host.stepsAvailable(isDown); limit >= 0 && rows > limit {
		rows = limit
	}
	if rows == 0 {
		return false
	}

	var travel float64
	if isDown {
		travel = -o - float64(rows)*shift
	} else {
		travel = float64(rows)*shift - o
	}

	t.speed = speed
	t.sim = animation.NewSpringSimulation(t.cfg.Spring, 0, speed, travel)
	t.lastElapsed = 0
	t.ticker.Start()
	return true
}

// Stop cancels an in-flight fling without settling it.
func (t *TossController) Stop() {
	t.ticker.Stop()
	t.sim = nil
}

func (t *TossController) onFrame(elapsed time.Duration) {
	defer errors.Recover("picker.TossController.onFrame")
	if t.sim == nil {
		t.ticker.Stop()
		return
	}
	step := elapsed - t.lastElapsed
	t.lastElapsed = elapsed
	done := t.sim.Step(step.Seconds())
	t.host.tossUpdate(t.yEnd + t.sim.Position())
	if done && t.sim != nil {
		t.Stop()
		t.host.tossEnd()
	}
}
