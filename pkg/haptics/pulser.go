package haptics

import "math"

// PulseKind identifies what produced a pulse.
type PulseKind int

const (
	// PulseTick is a discrete row tick (PlayOnce or accumulated drag).
	PulseTick PulseKind = iota
	// PulseToss is the start of velocity-scaled toss feedback.
	PulseToss
	// PulseStop marks playback being halted.
	PulseStop
)

func (k PulseKind) String() string {
	switch k {
	case PulseTick:
		return "tick"
	case PulseToss:
		return "toss"
	case PulseStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Pulse is one feedback event emitted by a Pulser.
type Pulse struct {
	Kind PulseKind
	// Strength is in [0, 1].
	Strength float64
}

// Pulser is a Coordinator for hosts without a vibration motor of their own
// (terminals, simulators). It accumulates drag distance and emits a tick per
// Threshold pixels travelled.
type Pulser struct {
	// Threshold is the drag distance per tick. Zero means 40px.
	Threshold float64
	// MaxSpeed maps toss speed to strength 1. Zero means 5000 px/s.
	MaxSpeed float64
	// Sink receives pulses. Nil discards them.
	Sink func(Pulse)

	accumulated float64
	playing     bool
}

func (p *Pulser) threshold() float64 {
	if p.Threshold > 0 {
		return p.Threshold
	}
	return 40
}

func (p *Pulser) emit(pulse Pulse) {
	if p.Sink != nil {
		p.Sink(pulse)
	}
}

// Play emits a toss pulse whose strength follows speed.
func (p *Pulser) Play(speed float64) {
	maxSpeed := p.MaxSpeed
	if maxSpeed <= 0 {
		maxSpeed = 5000
	}
	p.playing = true
	p.emit(Pulse{Kind: PulseToss, Strength: math.Min(1, math.Abs(speed)/maxSpeed)})
}

// PlayOnce emits a single full-strength tick.
func (p *Pulser) PlayOnce() {
	p.emit(Pulse{Kind: PulseTick, Strength: 1})
}

// Stop resets accumulated motion and emits a stop pulse if playing.
func (p *Pulser) Stop() {
	p.accumulated = 0
	if p.playing {
		p.playing = false
		p.emit(Pulse{Kind: PulseStop})
	}
}

// HandleDelta accumulates motion and emits one tick per threshold crossed.
func (p *Pulser) HandleDelta(dragDelta float64) {
	p.accumulated += math.Abs(dragDelta)
	th := p.threshold()
	for p.accumulated >= th {
		p.accumulated -= th
		p.emit(Pulse{Kind: PulseTick, Strength: 0.5})
	}
}
