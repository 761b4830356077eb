package animation

import "math"

// SpringDescription describes a damped harmonic oscillator.
type SpringDescription struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// DampingRatio returns damping / critical damping. 1 is critically damped.
func (s SpringDescription) DampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Mass*s.Stiffness))
}

// CriticalSpring returns a critically damped spring of the given stiffness.
// It approaches the target as fast as possible without overshooting, which
// keeps a toss from bouncing past the row it settles on.
func CriticalSpring(stiffness float64) SpringDescription {
	return SpringDescription{
		Mass:      1,
		Stiffness: stiffness,
		Damping:   2 * math.Sqrt(stiffness),
	}
}

// TossSpring is the default spring for settling a picker toss.
func TossSpring() SpringDescription {
	return CriticalSpring(40)
}

// BouncySpring is an underdamped spring with a visible overshoot.
func BouncySpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 180, Damping: 12}
}

// Tolerances for declaring a simulation done.
const (
	springDistanceTolerance = 0.5
	springVelocityTolerance = 5.0
)

// SpringSimulation integrates a spring from a start position and velocity
// toward a target using the closed-form solution.
type SpringSimulation struct {
	spring   SpringDescription
	target   float64
	x0       float64 // initial displacement from target
	v0       float64
	elapsed  float64
	position float64
	velocity float64
	done     bool
}

// NewSpringSimulation starts a simulation at position with velocity,
// settling at target.
func NewSpringSimulation(spring SpringDescription, position, velocity, target float64) *SpringSimulation {
	s := &SpringSimulation{
		spring:   spring,
		target:   target,
		x0:       position - target,
		v0:       velocity,
		position: position,
		velocity: velocity,
	}
	s.done = s.atRest()
	if s.done {
		s.position = target
		s.velocity = 0
	}
	return s
}

// Step advances the simulation by dt seconds and reports whether it is done.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done {
		return true
	}
	if dt <= 0 {
		return false
	}
	s.elapsed += dt
	x, v := s.evaluate(s.elapsed)
	s.position = s.target + x
	s.velocity = v
	if s.atRest() {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
	return s.done
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current velocity.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// Target returns the rest position.
func (s *SpringSimulation) Target() float64 { return s.target }

// IsDone reports whether the spring has come to rest.
func (s *SpringSimulation) IsDone() bool { return s.done }

func (s *SpringSimulation) atRest() bool {
	return math.Abs(s.position-s.target) < springDistanceTolerance &&
		math.Abs(s.velocity) < springVelocityTolerance
}

// evaluate returns displacement from target and velocity at time t.
func (s *SpringSimulation) evaluate(t float64) (float64, float64) {
	m, k := s.spring.Mass, s.spring.Stiffness
	if m <= 0 || k <= 0 {
		return 0, 0
	}
	w := math.Sqrt(k / m)
	zeta := s.spring.DampingRatio()
	x0, v0 := s.x0, s.v0

	switch {
	case math.Abs(zeta-1) < 1e-6:
		c1 := x0
		c2 := v0 + w*x0
		e := math.Exp(-w * t)
		x := (c1 + c2*t) * e
		v := (c2 - w*(c1+c2*t)) * e
		return x, v
	case zeta < 1:
		wd := w * math.Sqrt(1-zeta*zeta)
		c1 := x0
		c2 := (v0 + zeta*w*x0) / wd
		e := math.Exp(-zeta * w * t)
		cos, sin := math.Cos(wd*t), math.Sin(wd*t)
		x := e * (c1*cos + c2*sin)
		v := e * ((-zeta*w*c1+wd*c2)*cos + (-zeta*w*c2-wd*c1)*sin)
		return x, v
	default:
		root := w * math.Sqrt(zeta*zeta-1)
		r1 := -zeta*w + root
		r2 := -zeta*w - root
		c2 := (v0 - r1*x0) / (r2 - r1)
		c1 := x0 - c2
		e1, e2 := math.Exp(r1*t), math.Exp(r2*t)
		x := c1*e1 + c2*e2
		v := c1*r1*e1 + c2*r2*e2
		return x, v
	}
}
