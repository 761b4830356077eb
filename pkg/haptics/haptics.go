// Package haptics defines the feedback capability picker columns call into.
//
// The host toolkit owns coordinator lifetimes. A column only requests one
// through a Factory and calls the Coordinator methods; a nil coordinator is
// a legitimate result (no hardware, or a platform below the supported
// version) and every call site skips feedback in that case.
package haptics

import (
	"fmt"

	"github.com/go-drift/picker/pkg/errors"
)

// Coordinator converts scroll motion into tactile feedback. Calls are
// fire-and-forget.
type Coordinator interface {
	// Play starts feedback scaled to a toss speed in px/s.
	Play(speed float64)
	// PlayOnce plays a single discrete tick.
	PlayOnce()
	// Stop halts any ongoing playback.
	Stop()
	// HandleDelta feeds continuous drag motion in pixels.
	HandleDelta(dragDelta float64)
}

// Factory creates coordinators for a named effect.
type Factory interface {
	CreateCoordinator(effect string) Coordinator
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(effect string) Coordinator

// CreateCoordinator calls f.
func (f FactoryFunc) CreateCoordinator(effect string) Coordinator {
	return f(effect)
}

// EffectSlide is the effect requested by picker columns.
const EffectSlide = "haptic.slide"

// DefaultMinPlatformVersion is the lowest platform API version with
// picker haptics.
const DefaultMinPlatformVersion = 12

// Gate withholds haptics on platforms below MinVersion.
type Gate struct {
	PlatformVersion int
	MinVersion      int
}

// Allows reports whether the platform passes the gate. A zero MinVersion
// uses DefaultMinPlatformVersion.
func (g Gate) Allows() bool {
	minVersion := g.MinVersion
	if minVersion == 0 {
		minVersion = DefaultMinPlatformVersion
	}
	return g.PlatformVersion >= minVersion
}

// Request asks factory for a coordinator. It returns nil when the factory is
// absent, the gate refuses, or the factory panics (reported, not propagated).
func Request(factory Factory, effect string, gate Gate) (c Coordinator) {
	if factory == nil || !gate.Allows() {
		return nil
	}
	defer errors.RecoverWithCallback("haptics.Request", func(r any) {
		errors.Report(&errors.PickerError{
			Op:   "haptics.Request",
			Kind: errors.KindHaptics,
			Err:  fmt.Errorf("factory for %q panicked: %v", effect, r),
		})
		c = nil
	})
	return factory.CreateCoordinator(effect)
}
