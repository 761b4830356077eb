package pickertest

import "sync"

// HapticCall is one recorded coordinator call.
type HapticCall struct {
	// Method is "Play", "PlayOnce", "Stop" or "HandleDelta".
	Method string
	// Arg is the speed for Play and the delta for HandleDelta.
	Arg float64
}

// RecordingHaptics is a haptics.Coordinator that records every call.
type RecordingHaptics struct {
	mu    sync.Mutex
	calls []HapticCall
}

func (r *RecordingHaptics) record(method string, arg float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, HapticCall{Method: method, Arg: arg})
}

func (r *RecordingHaptics) Play(speed float64)            { r.record("Play", speed) }
func (r *RecordingHaptics) PlayOnce()                     { r.record("PlayOnce", 0) }
func (r *RecordingHaptics) Stop()                         { r.record("Stop", 0) }
func (r *RecordingHaptics) HandleDelta(dragDelta float64) { r.record("HandleDelta", dragDelta) }

// Calls returns a copy of the recorded calls.
func (r *RecordingHaptics) Calls() []HapticCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]HapticCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many times method was called.
func (r *RecordingHaptics) Count(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls.
func (r *RecordingHaptics) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
