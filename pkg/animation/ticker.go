// Package animation provides the frame-driven primitives behind picker
// column motion.
//
//   - [Ticker]: invokes a callback on every frame while active. The host
//     loop (a UI event loop, the terminal demo, or a test) advances all
//     active tickers with [StepTickers].
//   - [AnimationController]: drives a value between two bounds over a
//     duration with an easing curve. Columns use it to snap the residual
//     scroll offset back to a row boundary.
//   - [SpringSimulation]: damped spring used to settle a toss (fling).
//   - Lerp helpers: interpolation of sizes, colors and text styles.
//
// Everything here runs on the single UI thread; the registry lock only
// guards against tickers being started from callbacks of other tickers.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances all active tickers by one frame.
// Call it once per frame from the host loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		// A callback earlier in this frame may have stopped it.
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// RunUntilIdle steps tickers every frame interval until none remain active
// or maxFrames frames have run. advance moves the clock forward; tests pass
// a fake clock's Advance. It returns the number of frames stepped.
func RunUntilIdle(frame time.Duration, maxFrames int, advance func(time.Duration)) int {
	n := 0
	for n < maxFrames && HasActiveTickers() {
		if advance != nil {
			advance(frame)
		}
		StepTickers()
		n++
	}
	return n
}
