package pickertest

import (
	"time"

	"github.com/go-drift/picker/pkg/animation"
)

// Frame is the frame interval used by gesture drivers.
const Frame = 16 * time.Millisecond

// maxSettleFrames bounds Settle so a runaway animation fails a test instead
// of hanging it.
const maxSettleFrames = 2000

// Dragger receives pointer events. picker.Column implements it.
type Dragger interface {
	HandleDragStart(y float64)
	HandleDragMove(y float64)
	HandleDragEnd(y float64)
}

// Drag moves the pointer from y to y+dy in steps moves spread over d, then
// releases it. A slow drag settles without a fling.
func Drag(clk *FakeClock, target Dragger, y, dy float64, steps int, d time.Duration) {
	if steps < 1 {
		steps = 1
	}
	target.HandleDragStart(y)
	step := d / time.Duration(steps)
	for i := 1; i <= steps; i++ {
		clk.Advance(step)
		target.HandleDragMove(y + dy*float64(i)/float64(steps))
	}
	target.HandleDragEnd(y + dy)
}

// Fling is a quick single-move drag of dy over d.
func Fling(clk *FakeClock, target Dragger, y, dy float64, d time.Duration) {
	Drag(clk, target, y, dy, 1, d)
}

// Settle steps tickers at Frame intervals until none are active and
// returns the number of frames stepped.
func Settle(clk *FakeClock) int {
	return animation.RunUntilIdle(Frame, maxSettleFrames, clk.Advance)
}
