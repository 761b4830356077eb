package picker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/picker/pkg/pickertest"
)

// rowShift is the distance between the selection band and its neighbors
// with the default theme: (56 + 36) / 2.
const rowShift = 46.0

type change struct {
	isAdd  bool
	index  uint32
	notify bool
	status ScrollStatus
}

func dayOptions(n int) []OptionValue {
	opts := make([]OptionValue, n)
	for i := range opts {
		opts[i] = DayOption(uint32(i+1), false)
	}
	return opts
}

func newTestColumn(n int, loop bool, rec *pickertest.RecordingHaptics) (*Column, *[]change) {
	cfg := ColumnConfig{Key: ColumnDay, CanLoop: loop}
	if rec != nil {
		cfg.Haptics = rec
		cfg.HapticsEnabled = true
	}
	col := NewColumn(cfg)
	col.SetOptions(dayOptions(n))
	changes := &[]change{}
	col.OnChange(func(key ColumnKey, isAdd bool, index uint32, notify bool) {
		*changes = append(*changes, change{isAdd, index, notify, col.Status()})
	})
	return col, changes
}

func TestColumnSlowDragMovesOneRow(t *testing.T) {
	clk := pickertest.InstallClock(t)
	col, changes := newTestColumn(10, false, nil)

	pickertest.Drag(clk, col, 200, -rowShift, 1, time.Second)
	pickertest.Settle(clk)

	assert.Equal(t, uint32(1), col.CurrentIndex())
	assert.Equal(t, StatusIdle, col.Status())
	assert.Zero(t, col.State().Offset)
	require.Len(t, *changes, 1)
	assert.Equal(t, change{true, 1, true, StatusDragging}, (*changes)[0])
}

func TestColumnSnapRoundsToNearestRow(t *testing.T) {
	clk := pickertest.InstallClock(t)

	col, _ := newTestColumn(10, false, nil)
	pickertest.Drag(clk, col, 200, -30, 1, time.Second)
	assert.Equal(t, StatusSnappingBack, col.Status())
	pickertest.Settle(clk)
	assert.Equal(t, uint32(1), col.CurrentIndex())
	assert.Zero(t, col.State().Offset)

	col, changes := newTestColumn(10, false, nil)
	pickertest.Drag(clk, col, 200, -20, 1, time.Second)
	pickertest.Settle(clk)
	assert.Equal(t, uint32(0), col.CurrentIndex())
	assert.Empty(t, *changes)
	assert.Equal(t, StatusIdle, col.Status())
}

func TestColumnResidualStaysBelowOneRow(t *testing.T) {
	pickertest.InstallClock(t)
	col, changes := newTestColumn(10, false, nil)

	col.HandleDragStart(200)
	col.HandleDragMove(100)

	assert.Equal(t, uint32(2), col.CurrentIndex())
	assert.InDelta(t, -8.0, col.State().Offset, 1e-9)
	assert.Len(t, *changes, 2)

	col.HandleDragMove(140)
	assert.Equal(t, uint32(2), col.CurrentIndex())
	assert.InDelta(t, 32.0, col.State().Offset, 1e-9)
	assert.Less(t, col.State().Offset, rowShift)
}

func TestColumnZeroDeltaIsNoOp(t *testing.T) {
	pickertest.InstallClock(t)
	rec := &pickertest.RecordingHaptics{}
	col, changes := newTestColumn(10, false, rec)

	col.HandleDragStart(100)
	col.HandleDragMove(100)
	col.UpdateColumnChildPosition(100)

	assert.Equal(t, 0, rec.Count("HandleDelta"))
	assert.Empty(t, *changes)
	assert.Zero(t, col.State().Offset)
}

func TestColumnBoundaryBlocksMotion(t *testing.T) {
	clk := pickertest.InstallClock(t)
	rec := &pickertest.RecordingHaptics{}
	col, changes := newTestColumn(10, false, rec)

	assert.False(t, col.CanMove(false))
	assert.True(t, col.CanMove(true))
	pickertest.Drag(clk, col, 100, 200, 4, time.Second)
	pickertest.Settle(clk)
	assert.Equal(t, uint32(0), col.CurrentIndex())
	assert.Empty(t, *changes)
	assert.Equal(t, 0, rec.Count("HandleDelta"))

	col.SetCurrentIndex(9)
	assert.False(t, col.CanMove(true))
	pickertest.Drag(clk, col, 300, -200, 4, time.Second)
	pickertest.Settle(clk)
	assert.Equal(t, uint32(9), col.CurrentIndex())
	assert.Empty(t, *changes)
	assert.Zero(t, col.State().Offset)
}

func TestColumnLoopWraps(t *testing.T) {
	clk := pickertest.InstallClock(t)
	col, changes := newTestColumn(12, true, nil)
	col.SetCurrentIndex(11)

	assert.True(t, col.CanMove(true))
	pickertest.Drag(clk, col, 200, -rowShift, 1, time.Second)
	pickertest.Settle(clk)
	assert.Equal(t, uint32(0), col.CurrentIndex())
	require.Len(t, *changes, 1)
	assert.True(t, (*changes)[0].isAdd)

	pickertest.Drag(clk, col, 200, rowShift, 1, time.Second)
	pickertest.Settle(clk)
	assert.Equal(t, uint32(11), col.CurrentIndex())
}

func TestColumnFling(t *testing.T) {
	clk := pickertest.InstallClock(t)
	rec := &pickertest.RecordingHaptics{}
	col, changes := newTestColumn(30, false, rec)

	pickertest.Fling(clk, col, 400, -100, 50*time.Millisecond)
	assert.Equal(t, StatusFlinging, col.Status())
	assert.True(t, col.State().TossActive)

	frames := pickertest.Settle(clk)
	assert.Greater(t, frames, 1)
	assert.Equal(t, StatusIdle, col.Status())
	assert.Zero(t, col.State().Offset)
	assert.Greater(t, col.CurrentIndex(), uint32(2))

	for _, c := range *changes {
		if c.status == StatusFlinging {
			assert.False(t, c.notify, "fling steps must not notify: %+v", c)
		}
	}

	require.Equal(t, 1, rec.Count("Play"))
	assert.Less(t, rec.Calls()[1].Arg, 0.0)
	assert.Equal(t, 1, rec.Count("HandleDelta"))
	assert.GreaterOrEqual(t, rec.Count("PlayOnce"), 1)
}

func TestColumnFlingStopsAtBoundary(t *testing.T) {
	clk := pickertest.InstallClock(t)
	col, _ := newTestColumn(5, false, nil)

	pickertest.Fling(clk, col, 400, -100, 50*time.Millisecond)
	pickertest.Settle(clk)

	assert.Equal(t, uint32(4), col.CurrentIndex())
	assert.Equal(t, StatusIdle, col.Status())
	assert.Zero(t, col.State().Offset)
}

func TestColumnFlingLoop(t *testing.T) {
	clk := pickertest.InstallClock(t)
	col, _ := newTestColumn(12, true, nil)

	pickertest.Fling(clk, col, 100, 120, 40*time.Millisecond)
	pickertest.Settle(clk)

	assert.Equal(t, StatusIdle, col.Status())
	assert.Less(t, col.CurrentIndex(), uint32(12))
	assert.Zero(t, col.State().Offset)
}

func TestTossRejection(t *testing.T) {
	clk := pickertest.InstallClock(t)
	col, _ := newTestColumn(30, false, nil)

	col.toss.SetStart(0)
	col.toss.SetEnd(-300)
	assert.False(t, col.toss.Play(), "zero duration")

	col.toss.SetStart(0)
	clk.Advance(time.Second)
	col.toss.SetEnd(-10)
	assert.False(t, col.toss.Play(), "below minimum speed")

	col.toss.SetStart(0)
	clk.Advance(50 * time.Millisecond)
	col.toss.SetEnd(200)
	assert.False(t, col.toss.Play(), "toward a boundary")

	col.toss.SetStart(0)
	clk.Advance(10 * time.Millisecond)
	col.toss.SetEnd(-1000)
	assert.True(t, col.toss.Play())
	assert.Equal(t, -DefaultMaxTossSpeed, col.toss.Speed())
	col.toss.Stop()
}

func TestColumnPointerDownCancelsFling(t *testing.T) {
	clk := pickertest.InstallClock(t)
	col, _ := newTestColumn(30, false, nil)

	pickertest.Fling(clk, col, 400, -100, 50*time.Millisecond)
	clk.Advance(pickertest.Frame)
	col.HandleDragStart(250)

	assert.Equal(t, StatusDragging, col.Status())
	assert.False(t, col.State().TossActive)
	col.HandleDragEnd(250)
	pickertest.Settle(clk)
	assert.Equal(t, StatusIdle, col.Status())
}

func TestColumnDragAnimatesText(t *testing.T) {
	pickertest.InstallClock(t)
	col, _ := newTestColumn(10, false, nil)
	th := testPresets()

	col.HandleDragStart(200)
	col.HandleDragMove(200 - rowShift/2)

	styles := col.RowStyles()
	assert.InDelta(t, (th.Date.Selected.FontSize+th.Date.Candidate.FontSize)/2, styles[2].Style.FontSize, 1e-9)
	assert.Equal(t, styles[0].Current, styles[0].Style)
}

func TestColumnScrollToIndex(t *testing.T) {
	clk := pickertest.InstallClock(t)
	col, changes := newTestColumn(10, false, nil)
	ends := 0
	col.OnScrollEnd(func(ColumnKey) { ends++ })

	col.ScrollToIndex(3, false)
	assert.Equal(t, uint32(3), col.CurrentIndex())
	require.Len(t, *changes, 3)
	assert.False(t, (*changes)[0].notify)
	assert.False(t, (*changes)[1].notify)
	assert.True(t, (*changes)[2].notify)
	assert.Equal(t, 1, ends)

	col.ScrollToIndex(5, true)
	assert.Equal(t, uint32(5), col.CurrentIndex())
	assert.Equal(t, StatusSnappingBack, col.Status())
	assert.InDelta(t, rowShift, col.State().Offset, 1e-9)
	pickertest.Settle(clk)
	assert.Equal(t, StatusIdle, col.Status())
	assert.Zero(t, col.State().Offset)
	assert.Equal(t, 2, ends)

	col.ScrollToIndex(50, false)
	assert.Equal(t, uint32(9), col.CurrentIndex())
}

func TestColumnScrollToIndexTakesShortWayRound(t *testing.T) {
	pickertest.InstallClock(t)
	col, changes := newTestColumn(12, true, nil)

	col.ScrollToIndex(11, false)
	require.Len(t, *changes, 1)
	assert.False(t, (*changes)[0].isAdd)
	assert.Equal(t, uint32(11), col.CurrentIndex())
}

func TestColumnHapticsGating(t *testing.T) {
	pickertest.InstallClock(t)
	rec := &pickertest.RecordingHaptics{}
	col, _ := newTestColumn(10, false, rec)

	col.OnWindowHide()
	assert.Equal(t, 1, rec.Count("Stop"))
	col.ScrollToIndex(2, false)
	assert.Equal(t, 0, rec.Count("PlayOnce"))

	col.OnWindowShow()
	col.ScrollToIndex(4, false)
	assert.Equal(t, 2, rec.Count("PlayOnce"))

	rec.Reset()
	col.SetHapticsEnabled(false)
	col.ScrollToIndex(6, false)
	assert.Equal(t, 0, rec.Count("PlayOnce"))
}

func TestColumnDragTicksFromDeltaOnly(t *testing.T) {
	clk := pickertest.InstallClock(t)
	rec := &pickertest.RecordingHaptics{}
	col, changes := newTestColumn(10, false, rec)

	pickertest.Drag(clk, col, 200, -rowShift, 1, time.Second)
	pickertest.Settle(clk)

	require.Len(t, *changes, 1)
	assert.Equal(t, 1, rec.Count("HandleDelta"))
	assert.Equal(t, 0, rec.Count("PlayOnce"))

	col.ScrollToIndex(2, false)
	assert.Equal(t, 1, rec.Count("PlayOnce"))
}

func TestColumnWithoutHaptics(t *testing.T) {
	clk := pickertest.InstallClock(t)
	col, _ := newTestColumn(10, false, nil)
	assert.NotPanics(t, func() {
		pickertest.Fling(clk, col, 400, -100, 50*time.Millisecond)
		pickertest.Settle(clk)
		col.OnWindowHide()
	})
}

func TestColumnDetach(t *testing.T) {
	clk := pickertest.InstallClock(t)
	rec := &pickertest.RecordingHaptics{}
	col, changes := newTestColumn(30, false, rec)

	pickertest.Fling(clk, col, 400, -100, 50*time.Millisecond)
	before := len(*changes)
	col.Detach()

	assert.True(t, col.IsDetached())
	assert.False(t, col.State().TossActive)
	assert.GreaterOrEqual(t, rec.Count("Stop"), 1)

	pickertest.Settle(clk)
	col.HandleDragStart(100)
	col.HandleDragMove(0)
	assert.Equal(t, StatusIdle, col.Status())
	assert.Len(t, *changes, before)
}

func TestColumnVisibleOptions(t *testing.T) {
	col, _ := newTestColumn(10, false, nil)
	rows := col.VisibleOptions()
	require.Len(t, rows, DefaultShowCount)
	assert.False(t, rows[0].OK)
	assert.False(t, rows[1].OK)
	assert.True(t, rows[2].OK)
	assert.Equal(t, uint32(1), rows[2].Option.Day())
	assert.Equal(t, uint32(3), rows[4].Option.Day())

	col.SetCanLoop(true)
	rows = col.VisibleOptions()
	assert.True(t, rows[0].OK)
	assert.Equal(t, uint32(9), rows[0].Option.Day())
}

func TestColumnSemantics(t *testing.T) {
	clk := pickertest.InstallClock(t)
	col, _ := newTestColumn(10, false, nil)

	s := col.Semantics("day", func(o OptionValue) string { return o.String() })
	assert.Equal(t, uint32(10), s.ItemCount)
	assert.Equal(t, "D1", s.Value)
	assert.True(t, s.HasAction(ActionScrollForward))
	assert.False(t, s.HasAction(ActionScrollBackward))

	assert.False(t, col.PerformAction(ActionScrollBackward))
	assert.True(t, col.PerformAction(ActionScrollForward))
	pickertest.Settle(clk)
	assert.Equal(t, uint32(1), col.CurrentIndex())
}
