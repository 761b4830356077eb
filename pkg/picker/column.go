package picker

import (
	"math"
	"time"

	"github.com/go-drift/picker/pkg/animation"
	"github.com/go-drift/picker/pkg/errors"
	"github.com/go-drift/picker/pkg/haptics"
	"github.com/go-drift/picker/pkg/theme"
)

// ScrollStatus is the gesture state of a column.
//
//	Idle ──drag──► Dragging ──release, fast──► Flinging ──settled──► SnappingBack ──► Idle
//	                  │                            │
//	                  └──release, slow─────────────┴──boundary──────► SnappingBack
//
// Any pointer-down returns to Dragging and cancels motion in flight.
type ScrollStatus int

const (
	StatusIdle ScrollStatus = iota
	StatusDragging
	StatusFlinging
	StatusSnappingBack
)

func (s ScrollStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusDragging:
		return "dragging"
	case StatusFlinging:
		return "flinging"
	case StatusSnappingBack:
		return "snapping"
	default:
		return "unknown"
	}
}

// DefaultShowCount is the number of visible rows.
const DefaultShowCount = 5

// DefaultSnapDuration is the length of the settle animation.
const DefaultSnapDuration = 200 * time.Millisecond

// ChangeFunc observes selected index changes. isAdd reports the direction
// of travel; notify is false while the change is transient, such as during
// a fling.
type ChangeFunc func(key ColumnKey, isAdd bool, index uint32, notify bool)

// ColumnConfig configures a Column.
type ColumnConfig struct {
	Key       ColumnKey
	Kind      ColumnKind
	ShowCount int
	CanLoop   bool
	Theme     theme.PickerThemeData
	// Haptics may be nil; feedback is skipped then.
	Haptics        haptics.Coordinator
	HapticsEnabled bool
	Toss           TossConfig
	SnapDuration   time.Duration
}

// ColumnScrollState is a read-only view of a column's motion.
type ColumnScrollState struct {
	Status       ScrollStatus
	CurrentIndex uint32
	// Offset is the content displacement from rest; negative is up.
	Offset float64
	// DragDelta is the last pointer movement applied.
	DragDelta  float64
	TossActive bool
}

// Column drives one scrollable column: it turns drag deltas into discrete
// index changes, flings, and settles on a row boundary.
type Column struct {
	key       ColumnKey
	model     *OptionModel
	showCount int
	heights   []float64

	animator *TextAnimator
	toss     *TossController
	snap     *animation.AnimationController

	haptic         haptics.Coordinator
	hapticEnabled  bool
	hapticStopped  bool
	hapticPlayOnce bool

	status    ScrollStatus
	yLast     float64
	yOffset   float64
	dragDelta float64
	detached  bool

	onChange    ChangeFunc
	onScrollEnd func(key ColumnKey)
}

// NewColumn returns an idle column with no options.
func NewColumn(cfg ColumnConfig) *Column {
	if cfg.ShowCount <= 0 {
		cfg.ShowCount = DefaultShowCount
	}
	if cfg.ShowCount%2 == 0 {
		cfg.ShowCount++
	}
	if cfg.SnapDuration <= 0 {
		cfg.SnapDuration = DefaultSnapDuration
	}
	if cfg.Theme.RowHeight <= 0 {
		cfg.Theme = theme.DefaultLightTheme().PickerThemeOf()
	}
	c := &Column{
		key:           cfg.Key,
		model:         NewOptionModel(cfg.CanLoop),
		showCount:     cfg.ShowCount,
		animator:      NewTextAnimator(cfg.Kind, cfg.Theme, cfg.ShowCount),
		haptic:        cfg.Haptics,
		hapticEnabled: cfg.HapticsEnabled,
	}
	c.setHeights(cfg.Theme)
	c.toss = newTossController(c, cfg.Toss)
	c.snap = animation.NewAnimationController(cfg.SnapDuration)
	c.snap.Curve = animation.EaseOut
	c.snap.AddListener(c.onSnapFrame)
	c.snap.AddStatusListener(c.onSnapStatus)
	return c
}

func (c *Column) setHeights(t theme.PickerThemeData) {
	c.heights = make([]float64, c.showCount)
	mid := c.showCount / 2
	for i := range c.heights {
		c.heights[i] = t.RowHeight
		if i == mid && t.SelectedRowHeight > 0 {
			c.heights[i] = t.SelectedRowHeight
		}
	}
}

// Key returns the column identity.
func (c *Column) Key() ColumnKey { return c.key }

// ShowCount returns the number of visible rows.
func (c *Column) ShowCount() int { return c.showCount }

// CanLoop reports whether the column wraps.
func (c *Column) CanLoop() bool { return c.model.Loop() }

// SetCanLoop switches wrapping.
func (c *Column) SetCanLoop(loop bool) { c.model.SetLoop(loop) }

// SetTheme replaces presets and row heights.
func (c *Column) SetTheme(t theme.PickerThemeData) {
	c.setHeights(t)
	c.animator.SetTheme(t)
}

// SetHapticsEnabled toggles feedback.
func (c *Column) SetHapticsEnabled(enabled bool) {
	c.hapticEnabled = enabled
	if !enabled {
		c.stopHaptics()
	}
}

// OnChange registers the index change observer.
func (c *Column) OnChange(fn ChangeFunc) { c.onChange = fn }

// OnScrollEnd registers a callback fired when motion comes to rest.
func (c *Column) OnScrollEnd(fn func(key ColumnKey)) { c.onScrollEnd = fn }

// Options returns the option sequence.
func (c *Column) Options() []OptionValue { return c.model.Options(c.key) }

// OptionCount returns the number of options.
func (c *Column) OptionCount() uint32 { return c.model.Len(c.key) }

// Option returns the option at index, soft-failing out of range.
func (c *Column) Option(index uint32) (OptionValue, bool) { return c.model.Option(c.key, index) }

// Selected returns the option at the current index.
func (c *Column) Selected() (OptionValue, bool) { return c.model.Option(c.key, c.model.CurrentIndex()) }

// CurrentIndex returns the selected index.
func (c *Column) CurrentIndex() uint32 { return c.model.CurrentIndex() }

// Status returns the gesture state.
func (c *Column) Status() ScrollStatus { return c.status }

// State returns a snapshot of motion state.
func (c *Column) State() ColumnScrollState {
	return ColumnScrollState{
		Status:       c.status,
		CurrentIndex: c.model.CurrentIndex(),
		Offset:       c.yOffset,
		DragDelta:    c.dragDelta,
		TossActive:   c.toss.IsActive(),
	}
}

// RowStyles returns the animated style of each visible slot.
func (c *Column) RowStyles() []RowStyle { return c.animator.Rows() }

// VisibleOptions returns the option shown in each slot, top to bottom.
// ok is false for slots past the end of a bounded column.
func (c *Column) VisibleOptions() []VisibleOption {
	mid := c.showCount / 2
	out := make([]VisibleOption, c.showCount)
	for i := range out {
		idx, ok := c.model.Resolve(c.key, i-mid)
		if ok {
			out[i].Option, _ = c.model.Option(c.key, idx)
			out[i].Index = idx
		}
		out[i].OK = ok
	}
	return out
}

// VisibleOption is the content of one slot.
type VisibleOption struct {
	Option OptionValue
	Index  uint32
	OK     bool
}

// SetOptions replaces the option sequence and restyles the window. The
// current index is clamped; motion in flight is left alone.
func (c *Column) SetOptions(opts []OptionValue) {
	c.model.SetOptions(c.key, opts)
	c.animator.Reset()
}

// ReplaceOptions swaps the sequence and selects index in one step without
// notifying observers. Linked columns use it from change callbacks.
func (c *Column) ReplaceOptions(opts []OptionValue, index uint32) {
	c.model.SetOptions(c.key, opts)
	c.model.SetCurrentIndex(c.key, index)
	c.animator.Reset()
}

// SetCurrentIndex selects index without animation or notification and
// cancels any motion.
func (c *Column) SetCurrentIndex(index uint32) {
	c.cancelMotion()
	c.model.SetCurrentIndex(c.key, index)
	c.yOffset = 0
	c.status = StatusIdle
	c.animator.Reset()
}

// CanMove reports whether the index may move one step. isDown moves toward
// higher indices. Loop columns can always move unless empty.
func (c *Column) CanMove(isDown bool) bool {
	total := c.model.Len(c.key)
	if total == 0 {
		return false
	}
	if c.model.Loop() {
		return true
	}
	cur := c.model.CurrentIndex()
	if isDown {
		return cur < total-1
	}
	return cur > 0
}

func (c *Column) stepsAvailable(isDown bool) int {
	if c.model.Loop() {
		return -1
	}
	total := c.model.Len(c.key)
	if total == 0 {
		return 0
	}
	cur := c.model.CurrentIndex()
	if isDown {
		return int(total - 1 - cur)
	}
	return int(cur)
}

// shiftDistance is the distance between the selection band center and the
// center of the neighbor that moves into it.
func (c *Column) shiftDistance(isDown bool) float64 {
	mid := c.showCount / 2
	h := c.heights[mid]
	switch {
	case isDown && mid+1 < len(c.heights):
		return (h + c.heights[mid+1]) / 2
	case !isDown && mid > 0:
		return (h + c.heights[mid-1]) / 2
	}
	return h
}

func (c *Column) offset() float64 { return c.yOffset }

// InnerHandleScroll moves the selected index by one row. propsOnly marks
// the change as not user-visible; animatePropsOnly leaves text styles for
// the caller to animate. It returns false when the column cannot move.
func (c *Column) InnerHandleScroll(isDown, propsOnly, animatePropsOnly bool) bool {
	if !c.CanMove(isDown) {
		return false
	}
	step := -1
	if isDown {
		step = 1
	}
	total := c.model.Len(c.key)
	next := CalcScrollIndex(total, c.model.CurrentIndex(), c.model.Loop(), step)
	c.model.SetCurrentIndex(c.key, next)
	if !animatePropsOnly {
		c.animator.Reset()
	}
	if c.hapticAllowed() && c.status != StatusDragging {
		c.haptic.PlayOnce()
	}
	notify := !propsOnly && c.status != StatusFlinging
	if c.onChange != nil {
		c.onChange(c.key, isDown, next, notify)
	}
	return true
}

// HandleDragStart begins a drag at y, cancelling any fling or settle.
func (c *Column) HandleDragStart(y float64) {
	if c.detached {
		return
	}
	if c.toss.IsActive() {
		c.stopHaptics()
	}
	c.cancelMotion()
	c.hapticStopped = false
	c.hapticPlayOnce = false
	c.status = StatusDragging
	c.yLast = y
	c.dragDelta = 0
	c.toss.SetStart(y)
}

// HandleDragMove follows the pointer to y.
func (c *Column) HandleDragMove(y float64) {
	if c.detached || c.status != StatusDragging {
		return
	}
	c.UpdateColumnChildPosition(y)
}

// HandleDragEnd releases the pointer at y and either flings or settles.
func (c *Column) HandleDragEnd(y float64) {
	if c.detached || c.status != StatusDragging {
		return
	}
	c.UpdateColumnChildPosition(y)
	c.toss.SetEnd(y)
	c.hapticPlayOnce = true
	c.status = StatusFlinging
	if c.toss.Play() {
		if c.hapticAllowed() {
			c.haptic.Play(c.toss.Speed())
		}
		return
	}
	c.snapBack()
}

// UpdateColumnChildPosition applies the pointer (or fling) position y. The
// content shifts by the delta from the last position; each full row crossed
// moves the index, and the remainder stays as offset. Motion past the end of
// a bounded column is absorbed.
func (c *Column) UpdateColumnChildPosition(y float64) {
	delta := y - c.yLast
	c.yLast = y
	if delta == 0 {
		return
	}
	c.dragDelta = delta
	isDown := delta < 0
	if !c.CanMove(isDown) && (c.yOffset == 0 || (c.yOffset < 0) == isDown) {
		return
	}
	if c.hapticAllowed() && !c.hapticPlayOnce {
		c.haptic.HandleDelta(delta)
	}
	c.applyOffset(c.yOffset + delta)
}

func (c *Column) applyOffset(offset float64) {
	c.yOffset = offset
	for c.yOffset != 0 {
		isDown := c.yOffset < 0
		shift := c.shiftDistance(isDown)
		if math.Abs(c.yOffset) < shift {
			break
		}
		if !c.InnerHandleScroll(isDown, false, false) {
			break
		}
		if isDown {
			c.yOffset += shift
		} else {
			c.yOffset -= shift
		}
	}
	if c.yOffset != 0 && !c.CanMove(c.yOffset < 0) {
		c.yOffset = 0
	}
	c.updateTextStyles()
}

func (c *Column) updateTextStyles() {
	if c.yOffset == 0 {
		c.animator.Reset()
		return
	}
	isDown := c.yOffset < 0
	c.animator.Update(isDown, math.Abs(c.yOffset)/c.shiftDistance(isDown))
}

func (c *Column) tossUpdate(y float64) {
	c.UpdateColumnChildPosition(y)
	isDown := c.toss.Speed() < 0
	if !c.CanMove(isDown) && c.yOffset == 0 {
		// Hit the end of a bounded column.
		c.toss.Stop()
		c.snapBack()
	}
}

func (c *Column) tossEnd() {
	c.snapBack()
}

// snapBack settles the residual offset. A residual of half a row or more
// first advances the index so the nearest row wins.
func (c *Column) snapBack() {
	if c.yOffset != 0 {
		isDown := c.yOffset < 0
		shift := c.shiftDistance(isDown)
		if math.Abs(c.yOffset) >= shift/2 {
			// Leave fling suppression so the final row is announced.
			c.status = StatusSnappingBack
			if c.InnerHandleScroll(isDown, false, false) {
				if isDown {
					c.yOffset += shift
				} else {
					c.yOffset -= shift
				}
			}
		}
	}
	if c.yOffset == 0 || math.Abs(c.yOffset) < 1e-9 {
		c.finishScroll()
		return
	}
	c.status = StatusSnappingBack
	c.hapticPlayOnce = true
	c.updateTextStyles()
	c.snap.AnimateFromTo(c.yOffset, 0)
}

func (c *Column) onSnapFrame() {
	defer errors.Recover("picker.Column.onSnapFrame")
	if c.status != StatusSnappingBack {
		return
	}
	c.yOffset = c.snap.Value
	c.updateTextStyles()
}

func (c *Column) onSnapStatus(s animation.AnimationStatus) {
	if c.status != StatusSnappingBack {
		return
	}
	if s == animation.AnimationCompleted || s == animation.AnimationDismissed {
		c.finishScroll()
	}
}

func (c *Column) finishScroll() {
	c.yOffset = 0
	c.dragDelta = 0
	c.status = StatusIdle
	c.hapticPlayOnce = false
	c.animator.Reset()
	if c.haptic != nil && c.hapticEnabled {
		c.haptic.Stop()
	}
	if c.onScrollEnd != nil {
		c.onScrollEnd(c.key)
	}
}

func (c *Column) cancelMotion() {
	c.toss.Stop()
	c.snap.Stop()
}

// ScrollToIndex moves to index. With animate the final row slides into the
// band and intermediate rows tick; otherwise the jump is immediate. Loop
// columns take the shorter way round. Observers see one notified change.
func (c *Column) ScrollToIndex(index uint32, animate bool) {
	total := c.model.Len(c.key)
	if c.detached || total == 0 {
		return
	}
	if index >= total {
		index = total - 1
	}
	c.cancelMotion()
	cur := c.model.CurrentIndex()
	if index == cur {
		c.yOffset = 0
		c.status = StatusIdle
		c.animator.Reset()
		return
	}
	steps := int(index) - int(cur)
	if c.model.Loop() {
		n := int(total)
		if steps > n/2 {
			steps -= n
		} else if steps < -n/2 {
			steps += n
		}
	}
	isDown := steps > 0
	if steps < 0 {
		steps = -steps
	}

	c.hapticPlayOnce = true
	c.status = StatusSnappingBack
	for i := 0; i < steps; i++ {
		c.InnerHandleScroll(isDown, i < steps-1, false)
	}
	if !animate {
		c.yOffset = 0
		c.finishScroll()
		return
	}
	shift := c.shiftDistance(isDown)
	if isDown {
		c.yOffset = shift
	} else {
		c.yOffset = -shift
	}
	c.updateTextStyles()
	c.snap.AnimateFromTo(c.yOffset, 0)
}

// OnWindowHide force-stops feedback until the next drag or OnWindowShow.
func (c *Column) OnWindowHide() {
	c.stopHaptics()
	c.hapticStopped = true
}

// OnWindowShow re-enables feedback.
func (c *Column) OnWindowShow() {
	c.hapticStopped = false
}

// Detach stops all motion and feedback and drops observers. A detached
// column ignores further gestures.
func (c *Column) Detach() {
	c.cancelMotion()
	c.stopHaptics()
	c.hapticStopped = true
	c.detached = true
	c.status = StatusIdle
	c.yOffset = 0
	c.onChange = nil
	c.onScrollEnd = nil
}

// IsDetached reports whether Detach was called.
func (c *Column) IsDetached() bool { return c.detached }

func (c *Column) hapticAllowed() bool {
	return c.haptic != nil && c.hapticEnabled && !c.hapticStopped
}

func (c *Column) stopHaptics() {
	if c.haptic != nil {
		c.haptic.Stop()
	}
}
