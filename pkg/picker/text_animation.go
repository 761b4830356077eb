package picker

import (
	"github.com/go-drift/picker/pkg/animation"
	"github.com/go-drift/picker/pkg/graphics"
	"github.com/go-drift/picker/pkg/theme"
)

// ColumnKind selects which preset family styles a column.
type ColumnKind int

const (
	DateColumn ColumnKind = iota
	TimeColumn
	GenericColumn
)

func (k ColumnKind) presets(t theme.PickerThemeData) theme.TextPresets {
	switch k {
	case TimeColumn:
		return t.Time
	case GenericColumn:
		return t.Generic
	default:
		return t.Date
	}
}

// RowStyle is the animation record of one visible slot.
type RowStyle struct {
	// Current is the slot's resting style.
	Current graphics.TextStyle
	// Up is the style of the slot above, reached when content moves up.
	Up graphics.TextStyle
	// Down is the style of the slot below, reached when content moves down.
	Down graphics.TextStyle
	// Style is the interpolated style for the last update.
	Style graphics.TextStyle
}

// TextAnimator interpolates per-slot text styles while a column scrolls.
// Slot 0 is the top of the window; the middle slot is the selection band.
type TextAnimator struct {
	kind  ColumnKind
	theme theme.PickerThemeData
	rows  []RowStyle
	// up and down ease each slot from Current toward Up or Down.
	up, down []*animation.Tween[graphics.TextStyle]
}

// NewTextAnimator builds records for showCount slots.
func NewTextAnimator(kind ColumnKind, t theme.PickerThemeData, showCount int) *TextAnimator {
	a := &TextAnimator{kind: kind, theme: t}
	a.resize(showCount)
	return a
}

func (a *TextAnimator) resize(showCount int) {
	a.rows = make([]RowStyle, showCount)
	a.up = make([]*animation.Tween[graphics.TextStyle], showCount)
	a.down = make([]*animation.Tween[graphics.TextStyle], showCount)
	a.Rebuild()
}

// SetShowCount resizes the window and rebuilds every record.
func (a *TextAnimator) SetShowCount(showCount int) {
	if showCount == len(a.rows) {
		return
	}
	a.resize(showCount)
}

// SetTheme swaps the preset source and rebuilds every record.
func (a *TextAnimator) SetTheme(t theme.PickerThemeData) {
	a.theme = t
	a.Rebuild()
}

// presetFor returns the resting style of a slot by its distance from the
// middle: selected, candidate, or disappearing.
func (a *TextAnimator) presetFor(slot int) graphics.TextStyle {
	p := a.kind.presets(a.theme)
	mid := len(a.rows) / 2
	d := slot - mid
	if d < 0 {
		d = -d
	}
	switch d {
	case 0:
		return p.Selected
	case 1:
		return p.Candidate
	default:
		return p.Disappearing
	}
}

// Rebuild recomputes every record from the presets. Up and Down of the
// edge slots equal Current.
func (a *TextAnimator) Rebuild() {
	n := len(a.rows)
	for i := range a.rows {
		cur := a.presetFor(i)
		up, down := cur, cur
		if i > 0 {
			up = a.presetFor(i - 1)
		}
		if i < n-1 {
			down = a.presetFor(i + 1)
		}
		a.rows[i] = RowStyle{Current: cur, Up: up, Down: down, Style: cur}
		a.up[i] = animation.TweenTextStyle(cur, up)
		a.down[i] = animation.TweenTextStyle(cur, down)
	}
}

// Reset returns every slot to its resting style. Called after the selected
// index moves, when row identities shift by one slot.
func (a *TextAnimator) Reset() {
	for i := range a.rows {
		a.rows[i].Style = a.rows[i].Current
	}
}

// TextPropertiesLinearAnimation returns the style of slot while content has
// moved percent of a row. isDown means content travels up, toward Up. The
// slot leaving the window at the moving edge keeps its Current style.
func (a *TextAnimator) TextPropertiesLinearAnimation(slot int, isDown bool, percent float64) graphics.TextStyle {
	if slot < 0 || slot >= len(a.rows) {
		return graphics.TextStyle{}
	}
	r := &a.rows[slot]
	if (slot == 0 && isDown) || (slot == len(a.rows)-1 && !isDown) {
		r.Style = r.Current
		return r.Style
	}
	tw := a.down[slot]
	if isDown {
		tw = a.up[slot]
	}
	r.Style = tw.Evaluate(clamp01(percent))
	return r.Style
}

// Update interpolates every slot.
func (a *TextAnimator) Update(isDown bool, percent float64) {
	for i := range a.rows {
		a.TextPropertiesLinearAnimation(i, isDown, percent)
	}
}

// Rows returns the current records. Callers must not modify them.
func (a *TextAnimator) Rows() []RowStyle { return a.rows }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
