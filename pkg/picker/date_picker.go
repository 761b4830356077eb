// Package picker implements scrollable picker columns and the date picker
// that links them.
//
// A [Column] turns pointer drags into discrete index changes. Every full row
// of travel moves the selection one step; a fast release flings the column
// on a spring until it settles on a row boundary, and a slow release snaps
// to the nearest row. Columns can loop or stop at their ends.
//
// A [DatePicker] owns year, month and day columns (or year and month-day
// columns) and keeps them consistent: month lists depend on the year,
// day lists on the month, and a looping month column rolls the year over.
// It works in the solar or the lunar calendar.
//
// Motion is frame driven. The host calls animation.StepTickers once per
// frame; nothing here spawns goroutines.
package picker

import (
	"fmt"
	"time"

	"github.com/go-drift/picker/pkg/animation"
	"github.com/go-drift/picker/pkg/calendar"
	"github.com/go-drift/picker/pkg/errors"
	"github.com/go-drift/picker/pkg/haptics"
	"github.com/go-drift/picker/pkg/locale"
	"github.com/go-drift/picker/pkg/theme"
)

// Mode selects the column layout of a DatePicker.
type Mode int

const (
	// ModeDate shows year, month and day columns.
	ModeDate Mode = iota
	// ModeMonthDay shows a year column and one combined month-day column.
	ModeMonthDay
)

func (m Mode) String() string {
	if m == ModeMonthDay {
		return "month-day"
	}
	return "date"
}

// ParseMode accepts "date" and "month-day".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "date":
		return ModeDate, nil
	case "month-day", "monthday":
		return ModeMonthDay, nil
	}
	return ModeDate, fmt.Errorf("picker: unknown mode %q", s)
}

// Default selectable range.
var (
	DefaultStart = calendar.Date{Year: 1970, Month: 1, Day: 1}
	DefaultEnd   = calendar.Date{Year: 2100, Month: 12, Day: 31}
)

// Config configures a DatePicker. Zero values select defaults.
type Config struct {
	Start, End calendar.Date
	Selected   calendar.Date
	Lunar      bool
	Mode       Mode
	ShowCount  int
	// CanLoop makes month and day columns wrap. Year columns never wrap.
	CanLoop bool
	Theme   *theme.ThemeData
	// Locale is a BCP 47 tag for labels and column order.
	Locale string

	Haptics haptics.Factory
	// HapticEffect names the requested effect. Empty means
	// haptics.EffectSlide.
	HapticEffect   string
	HapticGate     haptics.Gate
	HapticsEnabled bool

	Toss         TossConfig
	SnapDuration time.Duration
}

// DatePicker links date columns and tracks the selected date.
type DatePicker struct {
	mode  Mode
	rules calendarRules
	start calendar.Date
	end   calendar.Date
	span  span
	cur   ymd

	year, month, day, monthDay *Column
	columns                    []*Column
	haptic                     haptics.Coordinator

	formats *locale.FormatCache
	theme   *theme.ThemeData

	hour, minute uint32
	lastNotified calendar.Date
	onChange     func(calendar.Date)
	onScrollEnd  func(calendar.Date)
}

// New builds a date picker. A malformed range falls back to the default
// range; the selection is clamped into it.
func New(cfg Config) *DatePicker {
	th := cfg.Theme
	if th == nil {
		th = theme.DefaultLightTheme()
	}
	p := &DatePicker{
		mode:    cfg.Mode,
		rules:   calendarRules{lunar: cfg.Lunar},
		formats: locale.NewFormatCache(cfg.Locale),
		theme:   th,
	}
	now := animation.Now()
	p.hour, p.minute = uint32(now.Hour()), uint32(now.Minute())

	effect := cfg.HapticEffect
	if effect == "" {
		effect = haptics.EffectSlide
	}
	p.haptic = haptics.Request(cfg.Haptics, effect, cfg.HapticGate)
	base := ColumnConfig{
		Kind:           DateColumn,
		ShowCount:      cfg.ShowCount,
		Theme:          th.PickerThemeOf(),
		Haptics:        p.haptic,
		HapticsEnabled: cfg.HapticsEnabled,
		Toss:           cfg.Toss,
		SnapDuration:   cfg.SnapDuration,
	}
	newColumn := func(key ColumnKey, loop bool) *Column {
		c := base
		c.Key = key
		c.CanLoop = loop
		col := NewColumn(c)
		col.OnChange(p.onColumnChange)
		col.OnScrollEnd(p.onColumnScrollEnd)
		return col
	}
	p.year = newColumn(ColumnYear, false)
	if p.mode == ModeMonthDay {
		p.monthDay = newColumn(ColumnMonthDay, cfg.CanLoop)
	} else {
		p.month = newColumn(ColumnMonth, cfg.CanLoop)
		p.day = newColumn(ColumnDay, cfg.CanLoop)
	}
	p.orderColumns()

	selected := cfg.Selected
	if selected == (calendar.Date{}) {
		selected = calendar.Date{Year: uint32(now.Year()), Month: uint32(now.Month()), Day: uint32(now.Day())}
	}
	p.applyRange(cfg.Start, cfg.End)
	p.cur = p.rules.fromSolar(calendar.Clamp(selected, p.start, p.end))
	p.settle(noColumn)
	p.lastNotified = p.Selected()
	return p
}

// orderColumns arranges columns in the locale's conventional order.
func (p *DatePicker) orderColumns() {
	if p.mode == ModeMonthDay {
		if y, m, _, ok := locale.FieldIndices(locale.DateOrder(p.formats.Locale().String())); ok && m < y {
			p.columns = []*Column{p.monthDay, p.year}
		} else {
			p.columns = []*Column{p.year, p.monthDay}
		}
		return
	}
	y, m, d, ok := locale.FieldIndices(locale.DateOrder(p.formats.Locale().String()))
	if !ok {
		y, m, d = 0, 1, 2
	}
	cols := make([]*Column, 3)
	cols[y], cols[m], cols[d] = p.year, p.month, p.day
	p.columns = cols
}

func validDate(d calendar.Date) bool {
	return calendar.Normalize(d) == d &&
		!d.Before(calendar.MinDate) && !d.After(calendar.MaxDate)
}

func (p *DatePicker) applyRange(start, end calendar.Date) {
	if !validDate(start) || !validDate(end) || start.After(end) {
		start, end = DefaultStart, DefaultEnd
	}
	p.start, p.end = start, end
	p.span = span{lo: p.rules.fromSolar(start), hi: p.rules.fromSolar(end)}
}

// Columns returns the columns in display order.
func (p *DatePicker) Columns() []*Column { return p.columns }

// Column returns the column for key, or nil when the mode has none.
func (p *DatePicker) Column(key ColumnKey) *Column {
	switch key {
	case ColumnYear:
		return p.year
	case ColumnMonth:
		return p.month
	case ColumnDay:
		return p.day
	case ColumnMonthDay:
		return p.monthDay
	}
	return nil
}

// Mode returns the column layout.
func (p *DatePicker) Mode() Mode { return p.mode }

// Selected returns the selected solar date.
func (p *DatePicker) Selected() calendar.Date { return p.rules.toSolar(p.cur) }

// SelectedLunar returns the selected date in the lunar calendar.
func (p *DatePicker) SelectedLunar() calendar.LunarDate {
	if p.rules.lunar {
		return calendar.LunarDate{Year: p.cur.year, Month: p.cur.month, IsLeapMonth: p.cur.leap, Day: p.cur.day}
	}
	return calendar.SolarToLunar(p.Selected())
}

// SetSelected selects a solar date, clamped to the range, without
// notifying observers.
func (p *DatePicker) SetSelected(d calendar.Date) {
	p.cur = p.rules.fromSolar(calendar.Clamp(d, p.start, p.end))
	p.resetColumns()
	p.settle(noColumn)
	p.lastNotified = p.Selected()
}

// IsLunar reports whether columns show lunar dates.
func (p *DatePicker) IsLunar() bool { return p.rules.lunar }

// SetLunar switches calendars, keeping the selected solar date.
func (p *DatePicker) SetLunar(lunar bool) {
	if lunar == p.rules.lunar {
		return
	}
	selected := p.Selected()
	p.rules = calendarRules{lunar: lunar}
	p.applyRange(p.start, p.end)
	p.cur = p.rules.fromSolar(selected)
	p.resetColumns()
	p.settle(noColumn)
}

// Range returns the selectable solar range.
func (p *DatePicker) Range() (start, end calendar.Date) { return p.start, p.end }

// SetRange replaces the selectable range. A malformed range (start after
// end, or a date outside the calendar table) selects the default range.
func (p *DatePicker) SetRange(start, end calendar.Date) {
	selected := p.Selected()
	p.applyRange(start, end)
	p.cur = p.rules.fromSolar(calendar.Clamp(selected, p.start, p.end))
	p.resetColumns()
	p.settle(noColumn)
}

// SetTime sets the hour and minute reported by Snapshot.
func (p *DatePicker) SetTime(hour, minute uint32) {
	p.hour, p.minute = hour%24, minute%60
}

// Time returns the hour and minute reported by Snapshot.
func (p *DatePicker) Time() (hour, minute uint32) { return p.hour, p.minute }

// SetLocale switches label locale and column order.
func (p *DatePicker) SetLocale(tag string) {
	p.formats.SetLocale(tag)
	p.orderColumns()
}

// Locale returns the active locale tag.
func (p *DatePicker) Locale() string { return p.formats.Locale().String() }

// SetTheme restyles every column.
func (p *DatePicker) SetTheme(t *theme.ThemeData) {
	if t == nil {
		return
	}
	p.theme = t
	for _, c := range p.columns {
		c.SetTheme(t.PickerThemeOf())
	}
}

// Theme returns the active theme.
func (p *DatePicker) Theme() *theme.ThemeData { return p.theme }

// Format renders an option in the active locale.
func (p *DatePicker) Format(o OptionValue) string {
	switch o.Kind() {
	case OptionYear:
		return p.formats.Year(o.Year(), p.rules.lunar)
	case OptionMonth:
		return p.formats.Month(o.Month(), o.IsLunar(), o.IsLeap())
	case OptionDay:
		return p.formats.Day(o.Day(), o.IsLunar())
	case OptionMonthDay:
		return p.formats.Month(o.Month(), o.IsLunar(), o.IsLeap()) + " " + p.formats.Day(o.Day(), o.IsLunar())
	}
	return ""
}

// DisplayText renders the option at index of a column, or "" when the
// column or index does not exist.
func (p *DatePicker) DisplayText(key ColumnKey, index uint32) string {
	c := p.Column(key)
	if c == nil {
		return ""
	}
	o, ok := c.Option(index)
	if !ok {
		return ""
	}
	return p.Format(o)
}

// OnChange registers a callback for user-visible selection changes.
func (p *DatePicker) OnChange(fn func(calendar.Date)) { p.onChange = fn }

// OnScrollEnd registers a callback fired when a column comes to rest.
func (p *DatePicker) OnScrollEnd(fn func(calendar.Date)) { p.onScrollEnd = fn }

// Semantics describes every column in display order.
func (p *DatePicker) Semantics() []ColumnSemantics {
	out := make([]ColumnSemantics, len(p.columns))
	for i, c := range p.columns {
		out[i] = c.Semantics(c.Key().String(), p.Format)
	}
	return out
}

// OnWindowHide stops haptic playback on every column.
func (p *DatePicker) OnWindowHide() {
	for _, c := range p.columns {
		c.OnWindowHide()
	}
}

// OnWindowShow re-enables haptic playback.
func (p *DatePicker) OnWindowShow() {
	for _, c := range p.columns {
		c.OnWindowShow()
	}
}

// Detach stops all motion and drops callbacks.
func (p *DatePicker) Detach() {
	for _, c := range p.columns {
		c.Detach()
	}
	p.onChange = nil
	p.onScrollEnd = nil
}

// IsScrolling reports whether any column is in motion.
func (p *DatePicker) IsScrolling() bool {
	for _, c := range p.columns {
		if c.Status() != StatusIdle {
			return true
		}
	}
	return false
}

func (p *DatePicker) resetColumns() {
	for _, c := range p.columns {
		c.cancelMotion()
		c.yOffset = 0
		c.status = StatusIdle
	}
}

func (p *DatePicker) onColumnChange(key ColumnKey, isAdd bool, index uint32, notify bool) {
	defer errors.Recover("picker.DatePicker.onColumnChange")
	p.handleColumnChange(key, isAdd, index, notify)
}

func (p *DatePicker) onColumnScrollEnd(ColumnKey) {
	defer errors.Recover("picker.DatePicker.onColumnScrollEnd")
	p.selectionChanged(true)
	if p.onScrollEnd != nil {
		p.onScrollEnd(p.Selected())
	}
}

func (p *DatePicker) selectionChanged(notify bool) {
	if !notify {
		return
	}
	d := p.Selected()
	if d == p.lastNotified {
		return
	}
	p.lastNotified = d
	if p.onChange != nil {
		p.onChange(d)
	}
}
