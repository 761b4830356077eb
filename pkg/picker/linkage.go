package picker

import "github.com/go-drift/picker/pkg/calendar"

// ymd is a date in the active calendar. leap is only ever set for lunar
// dates.
type ymd struct {
	year, month, day uint32
	leap             bool
}

// ord orders months within a year; a leap month sorts right after its
// regular namesake.
func (d ymd) ord() uint32 {
	o := d.month * 2
	if d.leap {
		o++
	}
	return o
}

func compareYMD(a, b ymd) int {
	switch {
	case a.year != b.year:
		return cmp(a.year, b.year)
	case a.ord() != b.ord():
		return cmp(a.ord(), b.ord())
	default:
		return cmp(a.day, b.day)
	}
}

func cmp(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

type monthEntry struct {
	month uint32
	leap  bool
}

// calendarRules answers month and day questions for the solar or lunar
// calendar.
type calendarRules struct {
	lunar bool
}

func (r calendarRules) fromSolar(d calendar.Date) ymd {
	if !r.lunar {
		return ymd{year: d.Year, month: d.Month, day: d.Day}
	}
	l := calendar.SolarToLunar(d)
	return ymd{year: l.Year, month: l.Month, day: l.Day, leap: l.IsLeapMonth}
}

func (r calendarRules) toSolar(d ymd) calendar.Date {
	if !r.lunar {
		return calendar.Normalize(calendar.Date{Year: d.year, Month: d.month, Day: d.day})
	}
	return calendar.LunarToSolar(calendar.LunarDate{Year: d.year, Month: d.month, IsLeapMonth: d.leap, Day: d.day})
}

func (r calendarRules) maxDay(year, month uint32, leap bool) uint32 {
	if !r.lunar {
		return calendar.MaxDay(year, month)
	}
	n, err := calendar.LunarMaxDay(year, month, leap)
	if err != nil {
		n, _ = calendar.LunarMaxDay(year, month, false)
	}
	return n
}

// months lists the months of year in order. A lunar leap month L appears
// right after month L.
func (r calendarRules) months(year uint32) []monthEntry {
	out := make([]monthEntry, 0, 13)
	leap, hasLeap := uint32(0), false
	if r.lunar {
		leap, hasLeap = calendar.LeapMonth(year)
	}
	for m := uint32(1); m <= 12; m++ {
		out = append(out, monthEntry{month: m})
		if hasLeap && m == leap {
			out = append(out, monthEntry{month: m, leap: true})
		}
	}
	return out
}

// fix drops a leap flag the year does not support and clamps the day.
func (r calendarRules) fix(d ymd) ymd {
	if d.leap {
		if l, ok := calendar.LeapMonth(d.year); !r.lunar || !ok || l != d.month {
			d.leap = false
		}
	}
	if d.month < 1 {
		d.month = 1
	} else if d.month > 12 {
		d.month = 12
	}
	if n := r.maxDay(d.year, d.month, d.leap); d.day > n {
		d.day = n
	}
	if d.day < 1 {
		d.day = 1
	}
	return d
}

// span is the selectable range in the active calendar.
type span struct {
	lo, hi ymd
}

func (s span) clamp(d ymd) ymd {
	if compareYMD(d, s.lo) < 0 {
		return s.lo
	}
	if compareYMD(d, s.hi) > 0 {
		return s.hi
	}
	return d
}

func (s span) monthInRange(year uint32, e monthEntry) bool {
	first := ymd{year: year, month: e.month, leap: e.leap, day: 1}
	last := ymd{year: year, month: e.month, leap: e.leap, day: 31}
	return compareYMD(last, s.lo) >= 0 && compareYMD(first, s.hi) <= 0
}

func (s span) dayInRange(d ymd) bool {
	return compareYMD(d, s.lo) >= 0 && compareYMD(d, s.hi) <= 0
}

// wrapYear steps year by delta inside [lo.year, hi.year], wrapping at the
// ends.
func (s span) wrapYear(year uint32, delta int) uint32 {
	switch {
	case delta > 0 && year >= s.hi.year:
		return s.lo.year
	case delta < 0 && year <= s.lo.year:
		return s.hi.year
	case delta > 0:
		return year + 1
	case delta < 0:
		return year - 1
	}
	return year
}

func (p *DatePicker) yearOptions() []OptionValue {
	opts := make([]OptionValue, 0, p.span.hi.year-p.span.lo.year+1)
	for y := p.span.lo.year; y <= p.span.hi.year; y++ {
		opts = append(opts, YearOption(y))
	}
	return opts
}

func (p *DatePicker) monthEntries(year uint32) []monthEntry {
	all := p.rules.months(year)
	out := all[:0:0]
	for _, e := range all {
		if p.span.monthInRange(year, e) {
			out = append(out, e)
		}
	}
	return out
}

func (p *DatePicker) monthOptions(year uint32) []OptionValue {
	entries := p.monthEntries(year)
	opts := make([]OptionValue, len(entries))
	for i, e := range entries {
		opts[i] = MonthOption(e.month, p.rules.lunar, e.leap)
	}
	return opts
}

func (p *DatePicker) dayOptions(year, month uint32, leap bool) []OptionValue {
	n := p.rules.maxDay(year, month, leap)
	opts := make([]OptionValue, 0, n)
	for d := uint32(1); d <= n; d++ {
		if p.span.dayInRange(ymd{year: year, month: month, leap: leap, day: d}) {
			opts = append(opts, DayOption(d, p.rules.lunar))
		}
	}
	return opts
}

func (p *DatePicker) monthDayOptions(year uint32) []OptionValue {
	var opts []OptionValue
	for _, e := range p.monthEntries(year) {
		n := p.rules.maxDay(year, e.month, e.leap)
		for d := uint32(1); d <= n; d++ {
			if p.span.dayInRange(ymd{year: year, month: e.month, leap: e.leap, day: d}) {
				opts = append(opts, MonthDayOption(e.month, d, p.rules.lunar, e.leap))
			}
		}
	}
	return opts
}

func indexOf(opts []OptionValue, match func(OptionValue) bool) uint32 {
	for i, o := range opts {
		if match(o) {
			return uint32(i)
		}
	}
	return 0
}

// settle normalizes the working date, clamps it into range, and rebuilds
// every column from it. skip names a column whose index already reflects
// the selection and must not be rebuilt.
func (p *DatePicker) settle(skip ColumnKey) {
	p.cur = p.span.clamp(p.rules.fix(p.cur))
	cur := p.cur

	if p.year != nil && skip != ColumnYear {
		opts := p.yearOptions()
		p.year.ReplaceOptions(opts, cur.year-p.span.lo.year)
	}
	if p.mode == ModeMonthDay {
		if skip != ColumnMonthDay {
			opts := p.monthDayOptions(cur.year)
			p.monthDay.ReplaceOptions(opts, indexOf(opts, func(o OptionValue) bool {
				return o.Month() == cur.month && o.IsLeap() == cur.leap && o.Day() == cur.day
			}))
		}
		return
	}
	if skip != ColumnMonth {
		opts := p.monthOptions(cur.year)
		p.month.ReplaceOptions(opts, indexOf(opts, func(o OptionValue) bool {
			return o.Month() == cur.month && o.IsLeap() == cur.leap
		}))
	}
	if skip != ColumnDay {
		opts := p.dayOptions(cur.year, cur.month, cur.leap)
		p.day.ReplaceOptions(opts, indexOf(opts, func(o OptionValue) bool {
			return o.Day() == cur.day
		}))
	}
}

// handleColumnChange applies the linkage rules for a column index change.
func (p *DatePicker) handleColumnChange(key ColumnKey, isAdd bool, index uint32, notify bool) {
	switch key {
	case ColumnYear:
		opt, ok := p.year.Option(index)
		if !ok {
			return
		}
		p.cur.year = opt.Year()
		p.settle(ColumnYear)

	case ColumnMonth:
		opt, ok := p.month.Option(index)
		if !ok {
			return
		}
		if wrapped(p.month, isAdd, index) {
			p.rollYear(isAdd, func(year uint32) {
				entries := p.monthEntries(year)
				if len(entries) == 0 {
					return
				}
				e := entries[0]
				if !isAdd {
					e = entries[len(entries)-1]
				}
				p.cur.month, p.cur.leap = e.month, e.leap
			})
			p.settle(noColumn)
		} else {
			p.cur.month, p.cur.leap = opt.Month(), opt.IsLeap()
			p.settle(ColumnMonth)
		}

	case ColumnDay:
		opt, ok := p.day.Option(index)
		if !ok {
			return
		}
		p.cur.day = opt.Day()
		p.settle(ColumnDay)

	case ColumnMonthDay:
		opt, ok := p.monthDay.Option(index)
		if !ok {
			return
		}
		if wrapped(p.monthDay, isAdd, index) {
			p.rollYear(isAdd, func(year uint32) {
				opts := p.monthDayOptions(year)
				if len(opts) == 0 {
					return
				}
				o := opts[0]
				if !isAdd {
					o = opts[len(opts)-1]
				}
				p.cur.month, p.cur.leap, p.cur.day = o.Month(), o.IsLeap(), o.Day()
			})
			p.settle(noColumn)
		} else {
			p.cur.month, p.cur.leap, p.cur.day = opt.Month(), opt.IsLeap(), opt.Day()
			p.settle(ColumnMonthDay)
		}
	}
	p.selectionChanged(notify)
}

// noColumn rebuilds every column in settle.
const noColumn ColumnKey = -1

// wrapped reports whether a loop column just passed its end.
func wrapped(c *Column, isAdd bool, index uint32) bool {
	n := c.OptionCount()
	if !c.CanLoop() || n < 2 {
		return false
	}
	if isAdd {
		return index == 0
	}
	return index == n-1
}

func (p *DatePicker) rollYear(isAdd bool, pick func(year uint32)) {
	delta := -1
	if isAdd {
		delta = 1
	}
	p.cur.year = p.span.wrapYear(p.cur.year, delta)
	pick(p.cur.year)
}
