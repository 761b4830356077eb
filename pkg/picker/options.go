package picker

import "fmt"

// ColumnKey is the stable identity of a column. Option lists are looked up
// by it; it never implies ownership.
type ColumnKey int

// Column keys used by DatePicker.
const (
	ColumnYear ColumnKey = iota
	ColumnMonth
	ColumnDay
	ColumnMonthDay
)

func (k ColumnKey) String() string {
	switch k {
	case ColumnYear:
		return "year"
	case ColumnMonth:
		return "month"
	case ColumnDay:
		return "day"
	case ColumnMonthDay:
		return "monthDay"
	default:
		return fmt.Sprintf("column%d", int(k))
	}
}

// OptionKind tags the variant held by an OptionValue.
type OptionKind uint8

const (
	OptionNone OptionKind = iota
	OptionYear
	OptionMonth
	OptionDay
	OptionMonthDay
)

// OptionValue is one selectable entry of a column. The zero value is the
// empty option returned for out-of-range reads.
type OptionValue struct {
	kind  OptionKind
	year  uint32
	month uint32
	day   uint32
	lunar bool
	leap  bool
}

// YearOption returns a year entry.
func YearOption(year uint32) OptionValue {
	return OptionValue{kind: OptionYear, year: year}
}

// MonthOption returns a month entry. leap marks the intercalary variant of
// a lunar month.
func MonthOption(month uint32, lunar, leap bool) OptionValue {
	return OptionValue{kind: OptionMonth, month: month, lunar: lunar, leap: lunar && leap}
}

// DayOption returns a day-of-month entry.
func DayOption(day uint32, lunar bool) OptionValue {
	return OptionValue{kind: OptionDay, day: day, lunar: lunar}
}

// MonthDayOption returns a combined month and day entry.
func MonthDayOption(month, day uint32, lunar, leap bool) OptionValue {
	return OptionValue{kind: OptionMonthDay, month: month, day: day, lunar: lunar, leap: lunar && leap}
}

func (o OptionValue) Kind() OptionKind { return o.kind }
func (o OptionValue) Year() uint32     { return o.year }
func (o OptionValue) Month() uint32    { return o.month }
func (o OptionValue) Day() uint32      { return o.day }
func (o OptionValue) IsLunar() bool    { return o.lunar }
func (o OptionValue) IsLeap() bool     { return o.leap }
func (o OptionValue) IsZero() bool     { return o.kind == OptionNone }

func (o OptionValue) String() string {
	leap := ""
	if o.leap {
		leap = "L"
	}
	switch o.kind {
	case OptionYear:
		return fmt.Sprintf("Y%d", o.year)
	case OptionMonth:
		return fmt.Sprintf("M%s%d", leap, o.month)
	case OptionDay:
		return fmt.Sprintf("D%d", o.day)
	case OptionMonthDay:
		return fmt.Sprintf("M%s%d/D%d", leap, o.month, o.day)
	default:
		return "-"
	}
}

// OptionModel holds the option sequences of a column and its selected
// index. Sequences are replaced wholesale, never patched.
type OptionModel struct {
	options map[ColumnKey][]OptionValue
	current uint32
	loop    bool
}

// NewOptionModel returns an empty model. loop selects circular addressing.
func NewOptionModel(loop bool) *OptionModel {
	return &OptionModel{
		options: make(map[ColumnKey][]OptionValue),
		loop:    loop,
	}
}

// Loop reports whether addressing is circular.
func (m *OptionModel) Loop() bool { return m.loop }

// SetLoop switches between circular and clamped addressing.
func (m *OptionModel) SetLoop(loop bool) { m.loop = loop }

// SetOptions replaces the sequence for key and clamps the current index.
func (m *OptionModel) SetOptions(key ColumnKey, opts []OptionValue) {
	seq := make([]OptionValue, len(opts))
	copy(seq, opts)
	m.options[key] = seq
	if n := uint32(len(seq)); n == 0 {
		m.current = 0
	} else if m.current >= n {
		m.current = n - 1
	}
}

// Options returns the sequence for key. Callers must not modify it.
func (m *OptionModel) Options(key ColumnKey) []OptionValue {
	return m.options[key]
}

// Len returns the number of options for key.
func (m *OptionModel) Len(key ColumnKey) uint32 {
	return uint32(len(m.options[key]))
}

// Option returns the option at index, or the empty option and false when
// index is out of range.
func (m *OptionModel) Option(key ColumnKey, index uint32) (OptionValue, bool) {
	seq := m.options[key]
	if index >= uint32(len(seq)) {
		return OptionValue{}, false
	}
	return seq[index], true
}

// CurrentIndex returns the selected index.
func (m *OptionModel) CurrentIndex() uint32 { return m.current }

// SetCurrentIndex selects index, clamped to the sequence of key.
func (m *OptionModel) SetCurrentIndex(key ColumnKey, index uint32) {
	n := m.Len(key)
	switch {
	case n == 0:
		m.current = 0
	case index >= n:
		m.current = n - 1
	default:
		m.current = index
	}
}

// Resolve maps a relative position (selected index + offset) to an
// absolute index. With loop it wraps; otherwise ok is false outside range.
func (m *OptionModel) Resolve(key ColumnKey, offset int) (index uint32, ok bool) {
	n := int64(m.Len(key))
	if n == 0 {
		return 0, false
	}
	pos := int64(m.current) + int64(offset)
	if m.loop {
		return uint32((pos%n + n) % n), true
	}
	if pos < 0 || pos >= n {
		return 0, false
	}
	return uint32(pos), true
}

// IndexOf returns the position of the first option matching pred.
func (m *OptionModel) IndexOf(key ColumnKey, pred func(OptionValue) bool) (uint32, bool) {
	for i, o := range m.options[key] {
		if pred(o) {
			return uint32(i), true
		}
	}
	return 0, false
}

// CalcScrollIndex returns the index step rows away from current. Loop
// columns wrap modularly; bounded columns clamp to [0, total-1]. A zero
// total returns current unchanged.
func CalcScrollIndex(total, current uint32, canLoop bool, step int) uint32 {
	if total == 0 {
		return current
	}
	t := int64(total)
	next := int64(current) + int64(step)
	if canLoop {
		return uint32((next%t + t) % t)
	}
	if next < 0 {
		return 0
	}
	if next >= t {
		return total - 1
	}
	return uint32(next)
}
