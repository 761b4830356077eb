// Package calendar converts between solar (Gregorian) and lunar
// (Chinese lunisolar) dates for the years 1900 through 2100.
//
// Lunar month lengths and leap months come from an embedded table; they are
// astronomical facts without a closed formula. Solar arithmetic uses
// proleptic Gregorian day numbers. All arithmetic is integer.
//
// Conversions never fail: out-of-range input is clamped to the nearest
// representable date so a picker always has something to show. The only
// error path is LunarMaxDay, whose leap-month precondition is checked.
package calendar

import (
	stderrors "errors"
	"fmt"

	"github.com/go-drift/picker/pkg/errors"
)

// Supported year range.
const (
	MinYear uint32 = 1900
	MaxYear uint32 = 2100
)

var (
	// ErrNoLeapMonth is returned when a leap month is requested for a year
	// whose leap month differs or does not exist.
	ErrNoLeapMonth = stderrors.New("calendar: no such leap month")
	// ErrOutOfRange is returned for years or months outside the table.
	ErrOutOfRange = stderrors.New("calendar: out of range")
)

// Date is a solar (Gregorian) date.
type Date struct {
	Year  uint32
	Month uint32
	Day   uint32
}

// LunarDate is a date in the lunisolar calendar.
type LunarDate struct {
	Year        uint32
	Month       uint32
	IsLeapMonth bool
	Day         uint32
}

// lunarEpoch is the solar date of lunar 1900-01-01, offset 0 of the table.
var lunarEpoch = Date{Year: 1900, Month: 1, Day: 31}

// Representable solar bounds.
var (
	MinDate = lunarEpoch
	MaxDate = Date{Year: MaxYear, Month: 12, Day: 31}
)

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d LunarDate) String() string {
	if d.IsLeapMonth {
		return fmt.Sprintf("%04d-L%02d-%02d", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate parses "YYYY-MM-DD". The result is not normalized.
func ParseDate(s string) (Date, error) {
	var y, m, d uint32
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &y, &m, &d); err != nil {
		return Date{}, fmt.Errorf("calendar: parse %q: %w", s, err)
	}
	return Date{Year: y, Month: m, Day: d}, nil
}

// Compare returns -1, 0 or +1 ordering a against b.
func Compare(a, b Date) int {
	switch {
	case a.Year != b.Year:
		return cmpUint(a.Year, b.Year)
	case a.Month != b.Month:
		return cmpUint(a.Month, b.Month)
	default:
		return cmpUint(a.Day, b.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return Compare(d, o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return Compare(d, o) > 0 }

func cmpUint(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year uint32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MaxDay returns the number of days in a solar month, or 0 for an invalid month.
func MaxDay(year, month uint32) uint32 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// Normalize clamps year, month and day into valid ranges.
func Normalize(d Date) Date {
	d.Year = clampUint(d.Year, MinYear, MaxYear)
	d.Month = clampUint(d.Month, 1, 12)
	d.Day = clampUint(d.Day, 1, MaxDay(d.Year, d.Month))
	return d
}

// Clamp normalizes d and limits it to [lo, hi].
func Clamp(d, lo, hi Date) Date {
	d = Normalize(d)
	if d.Before(lo) {
		return lo
	}
	if d.After(hi) {
		return hi
	}
	return d
}

// AddDays returns d moved by n days.
func AddDays(d Date, n int) Date {
	return fromDayNumber(dayNumber(Normalize(d)) + n)
}

// DaysBetween returns the number of days from a to b.
func DaysBetween(a, b Date) int {
	return dayNumber(Normalize(b)) - dayNumber(Normalize(a))
}

func clampUint(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// dayNumber returns days since 1970-01-01 for a proleptic Gregorian date.
func dayNumber(d Date) int {
	y, m, day := int(d.Year), int(d.Month), int(d.Day)
	if m <= 2 {
		y--
	}
	era := y / 400
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func fromDayNumber(n int) Date {
	z := n + 719468
	era := z / 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return Date{Year: uint32(y), Month: uint32(m), Day: uint32(day)}
}

func inTable(year uint32) bool {
	return year >= MinYear && year <= MaxYear
}

// LeapMonth returns the leap month of a lunar year. ok is false when the
// year has no leap month or is outside the table.
func LeapMonth(year uint32) (month uint32, ok bool) {
	if !inTable(year) {
		return 0, false
	}
	month = lunarInfo[year-MinYear] & 0xf
	return month, month != 0
}

func leapMonthDays(year uint32) uint32 {
	if _, ok := LeapMonth(year); !ok {
		return 0
	}
	if lunarInfo[year-MinYear]&0x10000 != 0 {
		return 30
	}
	return 29
}

func regularMonthDays(year, month uint32) uint32 {
	if lunarInfo[year-MinYear]&(0x10000>>month) != 0 {
		return 30
	}
	return 29
}

// LunarYearDays returns the number of days in a lunar year, leap month included.
func LunarYearDays(year uint32) uint32 {
	if !inTable(year) {
		return 0
	}
	days := uint32(348)
	info := lunarInfo[year-MinYear]
	for bit := uint32(0x8000); bit > 0x8; bit >>= 1 {
		if info&bit != 0 {
			days++
		}
	}
	return days + leapMonthDays(year)
}

// LunarMonthCount returns 13 for years with a leap month, otherwise 12.
func LunarMonthCount(year uint32) uint32 {
	if _, ok := LeapMonth(year); ok {
		return 13
	}
	return 12
}

// LunarMaxDay returns 29 or 30. Requesting the leap variant of a month that
// is not the year's leap month is a precondition failure (ErrNoLeapMonth).
func LunarMaxDay(year, month uint32, isLeap bool) (uint32, error) {
	if !inTable(year) || month < 1 || month > 12 {
		return 0, errors.Wrap("calendar.LunarMaxDay", errors.KindCalendar,
			fmt.Errorf("%w: %d/%d", ErrOutOfRange, year, month))
	}
	if isLeap {
		if leap, ok := LeapMonth(year); !ok || leap != month {
			return 0, errors.Wrap("calendar.LunarMaxDay", errors.KindCalendar,
				fmt.Errorf("%w: %d/%d", ErrNoLeapMonth, year, month))
		}
		return leapMonthDays(year), nil
	}
	return regularMonthDays(year, month), nil
}

// NormalizeLunar clamps a lunar date into the table. A leap flag on a month
// that is not the year's leap month is dropped.
func NormalizeLunar(d LunarDate) LunarDate {
	d.Year = clampUint(d.Year, MinYear, MaxYear)
	d.Month = clampUint(d.Month, 1, 12)
	if leap, ok := LeapMonth(d.Year); d.IsLeapMonth && (!ok || leap != d.Month) {
		d.IsLeapMonth = false
	}
	maxDay, _ := LunarMaxDay(d.Year, d.Month, d.IsLeapMonth)
	d.Day = clampUint(d.Day, 1, maxDay)
	return d
}

// SolarToLunar converts a solar date. Dates outside the table clamp to its ends.
func SolarToLunar(d Date) LunarDate {
	d = Clamp(d, MinDate, MaxDate)
	offset := uint32(dayNumber(d) - dayNumber(lunarEpoch))

	year := MinYear
	for ; year < MaxYear; year++ {
		days := LunarYearDays(year)
		if offset < days {
			break
		}
		offset -= days
	}

	leap, hasLeap := LeapMonth(year)
	for month := uint32(1); month <= 12; month++ {
		days := regularMonthDays(year, month)
		if offset < days {
			return LunarDate{Year: year, Month: month, Day: offset + 1}
		}
		offset -= days
		if hasLeap && leap == month {
			days = leapMonthDays(year)
			if offset < days {
				return LunarDate{Year: year, Month: month, IsLeapMonth: true, Day: offset + 1}
			}
			offset -= days
		}
	}
	// Only reachable past the end of lunar 2100.
	last, _ := LunarMaxDay(MaxYear, 12, false)
	return LunarDate{Year: MaxYear, Month: 12, Day: last}
}

// LunarToSolar converts a lunar date. Invalid fields are normalized first.
func LunarToSolar(l LunarDate) Date {
	l = NormalizeLunar(l)
	offset := 0
	for year := MinYear; year < l.Year; year++ {
		offset += int(LunarYearDays(year))
	}
	leap, hasLeap := LeapMonth(l.Year)
	for month := uint32(1); month < l.Month; month++ {
		offset += int(regularMonthDays(l.Year, month))
		if hasLeap && leap == month {
			offset += int(leapMonthDays(l.Year))
		}
	}
	if l.IsLeapMonth {
		offset += int(regularMonthDays(l.Year, l.Month))
	}
	offset += int(l.Day) - 1
	return fromDayNumber(dayNumber(lunarEpoch) + offset)
}
