package picker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/picker/pkg/calendar"
	"github.com/go-drift/picker/pkg/haptics"
	"github.com/go-drift/picker/pkg/pickertest"
)

func newTestPicker(t *testing.T, cfg Config) *DatePicker {
	t.Helper()
	pickertest.InstallClock(t)
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	return New(cfg)
}

func TestDatePickerInitialColumns(t *testing.T) {
	p := newTestPicker(t, Config{Selected: calendar.Date{Year: 2000, Month: 12, Day: 31}})

	assert.Equal(t, calendar.Date{Year: 2000, Month: 12, Day: 31}, p.Selected())
	assert.Equal(t, uint32(2100-1970+1), p.Column(ColumnYear).OptionCount())
	assert.Equal(t, uint32(2000-1970), p.Column(ColumnYear).CurrentIndex())
	assert.Equal(t, uint32(12), p.Column(ColumnMonth).OptionCount())
	assert.Equal(t, uint32(11), p.Column(ColumnMonth).CurrentIndex())
	assert.Equal(t, uint32(31), p.Column(ColumnDay).OptionCount())
	assert.Equal(t, uint32(30), p.Column(ColumnDay).CurrentIndex())
	assert.Nil(t, p.Column(ColumnMonthDay))
}

func TestDatePickerMonthRollsYearForward(t *testing.T) {
	p := newTestPicker(t, Config{Selected: calendar.Date{Year: 2000, Month: 12, Day: 31}, CanLoop: true})
	var got []calendar.Date
	p.OnChange(func(d calendar.Date) { got = append(got, d) })

	require.True(t, p.Column(ColumnMonth).InnerHandleScroll(true, false, false))

	assert.Equal(t, calendar.Date{Year: 2001, Month: 1, Day: 31}, p.Selected())
	assert.Equal(t, uint32(2001-1970), p.Column(ColumnYear).CurrentIndex())
	assert.Equal(t, uint32(0), p.Column(ColumnMonth).CurrentIndex())
	assert.Equal(t, []calendar.Date{{Year: 2001, Month: 1, Day: 31}}, got)
}

func TestDatePickerMonthRollsYearBackward(t *testing.T) {
	p := newTestPicker(t, Config{Selected: calendar.Date{Year: 2001, Month: 1, Day: 15}, CanLoop: true})

	p.Column(ColumnMonth).InnerHandleScroll(false, false, false)

	assert.Equal(t, calendar.Date{Year: 2000, Month: 12, Day: 15}, p.Selected())
}

func TestDatePickerMonthWrapsInsideYearRange(t *testing.T) {
	p := newTestPicker(t, Config{
		Start:    calendar.Date{Year: 1990, Month: 1, Day: 1},
		End:      calendar.Date{Year: 1995, Month: 12, Day: 31},
		Selected: calendar.Date{Year: 1995, Month: 12, Day: 3},
		CanLoop:  true,
	})

	p.Column(ColumnMonth).InnerHandleScroll(true, false, false)

	assert.Equal(t, calendar.Date{Year: 1990, Month: 1, Day: 3}, p.Selected())
}

func TestDatePickerYearChangeClampsDay(t *testing.T) {
	p := newTestPicker(t, Config{Selected: calendar.Date{Year: 2000, Month: 2, Day: 29}})

	require.True(t, p.Column(ColumnYear).InnerHandleScroll(false, false, false))

	assert.Equal(t, calendar.Date{Year: 1999, Month: 2, Day: 28}, p.Selected())
	assert.Equal(t, uint32(28), p.Column(ColumnDay).OptionCount())
	assert.Equal(t, uint32(27), p.Column(ColumnDay).CurrentIndex())
}

func TestDatePickerDayIsLeaf(t *testing.T) {
	p := newTestPicker(t, Config{Selected: calendar.Date{Year: 2000, Month: 1, Day: 31}, CanLoop: true})

	p.Column(ColumnDay).InnerHandleScroll(true, false, false)

	assert.Equal(t, calendar.Date{Year: 2000, Month: 1, Day: 1}, p.Selected())
	assert.Equal(t, uint32(0), p.Column(ColumnMonth).CurrentIndex())
}

func TestDatePickerLunarLeapMonthSequence(t *testing.T) {
	regular4 := calendar.LunarToSolar(calendar.LunarDate{Year: 2020, Month: 4, Day: 1})
	p := newTestPicker(t, Config{Selected: regular4, Lunar: true})
	month := p.Column(ColumnMonth)

	require.Equal(t, uint32(13), month.OptionCount())
	require.Equal(t, uint32(3), month.CurrentIndex())

	month.InnerHandleScroll(true, false, false)
	assert.Equal(t, calendar.LunarDate{Year: 2020, Month: 4, IsLeapMonth: true, Day: 1}, p.SelectedLunar())
	assert.Equal(t, uint32(29), p.Column(ColumnDay).OptionCount())

	month.InnerHandleScroll(true, false, false)
	assert.Equal(t, calendar.LunarDate{Year: 2020, Month: 5, Day: 1}, p.SelectedLunar())

	month.InnerHandleScroll(false, false, false)
	assert.Equal(t, calendar.LunarDate{Year: 2020, Month: 4, IsLeapMonth: true, Day: 1}, p.SelectedLunar())

	month.InnerHandleScroll(false, false, false)
	assert.Equal(t, calendar.LunarDate{Year: 2020, Month: 4, Day: 1}, p.SelectedLunar())
}

func TestDatePickerLunarLeapClampsDay(t *testing.T) {
	day30 := calendar.LunarToSolar(calendar.LunarDate{Year: 2020, Month: 4, Day: 30})
	p := newTestPicker(t, Config{Selected: day30, Lunar: true})

	p.Column(ColumnMonth).InnerHandleScroll(true, false, false)

	assert.Equal(t, calendar.LunarDate{Year: 2020, Month: 4, IsLeapMonth: true, Day: 29}, p.SelectedLunar())
}

func TestDatePickerLunarYearChangeDropsLeap(t *testing.T) {
	leap4 := calendar.LunarToSolar(calendar.LunarDate{Year: 2020, Month: 4, IsLeapMonth: true, Day: 1})
	p := newTestPicker(t, Config{Selected: leap4, Lunar: true})

	p.Column(ColumnYear).InnerHandleScroll(true, false, false)

	assert.Equal(t, calendar.LunarDate{Year: 2021, Month: 4, Day: 1}, p.SelectedLunar())
	assert.Equal(t, uint32(12), p.Column(ColumnMonth).OptionCount())
}

func TestDatePickerSetLunarKeepsSolarDate(t *testing.T) {
	d := calendar.Date{Year: 2020, Month: 6, Day: 1}
	p := newTestPicker(t, Config{Selected: d})

	p.SetLunar(true)
	assert.True(t, p.IsLunar())
	assert.Equal(t, d, p.Selected())
	assert.Equal(t, uint32(13), p.Column(ColumnMonth).OptionCount())
	opt, ok := p.Column(ColumnMonth).Selected()
	require.True(t, ok)
	assert.True(t, opt.IsLunar())

	p.SetLunar(false)
	assert.Equal(t, d, p.Selected())
	assert.Equal(t, uint32(12), p.Column(ColumnMonth).OptionCount())
}

func TestDatePickerRangeLimitsOptions(t *testing.T) {
	p := newTestPicker(t, Config{
		Start:    calendar.Date{Year: 2000, Month: 3, Day: 15},
		End:      calendar.Date{Year: 2001, Month: 10, Day: 10},
		Selected: calendar.Date{Year: 2000, Month: 3, Day: 20},
	})

	assert.Equal(t, uint32(2), p.Column(ColumnYear).OptionCount())
	assert.Equal(t, uint32(10), p.Column(ColumnMonth).OptionCount())
	assert.Equal(t, uint32(17), p.Column(ColumnDay).OptionCount())
	assert.Equal(t, uint32(5), p.Column(ColumnDay).CurrentIndex())

	p.SetSelected(calendar.Date{Year: 2000, Month: 12, Day: 20})
	p.Column(ColumnYear).InnerHandleScroll(true, false, false)
	assert.Equal(t, calendar.Date{Year: 2001, Month: 10, Day: 10}, p.Selected())
	assert.Equal(t, uint32(10), p.Column(ColumnMonth).OptionCount())
	assert.Equal(t, uint32(10), p.Column(ColumnDay).OptionCount())

	p.SetSelected(calendar.Date{Year: 1990, Month: 1, Day: 1})
	assert.Equal(t, calendar.Date{Year: 2000, Month: 3, Day: 15}, p.Selected())
}

func TestDatePickerMalformedRangeFallsBack(t *testing.T) {
	p := newTestPicker(t, Config{
		Start:    calendar.Date{Year: 2010, Month: 1, Day: 1},
		End:      calendar.Date{Year: 2000, Month: 1, Day: 1},
		Selected: calendar.Date{Year: 2005, Month: 5, Day: 5},
	})
	start, end := p.Range()
	assert.Equal(t, DefaultStart, start)
	assert.Equal(t, DefaultEnd, end)
	assert.Equal(t, calendar.Date{Year: 2005, Month: 5, Day: 5}, p.Selected())

	p.SetRange(calendar.Date{Year: 2001, Month: 2, Day: 30}, calendar.Date{Year: 2002, Month: 1, Day: 1})
	start, _ = p.Range()
	assert.Equal(t, DefaultStart, start)

	p.SetRange(calendar.Date{Year: 2006, Month: 1, Day: 1}, calendar.Date{Year: 2007, Month: 1, Day: 1})
	assert.Equal(t, calendar.Date{Year: 2006, Month: 1, Day: 1}, p.Selected())
}

func TestDatePickerMonthDayMode(t *testing.T) {
	p := newTestPicker(t, Config{
		Mode:     ModeMonthDay,
		Selected: calendar.Date{Year: 2024, Month: 12, Day: 31},
		CanLoop:  true,
	})
	md := p.Column(ColumnMonthDay)
	require.NotNil(t, md)
	assert.Nil(t, p.Column(ColumnMonth))
	assert.Len(t, p.Columns(), 2)
	assert.Equal(t, uint32(366), md.OptionCount())
	assert.Equal(t, uint32(365), md.CurrentIndex())

	md.InnerHandleScroll(true, false, false)
	assert.Equal(t, calendar.Date{Year: 2025, Month: 1, Day: 1}, p.Selected())
	assert.Equal(t, uint32(365), md.OptionCount())

	md.InnerHandleScroll(false, false, false)
	assert.Equal(t, calendar.Date{Year: 2024, Month: 12, Day: 31}, p.Selected())

	p.SetSelected(calendar.Date{Year: 2024, Month: 2, Day: 29})
	p.Column(ColumnYear).InnerHandleScroll(true, false, false)
	assert.Equal(t, calendar.Date{Year: 2025, Month: 2, Day: 28}, p.Selected())
}

func TestDatePickerColumnOrderFollowsLocale(t *testing.T) {
	keys := func(p *DatePicker) []ColumnKey {
		var out []ColumnKey
		for _, c := range p.Columns() {
			out = append(out, c.Key())
		}
		return out
	}
	p := newTestPicker(t, Config{Locale: "en-US", Selected: calendar.Date{Year: 2000, Month: 1, Day: 1}})
	assert.Equal(t, []ColumnKey{ColumnMonth, ColumnDay, ColumnYear}, keys(p))

	p.SetLocale("zh-CN")
	assert.Equal(t, []ColumnKey{ColumnYear, ColumnMonth, ColumnDay}, keys(p))

	p.SetLocale("de-DE")
	assert.Equal(t, []ColumnKey{ColumnDay, ColumnMonth, ColumnYear}, keys(p))
}

func TestDatePickerDisplayText(t *testing.T) {
	leap4 := calendar.LunarToSolar(calendar.LunarDate{Year: 2020, Month: 4, IsLeapMonth: true, Day: 1})
	p := newTestPicker(t, Config{Selected: leap4, Lunar: true, Locale: "zh-CN"})

	month := p.Column(ColumnMonth)
	assert.Equal(t, "闰四月", p.DisplayText(ColumnMonth, month.CurrentIndex()))
	assert.Equal(t, "初一", p.DisplayText(ColumnDay, 0))
	assert.Equal(t, "", p.DisplayText(ColumnDay, 99))
	assert.Equal(t, "", p.DisplayText(ColumnMonthDay, 0))

	p.SetLocale("en")
	p.SetLunar(false)
	assert.Equal(t, "Jun", p.DisplayText(ColumnMonth, 5))
	assert.Equal(t, "1970", p.DisplayText(ColumnYear, 0))
}

func TestDatePickerSnapshot(t *testing.T) {
	p := newTestPicker(t, Config{Selected: calendar.Date{Year: 2024, Month: 3, Day: 5}})
	p.SetTime(13, 7)

	s, err := p.SnapshotJSON(1)
	require.NoError(t, err)
	assert.Equal(t, `{"year":2024,"month":2,"day":5,"hour":13,"minute":7,"status":1}`, s)

	snap := p.Snapshot(NoStatus)
	assert.Equal(t, -1, snap.Status)
}

func TestDatePickerDragNotifiesOnce(t *testing.T) {
	clk := pickertest.InstallClock(t)
	rec := &pickertest.RecordingHaptics{}
	p := New(Config{
		Locale:         "en",
		Selected:       calendar.Date{Year: 2000, Month: 1, Day: 10},
		Haptics:        haptics.FactoryFunc(func(string) haptics.Coordinator { return rec }),
		HapticGate:     haptics.Gate{PlatformVersion: 12},
		HapticsEnabled: true,
	})
	var got []calendar.Date
	ends := 0
	p.OnChange(func(d calendar.Date) { got = append(got, d) })
	p.OnScrollEnd(func(calendar.Date) { ends++ })

	pickertest.Fling(clk, p.Column(ColumnDay), 400, -100, 50*time.Millisecond)
	pickertest.Settle(clk)

	require.NotEmpty(t, got)
	assert.Equal(t, p.Selected(), got[len(got)-1])
	assert.Equal(t, 1, ends)
	assert.False(t, p.IsScrolling())
	assert.Equal(t, 1, rec.Count("Play"))
}

func TestDatePickerHapticGate(t *testing.T) {
	rec := &pickertest.RecordingHaptics{}
	factory := haptics.FactoryFunc(func(string) haptics.Coordinator { return rec })
	p := newTestPicker(t, Config{
		Selected:       calendar.Date{Year: 2000, Month: 1, Day: 10},
		Haptics:        factory,
		HapticGate:     haptics.Gate{PlatformVersion: 9},
		HapticsEnabled: true,
	})
	p.Column(ColumnDay).ScrollToIndex(3, false)
	assert.Empty(t, rec.Calls())
}

func TestDatePickerRequestsConfiguredEffect(t *testing.T) {
	var effects []string
	factory := haptics.FactoryFunc(func(effect string) haptics.Coordinator {
		effects = append(effects, effect)
		return &pickertest.RecordingHaptics{}
	})
	gate := haptics.Gate{PlatformVersion: haptics.DefaultMinPlatformVersion}

	newTestPicker(t, Config{Haptics: factory, HapticGate: gate})
	newTestPicker(t, Config{Haptics: factory, HapticGate: gate, HapticEffect: "org.example.cal.haptic.slide"})

	assert.Equal(t, []string{haptics.EffectSlide, "org.example.cal.haptic.slide"}, effects)
}

func TestDatePickerSemanticsAndDetach(t *testing.T) {
	p := newTestPicker(t, Config{Locale: "zh-CN", Selected: calendar.Date{Year: 1970, Month: 1, Day: 1}})

	sem := p.Semantics()
	require.Len(t, sem, 3)
	assert.Equal(t, "year", sem[0].Label)
	assert.Equal(t, "1970年", sem[0].Value)
	assert.False(t, sem[0].HasAction(ActionScrollBackward))
	assert.True(t, sem[0].HasAction(ActionScrollForward))

	called := false
	p.OnChange(func(calendar.Date) { called = true })
	p.Detach()
	p.Column(ColumnDay).HandleDragStart(100)
	p.Column(ColumnDay).HandleDragMove(0)
	assert.False(t, called)
	assert.True(t, p.Column(ColumnDay).IsDetached())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("month-day")
	require.NoError(t, err)
	assert.Equal(t, ModeMonthDay, m)
	_, err = ParseMode("week")
	assert.Error(t, err)
}
