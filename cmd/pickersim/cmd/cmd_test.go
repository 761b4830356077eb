package cmd

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/picker/pkg/calendar"
	"github.com/go-drift/picker/pkg/picker"
)

// capture runs the CLI with args and returns what it printed.
func capture(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	err := Execute(args)
	return buf.String(), err
}

func TestExecuteVersionAndHelp(t *testing.T) {
	out, err := capture(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "pickersim version "+Version)

	out, err = capture(t)
	require.NoError(t, err)
	for _, name := range []string{"convert", "options", "simulate", "tui"} {
		assert.Contains(t, out, name)
	}

	out, err = capture(t, "convert", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "pickersim convert [--lunar]")
}

func TestExecuteUnknownCommand(t *testing.T) {
	_, err := capture(t, "explode")
	assert.EqualError(t, err, "unknown command: explode")
}

func TestConvertSolarToLunar(t *testing.T) {
	out, err := capture(t, "convert", "2024-02-10")
	require.NoError(t, err)
	assert.Contains(t, out, "solar 2024-02-10 = lunar 2024-01-01")
	assert.Contains(t, out, "正月初一")
}

func TestConvertLunarToSolar(t *testing.T) {
	out, err := capture(t, "convert", "--lunar", "2020-L04-01")
	require.NoError(t, err)
	assert.Contains(t, out, "= solar 2020-05-23")
	assert.Contains(t, out, "闰四月初一")
}

func TestConvertRejectsBadInput(t *testing.T) {
	_, err := capture(t, "convert")
	assert.Error(t, err)

	_, err = capture(t, "convert", "1800-01-01")
	assert.True(t, stderrors.Is(err, calendar.ErrOutOfRange))

	_, err = parseLunarDate("2021-L04-01")
	assert.True(t, stderrors.Is(err, calendar.ErrNoLeapMonth))

	_, err = parseLunarDate("2020-04-31")
	assert.True(t, stderrors.Is(err, calendar.ErrOutOfRange))

	_, err = parseLunarDate("2020/04/01")
	assert.Error(t, err)

	l, err := parseLunarDate("2020-l04-01")
	require.NoError(t, err)
	assert.Equal(t, calendar.LunarDate{Year: 2020, Month: 4, IsLeapMonth: true, Day: 1}, l)
}

func TestOptionsListsColumns(t *testing.T) {
	out, err := capture(t, "options", "--config", t.TempDir(), "--date", "2000-02-10", "--locale", "en", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "selected 2000-02-10")
	assert.Contains(t, out, "day: 29 options, selected 10 (index 9)")
	assert.Contains(t, out, "month: 12 options, selected Feb (index 1)")
	assert.Contains(t, out, "year: 131 options, selected 2000 (index 30)")
	assert.Contains(t, out, "*10")
	assert.Contains(t, out, "*Feb")
}

func TestOptionsRejectsStrayArguments(t *testing.T) {
	_, err := capture(t, "options", "--config", t.TempDir(), "--bogus")
	assert.Error(t, err)

	_, err = capture(t, "options", "--show")
	assert.EqualError(t, err, "--show requires a value")
}

func TestSimulateSteps(t *testing.T) {
	out, err := capture(t, "simulate", "--config", t.TempDir(), "--time", "13:07",
		"--date", "2000-12-31", "day:step", "month:step")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, `start	{"year":2000,"month":11,"day":31,"hour":13,"minute":7,"status":-1}`, lines[0])
	assert.Contains(t, out, "  change 2000-12-01\n")
	assert.Contains(t, out, `day:step	{"year":2000,"month":11,"day":1,"hour":13,"minute":7,`)
	assert.Contains(t, out, "  change 2001-01-01\n")
	assert.Contains(t, out, `month:step	{"year":2001,"month":0,"day":1,"hour":13,"minute":7,`)
}

func TestSimulateFlingReportsStatusAndHaptics(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "picker.yaml"), []byte("app:\n  id: org.example.sim\n"), 0o644))
	out, err := capture(t, "simulate", "--config", dir, "--time", "08:00",
		"--date", "2000-06-01", "--haptics", "day:fling:-200")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "haptics org.example.sim.haptic.slide\n"), out)
	assert.Contains(t, out, "haptic toss")
	assert.Contains(t, out, `"status":2}`)
	assert.NotContains(t, out, `day:fling:-200	{"year":2000,"month":5,"day":1,`)
}

func TestParseSimStep(t *testing.T) {
	st, err := parseSimStep("monthDay:drag:30")
	require.NoError(t, err)
	assert.Equal(t, picker.ColumnMonthDay, st.column)
	assert.Equal(t, "drag", st.gesture)
	assert.Equal(t, 30.0, st.amount)

	st, err = parseSimStep("year:step")
	require.NoError(t, err)
	assert.Equal(t, 1.0, st.amount)

	for _, bad := range []string{"day", "week:step", "day:spin", "day:step:x", "a:b:c:d"} {
		_, err := parseSimStep(bad)
		assert.Error(t, err, bad)
	}
}

func TestPickerFlagsResolve(t *testing.T) {
	f, err := parsePickerFlags([]string{"--config", t.TempDir(), "--lunar", "--no-loop", "--show", "4", "--dark", "--mode", "month-day", "extra"})
	require.NoError(t, err)
	assert.Equal(t, []string{"extra"}, f.rest)

	r, err := f.resolve()
	require.NoError(t, err)
	assert.True(t, r.Lunar)
	assert.False(t, r.Loop)
	assert.Equal(t, 5, r.ShowCount)
	assert.Equal(t, picker.ModeMonthDay, r.Mode)
	assert.Equal(t, "dark", r.Theme.Brightness.String())
}
