package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/picker/pkg/calendar"
	"github.com/go-drift/picker/pkg/errors"
	"github.com/go-drift/picker/pkg/locale"
)

func init() {
	RegisterCommand(&Command{
		Name:  "convert",
		Short: "Convert between solar and lunar dates",
		Long: `Convert a solar date to the lunar calendar, or a lunar date back.

Lunar dates are written YYYY-MM-DD, with an L before the month for a
leap month (2020-L04-01). Supported years are 1900 to 2100.

Flags:
  --lunar        Treat the argument as a lunar date
  --locale TAG   Locale for the lunar label (default: zh)

Examples:
  pickersim convert 2024-02-10
  pickersim convert --lunar 2020-L04-01`,
		Usage: "pickersim convert [--lunar] [--locale TAG] <date>",
		Run:   runConvert,
	})
}

func runConvert(args []string) error {
	fromLunar := false
	tag := "zh"
	var date string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--lunar":
			fromLunar = true
		case "--locale":
			if i+1 >= len(args) {
				return fmt.Errorf("--locale requires a value")
			}
			tag = args[i+1]
			i++
		default:
			if date != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			date = args[i]
		}
	}
	if date == "" {
		return fmt.Errorf("date is required\n\nUsage: pickersim convert [--lunar] <date>")
	}

	formats := locale.NewFormatCache(tag)
	label := func(l calendar.LunarDate) string {
		return formats.Year(l.Year, true) + formats.Month(l.Month, true, l.IsLeapMonth) + formats.Day(l.Day, true)
	}

	if fromLunar {
		l, err := parseLunarDate(date)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "lunar %s (%s) = solar %s\n", l, label(l), calendar.LunarToSolar(l))
		return nil
	}

	d, err := calendar.ParseDate(date)
	if err != nil {
		return err
	}
	if d.Before(calendar.MinDate) || d.After(calendar.MaxDate) {
		return errors.Wrap("cmd.convert", errors.KindCalendar,
			fmt.Errorf("%w: %s", calendar.ErrOutOfRange, d))
	}
	l := calendar.SolarToLunar(d)
	fmt.Fprintf(stdout, "solar %s = lunar %s (%s)\n", d, l, label(l))
	return nil
}

// parseLunarDate reads YYYY-MM-DD or YYYY-LMM-DD and rejects days or leap
// months the year does not have.
func parseLunarDate(s string) (calendar.LunarDate, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return calendar.LunarDate{}, fmt.Errorf("invalid lunar date %q (want YYYY-MM-DD or YYYY-LMM-DD)", s)
	}
	var l calendar.LunarDate
	month := parts[1]
	if rest, ok := strings.CutPrefix(strings.ToUpper(month), "L"); ok {
		l.IsLeapMonth = true
		month = rest
	}
	fields := []struct {
		s   string
		dst *uint32
	}{{parts[0], &l.Year}, {month, &l.Month}, {parts[2], &l.Day}}
	for _, f := range fields {
		n, err := strconv.ParseUint(f.s, 10, 32)
		if err != nil {
			return calendar.LunarDate{}, fmt.Errorf("invalid lunar date %q: %w", s, err)
		}
		*f.dst = uint32(n)
	}
	maxDay, err := calendar.LunarMaxDay(l.Year, l.Month, l.IsLeapMonth)
	if err != nil {
		return calendar.LunarDate{}, err
	}
	if l.Day < 1 || l.Day > maxDay {
		return calendar.LunarDate{}, errors.Wrap("cmd.parseLunarDate", errors.KindCalendar,
			fmt.Errorf("%w: day %d of %s", calendar.ErrOutOfRange, l.Day, s))
	}
	return l, nil
}
