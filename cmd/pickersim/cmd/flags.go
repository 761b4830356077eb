package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/picker/internal/config"
	"github.com/go-drift/picker/pkg/picker"
)

const pickerFlagsHelp = `Picker flags (override picker.yaml):
  --config DIR       Directory holding picker.yaml (default: project root)
  --date YYYY-MM-DD  Initially selected solar date
  --start DATE       First selectable date
  --end DATE         Last selectable date
  --lunar            Show the lunar calendar
  --mode MODE        date or month-day
  --locale TAG       BCP 47 tag for labels and column order
  --show N           Visible rows per column (odd)
  --no-loop          Stop month and day columns at their ends
  --dark             Use the dark theme`

// pickerFlags are the picker.yaml overrides shared by several commands.
type pickerFlags struct {
	dir       string
	date      string
	start     string
	end       string
	lunar     bool
	mode      string
	locale    string
	showCount int
	noLoop    bool
	dark      bool

	// rest holds arguments that are not picker flags, in order.
	rest []string
}

func parsePickerFlags(args []string) (*pickerFlags, error) {
	f := &pickerFlags{}
	value := func(i *int, name string) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		*i++
		return args[*i], nil
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var err error
		switch arg {
		case "--config":
			f.dir, err = value(&i, arg)
		case "--date":
			f.date, err = value(&i, arg)
		case "--start":
			f.start, err = value(&i, arg)
		case "--end":
			f.end, err = value(&i, arg)
		case "--mode":
			f.mode, err = value(&i, arg)
		case "--locale":
			f.locale, err = value(&i, arg)
		case "--show":
			var s string
			if s, err = value(&i, arg); err == nil {
				if f.showCount, err = strconv.Atoi(s); err != nil || f.showCount <= 0 {
					err = fmt.Errorf("--show wants a positive number, got %q", s)
				}
			}
		case "--lunar":
			f.lunar = true
		case "--no-loop":
			f.noLoop = true
		case "--dark":
			f.dark = true
		default:
			f.rest = append(f.rest, arg)
		}
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

// configDir picks the directory picker.yaml is read from. Outside a Go
// module the working directory is used.
func (f *pickerFlags) configDir() (string, error) {
	if f.dir != "" {
		return f.dir, nil
	}
	if root, err := config.FindProjectRoot(); err == nil {
		return root, nil
	}
	return os.Getwd()
}

// resolve loads picker.yaml and applies the flag overrides.
func (f *pickerFlags) resolve() (*config.Resolved, error) {
	dir, err := f.configDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	p := &cfg.Picker
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&p.Selected, f.date)
	set(&p.Start, f.start)
	set(&p.End, f.end)
	set(&p.Mode, f.mode)
	set(&p.Locale, f.locale)
	if f.lunar {
		p.Lunar = true
	}
	if f.showCount > 0 {
		p.ShowCount = f.showCount
	}
	if f.noLoop {
		loop := false
		p.Loop = &loop
	}
	if f.dark {
		cfg.Theme.Brightness = "dark"
	}
	return cfg.Resolve(dir)
}

// newPicker resolves the flags into a date picker without haptics.
func (f *pickerFlags) newPicker() (*picker.DatePicker, error) {
	r, err := f.resolve()
	if err != nil {
		return nil, err
	}
	return picker.New(r.PickerConfig(nil)), nil
}

// parseColumnKey accepts a column name as printed by ColumnKey.String.
func parseColumnKey(s string) (picker.ColumnKey, error) {
	for _, k := range []picker.ColumnKey{picker.ColumnYear, picker.ColumnMonth, picker.ColumnDay, picker.ColumnMonthDay} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown column %q (use year, month, day or monthDay)", s)
}
