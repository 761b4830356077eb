package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/picker/pkg/animation"
	"github.com/go-drift/picker/pkg/calendar"
	"github.com/go-drift/picker/pkg/haptics"
	"github.com/go-drift/picker/pkg/picker"
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Replay scripted gestures and print snapshots",
		Long: `Replay gestures against a date picker on a simulated clock and print the
selection snapshot as JSON after each step.

Each step is <column>:<gesture>[:amount]:
  step    Move by amount rows (default 1, negative moves back)
  drag    Slow drag by amount pixels (default -46); negative scrolls forward
  fling   Fast drag by amount pixels (default -200)

The status field is the column's scroll status right after the gesture:
0 idle, 1 dragging, 2 flinging, 3 snapping back. The first line uses -1.

Flags:
  --time HH:MM       Time of day reported in snapshots
  --haptics          Print the haptic effect and its pulses
` + pickerFlagsHelp + `

Examples:
  pickersim simulate --date 2000-12-31 day:step month:drag:-50
  pickersim simulate --lunar --date 2020-05-22 day:fling:-300`,
		Usage: "pickersim simulate [--time HH:MM] [--haptics] [picker flags] <step>...",
		Run:   runSimulate,
	})
}

const (
	simFrame     = 16 * time.Millisecond
	simMaxFrames = 5000

	defaultDragDistance  = -46.0
	defaultFlingDistance = -200.0
	flingFrames          = 3
	// Slow drags move at most this many pixels per frame.
	dragPixelsPerFrame = 2.0
)

// stepClock is the clock the simulation advances frame by frame.
type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

type simStep struct {
	raw     string
	column  picker.ColumnKey
	gesture string
	amount  float64
}

func parseSimStep(s string) (simStep, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return simStep{}, fmt.Errorf("invalid step %q (want column:gesture[:amount])", s)
	}
	key, err := parseColumnKey(parts[0])
	if err != nil {
		return simStep{}, err
	}
	st := simStep{raw: s, column: key, gesture: strings.ToLower(parts[1])}
	switch st.gesture {
	case "step":
		st.amount = 1
	case "drag":
		st.amount = defaultDragDistance
	case "fling":
		st.amount = defaultFlingDistance
	default:
		return simStep{}, fmt.Errorf("unknown gesture %q in %q (use step, drag or fling)", parts[1], s)
	}
	if len(parts) == 3 {
		if st.amount, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return simStep{}, fmt.Errorf("invalid amount in %q: %w", s, err)
		}
	}
	return st, nil
}

func parseTimeOfDay(s string) (hour, minute uint32, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --time %q (want HH:MM)", s)
	}
	return uint32(t.Hour()), uint32(t.Minute()), nil
}

// simulator replays steps against a picker on a stepClock.
type simulator struct {
	clock  *stepClock
	picker *picker.DatePicker
}

func (s *simulator) advance() {
	s.clock.now = s.clock.now.Add(simFrame)
	animation.StepTickers()
}

func (s *simulator) settle() {
	animation.RunUntilIdle(simFrame, simMaxFrames, func(d time.Duration) {
		s.clock.now = s.clock.now.Add(d)
	})
}

// drag moves the pointer by dy over frames frames, releasing on the last.
func (s *simulator) drag(c *picker.Column, dy float64, frames int) {
	c.HandleDragStart(0)
	for i := 1; i <= frames; i++ {
		s.advance()
		y := dy * float64(i) / float64(frames)
		if i == frames {
			c.HandleDragEnd(y)
		} else {
			c.HandleDragMove(y)
		}
	}
}

// run applies one step and returns the column status right after it.
func (s *simulator) run(st simStep) (picker.ScrollStatus, error) {
	c := s.picker.Column(st.column)
	if c == nil {
		return 0, fmt.Errorf("step %q: picker has no %s column", st.raw, st.column)
	}
	switch st.gesture {
	case "step":
		n := int(st.amount)
		action := picker.ActionScrollForward
		if n < 0 {
			action, n = picker.ActionScrollBackward, -n
		}
		for i := 0; i < n; i++ {
			if !c.PerformAction(action) {
				break
			}
			s.settle()
		}
	case "drag":
		frames := max(int(math.Ceil(math.Abs(st.amount)/dragPixelsPerFrame)), 1)
		s.drag(c, st.amount, frames)
	case "fling":
		s.drag(c, st.amount, flingFrames)
	}
	status := c.Status()
	s.settle()
	return status, nil
}

func runSimulate(args []string) error {
	f, err := parsePickerFlags(args)
	if err != nil {
		return err
	}
	var (
		steps      []simStep
		timeOfDay  string
		showPulses bool
	)
	for i := 0; i < len(f.rest); i++ {
		switch arg := f.rest[i]; arg {
		case "--time":
			if i+1 >= len(f.rest) {
				return fmt.Errorf("--time requires a value")
			}
			timeOfDay = f.rest[i+1]
			i++
		case "--haptics":
			showPulses = true
		default:
			st, err := parseSimStep(arg)
			if err != nil {
				return err
			}
			steps = append(steps, st)
		}
	}

	r, err := f.resolve()
	if err != nil {
		return err
	}

	clk := &stepClock{now: time.Now()}
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	var factory haptics.Factory
	if showPulses {
		factory = haptics.FactoryFunc(func(effect string) haptics.Coordinator {
			fmt.Fprintf(stdout, "haptics %s\n", effect)
			return &haptics.Pulser{
				MaxSpeed: r.Toss.MaxSpeed,
				Sink: func(p haptics.Pulse) {
					fmt.Fprintf(stdout, "  haptic %s %.2f\n", p.Kind, p.Strength)
				},
			}
		})
	}
	p := picker.New(r.PickerConfig(factory))
	defer p.Detach()
	if timeOfDay != "" {
		h, m, err := parseTimeOfDay(timeOfDay)
		if err != nil {
			return err
		}
		p.SetTime(h, m)
	}
	p.OnChange(func(d calendar.Date) {
		fmt.Fprintf(stdout, "  change %s\n", d)
	})

	sim := &simulator{clock: clk, picker: p}
	if err := printSnapshot("start", p, picker.NoStatus); err != nil {
		return err
	}
	for _, st := range steps {
		status, err := sim.run(st)
		if err != nil {
			return err
		}
		if err := printSnapshot(st.raw, p, int(status)); err != nil {
			return err
		}
	}
	return nil
}

func printSnapshot(label string, p *picker.DatePicker, status int) error {
	js, err := p.SnapshotJSON(status)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\t%s\n", label, js)
	return nil
}
