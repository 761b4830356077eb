// Package tui renders a DatePicker in a terminal. Each column is drawn as a
// stack of option rows; keys scroll the focused column and a frame timer
// drives the picker's animations.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/picker/pkg/animation"
	"github.com/go-drift/picker/pkg/calendar"
	"github.com/go-drift/picker/pkg/errors"
	"github.com/go-drift/picker/pkg/haptics"
	"github.com/go-drift/picker/pkg/picker"
)

const (
	// FrameInterval is the animation frame period.
	FrameInterval = 16 * time.Millisecond

	maxPulses = 8

	// A key fling drags this far over flingFrames frames.
	flingDistance = 120.0
	flingFrames   = 3
)

type frameMsg time.Time

// gesture is a scripted drag replayed one step per frame.
type gesture struct {
	column *picker.Column
	y      float64
	step   float64
	left   int
}

// Model is the bubbletea model of the picker screen.
type Model struct {
	picker *picker.DatePicker
	title  string
	focus  int

	pulses  []haptics.Pulse
	changes int
	notice  string

	gesture *gesture
	ticking bool

	width    int
	done     bool
	canceled bool
}

// New builds the picker from cfg. title names the application in the
// header and may be empty. When cfg carries no haptics factory the model
// supplies one whose pulses are shown in the footer.
func New(title string, cfg picker.Config) *Model {
	m := &Model{title: title}
	if cfg.Haptics == nil {
		cfg.Haptics = haptics.FactoryFunc(func(string) haptics.Coordinator {
			return &haptics.Pulser{MaxSpeed: cfg.Toss.MaxSpeed, Sink: m.recordPulse}
		})
	}
	m.picker = picker.New(cfg)
	m.picker.OnChange(func(d calendar.Date) {
		m.changes++
		m.notice = "changed " + d.String()
	})
	m.picker.OnScrollEnd(func(d calendar.Date) {
		m.notice = "settled on " + d.String()
	})
	return m
}

// Picker returns the driven date picker.
func (m *Model) Picker() *picker.DatePicker { return m.picker }

// Focus returns the index of the focused column in display order.
func (m *Model) Focus() int { return m.focus }

// Pulses returns the most recent haptic pulses, oldest first.
func (m *Model) Pulses() []haptics.Pulse { return m.pulses }

// Changes counts user-visible selection changes.
func (m *Model) Changes() int { return m.changes }

// Result returns the confirmed date. ok is false until the user confirms.
func (m *Model) Result() (d calendar.Date, ok bool) {
	if !m.done || m.canceled {
		return calendar.Date{}, false
	}
	return m.picker.Selected(), true
}

func (m *Model) recordPulse(p haptics.Pulse) {
	m.pulses = append(m.pulses, p)
	if len(m.pulses) > maxPulses {
		m.pulses = m.pulses[len(m.pulses)-maxPulses:]
	}
}

func (m *Model) focused() *picker.Column {
	cols := m.picker.Columns()
	if len(cols) == 0 {
		return nil
	}
	return cols[m.focus]
}

func frame() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// ensureTicking starts the frame loop if motion is pending.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || (m.gesture == nil && !animation.HasActiveTickers()) {
		return nil
	}
	m.ticking = true
	return frame()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.FocusMsg:
		m.picker.OnWindowShow()
		return m, nil
	case tea.BlurMsg:
		m.picker.OnWindowHide()
		return m, nil
	case frameMsg:
		return m, m.onFrame()
	}
	return m, nil
}

func (m *Model) onFrame() tea.Cmd {
	defer errors.Recover("tui.Model.onFrame")
	m.advanceGesture()
	animation.StepTickers()
	if m.gesture == nil && !animation.HasActiveTickers() {
		m.ticking = false
		return nil
	}
	return frame()
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.done, m.canceled = true, true
		m.picker.Detach()
		return m, tea.Quit
	case "enter":
		m.done = true
		m.picker.Detach()
		return m, tea.Quit
	case "left", "h", "shift+tab":
		m.moveFocus(-1)
	case "right", "l", "tab":
		m.moveFocus(1)
	case "up", "k":
		m.step(picker.ActionScrollBackward)
	case "down", "j":
		m.step(picker.ActionScrollForward)
	case "pgup", "K":
		m.fling(false)
	case "pgdown", "J":
		m.fling(true)
	case "L":
		m.picker.SetLunar(!m.picker.IsLunar())
		if m.picker.IsLunar() {
			m.notice = "lunar calendar"
		} else {
			m.notice = "solar calendar"
		}
	}
	return m, m.ensureTicking()
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.step(picker.ActionScrollBackward)
	case tea.MouseButtonWheelDown:
		m.step(picker.ActionScrollForward)
	}
	return m, m.ensureTicking()
}

func (m *Model) moveFocus(delta int) {
	n := len(m.picker.Columns())
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *Model) step(a picker.SemanticsAction) {
	c := m.focused()
	if c == nil || m.gesture != nil {
		return
	}
	if !c.PerformAction(a) {
		m.notice = "end of " + c.Key().String() + " column"
	}
}

// fling replays a fast drag on the focused column. forward moves content up
// and advances the index.
func (m *Model) fling(forward bool) {
	c := m.focused()
	if c == nil || m.gesture != nil {
		return
	}
	step := flingDistance / flingFrames
	if forward {
		step = -step
	}
	c.HandleDragStart(0)
	m.gesture = &gesture{column: c, step: step, left: flingFrames}
}

func (m *Model) advanceGesture() {
	g := m.gesture
	if g == nil {
		return
	}
	g.y += g.step
	g.left--
	if g.left > 0 {
		g.column.HandleDragMove(g.y)
		return
	}
	g.column.HandleDragEnd(g.y)
	m.gesture = nil
}
