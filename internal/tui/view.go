package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/picker/pkg/graphics"
	"github.com/go-drift/picker/pkg/picker"
	"github.com/go-drift/picker/pkg/theme"
)

const columnWidth = 14

var (
	appStyle     = lipgloss.NewStyle().Margin(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Width(columnWidth).Align(lipgloss.Center).Faint(true)
	cellStyle    = lipgloss.NewStyle().Width(columnWidth).Align(lipgloss.Center)
	focusedStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	blurredStyle = lipgloss.NewStyle().Border(lipgloss.HiddenBorder())
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpText     = "←/→ column  ↑/↓ step  PgUp/PgDn fling  L lunar  enter confirm  q quit"
)

// textColor flattens a translucent color onto the surface so terminals
// without alpha still show far rows faded.
func textColor(c, surface graphics.Color) lipgloss.Color {
	blended := surface.Colorful().BlendRgb(c.Colorful(), c.Alpha())
	return lipgloss.Color(blended.Hex())
}

func rowStyle(s graphics.TextStyle, surface graphics.Color) lipgloss.Style {
	return cellStyle.
		Foreground(textColor(s.Color, surface)).
		Bold(graphics.IsBold(s.Weight))
}

func (m *Model) View() string {
	if m.done {
		return ""
	}
	th := m.picker.Theme()
	cols := m.picker.Columns()
	rendered := make([]string, len(cols))
	for i, c := range cols {
		rendered[i] = m.renderColumn(c, th, i == m.focus)
	}

	title := "Select date"
	if m.title != "" {
		title = m.title + " · " + title
	}
	if m.picker.IsLunar() {
		title += " (lunar)"
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title), body, m.footerView()))
}

func (m *Model) renderColumn(c *picker.Column, th *theme.ThemeData, focused bool) string {
	surface := th.ColorScheme.Surface
	styles := c.RowStyles()
	visible := c.VisibleOptions()
	mid := len(visible) / 2

	lines := make([]string, 0, len(visible)+1)
	lines = append(lines, headerStyle.Render(c.Key().String()))
	for i, v := range visible {
		text := ""
		if v.OK {
			text = m.picker.Format(v.Option)
		}
		var s graphics.TextStyle
		if i < len(styles) {
			s = styles[i].Style
		}
		if i == mid {
			text = "› " + text + " ‹"
		}
		lines = append(lines, rowStyle(s, surface).Render(text))
	}
	col := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if focused {
		return focusedStyle.BorderForeground(lipgloss.Color(th.ColorScheme.Primary.Colorful().Hex())).Render(col)
	}
	return blurredStyle.Render(col)
}

func (m *Model) footerView() string {
	var b strings.Builder
	d := m.picker.Selected()
	fmt.Fprintf(&b, "selected %s", d)
	if c := m.focused(); c != nil {
		st := c.State()
		fmt.Fprintf(&b, "  %s %s offset %.0f", c.Key(), st.Status, st.Offset)
	}
	if m.notice != "" {
		fmt.Fprintf(&b, "\n%s", m.notice)
	}
	if len(m.pulses) > 0 {
		names := make([]string, len(m.pulses))
		for i, p := range m.pulses {
			names[i] = p.Kind.String()
		}
		fmt.Fprintf(&b, "\nhaptics %s", strings.Join(names, " "))
	}
	b.WriteString("\n" + helpText)
	return footerStyle.Render(b.String())
}
