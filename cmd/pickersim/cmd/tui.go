package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/picker/internal/tui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tui",
		Short: "Run the interactive terminal picker",
		Long: `Run the date picker in the terminal. Arrow keys or h/j/k/l move between
and within columns, PgUp/PgDn fling, L toggles the lunar calendar, enter
confirms and q quits. The confirmed selection is printed as JSON.

Haptic feedback is shown as pulses in the footer.

` + pickerFlagsHelp,
		Usage: "pickersim tui [picker flags]",
		Run:   runTUI,
	})
}

func runTUI(args []string) error {
	f, err := parsePickerFlags(args)
	if err != nil {
		return err
	}
	if len(f.rest) > 0 {
		return fmt.Errorf("unexpected argument %q", f.rest[0])
	}
	r, err := f.resolve()
	if err != nil {
		return err
	}

	m := tui.New(r.AppName, r.PickerConfig(nil))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus()).Run(); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	if _, ok := m.Result(); !ok {
		return nil
	}
	js, err := m.Picker().SnapshotJSON(0)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, js)
	return nil
}
