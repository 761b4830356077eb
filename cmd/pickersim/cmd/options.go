package cmd

import (
	"fmt"
	"strings"
)

func init() {
	RegisterCommand(&Command{
		Name:  "options",
		Short: "List the options of each column",
		Long: `List the columns of a date picker in display order with their
option count and selection.

Flags:
  --all              Print every option, marking the selection with *
` + pickerFlagsHelp + `

Examples:
  pickersim options
  pickersim options --lunar --date 2020-05-23 --all`,
		Usage: "pickersim options [--all] [picker flags]",
		Run:   runOptions,
	})
}

func runOptions(args []string) error {
	f, err := parsePickerFlags(args)
	if err != nil {
		return err
	}
	all := false
	for _, arg := range f.rest {
		if arg != "--all" {
			return fmt.Errorf("unexpected argument %q", arg)
		}
		all = true
	}

	p, err := f.newPicker()
	if err != nil {
		return err
	}
	defer p.Detach()

	fmt.Fprintf(stdout, "selected %s", p.Selected())
	if p.IsLunar() {
		fmt.Fprintf(stdout, " (lunar %s)", p.SelectedLunar())
	}
	fmt.Fprintln(stdout)

	for _, c := range p.Columns() {
		cur := c.CurrentIndex()
		fmt.Fprintf(stdout, "%s: %d options, selected %s (index %d)\n",
			c.Key(), c.OptionCount(), p.DisplayText(c.Key(), cur), cur)
		if !all {
			continue
		}
		texts := make([]string, 0, c.OptionCount())
		for i, o := range c.Options() {
			t := p.Format(o)
			if uint32(i) == cur {
				t = "*" + t
			}
			texts = append(texts, t)
		}
		fmt.Fprintf(stdout, "  %s\n", strings.Join(texts, " "))
	}
	return nil
}
