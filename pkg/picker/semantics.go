package picker

// SemanticsAction is an accessibility action a column supports.
type SemanticsAction int

const (
	// ActionScrollForward selects the next option.
	ActionScrollForward SemanticsAction = iota
	// ActionScrollBackward selects the previous option.
	ActionScrollBackward
)

func (a SemanticsAction) String() string {
	switch a {
	case ActionScrollForward:
		return "scrollForward"
	case ActionScrollBackward:
		return "scrollBackward"
	default:
		return "unknown"
	}
}

// ColumnSemantics describes a column to assistive technology.
type ColumnSemantics struct {
	Label        string
	Value        string
	ItemCount    uint32
	CurrentIndex uint32
	Actions      []SemanticsAction
}

// HasAction reports whether a is available.
func (s ColumnSemantics) HasAction(a SemanticsAction) bool {
	for _, x := range s.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Semantics describes the column. format renders the selected option.
func (c *Column) Semantics(label string, format func(OptionValue) string) ColumnSemantics {
	s := ColumnSemantics{
		Label:        label,
		ItemCount:    c.OptionCount(),
		CurrentIndex: c.CurrentIndex(),
	}
	if opt, ok := c.Selected(); ok && format != nil {
		s.Value = format(opt)
	}
	if c.CanMove(true) {
		s.Actions = append(s.Actions, ActionScrollForward)
	}
	if c.CanMove(false) {
		s.Actions = append(s.Actions, ActionScrollBackward)
	}
	return s
}

// PerformAction runs an accessibility action with an animated one-row
// scroll. It returns false when the action is unavailable.
func (c *Column) PerformAction(a SemanticsAction) bool {
	if c.detached {
		return false
	}
	isDown := a == ActionScrollForward
	if !c.CanMove(isDown) {
		return false
	}
	step := -1
	if isDown {
		step = 1
	}
	next := CalcScrollIndex(c.OptionCount(), c.CurrentIndex(), c.CanLoop(), step)
	c.ScrollToIndex(next, true)
	return true
}
