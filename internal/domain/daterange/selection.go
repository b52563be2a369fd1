package daterange

import (
	"time"
)

type SelectionState string

const (
	SelectionEmpty     SelectionState = "empty"
	SelectionStartOnly SelectionState = "start-only"
	SelectionComplete  SelectionState = "complete"
)

// Selection is the two-click date picker state. Click never returns an error:
// a click that cannot be applied leaves the selection unchanged.
type Selection struct {
	Start *time.Time
	End   *time.Time
}

func (s Selection) State() SelectionState {
	switch {
	case s.Start == nil:
		return SelectionEmpty
	case s.End == nil:
		return SelectionStartOnly
	default:
		return SelectionComplete
	}
}

// Range returns the selected range once the selection is complete.
func (s Selection) Range() (Range, bool) {
	if s.State() != SelectionComplete {
		return Range{}, false
	}
	return Range{Start: *s.Start, End: *s.End}, true
}

func (s Selection) Click(v Validator, t time.Time) Selection {
	d := Date(t)
	if !v.Selectable(d) {
		return s
	}

	switch s.State() {
	case SelectionEmpty, SelectionComplete:
		return Selection{Start: &d}
	}

	// A stale anchor from an earlier day is replaced like any earlier date.
	if d.Before(*s.Start) || !v.Selectable(*s.Start) {
		return Selection{Start: &d}
	}

	candidate := Range{Start: *s.Start, End: d}
	if !v.Schedule.AllowsDayCount(candidate.DayCount()) {
		return s
	}
	start := *s.Start
	return Selection{Start: &start, End: &d}
}
