package analytics

import (
	"fmt"
	"time"
)

// MaxForwardOffset is the furthest week ahead that navigation may reach.
const MaxForwardOffset = 4

// DaysPerWeek is the number of dates in a WeekWindow.
const DaysPerWeek = 7

// rangeDateLayout formats the bounds shown in a week's range label.
const rangeDateLayout = "Jan 02"

// WeekWindow is the Monday-start calendar week at Offset weeks from the week
// containing the reference date.
type WeekWindow struct {
	Offset     int
	Dates      [DaysPerWeek]time.Time
	RangeLabel string
}

// StartOfWeek returns midnight of the Monday on or before t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}

// ComputeWindow returns the week at offset relative to the week containing
// today. The window is a pure function of its arguments.
//
// Dates are consecutive calendar days in today's location, except in zones
// that skipped a whole calendar day (Pacific/Apia on 2011-12-30), where
// AddDate normalizes onto the neighbouring day and one date repeats.
func ComputeWindow(offset int, today time.Time) WeekWindow {
	start := StartOfWeek(today).AddDate(0, 0, 7*offset)

	w := WeekWindow{Offset: offset}
	for i := range w.Dates {
		// AddDate keeps calendar days aligned across DST changes.
		w.Dates[i] = start.AddDate(0, 0, i)
	}
	w.RangeLabel = rangeLabel(offset, w.Dates[0], w.Dates[DaysPerWeek-1])
	return w
}

// Start returns the Monday of the window.
func (w WeekWindow) Start() time.Time { return w.Dates[0] }

// End returns the Sunday of the window.
func (w WeekWindow) End() time.Time { return w.Dates[DaysPerWeek-1] }

func rangeLabel(offset int, start, end time.Time) string {
	span := fmt.Sprintf("(%s - %s)", start.Format(rangeDateLayout), end.Format(rangeDateLayout))
	switch {
	case offset == 0:
		return "This Week " + span
	case offset == -1:
		return "Last Week " + span
	case offset < -1:
		return fmt.Sprintf("%d Weeks Ago %s", -offset, span)
	default:
		return fmt.Sprintf("In %d Weeks %s", offset, span)
	}
}

// WeekNav is the week navigation state. The zero value is the current week.
type WeekNav struct {
	offset int
}

// Offset returns the current week offset.
func (n WeekNav) Offset() int { return n.offset }

// Prev moves one week back. There is no lower bound.
func (n *WeekNav) Prev() { n.offset-- }

// Next moves one week forward. It is refused once the offset has reached
// MaxForwardOffset and reports whether the move happened.
func (n *WeekNav) Next() bool {
	if !n.CanNext() {
		return false
	}
	n.offset++
	return true
}

// Current returns to the week containing today.
func (n *WeekNav) Current() { n.offset = 0 }

// CanNext reports whether the next-week control is enabled.
func (n WeekNav) CanNext() bool { return n.offset < MaxForwardOffset }

// Window computes the window for the current offset.
func (n WeekNav) Window(today time.Time) WeekWindow {
	return ComputeWindow(n.offset, today)
}
