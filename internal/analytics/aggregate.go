package analytics

import (
	"time"

	"github.com/alexanderramin/moodtrack/internal/domain"
)

// dayLabelLayout is the short weekday name used to label aggregates.
const dayLabelLayout = "Mon"

// DayAggregate is the truncated mean mood of one calendar date. An
// AverageValue of 0 means no entries were logged that day.
type DayAggregate struct {
	Label        string
	Date         time.Time
	AverageValue int
}

// HasData reports whether any entry contributed to the aggregate.
func (d DayAggregate) HasData() bool { return d.AverageValue > 0 }

// WeekAggregates is the aggregation result for one week: either one
// DayAggregate per window date, or empty when the entries could not be read.
type WeekAggregates struct {
	Days []DayAggregate
}

// EmptyAggregates is the result used when no snapshot of entries is
// available.
func EmptyAggregates() WeekAggregates { return WeekAggregates{} }

// IsEmpty reports whether the result carries no days at all. Seven days that
// all have AverageValue 0 are not empty.
func (w WeekAggregates) IsEmpty() bool { return len(w.Days) == 0 }

// DaysWithData counts days that have at least one entry.
func (w WeekAggregates) DaysWithData() int {
	n := 0
	for _, d := range w.Days {
		if d.HasData() {
			n++
		}
	}
	return n
}

// Aggregate computes one DayAggregate per date, in date order, from a
// snapshot of entries. Entries are matched to a date by exact equality of
// their date field. The result is a pure function of the inputs.
func Aggregate(dates []time.Time, entries []domain.MoodEntry) WeekAggregates {
	days := make([]DayAggregate, len(dates))
	for i, date := range dates {
		key := date.Format(domain.EntryDateLayout)
		sum, count := 0, 0
		for _, e := range entries {
			if e.Date != key {
				continue
			}
			sum += domain.OrdinalFor(e.Indicator)
			count++
		}
		avg := 0
		if count > 0 {
			// Integer division truncates: [5,2] averages to 3.
			avg = sum / count
		}
		days[i] = DayAggregate{
			Label:        date.Format(dayLabelLayout),
			Date:         date,
			AverageValue: avg,
		}
	}
	return WeekAggregates{Days: days}
}

// AggregateWindow aggregates entries over the dates of w.
func AggregateWindow(w WeekWindow, entries []domain.MoodEntry) WeekAggregates {
	return Aggregate(w.Dates[:], entries)
}
