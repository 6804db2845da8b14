package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Wire layouts for the date and time fields of an encoded mood entry.
const (
	EntryDateLayout = "2006-01-02"
	EntryTimeLayout = "03:04 PM"
)

// entrySeparator joins the four fields of an encoded entry.
const entrySeparator = "|"

// entryFieldCount is the arity a decoded entry must have.
const entryFieldCount = 4

var (
	ErrMalformedEntry = errors.New("malformed mood entry")
	ErrInvalidEntry   = errors.New("invalid mood entry")
)

// MoodEntry is one logged mood. Identity is the full field tuple: two entries
// with identical fields are the same entry.
type MoodEntry struct {
	Mood      string
	Indicator string
	Time      string // "03:04 PM"
	Date      string // "2006-01-02"
}

// NewMoodEntry builds an entry for the given mood name at the given instant.
// The indicator comes from the mood catalog.
func NewMoodEntry(mood string, at time.Time) MoodEntry {
	return MoodEntry{
		Mood:      mood,
		Indicator: IndicatorForMood(mood),
		Time:      at.Format(EntryTimeLayout),
		Date:      at.Format(EntryDateLayout),
	}
}

// Validate rejects entries that cannot round-trip through the wire encoding.
func (e MoodEntry) Validate() error {
	for _, f := range []string{e.Mood, e.Indicator, e.Time, e.Date} {
		if strings.Contains(f, entrySeparator) {
			return fmt.Errorf("%w: field %q contains %q", ErrInvalidEntry, f, entrySeparator)
		}
	}
	if e.Mood == "" {
		return fmt.Errorf("%w: mood is required", ErrInvalidEntry)
	}
	if _, err := time.Parse(EntryDateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: date %q: %v", ErrInvalidEntry, e.Date, err)
	}
	return nil
}

// Encode serializes the entry as mood|indicator|time|date.
func (e MoodEntry) Encode() string {
	return strings.Join([]string{e.Mood, e.Indicator, e.Time, e.Date}, entrySeparator)
}

// DecodeEntry parses an encoded entry. Any field count other than four is
// reported as ErrMalformedEntry.
func DecodeEntry(raw string) (MoodEntry, error) {
	parts := strings.Split(raw, entrySeparator)
	if len(parts) != entryFieldCount {
		return MoodEntry{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedEntry, entryFieldCount, len(parts))
	}
	return MoodEntry{Mood: parts[0], Indicator: parts[1], Time: parts[2], Date: parts[3]}, nil
}

// DecodeAll decodes every raw record, silently dropping malformed ones.
// The number of dropped records is returned for diagnostics only.
func DecodeAll(raws []string) (entries []MoodEntry, skipped int) {
	entries = make([]MoodEntry, 0, len(raws))
	for _, raw := range raws {
		e, err := DecodeEntry(raw)
		if err != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped
}

// LoggedAt returns the entry's date and time as a single instant in loc.
// Entries whose time field does not parse fall back to midnight.
func (e MoodEntry) LoggedAt(loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation(EntryDateLayout, e.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(EntryTimeLayout, e.Time, loc)
	if err != nil {
		return d, true
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc), true
}
