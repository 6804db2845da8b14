package domain

import "strconv"

// MoodBucket is one step of the 1-5 mood scale.
type MoodBucket int

const (
	BucketNone  MoodBucket = 0 // no entries for the day
	BucketAwful MoodBucket = 1
	BucketBad   MoodBucket = 2
	BucketOkay  MoodBucket = 3
	BucketGood  MoodBucket = 4
	BucketGreat MoodBucket = 5
)

// MaxOrdinal is the top of the mood scale.
const MaxOrdinal = int(BucketGreat)

// FallbackOrdinal is used for indicators missing from the table.
const FallbackOrdinal = int(BucketOkay)

// ordinalTable maps indicator symbols to their ordinal. Lookup is exact and
// case-sensitive.
var ordinalTable = map[string]MoodBucket{
	"😊": BucketGreat, "😄": BucketGreat, "🤩": BucketGreat,
	"😌": BucketGood, "🙂": BucketGood,
	"😐": BucketOkay, "😶": BucketOkay, "🤔": BucketOkay,
	"😔": BucketBad, "😞": BucketBad, "😕": BucketBad,
	"😢": BucketAwful, "😭": BucketAwful, "😡": BucketAwful,
}

// OrdinalFor maps an indicator symbol onto the 1-5 scale.
func OrdinalFor(indicator string) int {
	if b, ok := ordinalTable[indicator]; ok {
		return int(b)
	}
	return FallbackOrdinal
}

// String returns the bucket label used on chart axes and bar captions.
func (b MoodBucket) String() string {
	switch b {
	case BucketGreat:
		return "Great"
	case BucketGood:
		return "Good"
	case BucketOkay:
		return "Okay"
	case BucketBad:
		return "Bad"
	case BucketAwful:
		return "Awful"
	default:
		return ""
	}
}

// BucketLabel returns the label for an aggregate value. Values outside the
// scale fall back to their decimal form.
func BucketLabel(value int) string {
	if value >= int(BucketAwful) && value <= MaxOrdinal {
		return MoodBucket(value).String()
	}
	return strconv.Itoa(value)
}
