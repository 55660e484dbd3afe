package timezone

import (
	"fmt"
	"time"
)

// StoredLayout is the fixed-width UTC layout every arrivalTime is persisted
// in, so lexical order of stored values matches chronological order.
const StoredLayout = "2006-01-02T15:04:05.000Z"

const DateLayout = "2006-01-02"

// localLayouts are accepted when the value carries no zone, as sent by
// datetime-local form inputs. They are read as UTC.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	DateLayout,
}

// Normalize parses a timestamp and renders it in StoredLayout.
func Normalize(value string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}
	return Format(t), nil
}

// Parse reads an RFC 3339 timestamp, falling back to zone-less date-time
// and date-only forms interpreted as UTC.
func Parse(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if lt, lerr := time.ParseInLocation(layout, value, time.UTC); lerr == nil {
			return lt, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
}

func Format(t time.Time) string {
	return t.UTC().Format(StoredLayout)
}

// DayBounds returns the half-open UTC range [start, end) covering the
// calendar day given as YYYY-MM-DD, rendered in StoredLayout.
func DayBounds(day string) (string, string, error) {
	start, err := ParseDay(day)
	if err != nil {
		return "", "", err
	}
	end := start.AddDate(0, 0, 1)
	return Format(start), Format(end), nil
}

// ParseDay returns UTC midnight of a YYYY-MM-DD date.
func ParseDay(day string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, day, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", day, err)
	}
	return t, nil
}

func Now() time.Time {
	return time.Now().UTC()
}
