// Package calendar holds the calendar-day arithmetic shared by the alert rules
// and the escalation watermark. All differences are whole calendar days, never
// 24h buckets, so a record created late in the evening is one day old the next morning.
package calendar

import (
	"strconv"
	"strings"
	"time"
)

const (
	// DisplayLayout is the DD/MM/YYYY format used in alert texts and email subjects.
	DisplayLayout = "02/01/2006"
	// KeyLayout is the ISO day used in storage keys.
	KeyLayout = "2006-01-02"
)

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	KeyLayout,
	DisplayLayout,
}

// Parse reads a date from the formats found in stored documents: RFC 3339
// timestamps, ISO dates, DD/MM/YYYY and epoch milliseconds. Values without a
// zone are read in loc. ok is false for empty or unrecognised input.
func Parse(s string, loc *time.Location) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, s, loc); err == nil {
			return parsed, true
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil && ms > 0 {
		return time.UnixMilli(ms).In(loc), true
	}
	return time.Time{}, false
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from "from" to "to", both
// read in to's location. Negative when from is after to.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.In(to.Location()).Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day in b's location.
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}

// AddMonths advances t by n calendar months, clamping to the last day of the
// target month (31 Jan + 1 month = 28/29 Feb) instead of overflowing.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	if last := daysIn(target.Year(), target.Month(), t.Location()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// FormatDisplay renders t as DD/MM/YYYY.
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// DayKey renders t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// Earliest returns the smallest non-nil time in ts, or nil.
func Earliest(ts ...*time.Time) *time.Time {
	var min *time.Time
	for _, t := range ts {
		if t == nil || t.IsZero() {
			continue
		}
		if min == nil || t.Before(*min) {
			min = t
		}
	}
	return min
}

// First returns the first non-nil, non-zero time in ts, or nil.
func First(ts ...*time.Time) *time.Time {
	for _, t := range ts {
		if t != nil && !t.IsZero() {
			return t
		}
	}
	return nil
}
