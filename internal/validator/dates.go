package validator

import (
	"errors"
	"strings"
	"time"
)

var errInvalidDate = errors.New("invalid ISO-8601 date")

// dateLayouts are tried in order. Layouts without a zone are read as UTC.
// next returns the start of the following period at the layout's precision.
var dateLayouts = []struct {
	layout string
	next   func(time.Time) time.Time
}{
	{time.RFC3339Nano, instant},
	{"2006-01-02T15:04:05.999999999", instant},
	{"2006-01-02T15:04Z07:00", instant},
	{"2006-01-02T15:04", instant},
	{"2006-01-02 15:04:05.999999999Z07:00", instant},
	{"2006-01-02 15:04:05.999999999", instant},
	{"2006-01-02", func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }},
	{"2006-01", func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }},
	{"2006", func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }},
}

func instant(t time.Time) time.Time { return t.Add(time.Nanosecond) }

// ParseDate parses an ISO-8601 date or date-time.
func ParseDate(s string) (time.Time, error) {
	start, _, err := parsePeriod(s)
	return start, err
}

// parsePeriod parses s and returns the period it names as [start, end).
// A full timestamp names a single instant; "2024-01-31" names the whole day.
func parsePeriod(s string) (start, end time.Time, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, time.Time{}, errInvalidDate
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l.layout, s); err == nil {
			t = t.UTC()
			return t, l.next(t), nil
		}
	}
	return time.Time{}, time.Time{}, errInvalidDate
}

// IsValidDate reports whether s is a parseable ISO-8601 date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// IsNotFutureDate reports whether s is parseable and not after now.
func IsNotFutureDate(s string, now time.Time) bool {
	t, err := ParseDate(s)
	return err == nil && !t.After(now)
}

// IsValidDateRange reports whether both bounds parse and start <= end.
func IsValidDateRange(start, end string) bool {
	from, err := ParseDate(start)
	if err != nil {
		return false
	}
	to, err := ParseDate(end)
	if err != nil {
		return false
	}
	return !from.After(to)
}
