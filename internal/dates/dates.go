// Package dates resolves human date phrases ("tomorrow", "next Friday",
// "2024-12-25") against a reference day. Resolution is best-effort and total:
// every phrase maps to either a concrete date or "unresolved", never an error.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Date is a civil calendar date with no time or zone component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the civil date of now in local time.
func Today(now time.Time) Date {
	y, m, d := now.Date()
	return Date{Year: y, Month: m, Day: d}
}

// FromTime truncates t to its civil date.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// DaysUntil returns the number of calendar days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDate parses an exact YYYY-MM-DD string. Out-of-range dates
// ("2024-02-30") are rejected rather than normalized.
func ParseDate(s string) (Date, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, false
	}
	return FromTime(t), true
}

// Unspecified reports whether the phrase explicitly says "no date" rather
// than naming one. Callers use it to tell "no due date given" apart from "a
// due date was given but could not be resolved".
func Unspecified(phrase string) bool {
	switch strings.ToLower(strings.TrimSpace(phrase)) {
	case "", "n/a", "not specified", "none":
		return true
	}
	return false
}

// weekdays in canonical Monday-first order; the first name contained in a
// phrase wins when several could match.
var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// Resolve interprets a free-text date phrase against today. The second return
// is false when the phrase carries no recognizable date.
//
// Rules fire in a fixed priority order so that ambiguous phrases resolve
// deterministically: "next week Friday" is next week (+7), not Friday, because
// the "next week" rule is checked first. A bare weekday name always means the
// next occurrence of that weekday, never today itself.
func Resolve(phrase string, today Date) (Date, bool) {
	p := strings.ToLower(strings.TrimSpace(phrase))
	switch p {
	case "", "n/a", "not specified":
		return Date{}, false
	}
	if strings.Contains(p, "today") {
		return today, true
	}
	if strings.Contains(p, "tomorrow") {
		return today.AddDays(1), true
	}
	if strings.Contains(p, "next week") {
		return today.AddDays(7), true
	}
	if d, ok := ParseDate(p); ok {
		return d, true
	}
	for _, wd := range weekdays {
		if !strings.Contains(p, wd.name) {
			continue
		}
		ahead := int(wd.day) - int(today.Weekday())
		if ahead <= 0 {
			ahead += 7
		}
		return today.AddDays(ahead), true
	}
	return Date{}, false
}
