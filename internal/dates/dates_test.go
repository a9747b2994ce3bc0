package dates

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: m, Day: d}
}

func TestResolveRelativePhrases(t *testing.T) {
	today := date(2024, time.June, 12) // a Wednesday

	tests := []struct {
		phrase string
		want   Date
		ok     bool
	}{
		{"", Date{}, false},
		{"N/A", Date{}, false},
		{"n/a", Date{}, false},
		{"Not specified", Date{}, false},
		{"today", today, true},
		{"due TODAY please", today, true},
		{"tomorrow", date(2024, time.June, 13), true},
		{"by tomorrow evening", date(2024, time.June, 13), true},
		{"next week", date(2024, time.June, 19), true},
		{"2024-12-25", date(2024, time.December, 25), true},
		{"2024-02-30", Date{}, false},
		{"12/25/2024", Date{}, false},
		{"not a date", Date{}, false},
		{"someday maybe", Date{}, false},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.phrase, today)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Resolve(%q) = %v, %t; want %v, %t", tt.phrase, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolvePriorityOrder(t *testing.T) {
	today := date(2024, time.June, 12) // Wednesday

	// "next week" outranks the weekday rule.
	got, ok := Resolve("next week Friday", today)
	if !ok || got != today.AddDays(7) {
		t.Fatalf("Resolve(next week Friday) = %v, %t; want %v", got, ok, today.AddDays(7))
	}
	// "today" outranks "tomorrow" when both appear.
	got, ok = Resolve("today not tomorrow", today)
	if !ok || got != today {
		t.Fatalf("Resolve(today not tomorrow) = %v, %t; want %v", got, ok, today)
	}
}

func TestResolveWeekdayAlwaysFuture(t *testing.T) {
	// For every reference weekday, "Friday" must land on a Friday strictly
	// after today, at most 7 days out.
	start := date(2024, time.June, 10) // Monday
	for i := 0; i < 7; i++ {
		today := start.AddDays(i)
		got, ok := Resolve("Friday", today)
		if !ok {
			t.Fatalf("Resolve(Friday) from %v: unresolved", today)
		}
		if got.Weekday() != time.Friday {
			t.Errorf("Resolve(Friday) from %v = %v (%v)", today, got, got.Weekday())
		}
		gap := today.DaysUntil(got)
		if gap < 1 || gap > 7 {
			t.Errorf("Resolve(Friday) from %v: gap %d days", today, gap)
		}
	}

	// Resolving a weekday on that same weekday skips a full week.
	friday := date(2024, time.June, 14)
	got, _ := Resolve("friday", friday)
	if got != friday.AddDays(7) {
		t.Errorf("Resolve(friday) on a Friday = %v; want %v", got, friday.AddDays(7))
	}
}

func TestResolveWeekdayCanonicalOrder(t *testing.T) {
	today := date(2024, time.June, 12) // Wednesday
	// Pathological multi-day phrase: Monday wins because it is tested first.
	got, ok := Resolve("monday or friday", today)
	if !ok || got.Weekday() != time.Monday {
		t.Fatalf("Resolve(monday or friday) = %v, %t; want next Monday", got, ok)
	}
}

func TestUnspecified(t *testing.T) {
	for _, phrase := range []string{"", "  ", "N/A", "n/a", "Not specified", "none"} {
		if !Unspecified(phrase) {
			t.Errorf("Unspecified(%q) = false", phrase)
		}
	}
	for _, phrase := range []string{"tomorrow", "whenever works", "2024-12-25"} {
		if Unspecified(phrase) {
			t.Errorf("Unspecified(%q) = true", phrase)
		}
	}
}

func TestDateHelpers(t *testing.T) {
	d := date(2024, time.December, 31)
	if got := d.AddDays(1); got != date(2025, time.January, 1) {
		t.Errorf("AddDays(1) across year = %v", got)
	}
	if !date(2024, time.June, 1).Before(date(2024, time.June, 2)) {
		t.Error("Before: June 1 < June 2")
	}
	if date(2024, time.June, 2).Before(date(2024, time.June, 2)) {
		t.Error("Before is strict")
	}
	if s := date(2024, time.March, 5).String(); s != "2024-03-05" {
		t.Errorf("String() = %q", s)
	}
	if _, ok := ParseDate(" 2024-03-05 "); !ok {
		t.Error("ParseDate should trim whitespace")
	}
}
