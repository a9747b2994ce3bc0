// Package nudge derives advisory messages from the current task list and
// mood log. Nudges are non-blocking hints; generating them never mutates
// anything.
package nudge

import (
	"fmt"
	"strings"

	"github.com/JDCAG/me-and-you/internal/dates"
	"github.com/JDCAG/me-and-you/internal/store"
)

// DefaultCompanyWindowDays is how far ahead a "company" task counts as
// imminent for the kitchen nudge.
const DefaultCompanyWindowDays = 3

// Engine generates nudges. The zero value uses the default company window.
type Engine struct {
	// CompanyWindowDays widens or narrows the kitchen/company rule's
	// lookahead; zero or negative means the default.
	CompanyWindowDays int
}

// Generate returns the advisory messages for the session as of today using
// the default engine.
func Generate(s *store.Session, today dates.Date) []string {
	return Engine{}.Generate(s, today)
}

// Generate returns the advisory messages for the session as of today.
//
// Rules are evaluated independently and every applicable one is included, in
// this fixed order: per-task due-soon notices, one overdue summary, one
// kitchen/company co-occurrence suggestion, one low-energy suggestion driven
// by the latest mood check-in. The result is empty when nothing applies.
func (e Engine) Generate(s *store.Session, today dates.Date) []string {
	window := e.CompanyWindowDays
	if window <= 0 {
		window = DefaultCompanyWindowDays
	}
	var nudges []string
	nudges = append(nudges, dueSoon(s, today)...)
	if n, ok := overdueSummary(s, today); ok {
		nudges = append(nudges, n)
	}
	if n, ok := kitchenBeforeCompany(s, today, window); ok {
		nudges = append(nudges, n)
	}
	if n, ok := lowEnergySuggestion(s); ok {
		nudges = append(nudges, n)
	}
	return nudges
}

// dueSoon emits one notice per pending task due today or tomorrow, in store
// insertion order.
func dueSoon(s *store.Session, today dates.Date) []string {
	tomorrow := today.AddDays(1)
	var out []string
	for _, t := range s.Tasks() {
		if t.Status != store.StatusPending || t.Due == nil {
			continue
		}
		switch *t.Due {
		case today:
			out = append(out, fmt.Sprintf("⏰ %q is due today.", t.Description))
		case tomorrow:
			out = append(out, fmt.Sprintf("🔜 %q is due tomorrow.", t.Description))
		}
	}
	return out
}

func overdueSummary(s *store.Session, today dates.Date) (string, bool) {
	n := 0
	for _, t := range s.Tasks() {
		if t.Status == store.StatusPending && t.Due != nil && t.Due.Before(today) {
			n++
		}
	}
	if n == 0 {
		return "", false
	}
	noun := "tasks"
	if n == 1 {
		noun = "task"
	}
	return fmt.Sprintf("⚠️ You have %d overdue %s. Worth a look when you get a moment.", n, noun), true
}

// kitchenBeforeCompany fires when a pending task mentions the kitchen and
// any task mentions company arriving within the next few days.
func kitchenBeforeCompany(s *store.Session, today dates.Date, windowDays int) (string, bool) {
	windowEnd := today.AddDays(windowDays)
	tasks := s.Tasks()
	var kitchen, company *store.Task
	for i, t := range tasks {
		lower := strings.ToLower(t.Description)
		if kitchen == nil && t.Status == store.StatusPending && strings.Contains(lower, "kitchen") {
			kitchen = &tasks[i]
		}
		if company == nil && strings.Contains(lower, "company") &&
			t.Due != nil && !t.Due.Before(today) && !t.Due.After(windowEnd) {
			company = &tasks[i]
		}
	}
	if kitchen == nil || company == nil {
		return "", false
	}
	return fmt.Sprintf("💡 %q is coming up soon — maybe knock out %q before then?",
		company.Description, kitchen.Description), true
}

// lowEnergySuggestion reads the most recent mood check-in and, when focus or
// sleep looks rough, points at the easiest pending task.
func lowEnergySuggestion(s *store.Session) (string, bool) {
	last, ok := s.LastMood()
	if !ok {
		return "", false
	}
	lowFocus := strings.Contains(last.Focus, "Not at all")
	badSleep := strings.Contains(last.Sleep, "Poorly")
	if !lowFocus && !badSleep {
		return "", false
	}
	for _, t := range s.Tasks() {
		if t.Status == store.StatusPending && t.Priority == store.PriorityLow {
			return fmt.Sprintf("🌱 Low-energy day? %q is a small one — an easy win to start with.", t.Description), true
		}
	}
	return "🌱 Rough one today. Be gentle with yourself — even a short break counts.", true
}
