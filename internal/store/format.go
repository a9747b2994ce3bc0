package store

import (
	"fmt"
	"strings"

	"github.com/JDCAG/me-and-you/internal/dates"
)

const contextMaxChars = 3800

func cleanDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\n", " ")
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "(untitled)"
	}
	return desc
}

// FormatDue renders a due date for display, "Not set" when absent.
func FormatDue(d *dates.Date) string {
	if d == nil {
		return "Not set"
	}
	return d.String()
}

// FormatDueShort renders a compact due date for list rows.
func FormatDueShort(d *dates.Date, today dates.Date) string {
	if d == nil {
		return "-"
	}
	if d.Year == today.Year {
		return d.Time().Format("Jan 02")
	}
	return d.Time().Format("Jan 02 2006")
}

// ContextLine renders one task the way the assistant prompt expects it:
//
//	- <description> (Due: YYYY-MM-DD) (Status: pending)
//
// The due segment is omitted when the task has no due date.
func ContextLine(t Task) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(cleanDescription(t.Description))
	if t.Due != nil {
		fmt.Fprintf(&b, " (Due: %s)", t.Due)
	}
	fmt.Fprintf(&b, " (Status: %s)", t.Status)
	return b.String()
}

// ContextSummary renders the full task list as prompt context, truncated to a
// bounded size so a runaway list cannot blow up the prompt.
func (s *Session) ContextSummary() string {
	if len(s.tasks) == 0 {
		return "No tasks currently in the list."
	}
	lines := make([]string, 0, len(s.tasks))
	for _, t := range s.tasks {
		lines = append(lines, ContextLine(t))
	}
	return truncateContext(strings.Join(lines, "\n"))
}

func truncateContext(s string) string {
	s = strings.TrimRight(s, "\n")
	runes := []rune(s)
	if len(runes) <= contextMaxChars {
		return s
	}
	suffix := "\n… (truncated)"
	suffixRunes := []rune(suffix)
	limit := contextMaxChars - len(suffixRunes)
	if limit < 1 {
		return string(runes[:contextMaxChars])
	}
	return string(runes[:limit]) + suffix
}

// PriorityAbbrev is the single-letter priority marker for table rows.
func (t Task) PriorityAbbrev() string {
	switch t.Priority {
	case PriorityLow:
		return "L"
	case PriorityMedium:
		return "M"
	case PriorityHigh:
		return "H"
	default:
		return "-"
	}
}

// StatusAbbrev is the single-letter status marker for table rows.
func (t Task) StatusAbbrev() string {
	if t.Status == StatusCompleted {
		return "✓"
	}
	return "·"
}
