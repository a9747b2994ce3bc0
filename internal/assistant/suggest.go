package assistant

import (
	"regexp"
	"strings"

	"github.com/JDCAG/me-and-you/internal/classify"
	"github.com/JDCAG/me-and-you/internal/dates"
)

// Suggestion is one candidate task scraped from an oracle analysis. It is
// inert until the user accepts it; nothing touches the session on parse.
type Suggestion struct {
	Description string
	Due         *dates.Date
	DuePhrase   string
	Source      SuggestionSource
}

// SuggestionSource records which flow produced a suggestion; the default
// category on accept depends on it.
type SuggestionSource int

const (
	SourceBrainDump SuggestionSource = iota
	SourceDocument
)

var (
	docTaskRe   = regexp.MustCompile(`(?i)Task: (.*) \(Due: (.*)\)`)
	brainTaskRe = regexp.MustCompile(`- Potential Task: (.*?)(?:\s*\(Due: (.*?)\))?$`)
)

// ParseDocumentSuggestions scrapes "Task: ... (Due: ...)" lines from a
// document analysis. A due of "Not specified" (or anything unresolvable)
// leaves the suggestion undated.
func ParseDocumentSuggestions(analysis string, today dates.Date) []Suggestion {
	var out []Suggestion
	for _, line := range strings.Split(analysis, "\n") {
		m := docTaskRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		desc := strings.TrimSpace(m[1])
		if desc == "" {
			continue
		}
		out = append(out, newSuggestion(desc, m[2], SourceDocument, today))
	}
	return out
}

// ParseBrainDumpSuggestions scrapes "- Potential Task: ..." lines from a
// brain dump analysis. The "(Due: ...)" tail is optional.
func ParseBrainDumpSuggestions(analysis string, today dates.Date) []Suggestion {
	var out []Suggestion
	for _, line := range strings.Split(analysis, "\n") {
		m := brainTaskRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		desc := strings.TrimSpace(m[1])
		if desc == "" {
			continue
		}
		out = append(out, newSuggestion(desc, m[2], SourceBrainDump, today))
	}
	return out
}

func newSuggestion(desc, duePhrase string, src SuggestionSource, today dates.Date) Suggestion {
	s := Suggestion{Description: desc, DuePhrase: strings.TrimSpace(duePhrase), Source: src}
	if due, ok := dates.Resolve(s.DuePhrase, today); ok {
		s.Due = &due
	}
	return s
}

// documentCategory picks the category for an accepted document suggestion.
// Document action items are filed as admin unless they look like work.
func documentCategory(desc string) string {
	lower := strings.ToLower(desc)
	for _, kw := range []string{"work", "meeting", "project"} {
		if strings.Contains(lower, kw) {
			return classify.CategoryWork
		}
	}
	return classify.CategoryAdmin
}
