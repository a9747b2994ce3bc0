package assistant

import (
	"context"
	"fmt"

	"github.com/JDCAG/me-and-you/internal/classify"
	"github.com/JDCAG/me-and-you/internal/dates"
	"github.com/JDCAG/me-and-you/internal/oracle"
	"github.com/JDCAG/me-and-you/internal/store"
)

// Assistant runs the oracle-backed flows: free-text commands, brain dumps,
// document analysis, and journal reflection. Only directive execution and
// accepted suggestions mutate the session; when the oracle is unreachable the
// session is untouched and the error wraps oracle.ErrUnavailable.
type Assistant struct {
	Oracle     oracle.Client
	Classifier classify.Classifier
}

func New(client oracle.Client, classifier classify.Classifier) *Assistant {
	return &Assistant{Oracle: client, Classifier: classifier}
}

// CommandOutcome is the result of one free-text command round trip.
type CommandOutcome struct {
	// Prose is the conversational part of the reply, directive line stripped.
	Prose string
	// Directive is the parsed directive, nil when the reply was pure prose.
	Directive *Directive
	// Result is the executed directive's outcome; zero when Directive is nil.
	Result Result
}

// Command sends the user's request to the oracle with the current task list
// as context, then executes the directive from the reply, if any.
func (a *Assistant) Command(ctx context.Context, command string, s *store.Session, today dates.Date) (CommandOutcome, error) {
	if a.Oracle == nil {
		return CommandOutcome{}, fmt.Errorf("%w: no client configured", oracle.ErrUnavailable)
	}
	reply, err := a.Oracle.Complete(ctx, commandPrompt(s.ContextSummary(), command))
	if err != nil {
		return CommandOutcome{}, fmt.Errorf("command: %w", err)
	}

	prose, line, found := SplitReply(reply)
	out := CommandOutcome{Prose: prose}
	if !found {
		return out, nil
	}
	d, err := ParseDirective(line)
	if err != nil {
		// A mangled directive line reads as prose.
		return out, nil
	}
	out.Directive = d
	out.Result = Executor{Classifier: a.Classifier}.Execute(ctx, d, s, today)
	return out, nil
}

// Analysis is the outcome of a brain dump or document flow: the oracle's
// prose plus any task suggestions scraped from it.
type Analysis struct {
	Text        string
	Suggestions []Suggestion
}

// BrainDump sends a free-form mind sweep to the oracle and scrapes task
// suggestions from the reflection.
func (a *Assistant) BrainDump(ctx context.Context, text string, today dates.Date) (Analysis, error) {
	if a.Oracle == nil {
		return Analysis{}, fmt.Errorf("%w: no client configured", oracle.ErrUnavailable)
	}
	reply, err := a.Oracle.Complete(ctx, brainDumpPrompt(text))
	if err != nil {
		return Analysis{}, fmt.Errorf("brain dump: %w", err)
	}
	return Analysis{Text: reply, Suggestions: ParseBrainDumpSuggestions(reply, today)}, nil
}

// AnalyzeDocument summarizes extracted document text and scrapes action
// items. The text is capped before prompting; callers pass it uncut.
func (a *Assistant) AnalyzeDocument(ctx context.Context, name, text string, today dates.Date) (Analysis, error) {
	if a.Oracle == nil {
		return Analysis{}, fmt.Errorf("%w: no client configured", oracle.ErrUnavailable)
	}
	reply, err := a.Oracle.Complete(ctx, documentPrompt(name, text))
	if err != nil {
		return Analysis{}, fmt.Errorf("analyze document: %w", err)
	}
	return Analysis{Text: reply, Suggestions: ParseDocumentSuggestions(reply, today)}, nil
}

// ReflectJournal returns a supportive reflection on a journal entry. The
// entry itself is never stored.
func (a *Assistant) ReflectJournal(ctx context.Context, entry string) (string, error) {
	if a.Oracle == nil {
		return "", fmt.Errorf("%w: no client configured", oracle.ErrUnavailable)
	}
	reply, err := a.Oracle.Complete(ctx, journalPrompt(entry))
	if err != nil {
		return "", fmt.Errorf("reflect journal: %w", err)
	}
	return reply, nil
}

// AcceptSuggestion adds a scraped suggestion to the session as a pending
// Medium-priority task. Brain dump suggestions are categorized by the
// assistant's classifier; document suggestions default to admin unless they
// look work-related.
func (a *Assistant) AcceptSuggestion(ctx context.Context, s *store.Session, sug Suggestion) (*store.Task, error) {
	var category string
	switch sug.Source {
	case SourceDocument:
		category = documentCategory(sug.Description)
	default:
		category = classify.CategoryPersonal
		if a.Classifier != nil {
			category = a.Classifier.Classify(ctx, sug.Description)
		}
	}
	return s.AddTask(store.AddTaskInput{
		Description: sug.Description,
		Due:         sug.Due,
		Priority:    store.PriorityMedium,
		Category:    category,
	})
}
