// Package tui is the terminal dashboard: one screen hosting the task list,
// mood check-in, nudges, and the assistant flows. All state lives in the
// session store and dies with the process.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JDCAG/me-and-you/internal/assistant"
	"github.com/JDCAG/me-and-you/internal/dates"
	"github.com/JDCAG/me-and-you/internal/extract"
	"github.com/JDCAG/me-and-you/internal/nudge"
	"github.com/JDCAG/me-and-you/internal/store"
)

// Mood check-in options.
var (
	MoodOptions = []string{
		"🙂 Happy", "😊 Content", "😐 Neutral", "😟 Worried", "😠 Annoyed",
		"😢 Sad", "😴 Tired", "😵‍💫 Overwhelmed", "🤩 Excited", "🤔 Thoughtful",
	}
	SleepOptions = []string{"😴 Poorly", "😐 Okay", "👍 Great!"}
	FocusOptions = []string{"📉 Not at all", "📊 Somewhat", "📈 Very Focused"}
)

var priorityOptions = []string{
	store.PriorityNone, store.PriorityLow, store.PriorityMedium, store.PriorityHigh,
}

type mode int

const (
	modeList mode = iota
	modeAddTask
	modeDueDate
	modeMood
	modeCommand
	modeBrainDump
	modeDocument
	modeJournal
	modeSuggest
)

// mood check-in steps
const (
	moodStepMood = iota
	moodStepSleep
	moodStepFocus
)

// Model is the dashboard state.
type Model struct {
	session   *store.Session
	assistant *assistant.Assistant
	engine    nudge.Engine
	timeout   time.Duration
	today     dates.Date

	mode     mode
	selected int
	width    int
	height   int

	// add-task form
	descInput   textinput.Model
	dueInput    textinput.Model
	addField    int
	priorityIdx int

	// due-date edit for the selected task
	dueEditInput textinput.Model
	dueEditID    int

	// mood check-in
	moodStep     int
	moodSelected int
	moodPicks    [3]string

	// assistant inputs
	commandInput textinput.Model
	dumpInput    textarea.Model
	docInput     textinput.Model

	// suggestion review
	suggestions []assistant.Suggestion
	suggestIdx  int

	busy   bool
	output string
	err    error
}

// New builds the dashboard around an existing session.
func New(session *store.Session, a *assistant.Assistant, engine nudge.Engine, timeout time.Duration, today dates.Date) Model {
	desc := textinput.New()
	desc.Placeholder = "Task description"
	desc.Width = 40
	desc.CharLimit = 200

	due := textinput.New()
	due.Placeholder = "Due (tomorrow, next Friday, 2024-12-25, empty for none)"
	due.Width = 40
	due.CharLimit = 60

	dueEdit := textinput.New()
	dueEdit.Placeholder = "New due date phrase"
	dueEdit.Width = 40
	dueEdit.CharLimit = 60

	command := textinput.New()
	command.Placeholder = "Ask me anything, or tell me what to do..."
	command.Width = 60
	command.CharLimit = 300

	doc := textinput.New()
	doc.Placeholder = "Path to a .pdf, .csv, or .xlsx file"
	doc.Width = 60
	doc.CharLimit = 300

	dump := textarea.New()
	dump.Placeholder = "Everything on your mind..."
	dump.SetHeight(6)
	dump.SetWidth(70)
	dump.CharLimit = 4000
	dump.ShowLineNumbers = false

	return Model{
		session:      session,
		assistant:    a,
		engine:       engine,
		timeout:      timeout,
		today:        today,
		descInput:    desc,
		dueInput:     due,
		dueEditInput: dueEdit,
		commandInput: command,
		docInput:     doc,
		dumpInput:    dump,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// async oracle round-trip results
type commandDoneMsg struct {
	out assistant.CommandOutcome
	err error
}

type analysisDoneMsg struct {
	analysis assistant.Analysis
	label    string
	err      error
}

type journalDoneMsg struct {
	text string
	err  error
}

func (m Model) runCommand(command string) tea.Cmd {
	a, timeout, s, today := m.assistant, m.timeout, m.session, m.today
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		out, err := a.Command(ctx, command, s, today)
		return commandDoneMsg{out: out, err: err}
	}
}

func (m Model) runBrainDump(text string) tea.Cmd {
	a, timeout, today := m.assistant, m.timeout, m.today
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		analysis, err := a.BrainDump(ctx, text, today)
		return analysisDoneMsg{analysis: analysis, label: "Brain dump", err: err}
	}
}

func (m Model) runDocument(path string) tea.Cmd {
	a, timeout, today := m.assistant, m.timeout, m.today
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return analysisDoneMsg{label: "Document", err: err}
		}
		kind, ok := extract.KindForFilename(path)
		if !ok {
			return analysisDoneMsg{label: "Document", err: fmt.Errorf("unsupported file type: %s", path)}
		}
		text, err := extract.Extract(data, kind)
		if err != nil {
			return analysisDoneMsg{label: "Document", err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		analysis, err := a.AnalyzeDocument(ctx, path, text, today)
		return analysisDoneMsg{analysis: analysis, label: "Document", err: err}
	}
}

func (m Model) runJournal(entry string) tea.Cmd {
	a, timeout := m.assistant, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		text, err := a.ReflectJournal(ctx, entry)
		return journalDoneMsg{text: text, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commandDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			m.output = "The assistant is unavailable right now. Your tasks are untouched."
			return m, nil
		}
		m.err = nil
		var parts []string
		if msg.out.Prose != "" {
			parts = append(parts, msg.out.Prose)
		}
		if msg.out.Directive != nil && msg.out.Result.Message != "" {
			parts = append(parts, msg.out.Result.Message)
		}
		if msg.out.Directive != nil && len(msg.out.Result.Tasks) > 0 && !msg.out.Result.Applied {
			parts = append(parts, renderTaskLines(msg.out.Result.Tasks, m.today))
		}
		m.output = strings.Join(parts, "\n")
		m.selected = m.clampSelection()
		return m, nil

	case analysisDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			m.output = fmt.Sprintf("%s analysis failed: %v", msg.label, msg.err)
			return m, nil
		}
		m.err = nil
		m.output = msg.analysis.Text
		if len(msg.analysis.Suggestions) > 0 {
			m.suggestions = msg.analysis.Suggestions
			m.suggestIdx = 0
			m.mode = modeSuggest
		}
		return m, nil

	case journalDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			m.output = "Couldn't reach the assistant for a reflection. Your entry was not stored anywhere."
			return m, nil
		}
		m.err = nil
		m.output = msg.text
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			// Only quit is honored mid-flight.
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}
		switch m.mode {
		case modeAddTask:
			return m.updateAddTask(msg)
		case modeDueDate:
			return m.updateDueDate(msg)
		case modeMood:
			return m.updateMood(msg)
		case modeCommand:
			return m.updateCommand(msg)
		case modeBrainDump:
			return m.updateBrainDump(msg)
		case modeDocument:
			return m.updateDocument(msg)
		case modeJournal:
			return m.updateJournal(msg)
		case modeSuggest:
			return m.updateSuggest(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.session.Tasks()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		if m.selected < len(tasks)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "a":
		m.mode = modeAddTask
		m.addField = 0
		m.priorityIdx = 0
		m.descInput.SetValue("")
		m.dueInput.SetValue("")
		m.descInput.Focus()
	case "x", " ":
		if t, ok := m.selectedTask(); ok {
			next := store.StatusCompleted
			if t.Status == store.StatusCompleted {
				next = store.StatusPending
			}
			if err := m.session.SetStatus(t.ID, next); err != nil {
				m.err = err
			} else {
				m.output = fmt.Sprintf("%q is now %s.", t.Description, next)
			}
		}
	case "d":
		if t, ok := m.selectedTask(); ok {
			if err := m.session.RemoveTask(t.ID); err != nil {
				m.err = err
			} else {
				m.output = fmt.Sprintf("Deleted %q.", t.Description)
			}
			m.selected = m.clampSelection()
		}
	case "e":
		if t, ok := m.selectedTask(); ok {
			m.mode = modeDueDate
			m.dueEditID = t.ID
			m.dueEditInput.SetValue("")
			m.dueEditInput.Focus()
		}
	case "m":
		m.mode = modeMood
		m.moodStep = moodStepMood
		m.moodSelected = 0
		m.moodPicks = [3]string{}
	case ":", "c":
		m.mode = modeCommand
		m.commandInput.SetValue("")
		m.commandInput.Focus()
	case "b":
		m.mode = modeBrainDump
		m.dumpInput.SetValue("")
		m.dumpInput.Focus()
	case "o":
		m.mode = modeDocument
		m.docInput.SetValue("")
		m.docInput.Focus()
	case "g":
		m.mode = modeJournal
		m.dumpInput.SetValue("")
		m.dumpInput.Focus()
	}
	return m, nil
}

func (m Model) updateAddTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.descInput.Blur()
		m.dueInput.Blur()
		return m, nil
	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.addField = (m.addField + 1) % 3
		} else {
			m.addField = (m.addField + 2) % 3
		}
		m.descInput.Blur()
		m.dueInput.Blur()
		switch m.addField {
		case 0:
			m.descInput.Focus()
		case 1:
			m.dueInput.Focus()
		}
		return m, nil
	case "enter":
		return m.submitAddTask()
	}
	if m.addField == 2 {
		switch msg.String() {
		case "left", "h":
			m.priorityIdx = (m.priorityIdx + len(priorityOptions) - 1) % len(priorityOptions)
		case "right", "l":
			m.priorityIdx = (m.priorityIdx + 1) % len(priorityOptions)
		}
		return m, nil
	}
	var cmd tea.Cmd
	if m.addField == 0 {
		m.descInput, cmd = m.descInput.Update(msg)
	} else {
		m.dueInput, cmd = m.dueInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitAddTask() (tea.Model, tea.Cmd) {
	desc := strings.TrimSpace(m.descInput.Value())
	if desc == "" {
		m.err = fmt.Errorf("task description is required")
		return m, nil
	}
	var due *dates.Date
	duePhrase := m.dueInput.Value()
	if d, ok := dates.Resolve(duePhrase, m.today); ok {
		due = &d
	} else if !dates.Unspecified(duePhrase) {
		m.err = fmt.Errorf("couldn't understand the due date %q", duePhrase)
		return m, nil
	}
	category := m.classify(desc)
	task, err := m.session.AddTask(store.AddTaskInput{
		Description: desc,
		Due:         due,
		Priority:    priorityOptions[m.priorityIdx],
		Category:    category,
	})
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.output = fmt.Sprintf("Added %q (%s, due: %s).", task.Description, task.Category, store.FormatDue(task.Due))
	m.mode = modeList
	m.descInput.Blur()
	m.dueInput.Blur()
	return m, nil
}

func (m Model) updateDueDate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.dueEditInput.Blur()
		return m, nil
	case "enter":
		phrase := m.dueEditInput.Value()
		d, ok := dates.Resolve(phrase, m.today)
		if !ok {
			m.err = fmt.Errorf("couldn't understand the due date %q", phrase)
			return m, nil
		}
		if err := m.session.SetDueDate(m.dueEditID, d); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.output = fmt.Sprintf("Due date set to %s.", d)
		m.mode = modeList
		m.dueEditInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.dueEditInput, cmd = m.dueEditInput.Update(msg)
	return m, cmd
}

func (m Model) updateMood(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.moodStepOptions()
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "j", "down":
		if m.moodSelected < len(options)-1 {
			m.moodSelected++
		}
	case "k", "up":
		if m.moodSelected > 0 {
			m.moodSelected--
		}
	case "enter":
		m.moodPicks[m.moodStep] = options[m.moodSelected]
		if m.moodStep < moodStepFocus {
			m.moodStep++
			m.moodSelected = 0
			return m, nil
		}
		m.session.LogMood(m.moodPicks[moodStepMood], m.moodPicks[moodStepSleep], m.moodPicks[moodStepFocus])
		m.output = fmt.Sprintf("Mood logged: %s (sleep %s, focus %s).",
			m.moodPicks[moodStepMood], m.moodPicks[moodStepSleep], m.moodPicks[moodStepFocus])
		m.mode = modeList
	}
	return m, nil
}

func (m Model) moodStepOptions() []string {
	switch m.moodStep {
	case moodStepSleep:
		return SleepOptions
	case moodStepFocus:
		return FocusOptions
	default:
		return MoodOptions
	}
}

func (m Model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.commandInput.Blur()
		return m, nil
	case "enter":
		command := strings.TrimSpace(m.commandInput.Value())
		if command == "" {
			return m, nil
		}
		m.mode = modeList
		m.commandInput.Blur()
		m.busy = true
		m.output = "Thinking..."
		return m, m.runCommand(command)
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) updateBrainDump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.dumpInput.Blur()
		return m, nil
	case "ctrl+d":
		text := strings.TrimSpace(m.dumpInput.Value())
		if text == "" {
			return m, nil
		}
		m.mode = modeList
		m.dumpInput.Blur()
		m.busy = true
		m.output = "Reading your brain dump..."
		return m, m.runBrainDump(text)
	}
	var cmd tea.Cmd
	m.dumpInput, cmd = m.dumpInput.Update(msg)
	return m, cmd
}

func (m Model) updateDocument(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.docInput.Blur()
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.docInput.Value())
		if path == "" {
			return m, nil
		}
		m.mode = modeList
		m.docInput.Blur()
		m.busy = true
		m.output = "Reading the document..."
		return m, m.runDocument(path)
	}
	var cmd tea.Cmd
	m.docInput, cmd = m.docInput.Update(msg)
	return m, cmd
}

func (m Model) updateJournal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.dumpInput.Blur()
		return m, nil
	case "ctrl+d":
		entry := strings.TrimSpace(m.dumpInput.Value())
		if entry == "" {
			return m, nil
		}
		m.mode = modeList
		m.dumpInput.Blur()
		m.busy = true
		m.output = "Reflecting..."
		return m, m.runJournal(entry)
	}
	var cmd tea.Cmd
	m.dumpInput, cmd = m.dumpInput.Update(msg)
	return m, cmd
}

func (m Model) updateSuggest(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.suggestIdx >= len(m.suggestions) {
		m.mode = modeList
		m.suggestions = nil
		return m, nil
	}
	sug := m.suggestions[m.suggestIdx]
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.suggestions = nil
		return m, nil
	case "y", "enter":
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		task, err := m.assistant.AcceptSuggestion(ctx, m.session, sug)
		cancel()
		if err != nil {
			m.err = err
		} else {
			m.output = fmt.Sprintf("Added %q (%s, due: %s).", task.Description, task.Category, store.FormatDue(task.Due))
		}
		m.suggestIdx++
	case "n":
		m.suggestIdx++
	}
	if m.suggestIdx >= len(m.suggestions) {
		m.mode = modeList
		m.suggestions = nil
	}
	return m, nil
}

func (m Model) classify(desc string) string {
	if m.assistant == nil || m.assistant.Classifier == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	return m.assistant.Classifier.Classify(ctx, desc)
}

func (m Model) selectedTask() (store.Task, bool) {
	tasks := m.session.Tasks()
	if m.selected < 0 || m.selected >= len(tasks) {
		return store.Task{}, false
	}
	return tasks[m.selected], true
}

func (m Model) clampSelection() int {
	n := len(m.session.Tasks())
	if n == 0 {
		return 0
	}
	if m.selected >= n {
		return n - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// Run starts the dashboard and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
