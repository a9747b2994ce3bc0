package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JDCAG/me-and-you/internal/dates"
	"github.com/JDCAG/me-and-you/internal/store"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)

	nudgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("150"))

	outputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("me+you — "+m.today.String()) + "\n\n")

	for _, n := range m.engine.Generate(m.session, m.today) {
		b.WriteString(nudgeStyle.Render(n) + "\n")
	}

	b.WriteString(m.viewTasks())

	if last, ok := m.session.LastMood(); ok {
		b.WriteString(fmt.Sprintf("\nLast check-in: %s (sleep %s, focus %s)\n", last.Mood, last.Sleep, last.Focus))
	}

	switch m.mode {
	case modeAddTask:
		b.WriteString(m.viewAddTask())
	case modeDueDate:
		b.WriteString("\n" + sectionStyle.Render("Change due date") + "\n" + m.dueEditInput.View() + "\n")
	case modeMood:
		b.WriteString(m.viewMood())
	case modeCommand:
		b.WriteString("\n" + sectionStyle.Render("Assistant") + "\n" + m.commandInput.View() + "\n")
	case modeBrainDump:
		b.WriteString("\n" + sectionStyle.Render("Brain dump") + "\n" + m.dumpInput.View() + "\n")
	case modeDocument:
		b.WriteString("\n" + sectionStyle.Render("Analyze a document") + "\n" + m.docInput.View() + "\n")
	case modeJournal:
		b.WriteString("\n" + sectionStyle.Render("Journal") + "\n" + m.dumpInput.View() + "\n")
	case modeSuggest:
		b.WriteString(m.viewSuggest())
	}

	if m.output != "" {
		b.WriteString("\n" + outputStyle.Render(m.output) + "\n")
	}
	if m.err != nil {
		b.WriteString(errStyle.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(m.helpLine()) + "\n")
	return b.String()
}

func (m Model) viewTasks() string {
	tasks := m.session.Tasks()
	if len(tasks) == 0 {
		return "\nNo tasks yet. Press a to add one.\n"
	}
	var b strings.Builder
	b.WriteString("\n" + sectionStyle.Render("Tasks") + "\n")
	for i, t := range tasks {
		line := fmt.Sprintf("%s %s [%s] %-10s %-9s %s",
			t.StatusAbbrev(), t.PriorityAbbrev(), fmt.Sprintf("%2d", t.ID),
			store.FormatDueShort(t.Due, m.today), t.Category, t.Description)
		switch {
		case i == m.selected && m.mode == modeList:
			line = selectedStyle.Render(line)
		case t.Status == store.StatusCompleted:
			line = doneStyle.Render(line)
		case t.Due != nil && t.Due.Before(m.today):
			line = overdueStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewAddTask() string {
	var b strings.Builder
	b.WriteString("\n" + sectionStyle.Render("Add task") + "\n")
	b.WriteString(m.descInput.View() + "\n")
	b.WriteString(m.dueInput.View() + "\n")
	priority := "Priority: " + priorityOptions[m.priorityIdx]
	if m.addField == 2 {
		priority = selectedStyle.Render(priority + "  ◂ ▸")
	}
	b.WriteString(priority + "\n")
	return b.String()
}

func (m Model) viewMood() string {
	headers := []string{"How are you feeling today?", "How did you sleep?", "How focused do you feel?"}
	var b strings.Builder
	b.WriteString("\n" + sectionStyle.Render(headers[m.moodStep]) + "\n")
	for i, opt := range m.moodStepOptions() {
		line := "  " + opt
		if i == m.moodSelected {
			line = selectedStyle.Render("▸ " + opt)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewSuggest() string {
	if m.suggestIdx >= len(m.suggestions) {
		return ""
	}
	sug := m.suggestions[m.suggestIdx]
	var b strings.Builder
	b.WriteString("\n" + sectionStyle.Render(fmt.Sprintf("Suggested task %d of %d", m.suggestIdx+1, len(m.suggestions))) + "\n")
	due := "no due date"
	if sug.Due != nil {
		due = "due " + sug.Due.String()
	}
	b.WriteString(fmt.Sprintf("  %s (%s)\n", sug.Description, due))
	return b.String()
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeAddTask:
		return "tab next field · enter save · esc cancel"
	case modeDueDate:
		return "enter save · esc cancel"
	case modeMood:
		return "j/k choose · enter next · esc cancel"
	case modeCommand, modeDocument:
		return "enter send · esc cancel"
	case modeBrainDump, modeJournal:
		return "ctrl+d send · esc cancel"
	case modeSuggest:
		return "y add · n skip · esc dismiss all"
	default:
		if m.busy {
			return "working..."
		}
		return "a add · x toggle · d delete · e due · m mood · c assistant · b brain dump · o document · g journal · q quit"
	}
}

func renderTaskLines(tasks []store.Task, today dates.Date) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("  %s %s %s (%s)",
			t.StatusAbbrev(), store.FormatDueShort(t.Due, today), t.Description, t.Category))
	}
	return strings.Join(lines, "\n")
}
