package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/JDCAG/me-and-you/internal/classify"
	"github.com/JDCAG/me-and-you/internal/dates"
	"github.com/JDCAG/me-and-you/internal/store"
)

// Directive parameter keys.
const (
	ParamDescription = "DESCRIPTION"
	ParamDueDateStr  = "DUE_DATE_STR"
	ParamFilter      = "FILTER"
)

// Result is the outcome of executing one directive. Applied is true only when
// the session state actually changed; a failed lookup or a pure query leaves
// it false.
type Result struct {
	Message string
	Tasks   []store.Task
	Applied bool
}

// Executor applies directives to a session. Execution is total: every
// directive, including unknown verbs and missing parameters, produces a
// Result, never an error.
type Executor struct {
	Classifier classify.Classifier
}

// Execute applies d to the session against the given reference day.
func (e Executor) Execute(ctx context.Context, d *Directive, s *store.Session, today dates.Date) Result {
	switch d.Action {
	case ActionAddTask:
		return e.addTask(ctx, d, s, today)
	case ActionCompleteTask:
		return e.completeTask(d, s)
	case ActionListTasks:
		return e.listTasks(d, s, today)
	case ActionCheckStatus:
		return e.checkStatus(d, s)
	case ActionGeneralQuery:
		return Result{Message: "Got it."}
	default:
		return Result{Message: fmt.Sprintf("The assistant suggested an action I don't recognize: %s", d.Action)}
	}
}

func (e Executor) addTask(ctx context.Context, d *Directive, s *store.Session, today dates.Date) Result {
	desc, ok := d.Param(ParamDescription)
	if !ok {
		return Result{Message: "The assistant tried to add a task but didn't say which one."}
	}
	dueStr, _ := d.Param(ParamDueDateStr)

	var duePtr *dates.Date
	var advisory string
	if due, resolved := dates.Resolve(dueStr, today); resolved {
		duePtr = &due
	} else if !dates.Unspecified(dueStr) {
		advisory = fmt.Sprintf(" I couldn't make sense of the due date %q, so the task has none.", dueStr)
	}

	category := classify.CategoryPersonal
	if e.Classifier != nil {
		category = e.Classifier.Classify(ctx, desc)
	}

	task, err := s.AddTask(store.AddTaskInput{
		Description: desc,
		Due:         duePtr,
		Priority:    store.PriorityMedium,
		Category:    category,
	})
	if err != nil {
		return Result{Message: fmt.Sprintf("Couldn't add that task: %v.", err)}
	}
	return Result{
		Message: fmt.Sprintf("Added %q to your list (due: %s).%s", task.Description, store.FormatDue(task.Due), advisory),
		Tasks:   []store.Task{*task},
		Applied: true,
	}
}

func (e Executor) completeTask(d *Directive, s *store.Session) Result {
	desc, ok := d.Param(ParamDescription)
	if !ok {
		return Result{Message: "The assistant tried to complete a task but didn't say which one."}
	}
	task, found := s.FindPending(desc)
	if !found {
		return Result{Message: fmt.Sprintf("I couldn't find a pending task matching %q.", desc)}
	}
	if err := s.SetStatus(task.ID, store.StatusCompleted); err != nil {
		return Result{Message: fmt.Sprintf("Couldn't complete %q: %v.", task.Description, err)}
	}
	task.Status = store.StatusCompleted
	return Result{
		Message: fmt.Sprintf("Nice! %q is marked as complete.", task.Description),
		Tasks:   []store.Task{task},
		Applied: true,
	}
}

func (e Executor) listTasks(d *Directive, s *store.Session, today dates.Date) Result {
	filter, ok := d.Param(ParamFilter)
	if !ok {
		filter = "all"
	}
	filter = strings.ToLower(strings.TrimSpace(filter))

	var matched []store.Task
	switch filter {
	case "today":
		matched = s.FilterTasks(func(t store.Task) bool {
			return t.Status == store.StatusPending && t.Due != nil && *t.Due == today
		})
	case "overdue":
		matched = s.FilterTasks(func(t store.Task) bool {
			return t.Status == store.StatusPending && t.Due != nil && t.Due.Before(today)
		})
	case "all":
		matched = s.FilterTasks(func(t store.Task) bool {
			return t.Status == store.StatusPending
		})
	default:
		// Free-text filter: substring match over pending descriptions and
		// categories.
		matched = s.FilterTasks(func(t store.Task) bool {
			return t.Status == store.StatusPending &&
				(strings.Contains(strings.ToLower(t.Description), filter) ||
					strings.Contains(strings.ToLower(t.Category), filter))
		})
	}

	if len(matched) == 0 {
		return Result{Message: fmt.Sprintf("No tasks found matching %q.", filter)}
	}
	noun := "tasks"
	if len(matched) == 1 {
		noun = "task"
	}
	return Result{
		Message: fmt.Sprintf("Found %d %s matching %q.", len(matched), noun, filter),
		Tasks:   matched,
	}
}

func (e Executor) checkStatus(d *Directive, s *store.Session) Result {
	desc, ok := d.Param(ParamDescription)
	if !ok {
		return Result{Message: "The assistant tried to check a task but didn't say which one."}
	}
	task, found := s.Find(desc)
	if !found {
		return Result{Message: fmt.Sprintf("I couldn't find a task matching %q.", desc)}
	}
	return Result{
		Message: fmt.Sprintf("%q is %s (due: %s).", task.Description, task.Status, store.FormatDue(task.Due)),
		Tasks:   []store.Task{task},
	}
}
