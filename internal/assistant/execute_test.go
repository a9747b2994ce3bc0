package assistant

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/JDCAG/me-and-you/internal/classify"
	"github.com/JDCAG/me-and-you/internal/dates"
	"github.com/JDCAG/me-and-you/internal/store"
)

var testToday = dates.Date{Year: 2024, Month: time.June, Day: 12}

func mustParse(t *testing.T, line string) *Directive {
	t.Helper()
	d, err := ParseDirective(line)
	if err != nil {
		t.Fatalf("ParseDirective(%q): %v", line, err)
	}
	return d
}

func exec(t *testing.T, s *store.Session, line string) Result {
	t.Helper()
	e := Executor{Classifier: classify.Keyword{}}
	return e.Execute(context.Background(), mustParse(t, line), s, testToday)
}

func TestExecuteAddTask(t *testing.T) {
	s := store.NewSession()
	res := exec(t, s, "ACTION: ADD_TASK | DESCRIPTION: Submit report | DUE_DATE_STR: tomorrow")
	if !res.Applied || len(res.Tasks) != 1 {
		t.Fatalf("res = %+v", res)
	}
	task := res.Tasks[0]
	if task.Description != "Submit report" {
		t.Errorf("description = %q", task.Description)
	}
	if task.Category != classify.CategoryWork {
		t.Errorf("category = %q; want work (keyword: report)", task.Category)
	}
	if task.Priority != store.PriorityMedium {
		t.Errorf("priority = %q", task.Priority)
	}
	if task.Status != store.StatusPending {
		t.Errorf("status = %q", task.Status)
	}
	want := testToday.AddDays(1)
	if task.Due == nil || *task.Due != want {
		t.Errorf("due = %v; want %v", task.Due, want)
	}
}

func TestExecuteAddTaskUnresolvableDue(t *testing.T) {
	s := store.NewSession()
	res := exec(t, s, "ACTION: ADD_TASK | DESCRIPTION: Call dentist | DUE_DATE_STR: whenever works")
	if !res.Applied {
		t.Fatalf("res = %+v", res)
	}
	if res.Tasks[0].Due != nil {
		t.Errorf("due = %v; want none", res.Tasks[0].Due)
	}
	if !strings.Contains(res.Message, "whenever works") {
		t.Errorf("message should mention the unparsed phrase, got %q", res.Message)
	}
}

func TestExecuteAddTaskExplicitlyUndated(t *testing.T) {
	s := store.NewSession()
	res := exec(t, s, "ACTION: ADD_TASK | DESCRIPTION: Buy milk | DUE_DATE_STR: N/A")
	if !res.Applied || res.Tasks[0].Due != nil {
		t.Fatalf("res = %+v", res)
	}
	if strings.Contains(res.Message, "couldn't make sense") {
		t.Errorf("N/A should not trigger the date advisory: %q", res.Message)
	}
}

func TestExecuteAddTaskMissingDescription(t *testing.T) {
	s := store.NewSession()
	res := exec(t, s, "ACTION: ADD_TASK | DUE_DATE_STR: tomorrow")
	if res.Applied {
		t.Errorf("res = %+v", res)
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("session gained tasks: %v", s.Tasks())
	}
}

func TestExecuteCompleteTask(t *testing.T) {
	s := store.NewSession()
	if _, err := s.AddTask(store.AddTaskInput{Description: "Buy milk"}); err != nil {
		t.Fatal(err)
	}
	res := exec(t, s, "ACTION: COMPLETE_TASK | DESCRIPTION: buy MILK")
	if !res.Applied {
		t.Fatalf("res = %+v", res)
	}
	got, _ := s.Task(1)
	if got.Status != store.StatusCompleted {
		t.Errorf("status = %q", got.Status)
	}
}

func TestExecuteCompleteTaskNotFoundLeavesStoreUnchanged(t *testing.T) {
	s := store.NewSession()
	if _, err := s.AddTask(store.AddTaskInput{Description: "Buy milk"}); err != nil {
		t.Fatal(err)
	}
	before := s.Tasks()
	res := exec(t, s, "ACTION: COMPLETE_TASK | DESCRIPTION: Buy bread")
	if res.Applied {
		t.Errorf("res = %+v", res)
	}
	after := s.Tasks()
	if len(after) != len(before) || after[0] != before[0] {
		t.Errorf("session changed: before %v, after %v", before, after)
	}
}

func TestExecuteListTasksFilters(t *testing.T) {
	s := store.NewSession()
	yesterday := testToday.AddDays(-1)
	tomorrow := testToday.AddDays(1)
	today := testToday
	add := func(desc string, due *dates.Date, category string) {
		if _, err := s.AddTask(store.AddTaskInput{Description: desc, Due: due, Category: category}); err != nil {
			t.Fatal(err)
		}
	}
	add("Pay overdue bill", &yesterday, "admin")
	add("Standup", &today, "work")
	add("Plan trip", &tomorrow, "personal")
	add("Water plants", nil, "personal")
	done, _ := s.AddTask(store.AddTaskInput{Description: "Old chore", Due: &yesterday})
	if err := s.SetStatus(done.ID, store.StatusCompleted); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		line string
		want []string
	}{
		{"ACTION: LIST_TASKS | FILTER: overdue", []string{"Pay overdue bill"}},
		{"ACTION: LIST_TASKS | FILTER: today", []string{"Standup"}},
		{"ACTION: LIST_TASKS | FILTER: all", []string{"Pay overdue bill", "Standup", "Plan trip", "Water plants"}},
		{"ACTION: LIST_TASKS | FILTER: personal", []string{"Plan trip", "Water plants"}},
		{"ACTION: LIST_TASKS", []string{"Pay overdue bill", "Standup", "Plan trip", "Water plants"}},
	}
	for _, tc := range cases {
		res := exec(t, s, tc.line)
		if res.Applied {
			t.Errorf("%s: listing should not mark state changed", tc.line)
		}
		var got []string
		for _, task := range res.Tasks {
			got = append(got, task.Description)
		}
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.line, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.line, got, tc.want)
				break
			}
		}
	}

	res := exec(t, s, "ACTION: LIST_TASKS | FILTER: groceries")
	if len(res.Tasks) != 0 || !strings.Contains(res.Message, "No tasks found") {
		t.Errorf("empty filter result = %+v", res)
	}
}

func TestExecuteCheckStatusAnyStatus(t *testing.T) {
	s := store.NewSession()
	task, _ := s.AddTask(store.AddTaskInput{Description: "Ship release"})
	if err := s.SetStatus(task.ID, store.StatusCompleted); err != nil {
		t.Fatal(err)
	}
	res := exec(t, s, "ACTION: CHECK_STATUS | DESCRIPTION: ship release")
	if res.Applied || len(res.Tasks) != 1 {
		t.Fatalf("res = %+v", res)
	}
	if !strings.Contains(res.Message, "completed") {
		t.Errorf("message = %q", res.Message)
	}
}

func TestExecuteGeneralQueryAndUnknown(t *testing.T) {
	s := store.NewSession()
	res := exec(t, s, "ACTION: GENERAL_QUERY")
	if res.Applied || res.Message == "" {
		t.Errorf("general query res = %+v", res)
	}
	res = exec(t, s, "ACTION: SNOOZE_TASK | DESCRIPTION: x")
	if res.Applied || !strings.Contains(res.Message, "SNOOZE_TASK") {
		t.Errorf("unknown verb res = %+v", res)
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("session changed: %v", s.Tasks())
	}
}
