// Package store holds the state of one dashboard session: an ordered task
// list and an append-only mood log. Everything lives in memory and is owned
// by the caller; nothing survives process exit.
package store

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/JDCAG/me-and-you/internal/dates"
)

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
	timeNow     = func() time.Time { return time.Now().UTC() }
)

// Task statuses. A task only ever moves between these two.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task priorities as displayed. None is the manual-entry default; directive
// and suggestion adds default to Medium.
const (
	PriorityNone   = "None"
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task is one actionable item.
type Task struct {
	ID          int
	Description string
	Due         *dates.Date
	Priority    string
	Category    string
	Status      string
	CreatedAt   time.Time
}

// AddTaskInput carries the fields for a new task. Category is assigned by the
// caller (classifier) before the add; the store does not classify.
type AddTaskInput struct {
	Description string
	Due         *dates.Date
	Priority    string
	Category    string
}

// MoodEntry is one check-in. Append-only; never mutated or deleted.
type MoodEntry struct {
	ID        string
	Timestamp time.Time
	Mood      string
	Sleep     string
	Focus     string
}

// Session is the per-session state container. Not safe for concurrent use;
// the dashboard owns it from a single goroutine.
type Session struct {
	ID     string
	tasks  []Task
	moods  []MoodEntry
	lastID int
}

func NewSession() *Session {
	return &Session{ID: "ses_" + newULID()}
}

// AddTask appends a new pending task. The id is one past the current maximum,
// so ids are never reused after a delete.
func (s *Session) AddTask(in AddTaskInput) (*Task, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalid)
	}
	t := Task{
		ID:          s.nextID(),
		Description: desc,
		Due:         in.Due,
		Priority:    normalizePriority(in.Priority),
		Category:    strings.TrimSpace(in.Category),
		Status:      StatusPending,
		CreatedAt:   timeNow(),
	}
	s.tasks = append(s.tasks, t)
	return &s.tasks[len(s.tasks)-1], nil
}

// nextID is one past the highest id ever assigned, so deleting the newest
// task cannot hand its id to the next one.
func (s *Session) nextID() int {
	id := s.lastID
	for _, t := range s.tasks {
		if t.ID > id {
			id = t.ID
		}
	}
	s.lastID = id + 1
	return s.lastID
}

// SetStatus moves the task to pending or completed.
func (s *Session) SetStatus(id int, status string) error {
	if status != StatusPending && status != StatusCompleted {
		return fmt.Errorf("%w: unknown status %q", ErrInvalid, status)
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// SetDueDate replaces the task's due date.
func (s *Session) SetDueDate(id int, d dates.Date) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			due := d
			s.tasks[i].Due = &due
			return nil
		}
	}
	return ErrNotFound
}

// RemoveTask deletes the task. Its id is not reused.
func (s *Session) RemoveTask(id int) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Task returns a copy of the task with the given id.
func (s *Session) Task(id int) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Tasks returns a copy of all tasks in insertion order.
func (s *Session) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// FilterTasks returns the tasks matching pred, preserving insertion order.
func (s *Session) FilterTasks(pred func(Task) bool) []Task {
	var out []Task
	for _, t := range s.tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// Partition splits every task into exactly one of completed, overdue
// (pending with a due date strictly before today), or pending (everything
// else, including due today, future, and no due date). Order within each
// bucket follows insertion order.
func (s *Session) Partition(today dates.Date) (completed, overdue, pending []Task) {
	for _, t := range s.tasks {
		switch {
		case t.Status == StatusCompleted:
			completed = append(completed, t)
		case t.Due != nil && t.Due.Before(today):
			overdue = append(overdue, t)
		default:
			pending = append(pending, t)
		}
	}
	return completed, overdue, pending
}

// FindPending returns the first pending task whose description equals desc
// case-insensitively, in insertion order.
func (s *Session) FindPending(desc string) (Task, bool) {
	want := strings.ToLower(strings.TrimSpace(desc))
	for _, t := range s.tasks {
		if t.Status == StatusPending && strings.ToLower(t.Description) == want {
			return t, true
		}
	}
	return Task{}, false
}

// Find returns the first task of any status whose description equals desc
// case-insensitively.
func (s *Session) Find(desc string) (Task, bool) {
	want := strings.ToLower(strings.TrimSpace(desc))
	for _, t := range s.tasks {
		if strings.ToLower(t.Description) == want {
			return t, true
		}
	}
	return Task{}, false
}

// LogMood appends one mood check-in.
func (s *Session) LogMood(mood, sleep, focus string) MoodEntry {
	e := MoodEntry{
		ID:        "mood_" + newULID(),
		Timestamp: timeNow(),
		Mood:      strings.TrimSpace(mood),
		Sleep:     strings.TrimSpace(sleep),
		Focus:     strings.TrimSpace(focus),
	}
	s.moods = append(s.moods, e)
	return e
}

// MoodLog returns a copy of all check-ins, oldest first.
func (s *Session) MoodLog() []MoodEntry {
	out := make([]MoodEntry, len(s.moods))
	copy(out, s.moods)
	return out
}

// LastMood returns the most recent check-in.
func (s *Session) LastMood() (MoodEntry, bool) {
	if len(s.moods) == 0 {
		return MoodEntry{}, false
	}
	return s.moods[len(s.moods)-1], true
}

func normalizePriority(p string) string {
	switch strings.TrimSpace(strings.ToLower(p)) {
	case "low", "l":
		return PriorityLow
	case "medium", "med", "m", "normal":
		return PriorityMedium
	case "high", "h":
		return PriorityHigh
	default:
		return PriorityNone
	}
}

func newULID() string {
	t := ulid.Timestamp(timeNow())
	entropy := ulid.Monotonic(randReader{}, 0)
	id, err := ulid.New(t, entropy)
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", timeNow().UnixNano())
	}
	return id.String()
}
