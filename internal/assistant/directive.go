// Package assistant turns oracle replies into task-list actions. The one
// bit-exact contract in the system is the directive line the prompt teaches
// the oracle to emit:
//
//	ACTION: <VERB> | KEY1: value1 | KEY2: value2
//
// Malformed oracle output is expected, not exceptional: a line without the
// ACTION: prefix is "not a directive" and the whole reply is treated as
// prose, and an unknown verb is preserved so the executor can acknowledge it
// instead of failing.
package assistant

import (
	"errors"
	"strings"
)

// ErrNotDirective signals that a line is plain prose, not a directive.
var ErrNotDirective = errors.New("not a directive")

// Directive action verbs.
const (
	ActionAddTask      = "ADD_TASK"
	ActionCompleteTask = "COMPLETE_TASK"
	ActionListTasks    = "LIST_TASKS"
	ActionCheckStatus  = "CHECK_STATUS"
	ActionGeneralQuery = "GENERAL_QUERY"
)

var knownActions = map[string]bool{
	ActionAddTask:      true,
	ActionCompleteTask: true,
	ActionListTasks:    true,
	ActionCheckStatus:  true,
	ActionGeneralQuery: true,
}

// Directive is one parsed command. Params hold the raw string values; the
// executor resolves them.
type Directive struct {
	Action string
	Params map[string]string
}

// Known reports whether the action verb is one the executor implements.
func (d *Directive) Known() bool {
	return knownActions[d.Action]
}

// Param returns the trimmed value for key, and whether it is present and
// non-empty.
func (d *Directive) Param(key string) (string, bool) {
	v, ok := d.Params[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// ParseDirective parses one directive line. The ACTION: prefix is
// case-sensitive; a missing prefix yields ErrNotDirective. The verb is
// normalized to upper case when it matches a known action and kept verbatim
// otherwise. Parameter segments split on the first colon only, so values may
// themselves contain colons.
func ParseDirective(line string) (*Directive, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "ACTION:") {
		return nil, ErrNotDirective
	}
	segments := strings.Split(trimmed, "|")
	verb := strings.TrimSpace(strings.TrimPrefix(segments[0], "ACTION:"))
	if upper := strings.ToUpper(verb); knownActions[upper] {
		verb = upper
	}
	d := &Directive{Action: verb, Params: map[string]string{}}
	for _, seg := range segments[1:] {
		kv := strings.SplitN(seg, ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if key == "" {
			continue
		}
		d.Params[key] = strings.TrimSpace(kv[1])
	}
	return d, nil
}

// SplitReply separates an oracle reply into its conversational prose and the
// directive line, if any. When several lines carry the ACTION: prefix the
// last one wins, matching the "structured command as the last line" contract.
func SplitReply(reply string) (prose, directiveLine string, found bool) {
	var proseLines []string
	for _, line := range strings.Split(reply, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "ACTION:") {
			directiveLine = strings.TrimSpace(line)
			found = true
			continue
		}
		proseLines = append(proseLines, line)
	}
	prose = strings.TrimSpace(strings.Join(proseLines, "\n"))
	return prose, directiveLine, found
}
