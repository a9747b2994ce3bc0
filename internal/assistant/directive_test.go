package assistant

import (
	"errors"
	"testing"
)

func TestParseDirective(t *testing.T) {
	d, err := ParseDirective("ACTION: ADD_TASK | DESCRIPTION: Submit report | DUE_DATE_STR: tomorrow")
	if err != nil {
		t.Fatal(err)
	}
	if d.Action != ActionAddTask {
		t.Errorf("action = %q", d.Action)
	}
	if got, _ := d.Param(ParamDescription); got != "Submit report" {
		t.Errorf("description = %q", got)
	}
	if got, _ := d.Param(ParamDueDateStr); got != "tomorrow" {
		t.Errorf("due = %q", got)
	}
}

func TestParseDirectivePrefixIsCaseSensitive(t *testing.T) {
	for _, line := range []string{
		"action: ADD_TASK | DESCRIPTION: x",
		"Let me add that for you.",
		"",
	} {
		if _, err := ParseDirective(line); !errors.Is(err, ErrNotDirective) {
			t.Errorf("ParseDirective(%q) = %v; want ErrNotDirective", line, err)
		}
	}
}

func TestParseDirectiveVerbNormalization(t *testing.T) {
	d, err := ParseDirective("ACTION: add_task | DESCRIPTION: x")
	if err != nil {
		t.Fatal(err)
	}
	if d.Action != ActionAddTask || !d.Known() {
		t.Errorf("lower-case known verb: action = %q, known = %t", d.Action, d.Known())
	}
	d, err = ParseDirective("ACTION: Snooze_Task | DESCRIPTION: x")
	if err != nil {
		t.Fatal(err)
	}
	// Unknown verbs keep their original spelling.
	if d.Action != "Snooze_Task" || d.Known() {
		t.Errorf("unknown verb: action = %q, known = %t", d.Action, d.Known())
	}
}

func TestParseDirectiveValueMayContainColon(t *testing.T) {
	d, err := ParseDirective("ACTION: ADD_TASK | DESCRIPTION: Call mom: birthday | DUE_DATE_STR: N/A")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := d.Param(ParamDescription); got != "Call mom: birthday" {
		t.Errorf("description = %q", got)
	}
}

func TestParseDirectiveNoParams(t *testing.T) {
	d, err := ParseDirective("ACTION: GENERAL_QUERY")
	if err != nil {
		t.Fatal(err)
	}
	if d.Action != ActionGeneralQuery || len(d.Params) != 0 {
		t.Errorf("d = %+v", d)
	}
	if _, ok := d.Param(ParamDescription); ok {
		t.Error("Param on missing key should report absent")
	}
}

func TestParseDirectiveSkipsMalformedSegments(t *testing.T) {
	d, err := ParseDirective("ACTION: LIST_TASKS | just a fragment | FILTER: today")
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Params) != 1 {
		t.Errorf("params = %v", d.Params)
	}
	if got, _ := d.Param(ParamFilter); got != "today" {
		t.Errorf("filter = %q", got)
	}
}

func TestSplitReply(t *testing.T) {
	reply := "Sure, I'll add that.\nACTION: ADD_TASK | DESCRIPTION: Buy milk | DUE_DATE_STR: N/A"
	prose, line, found := SplitReply(reply)
	if !found {
		t.Fatal("directive line not found")
	}
	if prose != "Sure, I'll add that." {
		t.Errorf("prose = %q", prose)
	}
	if line != "ACTION: ADD_TASK | DESCRIPTION: Buy milk | DUE_DATE_STR: N/A" {
		t.Errorf("line = %q", line)
	}
}

func TestSplitReplyLastDirectiveWins(t *testing.T) {
	reply := "ACTION: GENERAL_QUERY\nOn second thought:\nACTION: LIST_TASKS | FILTER: all"
	prose, line, found := SplitReply(reply)
	if !found || line != "ACTION: LIST_TASKS | FILTER: all" {
		t.Errorf("line = %q, found = %t", line, found)
	}
	if prose != "On second thought:" {
		t.Errorf("prose = %q", prose)
	}
}

func TestSplitReplyPureProse(t *testing.T) {
	prose, _, found := SplitReply("You have three tasks left today. Keep going!")
	if found {
		t.Error("found a directive in pure prose")
	}
	if prose != "You have three tasks left today. Keep going!" {
		t.Errorf("prose = %q", prose)
	}
}
