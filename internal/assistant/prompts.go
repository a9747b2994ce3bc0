package assistant

import (
	"fmt"
	"strings"
)

// The prompts below are the other half of the parsing contract in this
// package: commandPrompt teaches the directive line that ParseDirective
// expects, and the brain-dump and document prompts teach the suggestion
// line formats that suggest.go scrapes. Change them together or not at all.

const commandPromptFormat = `You are a friendly personal assistant managing the user's task list.

Current tasks:
%s

The user said: %q

Reply conversationally in one or two short sentences. If the request needs a
task list action, append EXACTLY ONE line at the end of your reply in one of
these formats (and no other):

ACTION: ADD_TASK | DESCRIPTION: <task description> | DUE_DATE_STR: <due date phrase or N/A>
ACTION: COMPLETE_TASK | DESCRIPTION: <exact task description>
ACTION: LIST_TASKS | FILTER: <today, overdue, all, or a keyword>
ACTION: CHECK_STATUS | DESCRIPTION: <exact task description>
ACTION: GENERAL_QUERY

Examples:
User: "remind me to submit the report tomorrow"
ACTION: ADD_TASK | DESCRIPTION: Submit the report | DUE_DATE_STR: tomorrow

User: "I finished buying milk"
ACTION: COMPLETE_TASK | DESCRIPTION: Buy milk

User: "what's due today?"
ACTION: LIST_TASKS | FILTER: today

If no task list action is needed, use GENERAL_QUERY.`

const brainDumpPromptFormat = `The user has written a brain dump of everything on their mind. Read it with
care, then:

1. Reflect back the main themes in two or three warm, non-judgmental
   sentences.
2. List any concrete, actionable tasks you can spot, one per line, in EXACTLY
   this format:

- Potential Task: <short task description> (Due: <date phrase if mentioned>)

Omit the (Due: ...) part when no timing is mentioned. If there are no
actionable tasks, say so and list none.

Brain dump:
%s`

const documentPromptFormat = `Summarize the following document for the user in three or four sentences,
then list any action items it implies, one per line, in EXACTLY this format:

Task: <short task description> (Due: <YYYY-MM-DD or Not specified>)

Document name: %s

Document text:
%s`

const journalPromptFormat = `The user has shared a private journal entry. Respond as a gentle,
encouraging companion: acknowledge what they're feeling, reflect back one
thing that stood out, and offer one small, concrete suggestion if it feels
natural. Keep it under five sentences. Never give medical advice.

Journal entry:
%s`

// maxDocumentChars bounds how much extracted document text goes into a
// prompt.
const maxDocumentChars = 10000

func commandPrompt(taskContext, command string) string {
	return fmt.Sprintf(commandPromptFormat, taskContext, command)
}

func brainDumpPrompt(text string) string {
	return fmt.Sprintf(brainDumpPromptFormat, strings.TrimSpace(text))
}

func documentPrompt(name, text string) string {
	text = strings.TrimSpace(text)
	if len(text) > maxDocumentChars {
		text = text[:maxDocumentChars]
	}
	return fmt.Sprintf(documentPromptFormat, name, text)
}

func journalPrompt(entry string) string {
	return fmt.Sprintf(journalPromptFormat, strings.TrimSpace(entry))
}
