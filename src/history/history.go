// Package history holds the conversation transcript a session accumulates,
// plus optional persistence backends for it.
package history

import (
	"fmt"
	"strings"
)

// Roles recorded in a transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one (role, text) entry in a conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Log is an append-only, process-lifetime conversation transcript. It is
// owned by exactly one session; the session serializes access, so the log
// itself carries no locking. Hosts driving a session from multiple
// goroutines must serialize their calls.
type Log struct {
	turns []Turn
}

// NewLog returns an empty transcript.
func NewLog() *Log {
	return &Log{}
}

// Append records one turn. Turns are never removed.
func (l *Log) Append(role, content string) {
	l.turns = append(l.turns, Turn{Role: role, Content: content})
}

// Turns returns a snapshot of the transcript in order.
func (l *Log) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len reports the number of recorded turns.
func (l *Log) Len() int {
	return len(l.turns)
}

// Reset drops the transcript, starting a fresh conversation.
func (l *Log) Reset() {
	l.turns = nil
}

// Render formats the transcript as the User:/Assistant: text block the
// model is prompted with. Empty logs render as an empty string.
func (l *Log) Render() string {
	if len(l.turns) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, turn := range l.turns {
		switch turn.Role {
		case RoleUser:
			sb.WriteString("User: ")
		case RoleAssistant:
			sb.WriteString("Assistant: ")
		default:
			sb.WriteString(fmt.Sprintf("%s: ", turn.Role))
		}
		sb.WriteString(turn.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
