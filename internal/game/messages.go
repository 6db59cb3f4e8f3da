package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/abromley/towerrak/internal/ui"
)

// MessageLog keeps the most recent game messages for the HUD.
type MessageLog struct {
	limit    int
	messages []ui.Message
}

// NewMessageLog creates a log that remembers at most limit lines.
func NewMessageLog(limit int) *MessageLog {
	return &MessageLog{limit: limit}
}

// Post adds a plain white line.
func (l *MessageLog) Post(format string, args ...any) {
	l.PostColored(tcell.ColorWhite, format, args...)
}

// PostColored adds a line in the given color.
func (l *MessageLog) PostColored(color tcell.Color, format string, args ...any) {
	l.messages = append(l.messages, ui.Message{Text: fmt.Sprintf(format, args...), Color: color})
	if len(l.messages) > l.limit {
		l.messages = l.messages[len(l.messages)-l.limit:]
	}
}

// Recent returns up to n of the newest lines, oldest first.
func (l *MessageLog) Recent(n int) []ui.Message {
	if n > len(l.messages) {
		n = len(l.messages)
	}
	return l.messages[len(l.messages)-n:]
}
