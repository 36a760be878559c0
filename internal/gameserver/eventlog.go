package gameserver

import (
	"time"

	"github.com/google/uuid"

	"github.com/cory-johannsen/wonders/internal/save"
)

// EventKind classifies an event log entry for display.
type EventKind string

const (
	KindInfo      EventKind = "info"
	KindSuccess   EventKind = "success"
	KindWarning   EventKind = "warning"
	KindLevelUp   EventKind = "level"
	KindDiscovery EventKind = "discovery"
	KindTime      EventKind = "time"
)

// Event is one entry in the game's event log.
type Event struct {
	ID       string
	Kind     EventKind
	Message  string
	At       time.Time
	GameTime string
}

// EventLog is a bounded, oldest-first history. Once full, appending drops
// the oldest entry.
//
// EventLog is not safe for concurrent use; Game serializes access.
type EventLog struct {
	limit   int
	entries []Event
}

// NewEventLog creates an empty log holding at most limit entries.
//
// Precondition: limit >= 1.
func NewEventLog(limit int) *EventLog {
	return &EventLog{limit: limit}
}

// Append records an event and returns it.
func (l *EventLog) Append(kind EventKind, msg string, at time.Time, gameTime string) Event {
	e := Event{ID: uuid.NewString(), Kind: kind, Message: msg, At: at, GameTime: gameTime}
	l.entries = append(l.entries, e)
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append(l.entries[:0:0], l.entries[over:]...)
	}
	return e
}

// Entries returns a copy of every entry, oldest first.
func (l *EventLog) Entries() []Event {
	return append([]Event(nil), l.entries...)
}

// Len returns the number of entries.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Clear drops every entry.
func (l *EventLog) Clear() {
	l.entries = nil
}

// Tail returns the newest n entries in persisted form, oldest first.
func (l *EventLog) Tail(n int) []save.Event {
	start := max(len(l.entries)-n, 0)
	out := make([]save.Event, 0, len(l.entries)-start)
	for _, e := range l.entries[start:] {
		out = append(out, save.Event{
			ID:       e.ID,
			Kind:     string(e.Kind),
			Message:  e.Message,
			At:       e.At,
			GameTime: e.GameTime,
		})
	}
	return out
}

// Restore replaces the log with persisted entries, keeping the newest that fit.
func (l *EventLog) Restore(events []save.Event) {
	l.entries = nil
	for _, e := range events {
		l.entries = append(l.entries, Event{
			ID:       e.ID,
			Kind:     EventKind(e.Kind),
			Message:  e.Message,
			At:       e.At,
			GameTime: e.GameTime,
		})
	}
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = l.entries[over:]
	}
}
