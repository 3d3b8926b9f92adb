// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// DefaultWelcomeText seeds the log at session start.
const DefaultWelcomeText = "👋 Hello! I can answer questions about Korean law for foreign " +
	"residents and businesses. Ask me anything, or pick a quick question below."

// =============================================================================
// MESSAGE LOG
// =============================================================================

// Log is the append-only message log for one session. IDs are assigned on
// append and strictly increase in insertion order. Entries are never mutated
// or removed; Reset starts a fresh session.
//
// The log is owned by the UI control loop and is not safe for concurrent use.
type Log struct {
	messages []Message
	nextID   int

	welcome  string
	onAppend func()
}

// NewLog creates an empty log that seeds welcome as a bot message on Reset.
// An empty welcome string disables seeding.
func NewLog(welcome string) *Log {
	return &Log{nextID: 1, welcome: welcome}
}

// SetObserver registers a hook fired after every mutation. Used to pin the
// viewport to the newest entry; nil disables it.
func (l *Log) SetObserver(fn func()) {
	l.onAppend = fn
}

// Append assigns the next id to msg, appends it, and returns the id.
func (l *Log) Append(msg Message) int {
	msg.ID = l.nextID
	l.nextID++
	l.messages = append(l.messages, msg)
	l.notify()
	return msg.ID
}

// AppendAll appends msgs in order as a single commit. The observer fires once.
func (l *Log) AppendAll(msgs []Message) {
	for i := range msgs {
		msgs[i].ID = l.nextID
		l.nextID++
		l.messages = append(l.messages, msgs[i])
	}
	if len(msgs) > 0 {
		l.notify()
	}
}

// Reset clears the log and reseeds the welcome entry. Called once at session
// creation and again on /clear.
func (l *Log) Reset() {
	l.messages = nil
	l.nextID = 1
	if l.welcome != "" {
		l.Append(NewBotMessage(l.welcome))
	} else {
		l.notify()
	}
}

// Messages returns the log entries in insertion order. The returned slice
// must not be modified.
func (l *Log) Messages() []Message {
	return l.messages
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.messages)
}

// Last returns the newest entry, or false if the log is empty.
func (l *Log) Last() (Message, bool) {
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[len(l.messages)-1], true
}

func (l *Log) notify() {
	if l.onAppend != nil {
		l.onAppend()
	}
}
