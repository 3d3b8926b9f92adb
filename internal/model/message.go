// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat session: messages,
// the append-only message log, and answer augmentation.
package model

import (
	"time"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Assistant"
	default:
		return string(s)
	}
}

// =============================================================================
// LAW REFERENCE
// =============================================================================

// LawReference is a citation to a statute returned alongside an answer.
type LawReference struct {
	Name   string `json:"name"`
	NameEn string `json:"name_en,omitempty"`
	URL    string `json:"url"`
}

// DisplayName prefers the English statute name when available.
func (r LawReference) DisplayName() string {
	if r.NameEn != "" {
		return r.NameEn
	}
	return r.Name
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// TimestampLayout is the local time-of-day format captured on each message.
const TimestampLayout = "15:04"

// Message is a single entry in the session log. Messages are immutable once
// appended; the ID is assigned by the Log.
type Message struct {
	ID        int    `json:"id"`
	Sender    Sender `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`

	// Answer metadata, set only on bot messages built from a backend reply.
	Confidence       *float64       `json:"confidence,omitempty"`
	NeedsExpert      bool           `json:"needs_expert,omitempty"`
	SuggestedActions []string       `json:"suggested_actions,omitempty"`
	LawReferences    []LawReference `json:"law_references,omitempty"`

	// IsExpertSuggestion marks the synthetic escalation entry appended after
	// an answer that requested a human expert.
	IsExpertSuggestion bool `json:"is_expert_suggestion,omitempty"`
}

// NewUserMessage creates a user message stamped with the current time.
func NewUserMessage(text string) Message {
	return Message{
		Sender:    SenderUser,
		Text:      text,
		Timestamp: now(),
	}
}

// NewBotMessage creates a plain bot message stamped with the current time.
func NewBotMessage(text string) Message {
	return Message{
		Sender:    SenderBot,
		Text:      text,
		Timestamp: now(),
	}
}

// nowFunc is swapped in tests for deterministic timestamps.
var nowFunc = time.Now

func now() string {
	return nowFunc().Format(TimestampLayout)
}
