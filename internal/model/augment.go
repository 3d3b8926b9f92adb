// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "fmt"

// Fallback strings used when the backend omits a field.
const (
	NoReplyFallback   = "No response received. Please try again."
	DefaultExpertType = "legal"
)

// Answer is the decoded payload of one backend reply, independent of the
// wire format.
type Answer struct {
	Reply               string
	Confidence          *float64
	NeedsExpert         bool
	SuggestedExpertType string
	SuggestedActions    []string
	LawReferences       []LawReference
}

// Augment expands one answer into the messages to commit: the reply entry,
// plus exactly one escalation entry when the backend asked for an expert.
// Both are produced in the same call so the log commits them together.
func Augment(a Answer) []Message {
	reply := a.Reply
	if reply == "" {
		reply = NoReplyFallback
	}

	msg := NewBotMessage(reply)
	msg.Confidence = a.Confidence
	msg.NeedsExpert = a.NeedsExpert
	msg.SuggestedActions = a.SuggestedActions
	msg.LawReferences = a.LawReferences

	out := []Message{msg}

	if a.NeedsExpert {
		expertType := a.SuggestedExpertType
		if expertType == "" {
			expertType = DefaultExpertType
		}
		esc := NewBotMessage(fmt.Sprintf(
			"💼 This looks like something a %s expert should weigh in on. "+
				"Would you like me to connect you with a specialist?", expertType))
		esc.IsExpertSuggestion = true
		out = append(out, esc)
	}

	return out
}
