// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the per-session chat state: the input buffer, the
// jurisdiction context, and the single-request-at-a-time exchange discipline.
package session

import (
	"strings"

	"github.com/virtualesq/lexterm/internal/legalapi"
	"github.com/virtualesq/lexterm/internal/model"
)

// =============================================================================
// SESSION STATE
// =============================================================================

// Session holds the state of one chat session. It lives for the lifetime of
// the view and is never persisted. All mutation happens on the UI control
// loop; Session is not safe for concurrent use.
type Session struct {
	Log *model.Log

	Country  legalapi.Country
	UserType legalapi.UserType

	// InputBuffer is the staged, not-yet-sent user text.
	InputBuffer string

	// inFlight gates the dispatcher: at most one outstanding request.
	inFlight bool

	// seq numbers each exchange so completions that arrive after the
	// exchange already ended (late success after a timeout diagnostic,
	// or after /clear) are discarded instead of appended.
	seq int
}

// New creates a session around log with the given defaults. The log is reset
// once here, seeding the welcome entry.
func New(log *model.Log, country legalapi.Country, userType legalapi.UserType) *Session {
	if !country.Valid() {
		country = legalapi.CountryGeneral
	}
	if !userType.Valid() {
		userType = legalapi.UserTypeIndividual
	}
	log.Reset()
	return &Session{
		Log:      log,
		Country:  country,
		UserType: userType,
	}
}

// InFlight reports whether an exchange is outstanding. The UI disables the
// send trigger while this is true.
func (s *Session) InFlight() bool {
	return s.inFlight
}

// Seq returns the current exchange number.
func (s *Session) Seq() int {
	return s.seq
}

// SetCountry switches the jurisdiction context. Invalid values are ignored.
func (s *Session) SetCountry(c legalapi.Country) bool {
	if !c.Valid() {
		return false
	}
	s.Country = c
	return true
}

// SetUserType switches the asker profile. Invalid values are ignored.
func (s *Session) SetUserType(u legalapi.UserType) bool {
	if !u.Valid() {
		return false
	}
	s.UserType = u
	return true
}

// =============================================================================
// EXCHANGE LIFECYCLE
// =============================================================================

// Begin starts an exchange for text. It returns the exchange number and true
// when the request should be issued; it is a no-op returning false when text
// trims empty or another exchange is outstanding. On success the user message
// is appended and the input buffer cleared.
func (s *Session) Begin(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" || s.inFlight {
		return 0, false
	}

	s.inFlight = true
	s.seq++
	s.Log.Append(model.NewUserMessage(text))
	s.InputBuffer = ""
	return s.seq, true
}

// Stale reports whether a completion for exchange seq should be discarded:
// either a newer exchange started, or this one already ended.
func (s *Session) Stale(seq int) bool {
	return seq != s.seq || !s.inFlight
}

// CommitAnswer ends exchange seq with a backend answer, appending the
// augmented messages in one commit. Stale completions are dropped silently.
func (s *Session) CommitAnswer(seq int, resp *legalapi.ChatResponse) {
	if s.Stale(seq) {
		return
	}
	s.inFlight = false
	s.Log.AppendAll(model.Augment(ToAnswer(resp)))
}

// CommitFailure ends exchange seq with a failure, appending the single
// diagnostic message. Stale completions are dropped silently. The gate is
// released on every path; the session can never be left stuck in-flight.
func (s *Session) CommitFailure(seq int, err error, origin string) {
	if s.Stale(seq) {
		return
	}
	s.inFlight = false
	s.Log.Append(model.NewBotMessage(Diagnose(err, origin)))
}

// AppendNotice adds an informational assistant message outside the
// question/answer flow, such as law listings or command output. It never
// touches the in-flight gate.
func (s *Session) AppendNotice(text string) {
	s.Log.Append(model.NewBotMessage(text))
}

// Abort releases the gate without committing anything. Used when the session
// is torn down mid-exchange.
func (s *Session) Abort() {
	s.inFlight = false
}

// Clear resets the log to a fresh session. Any outstanding exchange becomes
// stale.
func (s *Session) Clear() {
	s.inFlight = false
	s.seq++
	s.Log.Reset()
}

// =============================================================================
// PAYLOAD CONVERSION
// =============================================================================

// ToAnswer converts a wire response into the augmenter's input.
func ToAnswer(resp *legalapi.ChatResponse) model.Answer {
	if resp == nil {
		return model.Answer{}
	}

	refs := make([]model.LawReference, 0, len(resp.LawReferences))
	for _, r := range resp.LawReferences {
		refs = append(refs, model.LawReference{
			Name:   r.Name,
			NameEn: r.NameEn,
			URL:    r.URL,
		})
	}

	return model.Answer{
		Reply:               resp.Reply,
		Confidence:          resp.Confidence,
		NeedsExpert:         resp.NeedsExpert,
		SuggestedExpertType: resp.SuggestedExpertType,
		SuggestedActions:    resp.SuggestedActions,
		LawReferences:       refs,
	}
}
