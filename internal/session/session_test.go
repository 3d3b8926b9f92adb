// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"
	"testing"

	"github.com/virtualesq/lexterm/internal/legalapi"
	"github.com/virtualesq/lexterm/internal/model"
)

func newTestSession() *Session {
	return New(model.NewLog(""), legalapi.CountryUSA, legalapi.UserTypeIndividual)
}

func floatPtr(v float64) *float64 { return &v }

func TestBeginRejectsEmptyText(t *testing.T) {
	s := newTestSession()

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, ok := s.Begin(text); ok {
			t.Errorf("Begin(%q) should be a no-op", text)
		}
	}
	if s.Log.Len() != 0 {
		t.Errorf("log grew to %d entries on rejected sends", s.Log.Len())
	}
	if s.InFlight() {
		t.Error("rejected send must not set the gate")
	}
}

func TestBeginAppendsUserMessageAndClearsBuffer(t *testing.T) {
	s := newTestSession()
	s.InputBuffer = "Hello"

	seq, ok := s.Begin(s.InputBuffer)
	if !ok || seq == 0 {
		t.Fatalf("Begin = (%d, %v), want an accepted exchange", seq, ok)
	}
	if !s.InFlight() {
		t.Error("gate should be set while the exchange is outstanding")
	}
	if s.InputBuffer != "" {
		t.Errorf("input buffer = %q, want cleared", s.InputBuffer)
	}

	last, _ := s.Log.Last()
	if last.Sender != model.SenderUser || last.Text != "Hello" {
		t.Errorf("last entry = %+v, want the user message", last)
	}
}

func TestBeginNoOpWhileInFlight(t *testing.T) {
	s := newTestSession()
	s.Begin("first")
	before := s.Log.Len()

	if _, ok := s.Begin("second"); ok {
		t.Error("second send while in flight must be a no-op")
	}
	if s.Log.Len() != before {
		t.Errorf("log length changed from %d to %d", before, s.Log.Len())
	}
}

func TestCommitAnswerHighConfidenceScenario(t *testing.T) {
	s := newTestSession()
	seq, _ := s.Begin("Hello")

	s.CommitAnswer(seq, &legalapi.ChatResponse{Reply: "Hi", Confidence: floatPtr(0.9)})

	if s.InFlight() {
		t.Error("gate must release after commit")
	}
	msgs := s.Log.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected user + bot, got %d messages", len(msgs))
	}
	bot := msgs[1]
	if bot.Sender != model.SenderBot || bot.Text != "Hi" {
		t.Errorf("bot message = %+v", bot)
	}
	if model.BucketOf(bot.Confidence) != model.ConfidenceHigh {
		t.Errorf("0.9 should render as high confidence")
	}
	if bot.IsExpertSuggestion {
		t.Error("no escalation expected")
	}
}

func TestCommitAnswerExpertScenario(t *testing.T) {
	s := newTestSession()
	seq, _ := s.Begin("Should I sue?")

	s.CommitAnswer(seq, &legalapi.ChatResponse{
		Reply:               "See a specialist",
		NeedsExpert:         true,
		SuggestedExpertType: "tax",
	})

	msgs := s.Log.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected user + reply + escalation, got %d", len(msgs))
	}
	if !msgs[2].IsExpertSuggestion || !strings.Contains(msgs[2].Text, "tax") {
		t.Errorf("escalation = %+v", msgs[2])
	}
}

func TestCommitFailureAppendsOneDiagnosticAndReleasesGate(t *testing.T) {
	s := newTestSession()
	seq, _ := s.Begin("Hello")

	s.CommitFailure(seq, legalapi.ErrTimeout, "http://localhost:8000")

	if s.InFlight() {
		t.Error("gate must release on failure too")
	}
	msgs := s.Log.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected user + diagnostic, got %d", len(msgs))
	}
	if msgs[1].Sender != model.SenderBot {
		t.Errorf("diagnostic sender = %q", msgs[1].Sender)
	}
}

func TestLateCompletionAfterTimeoutIsDiscarded(t *testing.T) {
	s := newTestSession()
	seq, _ := s.Begin("Hello")

	s.CommitFailure(seq, legalapi.ErrTimeout, "http://localhost:8000")
	before := s.Log.Len()

	// The transport resolves after the timeout diagnostic was committed.
	s.CommitAnswer(seq, &legalapi.ChatResponse{Reply: "late answer"})

	if s.Log.Len() != before {
		t.Errorf("late completion appended: log grew from %d to %d", before, s.Log.Len())
	}
}

func TestCompletionFromOlderExchangeIsDiscarded(t *testing.T) {
	s := newTestSession()
	oldSeq, _ := s.Begin("first")
	s.CommitFailure(oldSeq, legalapi.ErrTimeout, "")

	newSeq, _ := s.Begin("second")
	s.CommitAnswer(oldSeq, &legalapi.ChatResponse{Reply: "stale"})

	if last, _ := s.Log.Last(); last.Text == "stale" {
		t.Error("stale exchange committed its answer")
	}
	if s.Stale(newSeq) {
		t.Error("the current exchange should still be live")
	}
}

func TestClearInvalidatesOutstandingExchange(t *testing.T) {
	s := newTestSession()
	seq, _ := s.Begin("Hello")

	s.Clear()
	s.CommitAnswer(seq, &legalapi.ChatResponse{Reply: "ghost"})

	if s.Log.Len() != 0 {
		t.Errorf("cleared session gained %d messages", s.Log.Len())
	}
}

func TestNewSeedsWelcome(t *testing.T) {
	log := model.NewLog(model.DefaultWelcomeText)
	s := New(log, legalapi.CountryGeneral, legalapi.UserTypeIndividual)

	if s.Log.Len() != 1 {
		t.Fatalf("expected one welcome entry, got %d", s.Log.Len())
	}
	welcome, _ := s.Log.Last()
	if welcome.Sender != model.SenderBot {
		t.Errorf("welcome sender = %q", welcome.Sender)
	}
}

func TestSetCountryValidation(t *testing.T) {
	s := newTestSession()
	if s.SetCountry("France") {
		t.Error("unsupported country accepted")
	}
	if !s.SetCountry(legalapi.CountryUK) || s.Country != legalapi.CountryUK {
		t.Error("supported country rejected")
	}
}
