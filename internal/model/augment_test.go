// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestAugmentPlainReply(t *testing.T) {
	msgs := Augment(Answer{Reply: "Hi", Confidence: floatPtr(0.9)})

	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.Sender != SenderBot || m.Text != "Hi" {
		t.Errorf("unexpected reply message: %+v", m)
	}
	if m.Confidence == nil || *m.Confidence != 0.9 {
		t.Errorf("confidence not carried: %v", m.Confidence)
	}
	if m.IsExpertSuggestion {
		t.Error("plain reply must not be marked as an escalation")
	}
}

func TestAugmentNeedsExpertAppendsEscalation(t *testing.T) {
	msgs := Augment(Answer{
		Reply:               "See a specialist",
		NeedsExpert:         true,
		SuggestedExpertType: "tax",
	})

	if len(msgs) != 2 {
		t.Fatalf("expected reply + escalation, got %d messages", len(msgs))
	}
	if msgs[0].Text != "See a specialist" || msgs[0].IsExpertSuggestion {
		t.Errorf("first message should be the plain reply: %+v", msgs[0])
	}
	esc := msgs[1]
	if !esc.IsExpertSuggestion {
		t.Error("second message must carry IsExpertSuggestion")
	}
	if esc.Sender != SenderBot {
		t.Errorf("escalation sender = %q, want bot", esc.Sender)
	}
	if !strings.Contains(esc.Text, "tax") {
		t.Errorf("escalation text should mention the expert type: %q", esc.Text)
	}
}

func TestAugmentDefaults(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   func(t *testing.T, msgs []Message)
	}{
		{
			name:   "empty reply falls back",
			answer: Answer{},
			want: func(t *testing.T, msgs []Message) {
				if msgs[0].Text != NoReplyFallback {
					t.Errorf("text = %q, want fallback", msgs[0].Text)
				}
			},
		},
		{
			name:   "missing expert type defaults to legal",
			answer: Answer{Reply: "x", NeedsExpert: true},
			want: func(t *testing.T, msgs []Message) {
				if len(msgs) != 2 || !strings.Contains(msgs[1].Text, DefaultExpertType) {
					t.Errorf("escalation should mention %q: %+v", DefaultExpertType, msgs)
				}
			},
		},
		{
			name:   "no confidence stays nil",
			answer: Answer{Reply: "x"},
			want: func(t *testing.T, msgs []Message) {
				if msgs[0].Confidence != nil {
					t.Errorf("confidence = %v, want nil", msgs[0].Confidence)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, Augment(tt.answer))
		})
	}
}

func TestBucketBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		score *float64
		want  ConfidenceBucket
	}{
		{"nil has no bucket", nil, ConfidenceNone},
		{"0.71 is high", floatPtr(0.71), ConfidenceHigh},
		{"0.70 is medium, not high", floatPtr(0.70), ConfidenceMedium},
		{"0.41 is medium", floatPtr(0.41), ConfidenceMedium},
		{"0.40 is low, not medium", floatPtr(0.40), ConfidenceLow},
		{"0.9 is high", floatPtr(0.9), ConfidenceHigh},
		{"0 is low", floatPtr(0), ConfidenceLow},
		{"1 is high", floatPtr(1), ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BucketOf(tt.score); got != tt.want {
				t.Errorf("BucketOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBucketLabels(t *testing.T) {
	if ConfidenceNone.Label() != "" {
		t.Error("no bucket should have no label")
	}
	if ConfidenceHigh.Label() == "" || ConfidenceLow.Label() == "" {
		t.Error("real buckets need labels")
	}
}
