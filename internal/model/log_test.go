// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "testing"

func TestLogAppendAssignsIncreasingIDs(t *testing.T) {
	log := NewLog("")

	ids := []int{
		log.Append(NewUserMessage("one")),
		log.Append(NewBotMessage("two")),
		log.Append(NewUserMessage("three")),
	}

	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Errorf("id %d (%d) not greater than id %d (%d)", i, ids[i], i-1, ids[i-1])
		}
	}

	msgs := log.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	for i, m := range msgs {
		if m.ID != ids[i] {
			t.Errorf("message %d: stored id %d, returned id %d", i, m.ID, ids[i])
		}
	}
}

func TestLogAppendAllKeepsOrder(t *testing.T) {
	log := NewLog("")
	log.Append(NewUserMessage("question"))

	log.AppendAll([]Message{
		NewBotMessage("answer"),
		NewBotMessage("escalation"),
	})

	msgs := log.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].ID <= msgs[i-1].ID {
			t.Errorf("ids not strictly increasing at %d: %d then %d", i, msgs[i-1].ID, msgs[i].ID)
		}
	}
}

func TestLogResetSeedsWelcome(t *testing.T) {
	log := NewLog("welcome aboard")
	log.Append(NewUserMessage("hello"))
	log.Append(NewBotMessage("hi"))

	log.Reset()

	msgs := log.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected only the welcome entry, got %d messages", len(msgs))
	}
	if msgs[0].Sender != SenderBot || msgs[0].Text != "welcome aboard" {
		t.Errorf("unexpected welcome entry: %+v", msgs[0])
	}
	if msgs[0].ID != 1 {
		t.Errorf("welcome id after reset = %d, want 1", msgs[0].ID)
	}
}

func TestLogResetWithoutWelcome(t *testing.T) {
	log := NewLog("")
	log.Append(NewUserMessage("hello"))

	log.Reset()

	if log.Len() != 0 {
		t.Errorf("expected empty log, got %d messages", log.Len())
	}
}

func TestLogObserverFiresPerCommit(t *testing.T) {
	log := NewLog("")
	fired := 0
	log.SetObserver(func() { fired++ })

	log.Append(NewUserMessage("one"))
	if fired != 1 {
		t.Errorf("after Append: observer fired %d times, want 1", fired)
	}

	log.AppendAll([]Message{NewBotMessage("a"), NewBotMessage("b")})
	if fired != 2 {
		t.Errorf("after AppendAll: observer fired %d times, want 2", fired)
	}

	log.AppendAll(nil)
	if fired != 2 {
		t.Errorf("empty AppendAll should not notify, fired %d times", fired)
	}
}

func TestLogLast(t *testing.T) {
	log := NewLog("")
	if _, ok := log.Last(); ok {
		t.Error("Last on empty log should report not ok")
	}

	log.Append(NewUserMessage("first"))
	log.Append(NewBotMessage("second"))

	last, ok := log.Last()
	if !ok || last.Text != "second" {
		t.Errorf("Last = %+v ok=%v, want the second entry", last, ok)
	}
}
