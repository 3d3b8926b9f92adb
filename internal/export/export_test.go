// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/virtualesq/lexterm/internal/legalapi"
	"github.com/virtualesq/lexterm/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func sampleTranscript() *Transcript {
	bot := model.NewBotMessage("Under the Labor Standards Act, notice is required.")
	bot.Confidence = floatPtr(0.85)
	bot.LawReferences = []model.LawReference{
		{Name: "근로기준법", NameEn: "Labor Standards Act", URL: "https://www.law.go.kr/영문법령/근로기준법"},
	}
	bot.SuggestedActions = []string{"Labor Standards checklist", "Find labor lawyer"}

	esc := model.NewBotMessage("Would you like to talk to a labor expert?")
	esc.IsExpertSuggestion = true

	msgs := []model.Message{model.NewUserMessage("Can I be fired without notice?"), bot, esc}
	for i := range msgs {
		msgs[i].ID = i + 1
	}

	return &Transcript{
		Messages:   msgs,
		Country:    legalapi.CountryGeneral,
		UserType:   legalapi.UserTypeIndividual,
		ExportedAt: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestMarkdownExport(t *testing.T) {
	out, err := (&MarkdownExporter{}).Export(sampleTranscript())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"# Legal Assistant Transcript",
		"Can I be fired without notice?",
		"[Labor Standards Act](https://www.law.go.kr/영문법령/근로기준법)",
		"high confidence (0.85)",
		"Labor Standards checklist",
		"Assistant (expert suggestion)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestJSONExportRoundTrips(t *testing.T) {
	out, err := (&JSONExporter{}).Export(sampleTranscript())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var doc struct {
		Country  string          `json:"country"`
		Messages []model.Message `json:"messages"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if doc.Country != "general" || len(doc.Messages) != 3 {
		t.Errorf("doc = %+v", doc)
	}
	if !doc.Messages[2].IsExpertSuggestion {
		t.Error("escalation flag lost in export")
	}
}

func TestTextExport(t *testing.T) {
	out, err := (&TextExporter{}).Export(sampleTranscript())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(string(out), "ref: Labor Standards Act") {
		t.Errorf("text export missing reference line:\n%s", out)
	}
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportToFile(sampleTranscript(), &MarkdownExporter{}, dir)
	if err != nil {
		t.Fatalf("ExportToFile: %v", err)
	}
	if filepath.Ext(path) != ".md" {
		t.Errorf("path = %q, want .md extension", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestExportToFileRejectsEmptySession(t *testing.T) {
	_, err := ExportToFile(&Transcript{}, &MarkdownExporter{}, t.TempDir())
	if err == nil {
		t.Error("expected an error for an empty session")
	}
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"md", "markdown", "json", "txt", "text"} {
		if _, err := ForFormat(format); err != nil {
			t.Errorf("ForFormat(%q): %v", format, err)
		}
	}
	if _, err := ForFormat("pdf"); err == nil {
		t.Error("unknown format accepted")
	}
}
