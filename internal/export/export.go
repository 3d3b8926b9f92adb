// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes the current session's transcript to a file. It is a
// within-session convenience: nothing written here is ever read back by
// lexterm.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/virtualesq/lexterm/internal/legalapi"
	"github.com/virtualesq/lexterm/internal/model"
	"github.com/virtualesq/lexterm/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Transcript is the exportable view of one session.
type Transcript struct {
	Messages   []model.Message
	Country    legalapi.Country
	UserType   legalapi.UserType
	ExportedAt time.Time
}

// Exporter converts a transcript to one output format.
type Exporter interface {
	// Export renders the transcript and returns the file content.
	Export(t *Transcript) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g. ".md").
	FileExtension() string
}

// ForFormat returns the exporter for a config format name.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "txt", "text":
		return &TextExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// =============================================================================
// EXPORT TO FILE
// =============================================================================

// ExportToFile renders the transcript and writes it under dir (the current
// directory when empty). Returns the output path.
func ExportToFile(t *Transcript, exporter Exporter, dir string) (string, error) {
	if t == nil || len(t.Messages) == 0 {
		return "", errors.New("nothing to export: the session has no messages")
	}
	if t.ExportedAt.IsZero() {
		t.ExportedAt = time.Now()
	}

	content, err := exporter.Export(t)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if dir == "" {
		dir = "."
	}
	filename := fmt.Sprintf("legal-chat_%s%s",
		t.ExportedAt.Format("20060102_150405"), exporter.FileExtension())
	path := filepath.Join(dir, filename)

	if err := util.AtomicWriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}
	return path, nil
}

// confidenceLine renders the render-time badge for a bot message, empty when
// the message carries no score.
func confidenceLine(m model.Message) string {
	bucket := model.BucketOf(m.Confidence)
	if bucket == model.ConfidenceNone {
		return ""
	}
	return fmt.Sprintf("%s (%.2f)", bucket.Label(), *m.Confidence)
}

// senderHeading labels a message for text-ish formats.
func senderHeading(m model.Message) string {
	if m.IsExpertSuggestion {
		return "Assistant (expert suggestion)"
	}
	return m.Sender.DisplayName()
}

// joinActions flattens suggested actions for single-line formats.
func joinActions(actions []string) string {
	return strings.Join(actions, "; ")
}
