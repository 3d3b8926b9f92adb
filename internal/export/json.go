// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/virtualesq/lexterm/internal/model"
)

// JSONExporter renders the transcript as pretty-printed JSON.
type JSONExporter struct{}

// FileExtension returns ".json".
func (e *JSONExporter) FileExtension() string { return ".json" }

// jsonTranscript is the exported document shape.
type jsonTranscript struct {
	ExportedAt time.Time       `json:"exported_at"`
	Country    string          `json:"country"`
	UserType   string          `json:"user_type"`
	Messages   []model.Message `json:"messages"`
}

// Export renders the transcript.
func (e *JSONExporter) Export(t *Transcript) ([]byte, error) {
	doc := jsonTranscript{
		ExportedAt: t.ExportedAt,
		Country:    string(t.Country),
		UserType:   string(t.UserType),
		Messages:   t.Messages,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode transcript: %w", err)
	}
	return append(data, '\n'), nil
}
