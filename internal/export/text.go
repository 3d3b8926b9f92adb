// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
)

// TextExporter renders the transcript as plain text.
type TextExporter struct{}

// FileExtension returns ".txt".
func (e *TextExporter) FileExtension() string { return ".txt" }

// Export renders the transcript.
func (e *TextExporter) Export(t *Transcript) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Legal Assistant Transcript (%s, %s)\n", t.Country, t.UserType)
	fmt.Fprintf(&b, "Exported %s\n", t.ExportedAt.Format("2006-01-02 15:04"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, m := range t.Messages {
		fmt.Fprintf(&b, "[%s] %s:\n%s\n", m.Timestamp, senderHeading(m), m.Text)

		if line := confidenceLine(m); line != "" {
			fmt.Fprintf(&b, "  (%s)\n", line)
		}
		for _, ref := range m.LawReferences {
			fmt.Fprintf(&b, "  ref: %s %s\n", ref.DisplayName(), ref.URL)
		}
		if len(m.SuggestedActions) > 0 {
			fmt.Fprintf(&b, "  next: %s\n", joinActions(m.SuggestedActions))
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}
