// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
)

// MarkdownExporter renders the transcript as a Markdown document.
type MarkdownExporter struct{}

// FileExtension returns ".md".
func (e *MarkdownExporter) FileExtension() string { return ".md" }

// Export renders the transcript.
func (e *MarkdownExporter) Export(t *Transcript) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Legal Assistant Transcript\n\n")
	fmt.Fprintf(&b, "- Exported: %s\n", t.ExportedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "- Country: %s\n", t.Country)
	fmt.Fprintf(&b, "- User type: %s\n\n", t.UserType)
	b.WriteString("---\n\n")

	for _, m := range t.Messages {
		fmt.Fprintf(&b, "### %s · %s\n\n", senderHeading(m), m.Timestamp)
		b.WriteString(m.Text)
		b.WriteString("\n")

		if line := confidenceLine(m); line != "" {
			fmt.Fprintf(&b, "\n> %s\n", line)
		}

		if len(m.LawReferences) > 0 {
			b.WriteString("\nReferences:\n\n")
			for _, ref := range m.LawReferences {
				if ref.URL != "" {
					fmt.Fprintf(&b, "- [%s](%s)\n", ref.DisplayName(), ref.URL)
				} else {
					fmt.Fprintf(&b, "- %s\n", ref.DisplayName())
				}
			}
		}

		if len(m.SuggestedActions) > 0 {
			b.WriteString("\nSuggested actions:\n\n")
			for _, action := range m.SuggestedActions {
				fmt.Fprintf(&b, "- %s\n", action)
			}
		}

		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}
