// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/virtualesq/lexterm/internal/model"
	"github.com/virtualesq/lexterm/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLES - Chat transcript rendering
// =============================================================================

// bubbleMaxFraction caps a bubble at roughly two thirds of the viewport so
// user and bot messages stay visually separated.
const bubbleMaxFraction = 0.66

// RenderMessage renders a single chat message as a bubble sized for width.
// User messages are right-aligned in blue, bot messages left-aligned in
// purple, and expert suggestions get an amber accent.
func RenderMessage(msg model.Message, width int) string {
	if width < 30 {
		width = 30
	}
	bubbleWidth := int(float64(width) * bubbleMaxFraction)
	if bubbleWidth < 24 {
		bubbleWidth = 24
	}

	var body strings.Builder
	body.WriteString(msg.Text)

	if line := confidenceBadge(msg.Confidence); line != "" {
		body.WriteString("\n" + line)
	}
	if refs := renderLawReferences(msg.LawReferences); refs != "" {
		body.WriteString("\n" + refs)
	}
	if actions := renderSuggestedActions(msg.SuggestedActions); actions != "" {
		body.WriteString("\n" + actions)
	}

	bubble := bubbleStyle(msg).MaxWidth(bubbleWidth).Render(body.String())

	meta := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(fmt.Sprintf("%s %s", msg.Sender.DisplayName(), msg.Timestamp))

	block := meta + "\n" + bubble
	if msg.Sender == model.SenderUser {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(block)
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Left).Render(block)
}

// RenderTranscript renders the full message list separated by blank lines.
func RenderTranscript(messages []model.Message, width int) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, RenderMessage(m, width))
	}
	return strings.Join(parts, "\n\n")
}

func bubbleStyle(msg model.Message) lipgloss.Style {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	switch {
	case msg.IsExpertSuggestion:
		return base.
			Background(styles.ExpertBubbleBg).
			Foreground(styles.ExpertBubbleFg).
			BorderForeground(styles.ExpertBubbleBorder)
	case msg.Sender == model.SenderUser:
		return base.
			Background(styles.UserBubbleBg).
			Foreground(styles.UserBubbleFg).
			BorderForeground(styles.UserBubbleBorder)
	default:
		return base.
			Background(styles.BotBubbleBg).
			Foreground(styles.BotBubbleFg).
			BorderForeground(styles.BotBubbleBorder)
	}
}

// confidenceBadge renders the confidence line under a bot reply, colored by
// bucket. Returns "" when the message carries no confidence score.
func confidenceBadge(confidence *float64) string {
	bucket := model.BucketOf(confidence)
	if bucket == model.ConfidenceNone {
		return ""
	}

	var color lipgloss.AdaptiveColor
	switch bucket {
	case model.ConfidenceHigh:
		color = styles.ConfidenceHigh
	case model.ConfidenceMedium:
		color = styles.ConfidenceMedium
	default:
		color = styles.ConfidenceLow
	}

	return lipgloss.NewStyle().
		Foreground(color).
		Render(fmt.Sprintf("%s (%.2f)", bucket.Label(), *confidence))
}

func renderLawReferences(refs []model.LawReference) string {
	if len(refs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(styles.TextSecondary).Render("References:"))
	for _, ref := range refs {
		b.WriteString("\n  " + styles.RenderLink(ref.DisplayName()))
		if ref.URL != "" {
			b.WriteString(" " + lipgloss.NewStyle().Foreground(styles.TextMuted).Render(ref.URL))
		}
	}
	return b.String()
}

func renderSuggestedActions(actions []string) string {
	if len(actions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(styles.TextSecondary).Render("Next steps:"))
	for _, action := range actions {
		b.WriteString("\n  • " + action)
	}
	return b.String()
}
