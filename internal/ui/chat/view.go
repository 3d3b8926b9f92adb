// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/virtualesq/lexterm/internal/ui/components"
	"github.com/virtualesq/lexterm/internal/ui/styles"
)

// =============================================================================
// VIEW RENDERING
// =============================================================================

// View renders the full chat layout: header, transcript, quick bar, input,
// status bar. The help overlay replaces the transcript when toggled.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	sections := []string{
		m.header.View(),
	}

	if m.showHelp {
		sections = append(sections, m.helpView())
	} else {
		sections = append(sections, m.viewport.View())
	}

	if spin := m.spinner.View(); spin != "" {
		sections = append(sections, " "+spin)
	}

	sections = append(sections, m.quickBar.View())
	sections = append(sections, m.inputView())

	if m.statusMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Padding(0, 1).
			Render(m.statusMsg))
	}

	if m.showDisclaimer && m.disclaimer != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Padding(0, 1).
			Render(m.disclaimer))
	}

	sections = append(sections, m.statusBar.View())

	return strings.Join(sections, "\n")
}

// transcriptView renders the message log, or the welcome panel while the
// conversation only holds the greeting. Compact mode skips the panel.
func (m Model) transcriptView() string {
	msgs := m.session.Log.Messages()
	if len(msgs) <= 1 && !m.compact {
		parts := make([]string, 0, 2)
		parts = append(parts, m.welcome.View())
		if len(msgs) == 1 {
			parts = append(parts, components.RenderMessage(msgs[0], m.viewportWidth()))
		}
		return strings.Join(parts, "\n\n")
	}
	return components.RenderTranscript(msgs, m.viewportWidth())
}

// inputView renders the prompt line with a subtle border.
func (m Model) inputView() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(0, 1).
		Width(m.width - 2)
	if !m.quickFocus {
		style = style.BorderForeground(styles.Purple)
	}
	return style.Render(m.input.View())
}

// helpView renders the key binding overlay.
func (m Model) helpView() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.Purple).Render("Keyboard shortcuts")

	var b strings.Builder
	b.WriteString(title + "\n\n")
	for _, group := range m.keyMap.FullHelp() {
		for _, binding := range group {
			help := binding.Help()
			b.WriteString(lipgloss.NewStyle().Foreground(styles.Cyan).Width(14).Render(help.Key))
			b.WriteString(" " + help.Desc + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(styles.Purple).Render("Commands") + "\n\n")
	for _, line := range []string{
		"/clear          start a new conversation",
		"/country <c>    set jurisdiction (USA, UAE, UK, general)",
		"/usertype <t>   set profile (individual, sme, corporate)",
		"/laws [topic]   list english-law translations",
		"/export [fmt]   save transcript (md, json, txt)",
		"/status         check backend health",
		"/quit           exit",
	} {
		b.WriteString("  " + line + "\n")
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Height(m.transcriptHeight()).
		Render(b.String())
}

// transcriptHeight is the viewport height left over after the fixed chrome.
func (m Model) transcriptHeight() int {
	// header (2) + quick bar (1) + input (3) + status bar (1) + joins
	h := m.height - 8
	if m.spinner.Active() {
		h--
	}
	if m.statusMsg != "" {
		h--
	}
	if m.showDisclaimer && m.disclaimer != "" {
		h--
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) viewportWidth() int {
	if m.width < 30 {
		return 80
	}
	return m.width
}
