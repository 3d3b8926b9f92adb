// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/virtualesq/lexterm/internal/ui/components"
)

// statusDisplayWindow is how long a transient status line stays visible.
const statusDisplayWindow = 5 * time.Second

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update handles all Bubble Tea messages for the chat view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ChatResultMsg:
		return m.handleChatResult(msg)

	case HealthResultMsg:
		m.header.SetConnected(msg.Healthy)
		if msg.Err == nil && msg.Latency > 0 {
			m.statusMsg = fmt.Sprintf("Backend healthy (%dms)", msg.Latency.Milliseconds())
			m.statusID++
			return m, statusExpireCmd(m.statusID)
		}
		return m, nil

	case healthTickMsg:
		return m, tea.Batch(CheckHealthCmd(m.client), healthTickCmd())

	case LawsResultMsg:
		return m.handleLawsResult(msg)

	case ExportResultMsg:
		if msg.Err != nil {
			return m.withStatus("Export failed: " + msg.Err.Error())
		}
		return m.withStatus("Transcript saved to " + msg.Path)

	case statusExpireMsg:
		if msg.id == m.statusID {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Spinner ticks and other component messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleResize recomputes the layout for a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.header.SetWidth(msg.Width)
	m.quickBar.SetWidth(msg.Width)
	m.statusBar.SetWidth(msg.Width)
	m.welcome.SetWidth(msg.Width)
	m.input.Width = msg.Width - 4

	m.viewport.Width = msg.Width
	m.viewport.Height = m.transcriptHeight()
	m.refreshViewport()

	return m, nil
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keyMap.Clear):
		m.session.Clear()
		m.state = StateReady
		m.spinner.Stop()
		m.statusBar.Status = components.StatusReady
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.QuickNext):
		if m.quickFocus {
			m.quickBar.Next()
		} else {
			m.quickFocus = true
			m.quickBar.Focused = true
			m.input.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.QuickPrev):
		if m.quickFocus {
			m.quickBar.Prev()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()

	case msg.Type == tea.KeyEsc:
		if m.quickFocus {
			m.exitQuickFocus()
		}
		return m, nil
	}

	if m.quickFocus {
		// Any other key returns focus to the input.
		m.exitQuickFocus()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.InputBuffer = m.input.Value()
	return m, cmd
}

// handleSubmit sends the staged input, or picks the highlighted quick
// question when the quick bar has focus.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.quickFocus {
		if m.session.Select(m.quickBar.Pick()) {
			m.input.SetValue(m.session.InputBuffer)
			m.input.CursorEnd()
		}
		m.exitQuickFocus()
		return m, nil
	}

	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		return m, nil
	}

	if strings.HasPrefix(content, "/") {
		return m.handleCommand(content)
	}

	m.session.InputBuffer = content
	seq, ok := m.session.Begin(content)
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.state = StateSending
	m.statusBar.Status = components.StatusSending
	m.refreshViewport()

	return m, tea.Batch(
		m.spinner.Start(),
		SendChatCmd(m.client, content, m.session.Country, m.session.UserType, seq),
	)
}

// handleChatResult commits a completion to the session. The session drops
// results from superseded exchanges, so a late reply after a timeout
// diagnostic never lands in the transcript.
func (m Model) handleChatResult(msg ChatResultMsg) (tea.Model, tea.Cmd) {
	stale := m.session.Stale(msg.Seq)
	if msg.Err != nil {
		m.session.CommitFailure(msg.Seq, msg.Err, m.client.BaseURL())
	} else {
		m.session.CommitAnswer(msg.Seq, msg.Resp)
		if !stale && msg.Resp != nil {
			m.disclaimer = msg.Resp.Disclaimer
		}
	}

	if !m.session.InFlight() {
		m.state = StateReady
		m.spinner.Stop()
		m.statusBar.Status = components.StatusReady
	}
	m.refreshViewport()
	return m, nil
}

// handleLawsResult shows english-law listings as a system reply in the
// transcript.
func (m Model) handleLawsResult(msg LawsResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.withStatus("Could not fetch laws: " + msg.Err.Error())
	}
	if len(msg.Laws) == 0 {
		return m.withStatus("No english-law listings found.")
	}

	var b strings.Builder
	if msg.Topic != "" {
		fmt.Fprintf(&b, "English translations for %s:\n", msg.Topic)
	} else {
		b.WriteString("English law translations:\n")
	}
	for _, law := range msg.Laws {
		name := law.NameEn
		if name == "" {
			name = law.NameKr
		}
		fmt.Fprintf(&b, "  • %s\n    %s\n", name, law.URL)
	}

	m.session.AppendNotice(strings.TrimRight(b.String(), "\n"))
	m.refreshViewport()
	return m, nil
}

func (m *Model) exitQuickFocus() {
	m.quickFocus = false
	m.quickBar.Focused = false
	m.input.Focus()
}

// refreshViewport re-renders the transcript and snaps to the bottom when the
// log grew since the last render.
func (m *Model) refreshViewport() {
	m.statusBar.MessageCount = m.session.Log.Len()
	m.viewport.SetContent(m.transcriptView())
	if m.scroll != nil && m.scroll.pending {
		m.viewport.GotoBottom()
		m.scroll.pending = false
	}
}

func statusExpireCmd(id int) tea.Cmd {
	return tea.Tick(statusDisplayWindow, func(time.Time) tea.Msg {
		return statusExpireMsg{id: id}
	})
}
