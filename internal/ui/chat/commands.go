// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversational view for the lexterm TUI.
//
// This file holds the Bubble Tea command creators that talk to the legal API
// and the slash command registry for the chat view.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/virtualesq/lexterm/internal/export"
	"github.com/virtualesq/lexterm/internal/legalapi"
)

// healthProbeInterval is how often the header connectivity badge refreshes.
const healthProbeInterval = 30 * time.Second

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// SendChatCmd dispatches one question to the legal API. The command owns its
// deadline; when it fires the result carries seq so stale completions can be
// discarded by the session.
func SendChatCmd(client *legalapi.Client, text string, country legalapi.Country, userType legalapi.UserType, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), client.ChatTimeout())
		defer cancel()

		resp, err := client.Chat(ctx, text, country, userType)
		return ChatResultMsg{Seq: seq, Resp: resp, Err: err}
	}
}

// CheckHealthCmd probes the backend health endpoint.
func CheckHealthCmd(client *legalapi.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		start := time.Now()
		resp, err := client.Health(ctx)
		if err != nil {
			return HealthResultMsg{Healthy: false, Err: err}
		}
		return HealthResultMsg{Healthy: resp.Healthy(), Latency: time.Since(start)}
	}
}

// healthTickCmd schedules the next periodic probe.
func healthTickCmd() tea.Cmd {
	return tea.Tick(healthProbeInterval, func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}

// FetchLawsCmd fetches english-law listings, optionally filtered by topic.
func FetchLawsCmd(client *legalapi.Client, topic string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		resp, err := client.EnglishLaws(ctx, topic)
		if err != nil {
			return LawsResultMsg{Topic: topic, Err: err}
		}
		return LawsResultMsg{Topic: topic, Laws: resp.Laws}
	}
}

// =============================================================================
// SLASH COMMAND REGISTRY
// =============================================================================

// CommandHandler handles one slash command. It receives the model and the
// command arguments and returns the updated model plus any follow-up command.
type CommandHandler func(m *Model, args []string) (tea.Model, tea.Cmd)

var commandHandlers = map[string]CommandHandler{
	"help": handleHelpCommand,
	"h":    handleHelpCommand,
	"?":    handleHelpCommand,

	"clear": handleClearCommand,
	"c":     handleClearCommand,
	"new":   handleClearCommand,

	"country":  handleCountryCommand,
	"usertype": handleUserTypeCommand,
	"profile":  handleProfileCommand,

	"laws": handleLawsCommand,

	"export": handleExportCommand,
	"e":      handleExportCommand,

	"status": handleStatusCommand,

	"quit": handleQuitCommand,
	"q":    handleQuitCommand,
	"exit": handleQuitCommand,
}

// handleCommand dispatches a slash command line.
func (m Model) handleCommand(content string) (tea.Model, tea.Cmd) {
	m.input.Reset()

	parts := strings.Fields(content)
	if len(parts) == 0 {
		return m, nil
	}

	name := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	handler, ok := commandHandlers[name]
	if !ok {
		return m.withStatus(fmt.Sprintf("Unknown command /%s. Try /help.", name))
	}
	return handler(&m, parts[1:])
}

func handleHelpCommand(m *Model, _ []string) (tea.Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	return *m, nil
}

func handleClearCommand(m *Model, _ []string) (tea.Model, tea.Cmd) {
	m.session.Clear()
	m.refreshViewport()
	return m.withStatus("Conversation cleared.")
}

func handleCountryCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		return m.withStatus(fmt.Sprintf("Country: %s. Options: %s", m.session.Country, countryOptions()))
	}
	if !m.session.SetCountry(normalizeCountry(args[0])) {
		return m.withStatus(fmt.Sprintf("Unknown country %q. Options: %s", args[0], countryOptions()))
	}
	m.header.SetProfile(m.session.Country, m.session.UserType)
	return m.withStatus(fmt.Sprintf("Country set to %s.", m.session.Country))
}

func handleUserTypeCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		return m.withStatus(fmt.Sprintf("User type: %s. Options: %s", m.session.UserType, userTypeOptions()))
	}
	if !m.session.SetUserType(legalapi.UserType(strings.ToLower(args[0]))) {
		return m.withStatus(fmt.Sprintf("Unknown user type %q. Options: %s", args[0], userTypeOptions()))
	}
	m.header.SetProfile(m.session.Country, m.session.UserType)
	return m.withStatus(fmt.Sprintf("User type set to %s.", m.session.UserType))
}

func handleProfileCommand(m *Model, _ []string) (tea.Model, tea.Cmd) {
	return m.withStatus(fmt.Sprintf("Profile: %s / %s", m.session.Country, m.session.UserType))
}

func handleLawsCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	topic := ""
	if len(args) > 0 {
		topic = strings.Join(args, " ")
	}
	next, cmd := m.withStatus("Fetching english-law listings...")
	return next, tea.Batch(cmd, FetchLawsCmd(m.client, topic))
}

func handleExportCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	format := m.exportFormat
	if len(args) > 0 {
		format = strings.ToLower(args[0])
	}

	exporter, err := export.ForFormat(format)
	if err != nil {
		return m.withStatus(err.Error())
	}

	transcript := &export.Transcript{
		Messages:   m.session.Log.Messages(),
		Country:    m.session.Country,
		UserType:   m.session.UserType,
		ExportedAt: time.Now(),
	}
	dir := m.exportDir

	return *m, func() tea.Msg {
		path, err := export.ExportToFile(transcript, exporter, dir)
		return ExportResultMsg{Path: path, Err: err}
	}
}

func handleStatusCommand(m *Model, _ []string) (tea.Model, tea.Cmd) {
	next, cmd := m.withStatus("Checking backend health...")
	return next, tea.Batch(cmd, CheckHealthCmd(m.client))
}

func handleQuitCommand(m *Model, _ []string) (tea.Model, tea.Cmd) {
	return *m, tea.Quit
}

// =============================================================================
// HELPERS
// =============================================================================

// normalizeCountry maps user input onto the closed country set. Country codes
// are stored uppercase except the "general" profile.
func normalizeCountry(raw string) legalapi.Country {
	lower := strings.ToLower(raw)
	if lower == string(legalapi.CountryGeneral) {
		return legalapi.CountryGeneral
	}
	return legalapi.Country(strings.ToUpper(raw))
}

func countryOptions() string {
	opts := legalapi.Countries()
	parts := make([]string, len(opts))
	for i, c := range opts {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func userTypeOptions() string {
	opts := legalapi.UserTypes()
	parts := make([]string, len(opts))
	for i, u := range opts {
		parts[i] = string(u)
	}
	return strings.Join(parts, ", ")
}
