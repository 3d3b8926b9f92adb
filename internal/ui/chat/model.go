// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/virtualesq/lexterm/internal/config"
	"github.com/virtualesq/lexterm/internal/legalapi"
	"github.com/virtualesq/lexterm/internal/model"
	"github.com/virtualesq/lexterm/internal/session"
	"github.com/virtualesq/lexterm/internal/ui/components"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady   State = iota // Ready for input
	StateSending              // One question in flight
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Dimensions
	width  int
	height int

	// Conversation
	session *session.Session

	// Legal API client
	client *legalapi.Client

	// UI components
	viewport  viewport.Model
	input     textinput.Model
	header    *components.Header
	quickBar  *components.QuickBar
	statusBar *components.StatusBar
	spinner   components.Spinner
	welcome   components.Welcome

	// Key bindings
	keyMap KeyMap

	// Quick question focus. When true, tab cycling moved focus onto the
	// quick bar and enter picks the highlighted preset.
	quickFocus bool

	// Transient status line
	statusMsg string
	statusID  int

	// Help overlay
	showHelp bool

	// Layout preferences from config
	compact        bool
	showDisclaimer bool

	// disclaimer holds the backend's notice from the latest answer, shown
	// above the status bar when enabled.
	disclaimer string

	// Export settings carried from config
	exportFormat string
	exportDir    string

	// Auto-scroll hook fed by the message log observer. Pointer so the
	// observer closure survives Bubble Tea copying the model by value.
	scroll *scrollHook

	version string
}

// scrollHook records that the transcript grew since the last render, which
// snaps the viewport to the bottom on the next refresh.
type scrollHook struct {
	pending bool
}

// New creates a chat model wired to client, with the jurisdiction profile and
// export settings taken from cfg.
func New(cfg *config.Config, client *legalapi.Client, version string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about Korean law..."
	ti.CharLimit = 2000
	ti.Focus()

	vp := viewport.New(80, 20)

	welcome := ""
	if cfg.Chat.WelcomeEnabled {
		welcome = model.DefaultWelcomeText
	}
	log := model.NewLog(welcome)
	sess := session.New(log, legalapi.Country(cfg.Chat.Country), legalapi.UserType(cfg.Chat.UserType))

	m := Model{
		state:          StateReady,
		session:        sess,
		client:         client,
		viewport:       vp,
		input:          ti,
		header:         components.NewHeader(),
		quickBar:       components.NewQuickBar(),
		statusBar:      components.NewStatusBar(client.BaseURL()),
		spinner:        components.NewSpinner(),
		welcome:        components.NewWelcome(version, client.BaseURL()),
		keyMap:         DefaultKeyMap(),
		compact:        cfg.UI.CompactMode,
		showDisclaimer: cfg.UI.ShowDisclaimer,
		exportFormat:   cfg.Export.Format,
		exportDir:      cfg.Export.Dir,
		version:        version,
	}
	m.header.SetProfile(sess.Country, sess.UserType)
	m.statusBar.ShowShortcuts = !cfg.UI.CompactMode

	hook := &scrollHook{}
	log.SetObserver(func() { hook.pending = true })
	m.scroll = hook

	return m
}

// Init starts the initial health probe and the input cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		CheckHealthCmd(m.client),
		healthTickCmd(),
	)
}

// Session exposes the underlying conversation session, mainly for tests.
func (m *Model) Session() *session.Session {
	return m.session
}

// GetState returns the current view state.
func (m *Model) GetState() State {
	return m.state
}

// withStatus sets a transient status line that expires after a few seconds.
func (m Model) withStatus(text string) (Model, tea.Cmd) {
	m.statusMsg = text
	m.statusID++
	id := m.statusID
	return m, statusExpireCmd(id)
}
