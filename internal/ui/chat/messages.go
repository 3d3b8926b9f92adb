// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversational view for the lexterm TUI.
//
// This file defines the Bubble Tea message types used by the chat view:
//   - Chat: completion of an in-flight question, tagged with its exchange seq
//   - Health: backend probe results for the header indicator
//   - Laws: english-law catalog fetches triggered by /laws
//   - Export: transcript export results
//   - UI state: transient status line expiry
package chat

import (
	"time"

	"github.com/virtualesq/lexterm/internal/legalapi"
)

// =============================================================================
// CHAT MESSAGES
// =============================================================================

// ChatResultMsg delivers the outcome of a dispatched question. Seq identifies
// the exchange it belongs to; the session discards results whose seq no longer
// matches the current exchange.
type ChatResultMsg struct {
	Seq  int
	Resp *legalapi.ChatResponse
	Err  error
}

// =============================================================================
// BACKEND STATUS MESSAGES
// =============================================================================

// HealthCheckMsg requests a backend health probe.
type HealthCheckMsg struct{}

// HealthResultMsg reports backend connectivity.
type HealthResultMsg struct {
	Healthy bool
	Latency time.Duration
	Err     error
}

// healthTickMsg schedules the next periodic health probe.
type healthTickMsg struct{}

// =============================================================================
// LAW CATALOG MESSAGES
// =============================================================================

// LawsResultMsg delivers english-law listings for the /laws command.
type LawsResultMsg struct {
	Topic string
	Laws  []legalapi.EnglishLaw
	Err   error
}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportResultMsg reports the outcome of a transcript export.
type ExportResultMsg struct {
	Path string
	Err  error
}

// =============================================================================
// UI STATE MESSAGES
// =============================================================================

// statusExpireMsg clears a transient status line after its display window.
type statusExpireMsg struct {
	id int
}
