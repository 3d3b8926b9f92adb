// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"

	"github.com/virtualesq/lexterm/internal/legalapi"
)

// Diagnostic texts for failures without a server-reported detail.
const (
	diagTimeout = "⏱️ The request took longer than 60 seconds. The service may be " +
		"waking up from idle (cold start on free hosting). Please try again in a moment."

	diagLocalDown = "🔌 Could not reach the legal API. Start the local backend on " +
		"port 8000 (uvicorn app:app --reload) and try again."

	diagRemoteDown = "🔌 Could not reach the legal API. Check the configured API " +
		"origin and give the service a moment to finish starting."

	diagGeneric = "❌ Something went wrong while contacting the legal API. Please try again."
)

// Diagnose maps one failure onto exactly one user-facing diagnostic. The
// decision order is fixed: a server-reported detail wins, then timeouts, then
// unreachable (split by whether origin points at this machine), then a
// generic notice. It never returns an empty string and never panics.
func Diagnose(err error, origin string) string {
	if err == nil {
		return diagGeneric
	}

	if detail, ok := legalapi.Detail(err); ok {
		return "⚠️ " + detail
	}

	msg := strings.ToLower(err.Error())

	if legalapi.IsTimeout(err) || strings.Contains(msg, "timeout") {
		return diagTimeout
	}

	if legalapi.IsUnreachable(err) || containsAny(msg, "connection refused", "no such host", "network is unreachable") {
		if legalapi.IsLoopbackOrigin(origin) {
			return diagLocalDown
		}
		return diagRemoteDown
	}

	return diagGeneric
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
