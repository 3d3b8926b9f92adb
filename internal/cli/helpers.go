// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"time"

	"github.com/virtualesq/lexterm/internal/config"
	"github.com/virtualesq/lexterm/internal/legalapi"
)

// normalizeCountry maps user input onto the closed country set. Country codes
// are stored uppercase except the "general" profile.
func normalizeCountry(raw string) legalapi.Country {
	if strings.EqualFold(raw, string(legalapi.CountryGeneral)) {
		return legalapi.CountryGeneral
	}
	return legalapi.Country(strings.ToUpper(raw))
}

// buildClient constructs the API client from the global config with CLI flag
// overrides applied, and resolves the jurisdiction profile.
func buildClient(args Args) (*legalapi.Client, legalapi.Country, legalapi.UserType) {
	cfg := config.Global()

	clientCfg := legalapi.DefaultConfig()
	clientCfg.BaseURL = cfg.API.URL
	if args.APIURL != "" {
		clientCfg.BaseURL = args.APIURL
	}
	clientCfg.ChatTimeout = time.Duration(cfg.API.ChatTimeoutMs) * time.Millisecond
	clientCfg.ProbeTimeout = time.Duration(cfg.API.ProbeTimeoutMs) * time.Millisecond

	country := legalapi.Country(cfg.Chat.Country)
	if args.Country != "" {
		if c := normalizeCountry(args.Country); c.Valid() {
			country = c
		}
	}

	userType := legalapi.UserType(cfg.Chat.UserType)
	if args.UserType != "" {
		if u := legalapi.UserType(args.UserType); u.Valid() {
			userType = u
		}
	}

	return legalapi.NewClientWithConfig(clientCfg), country, userType
}
