// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend status command handler for the lexterm CLI.
//
// Handles "lexterm status": probes the health endpoint, measures latency,
// and lists the supported jurisdictions.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/virtualesq/lexterm/internal/session"
)

// statusReport is the JSON shape of the status command output.
type statusReport struct {
	Healthy   bool              `json:"healthy"`
	Origin    string            `json:"origin"`
	LatencyMs int64             `json:"latency_ms"`
	Service   string            `json:"service,omitempty"`
	APIStatus map[string]string `json:"api_status,omitempty"`
	Countries []string          `json:"countries,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// HandleStatus checks backend health and prints a report.
func HandleStatus(args Args) {
	client, _, _ := buildClient(args)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	report := statusReport{Origin: client.BaseURL()}

	start := time.Now()
	health, err := client.Health(ctx)
	report.LatencyMs = time.Since(start).Milliseconds()

	if err != nil {
		report.Error = err.Error()
	} else {
		report.Healthy = health.Healthy()
		report.Service = health.Service
		report.APIStatus = health.APIStatus
		if countries, cErr := client.SupportedCountries(ctx); cErr == nil {
			report.Countries = countries.Countries
		}
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(report)
		if !report.Healthy {
			os.Exit(1)
		}
		return
	}

	if err != nil {
		fmt.Println(styled(errorStyle, "[x] Backend unreachable"))
		fmt.Println("  " + styled(mutedStyle, report.Origin))
		fmt.Println("  " + session.Diagnose(err, client.BaseURL()))
		os.Exit(1)
	}

	if report.Healthy {
		fmt.Println(styled(commandStyle, "[ok] Backend healthy"))
	} else {
		fmt.Println(styled(warningStyle, "[!] Backend degraded"))
	}
	fmt.Printf("  Origin:  %s\n", report.Origin)
	fmt.Printf("  Latency: %dms\n", report.LatencyMs)
	if report.Service != "" {
		fmt.Printf("  Service: %s\n", report.Service)
	}
	for api, state := range report.APIStatus {
		fmt.Printf("  %s: %s\n", api, state)
	}
	if len(report.Countries) > 0 {
		fmt.Print("  Countries: ")
		for i, c := range report.Countries {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(c)
		}
		fmt.Println()
	}
}
