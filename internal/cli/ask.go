// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single question command handler for the lexterm CLI.
//
// Handles "lexterm ask" which sends one question to the legal API and prints
// the answer with confidence, references, and any expert referral.
//
// Examples:
//   lexterm ask "What is the minimum wage in Korea?"
//   lexterm ask --country USA --usertype sme "How do I register a company?"
//   lexterm ask --json "Do I need a visa?"
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/virtualesq/lexterm/internal/config"
	"github.com/virtualesq/lexterm/internal/legalapi"
	"github.com/virtualesq/lexterm/internal/model"
	"github.com/virtualesq/lexterm/internal/session"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// renderMarkdown renders markdown for terminal display when stdout is a TTY.
// Piped output gets the raw text so downstream tools see clean content.
func renderMarkdown(content string) string {
	if !IsStdoutTTY() {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAsk sends a single question and prints the response.
func HandleAsk(args Args) {
	if strings.TrimSpace(args.Query) == "" {
		fmt.Fprintln(os.Stderr, styled(errorStyle, "No question given."))
		fmt.Fprintln(os.Stderr, "Usage: lexterm ask \"your question\"")
		os.Exit(1)
	}

	client, country, userType := buildClient(args)

	if !args.Quiet && !args.JSON {
		fmt.Println(styled(infoStyle, fmt.Sprintf("Asking (%s / %s)...", country, userType)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), client.ChatTimeout())
	defer cancel()

	resp, err := client.Chat(ctx, args.Query, country, userType)
	if err != nil {
		fmt.Fprintln(os.Stderr, styled(errorStyle, session.Diagnose(err, client.BaseURL())))
		os.Exit(1)
	}

	if args.JSON {
		printAskJSON(args.Query, resp)
		return
	}
	printAskAnswer(resp, config.Global().UI.ShowDisclaimer)
}

func printAskAnswer(resp *legalapi.ChatResponse, showDisclaimer bool) {
	answer := session.ToAnswer(resp)

	reply := answer.Reply
	if reply == "" {
		reply = model.NoReplyFallback
	}
	fmt.Print(renderMarkdown(reply))
	fmt.Println()

	if bucket := model.BucketOf(answer.Confidence); bucket != model.ConfidenceNone {
		fmt.Println(styled(mutedStyle, fmt.Sprintf("%s (%.2f)", bucket.Label(), *answer.Confidence)))
	}

	if len(answer.LawReferences) > 0 {
		fmt.Println(styled(headingStyle, "\nReferences:"))
		for _, ref := range answer.LawReferences {
			fmt.Printf("  %s\n", ref.DisplayName())
			if ref.URL != "" {
				fmt.Printf("    %s\n", styled(mutedStyle, ref.URL))
			}
		}
	}

	if len(answer.SuggestedActions) > 0 {
		fmt.Println(styled(headingStyle, "\nNext steps:"))
		for _, action := range answer.SuggestedActions {
			fmt.Printf("  - %s\n", action)
		}
	}

	if answer.NeedsExpert {
		expertType := answer.SuggestedExpertType
		if expertType == "" {
			expertType = model.DefaultExpertType
		}
		fmt.Println(styled(warningStyle, fmt.Sprintf("\nThis looks like a question for a %s expert. Consider a consultation.", expertType)))
	}

	if resp.Disclaimer != "" && showDisclaimer {
		fmt.Println(styled(mutedStyle, "\n"+resp.Disclaimer))
	}
}

func printAskJSON(query string, resp *legalapi.ChatResponse) {
	out := struct {
		Query    string                 `json:"query"`
		Response *legalapi.ChatResponse `json:"response"`
	}{Query: query, Response: resp}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, styled(errorStyle, "Failed to encode response: "+err.Error()))
		os.Exit(1)
	}
}
