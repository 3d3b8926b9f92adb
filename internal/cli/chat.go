// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for the lexterm CLI.
//
// Handles "lexterm chat", a plain-terminal REPL for environments where the
// full TUI is unwanted (ssh sessions, minimal terminals, scripts with a pty).
//
// Interactive commands:
//   /help, /h           Show available commands
//   /clear, /c          Clear conversation
//   /country [code]     Show or set jurisdiction
//   /usertype [type]    Show or set asker profile
//   /laws [topic]       List english-law translations
//   /quit, /q           Exit chat
//   Ctrl+C, Ctrl+D      Exit chat
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/virtualesq/lexterm/internal/config"
	"github.com/virtualesq/lexterm/internal/legalapi"
	"github.com/virtualesq/lexterm/internal/model"
	"github.com/virtualesq/lexterm/internal/session"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with input history support. History lives in
// the config directory and survives restarts when enabled.
func NewChatCLI(persistHistory bool) *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile := ""
	if persistHistory {
		configDir, err := config.ConfigDir()
		if err != nil {
			configDir = os.TempDir()
		}
		historyFile = filepath.Join(configDir, "chat_history")
	}

	c := &ChatCLI{line: line, historyFile: historyFile}
	c.LoadHistory()
	return c
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if c.historyFile == "" {
		return
	}
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// SaveHistory writes input history to file.
func (c *ChatCLI) SaveHistory() {
	if c.historyFile == "" {
		return
	}
	if f, err := os.Create(c.historyFile); err == nil {
		c.line.WriteHistory(f)
		f.Close()
	}
}

// Close saves history and restores the terminal.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// Prompt reads one line of input.
func (c *ChatCLI) Prompt(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err == nil && strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, err
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChat runs the interactive plain-terminal chat loop.
func HandleChat(args Args) {
	cfg := config.Global()
	client, country, userType := buildClient(args)

	welcome := ""
	if cfg.Chat.WelcomeEnabled {
		welcome = model.DefaultWelcomeText
	}
	sess := session.New(model.NewLog(welcome), country, userType)

	repl := NewChatCLI(cfg.Chat.HistoryEnabled)
	defer repl.Close()

	if !args.Quiet {
		fmt.Println(styled(bannerStyle, "lexterm chat"))
		fmt.Println(styled(infoStyle, fmt.Sprintf("Profile: %s / %s | Backend: %s", sess.Country, sess.UserType, client.BaseURL())))
		if welcome != "" {
			fmt.Println(styled(infoStyle, welcome))
		}
		fmt.Println(styled(mutedStyle, "Type /help for commands, /quit to exit."))
		fmt.Println()
	}

	for {
		input, err := repl.Prompt(styled(promptStyle, "you> "))
		if err != nil {
			// Ctrl+C or Ctrl+D ends the session.
			fmt.Println()
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if quit := runChatCommand(sess, client, input); quit {
				return
			}
			continue
		}

		askInChat(sess, client, input)
	}
}

// askInChat dispatches one question and prints the committed messages.
func askInChat(sess *session.Session, client *legalapi.Client, text string) {
	seq, ok := sess.Begin(text)
	if !ok {
		return
	}

	before := sess.Log.Len()

	ctx, cancel := context.WithTimeout(context.Background(), client.ChatTimeout())
	defer cancel()

	resp, err := client.Chat(ctx, text, sess.Country, sess.UserType)
	if err != nil {
		sess.CommitFailure(seq, err, client.BaseURL())
	} else {
		sess.CommitAnswer(seq, resp)
	}

	for _, msg := range sess.Log.Messages()[before:] {
		printChatMessage(msg)
	}
	if resp != nil && resp.Disclaimer != "" && config.Global().UI.ShowDisclaimer {
		fmt.Println("  " + styled(mutedStyle, resp.Disclaimer))
	}
	fmt.Println()
}

func printChatMessage(msg model.Message) {
	style := commandStyle
	if msg.IsExpertSuggestion {
		style = warningStyle
	}
	fmt.Printf("%s %s\n", styled(style, "assistant>"), msg.Text)

	if bucket := model.BucketOf(msg.Confidence); bucket != model.ConfidenceNone {
		fmt.Println("  " + styled(mutedStyle, fmt.Sprintf("%s (%.2f)", bucket.Label(), *msg.Confidence)))
	}
	for _, ref := range msg.LawReferences {
		fmt.Println("  " + styled(mutedStyle, "ref: "+ref.DisplayName()+" "+ref.URL))
	}
	for _, action := range msg.SuggestedActions {
		fmt.Println("  " + styled(infoStyle, "- "+action))
	}
}

// runChatCommand handles slash commands, returning true when the loop should
// exit.
func runChatCommand(sess *session.Session, client *legalapi.Client, input string) bool {
	parts := strings.Fields(input)
	name := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	cmdArgs := parts[1:]

	switch name {
	case "help", "h":
		printChatHelp()

	case "clear", "c":
		sess.Clear()
		fmt.Println(styled(infoStyle, "Conversation cleared."))

	case "country":
		if len(cmdArgs) == 0 {
			fmt.Println(styled(infoStyle, "Country: "+string(sess.Country)))
			break
		}
		if sess.SetCountry(normalizeCountry(cmdArgs[0])) {
			fmt.Println(styled(infoStyle, "Country set to "+string(sess.Country)+"."))
		} else {
			fmt.Println(styled(errorStyle, "Unknown country "+cmdArgs[0]+". Options: USA, UAE, UK, general"))
		}

	case "usertype":
		if len(cmdArgs) == 0 {
			fmt.Println(styled(infoStyle, "User type: "+string(sess.UserType)))
			break
		}
		if sess.SetUserType(legalapi.UserType(strings.ToLower(cmdArgs[0]))) {
			fmt.Println(styled(infoStyle, "User type set to "+string(sess.UserType)+"."))
		} else {
			fmt.Println(styled(errorStyle, "Unknown user type "+cmdArgs[0]+". Options: individual, sme, corporate"))
		}

	case "laws":
		topic := strings.Join(cmdArgs, " ")
		printLawListing(client, topic)

	case "quit", "q", "exit":
		return true

	default:
		fmt.Println(styled(errorStyle, "Unknown command /"+name+". Try /help."))
	}
	return false
}

func printChatHelp() {
	fmt.Println(styled(headingStyle, "Commands:"))
	for _, line := range []string{
		"/help, /h           Show this help",
		"/clear, /c          Clear conversation",
		"/country [code]     Show or set jurisdiction (USA, UAE, UK, general)",
		"/usertype [type]    Show or set profile (individual, sme, corporate)",
		"/laws [topic]       List english-law translations",
		"/quit, /q           Exit chat",
	} {
		fmt.Println("  " + line)
	}
}

func printLawListing(client *legalapi.Client, topic string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resp, err := client.EnglishLaws(ctx, topic)
	if err != nil {
		fmt.Println(styled(errorStyle, session.Diagnose(err, client.BaseURL())))
		return
	}
	if len(resp.Laws) == 0 {
		fmt.Println(styled(infoStyle, "No english-law listings found."))
		return
	}
	for _, law := range resp.Laws {
		name := law.NameEn
		if name == "" {
			name = law.NameKr
		}
		fmt.Println("  " + name)
		fmt.Println("    " + styled(mutedStyle, law.URL))
	}
}
