// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the lexterm command-line surface: argument parsing
// and the non-TUI command handlers (ask, chat, laws, status, config).
package cli

import (
	"fmt"
	"os"
	"strings"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdLaws
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool

	// Jurisdiction profile overrides
	Country  string
	UserType string
	APIURL   string

	// Command-specific
	Query      string
	Topic      string
	Format     string
	Refresh    bool
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `lexterm %s - Korean legal assistant for the terminal

Lexterm answers questions about Korean law for foreign individuals and
businesses. It talks to a legal information backend and renders answers
with confidence scores, statute references, and expert referrals.

Usage:
  lexterm                     Start the TUI (default)
  lexterm ask "question"      Ask a single question and exit
  lexterm chat                Interactive chat in plain terminal mode
  lexterm laws [topic]        List english-law translations
  lexterm status, s           Check backend health
  lexterm config [show|set|path]  Configuration
  lexterm version, v          Show version
  lexterm help, h             Show this help

Global flags:
  --country CODE      Jurisdiction context: USA, UAE, UK, general
  --usertype TYPE     Asker profile: individual, sme, corporate
  --api-url URL       Override the backend origin
  --json              Machine-readable output where supported
  -q, --quiet         Minimal output
  -v, --verbose       Verbose output

Examples:
  lexterm ask "What visa do I need to start a business in Korea?"
  lexterm ask --country USA --usertype sme "How do I hire employees?"
  lexterm laws labor
  lexterm laws --refresh
  lexterm status --json
  lexterm config set api.url http://localhost:8000

Environment:
  LEXTERM_API_URL     Backend origin (default http://localhost:8000)
  LEXTERM_COUNTRY     Default jurisdiction context
  LEXTERM_USER_TYPE   Default asker profile
`

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("lexterm version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	first := remaining[0]
	cmd := strings.ToLower(first)
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "ask":
		parseAskArgs(&args, remaining)
		return CmdAsk, args

	case "chat":
		return CmdChat, args

	case "laws":
		parseLawsArgs(&args, remaining)
		return CmdLaws, args

	case "status", "s":
		return CmdStatus, args

	case "config":
		parseConfigArgs(&args, remaining)
		return CmdConfig, args

	case "version", "v", "--version":
		return CmdVersion, args

	case "help", "h", "--help":
		return CmdHelp, args

	default:
		// Unknown first argument: treat the whole line as an ask query so
		// `lexterm "what is..."` works without the subcommand.
		args.Query = strings.Join(append([]string{first}, remaining...), " ")
		return CmdAsk, args
	}
}

// parseGlobalFlags extracts global flags, returning the remaining args.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var args Args
	var remaining []string

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch arg {
		case "-q", "--quiet":
			args.Quiet = true
		case "-v", "--verbose":
			args.Verbose = true
		case "--json":
			args.JSON = true
		case "--country":
			if i+1 < len(argv) {
				i++
				args.Country = argv[i]
			}
		case "--usertype", "--user-type":
			if i+1 < len(argv) {
				i++
				args.UserType = argv[i]
			}
		case "--api-url":
			if i+1 < len(argv) {
				i++
				args.APIURL = argv[i]
			}
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, args
}

// parseAskArgs collects the query from the remaining arguments.
func parseAskArgs(args *Args, remaining []string) {
	var queryParts []string
	for i := 0; i < len(remaining); i++ {
		switch remaining[i] {
		case "--format":
			if i+1 < len(remaining) {
				i++
				args.Format = remaining[i]
			}
		default:
			queryParts = append(queryParts, remaining[i])
		}
	}
	args.Query = strings.Join(queryParts, " ")
}

// parseLawsArgs collects the topic filter and refresh flag.
func parseLawsArgs(args *Args, remaining []string) {
	var topicParts []string
	for _, arg := range remaining {
		switch arg {
		case "--refresh", "-r":
			args.Refresh = true
		default:
			topicParts = append(topicParts, arg)
		}
	}
	args.Topic = strings.Join(topicParts, " ")
}

// parseConfigArgs parses config subcommands: show, set KEY VALUE, path.
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) == 0 {
		args.Subcommand = "show"
		return
	}
	args.Subcommand = strings.ToLower(remaining[0])
	if args.Subcommand == "set" {
		if len(remaining) > 1 {
			args.ConfigKey = remaining[1]
		}
		if len(remaining) > 2 {
			args.ConfigVal = remaining[2]
		}
	}
}
