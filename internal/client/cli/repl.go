package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Status(ctx context.Context) error
	Deals(ctx context.Context) error
	Buyers(ctx context.Context) error
	Setup(ctx context.Context) error
	Open(ctx context.Context) error
	Retry(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the WholesaleLens CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current startup status (from statusFn) and accepts:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — paste a delegation token
//	  - status         — show the startup stage
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - status         — show the startup stage and any error
//	  - deals          — list the deal pipeline
//	  - buyers         — list cash buyers
//	  - setup          — complete first-time profile setup
//	  - open           — navigate to a location (payment returns included)
//	  - retry          — retry the failed startup stage
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lens> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: status, deals, buyers, setup, open, retry, logout, exit")
			} else {
				printlnFn("Available commands: login, status, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "s", "status":
			_ = a.Status(ctx)

		case "d", "deals":
			_ = a.Deals(ctx)

		case "buyers":
			_ = a.Buyers(ctx)

		case "setup":
			_ = a.Setup(ctx)

		case "open":
			_ = a.Open(ctx)

		case "retry":
			_ = a.Retry(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
