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
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Update(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
	LiveMap(ctx context.Context) error
	Select(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error
	Events(ctx context.Context) error
	Profile(ctx context.Context) error
	Lang(ctx context.Context, args []string) error
	Toasts(ctx context.Context) error
	Dismiss(ctx context.Context, args []string) error
}

// runREPL reads commands line by line and dispatches them to a. The first
// token is the command, the rest are its arguments. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
//	Not signed in:
//	  help, login, dashboard, map, select, refresh, events, lang, toasts,
//	  dismiss, exit
//
//	Signed in, additionally:
//	  whoami, update, profile, logout
//
// Errors returned by command handlers are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("levant %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, map, select <id>, refresh, events, profile, whoami, update <field>=<value>..., lang [en|ar], toasts, dismiss <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, dashboard, map, select <id>, refresh, events, lang [en|ar], toasts, dismiss <id>, exit")
			}

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "update":
			err = a.Update(ctx, args)

		case "dashboard", "d":
			err = a.Dashboard(ctx)

		case "map", "m":
			err = a.LiveMap(ctx)

		case "select":
			err = a.Select(ctx, args)

		case "refresh", "r":
			err = a.Refresh(ctx)

		case "events":
			err = a.Events(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "lang":
			err = a.Lang(ctx, args)

		case "toasts":
			err = a.Toasts(ctx)

		case "dismiss":
			err = a.Dismiss(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err)
		}
	}
}
