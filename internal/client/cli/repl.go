package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophsocial/internal/client/ui"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. App implements it; tests
// use a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowFeed(ctx context.Context) error
	ShowAbout(ctx context.Context) error
	Goto(ctx context.Context, path string) error
	Post(ctx context.Context) error
	Like(ctx context.Context, id string) error
	Photo(ctx context.Context, path string) error
	Rename(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit"/"quit" or ctx is
// done, and dispatches them to a.
//
//	Signed out:
//	  help, login, register, about, goto <path>, exit | quit
//
//	Signed in:
//	  help, feed, post, like <id>, photo <path>, rename, whoami, about,
//	  goto <path>, logout, exit | quit
//
// Handlers report their own errors; a panic in a handler is recovered and
// printed as a generic failure.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("social %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if quit := dispatch(ctx, a, parts[0], parts[1:]); quit {
			printlnFn("Bye!")
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			printlnFn(ui.Crash(r))
			quit = false
		}
	}()

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: feed, post, like <id>, photo <path>, rename, whoami, about, goto <path>, logout, exit")
		} else {
			printlnFn("Available commands: login, register, about, goto <path>, exit")
		}

	case "login":
		_ = a.Login(ctx)

	case "register":
		_ = a.Register(ctx)

	case "logout":
		_ = a.Logout(ctx)

	case "feed":
		_ = a.ShowFeed(ctx)

	case "about":
		_ = a.ShowAbout(ctx)

	case "goto":
		if len(args) == 0 {
			printlnFn("Usage: goto <path>")
			return false
		}
		_ = a.Goto(ctx, args[0])

	case "post":
		_ = a.Post(ctx)

	case "like":
		if len(args) == 0 {
			printlnFn("Usage: like <id>")
			return false
		}
		_ = a.Like(ctx, args[0])

	case "photo":
		if len(args) == 0 {
			printlnFn("Usage: photo <path>")
			return false
		}
		_ = a.Photo(ctx, strings.Join(args, " "))

	case "rename":
		_ = a.Rename(ctx)

	case "whoami":
		_ = a.WhoAmI(ctx)

	case "exit", "quit":
		return true

	default:
		printlnFn("Unknown command:", cmd)
	}
	return false
}
