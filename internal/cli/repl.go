package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Show(ctx context.Context, ref string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, ref string) error
	Pin(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string) error
	Search(ctx context.Context, query string) error
	Tag(ctx context.Context, tag string) error
	Stats(ctx context.Context) error
	Moods(ctx context.Context) error
	Settings(ctx context.Context) error
	SetName(ctx context.Context, name string) error
	ToggleDarkMode(ctx context.Context) error
	ToggleNotifications(ctx context.Context) error
	Palette(ctx context.Context) error
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) error
}

const helpText = `Available commands:
  list                 notes, pinned first then newest
  show <id>            one note in full
  add                  write a new note
  edit <id>            change a note
  pin <id>             pin or unpin a note
  delete <id>          delete a note
  search <text>        notes containing text
  tag [name]           notes with a tag, or all tags
  stats                note counts and recent notes
  moods                mood statistics
  settings             show settings
  name <name>          set your name
  darkmode             toggle dark mode
  notifications        toggle notifications
  palette              background colors
  export <file>        write a JSON backup
  import <file>        restore a JSON backup
  exit | quit          leave the program
Ids may be shortened to any unique prefix.`

// Run starts the interactive loop on the app's input and blocks until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	interactive := isTerminal(int(os.Stdin.Fd()))
	if interactive {
		printlnFn(fmt.Sprintf("Welcome to NoteWave, %s (type 'help' for commands)", a.settings.Current().Name))
	}

	prompt := func() string {
		if !interactive {
			return ""
		}
		return "notewave> "
	}
	runREPL(ctx, a, prompt, a.reader)
}

// runREPL reads commands line by line from r, parses the first token as
// the command and the rest as its argument, and dispatches to methods on a.
// The loop exits on end of input or when the user types "exit" or "quit".
// Handlers read follow-up answers from the same reader.
//
// Handler errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, promptFn func() string, r *bufio.Reader) {
	for {
		if p := promptFn(); p != "" {
			printFn(p)
		}
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "show":
			cmdErr = withArg(arg, "show <id>", func(id string) error { return a.Show(ctx, id) })

		case "add", "new":
			cmdErr = a.Add(ctx)

		case "edit":
			cmdErr = withArg(arg, "edit <id>", func(id string) error { return a.Edit(ctx, id) })

		case "pin", "unpin":
			cmdErr = withArg(arg, "pin <id>", func(id string) error { return a.Pin(ctx, id) })

		case "delete", "rm":
			cmdErr = withArg(arg, "delete <id>", func(id string) error { return a.Delete(ctx, id) })

		case "search":
			cmdErr = withArg(arg, "search <text>", func(q string) error { return a.Search(ctx, q) })

		case "tag", "tags":
			cmdErr = a.Tag(ctx, arg)

		case "stats":
			cmdErr = a.Stats(ctx)

		case "moods":
			cmdErr = a.Moods(ctx)

		case "settings":
			cmdErr = a.Settings(ctx)

		case "name":
			cmdErr = withArg(arg, "name <name>", func(name string) error { return a.SetName(ctx, name) })

		case "darkmode":
			cmdErr = a.ToggleDarkMode(ctx)

		case "notifications":
			cmdErr = a.ToggleNotifications(ctx)

		case "palette":
			cmdErr = a.Palette(ctx)

		case "export":
			cmdErr = withArg(arg, "export <file>", func(path string) error { return a.Export(ctx, path) })

		case "import":
			cmdErr = withArg(arg, "import <file>", func(path string) error { return a.Import(ctx, path) })

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
	}
}

func withArg(arg, usage string, fn func(string) error) error {
	if arg == "" {
		printlnFn("Usage:", usage)
		return nil
	}
	return fn(arg)
}
