package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) List(ctx context.Context) error { return f.record("list") }
func (f *fakeExec) Show(ctx context.Context, ref string) error { return f.record("show " + ref) }
func (f *fakeExec) Add(ctx context.Context) error { return f.record("add") }
func (f *fakeExec) Edit(ctx context.Context, ref string) error { return f.record("edit " + ref) }
func (f *fakeExec) Pin(ctx context.Context, ref string) error { return f.record("pin " + ref) }
func (f *fakeExec) Delete(ctx context.Context, ref string) error { return f.record("delete " + ref) }
func (f *fakeExec) Search(ctx context.Context, q string) error { return f.record("search " + q) }
func (f *fakeExec) Tag(ctx context.Context, tag string) error { return f.record("tag " + tag) }
func (f *fakeExec) Stats(ctx context.Context) error { return f.record("stats") }
func (f *fakeExec) Moods(ctx context.Context) error { return f.record("moods") }
func (f *fakeExec) Settings(ctx context.Context) error { return f.record("settings") }
func (f *fakeExec) SetName(ctx context.Context, n string) error { return f.record("name " + n) }
func (f *fakeExec) ToggleDarkMode(ctx context.Context) error { return f.record("darkmode") }
func (f *fakeExec) ToggleNotifications(ctx context.Context) error {
	return f.record("notifications")
}
func (f *fakeExec) Palette(ctx context.Context) error { return f.record("palette") }
func (f *fakeExec) Export(ctx context.Context, p string) error { return f.record("export " + p) }
func (f *fakeExec) Import(ctx context.Context, p string) error { return f.record("import " + p) }

// captureOutput stubs the output seams and returns everything printed.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	printFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"list",
		"",
		"show abc",
		"add",
		"edit abc",
		"pin abc",
		"delete abc",
		"search walk the dog",
		"tag",
		"tag work",
		"stats",
		"moods",
		"settings",
		"name Jo Ann",
		"darkmode",
		"notifications",
		"palette",
		"export /tmp/b.json",
		"import /tmp/b.json",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "> " }, bufio.NewReader(input))

	require.Equal(t, []string{
		"list",
		"show abc",
		"add",
		"edit abc",
		"pin abc",
		"delete abc",
		"search walk the dog",
		"tag ",
		"tag work",
		"stats",
		"moods",
		"settings",
		"name Jo Ann",
		"darkmode",
		"notifications",
		"palette",
		"export /tmp/b.json",
		"import /tmp/b.json",
	}, exec.calls)
}

func TestRunREPL_UsageUnknownAndEOF(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("show\nfoobar\nlist")))

	require.Equal(t, []string{"list"}, exec.calls, "last line without newline still runs")
	require.Contains(t, *out, "Usage: show <id>")
	require.Contains(t, *out, "Unknown command: foobar")
}

func TestRunREPL_PrintsHandlerErrors(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: errors.New("disk full")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("stats\nquit\n")))

	require.Equal(t, []string{"stats"}, exec.calls)
	require.Contains(t, *out, "error: disk full")
	require.Contains(t, *out, "Bye!")
}
