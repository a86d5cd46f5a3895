package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/medikom/internal/models"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	selected    int64
	hasSelected bool

	calls []string
}

func (f *fakeExec) record(format string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeExec) Selected() (int64, bool)        { return f.selected, f.hasSelected }
func (f *fakeExec) List(ctx context.Context) error { return f.record("list") }
func (f *fakeExec) AddEntry(ctx context.Context, kind models.Kind) error {
	return f.record("add %s", kind)
}
func (f *fakeExec) Show(ctx context.Context, id int64) error {
	f.selected, f.hasSelected = id, true
	return f.record("show %d", id)
}
func (f *fakeExec) EditTitle(ctx context.Context, id int64) error { return f.record("title %d", id) }
func (f *fakeExec) EditNotes(ctx context.Context, id int64) error { return f.record("notes %d", id) }
func (f *fakeExec) Attach(ctx context.Context, id int64) error    { return f.record("attach %d", id) }
func (f *fakeExec) Detach(ctx context.Context, id int64, n int) error {
	return f.record("detach %d %d", id, n)
}
func (f *fakeExec) OpenAttachment(ctx context.Context, id int64, n int) error {
	return f.record("open %d %d", id, n)
}
func (f *fakeExec) Delete(ctx context.Context, id int64) error { return f.record("delete %d", id) }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"l",
		"addtask",
		"addinfo",
		"add i",
		"show 3",
		"title",
		"notes 4",
		"attach",
		"detach 2",
		"detach 5 1",
		"open 1",
		"done 7",
		"delete",
		"",
		"list",
		"exit",
		"show 9",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr(input))

	assert.Equal(t, []string{
		"list",
		"add task",
		"add information",
		"add information",
		"show 3",
		"title 3",
		"notes 4",
		"attach 3",
		"detach 3 2",
		"detach 5 1",
		"open 3 1",
		"delete 7",
		"delete 3",
		"list",
	}, exec.calls)
}

func TestRunREPL_NoSelection(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("show\ndetach 1\nquit\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "no entry selected")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_InvalidArguments(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("show abc\nopen\nopen 1 x\nadd\nadd note\nfoobar\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, `invalid id "abc"`)
	assert.Contains(t, *out, "attachment number required")
	assert.Contains(t, *out, `invalid attachment number "x"`)
	assert.Contains(t, *out, "Usage: add task|info")
	assert.Contains(t, *out, `invalid entry kind: "note"`)
	assert.Contains(t, *out, "Unknown command:foobar")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("show 2"))

	assert.Equal(t, []string{"show 2"}, exec.calls)
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	out := capturePrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "(#4)" }, rdr("exit\n"))

	assert.Equal(t, "medikom(#4)> ", (*out)[0])
}
