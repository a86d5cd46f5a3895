package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/medikom/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errNoSelection = errors.New("no entry selected")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Selected() (int64, bool)
	List(ctx context.Context) error
	AddEntry(ctx context.Context, kind models.Kind) error
	Show(ctx context.Context, id int64) error
	EditTitle(ctx context.Context, id int64) error
	EditNotes(ctx context.Context, id int64) error
	Attach(ctx context.Context, id int64) error
	Detach(ctx context.Context, id int64, n int) error
	OpenAttachment(ctx context.Context, id int64, n int) error
	Delete(ctx context.Context, id int64) error
}

const helpText = `Available commands:
  l, list               overview of tasks and information
  addtask, addinfo      create an entry
  add task|info         same as addtask / addinfo
  show [id]             show an entry and select it
  title [id]            rename an entry
  notes [id]            replace the notes of an entry
  attach [id]           attach a file
  detach [id] <n>       remove the n-th attachment
  open [id] <n>         open the n-th attachment
  done, delete [id]     delete an entry
  exit, quit            leave the program
Without an id the selected entry is used.`

// targetID resolves the entry a command refers to: the explicit id argument
// or the current selection.
func targetID(a execIface, args []string) (int64, error) {
	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid id %q", args[0])
		}
		return id, nil
	}
	if id, ok := a.Selected(); ok {
		return id, nil
	}
	return 0, errNoSelection
}

// targetAttachment resolves "[id] <n>".
func targetAttachment(a execIface, args []string) (int64, int, error) {
	if len(args) == 0 {
		return 0, 0, errors.New("attachment number required")
	}
	n, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid attachment number %q", args[len(args)-1])
	}
	id, err := targetID(a, args[:len(args)-1])
	if err != nil {
		return 0, 0, err
	}
	return id, n, nil
}

// runREPL starts a simple read–eval–print loop for medikom.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// and log their own errors. This keeps the REPL loop resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("medikom%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "addtask":
			_ = a.AddEntry(ctx, models.KindTask)

		case "addinfo":
			_ = a.AddEntry(ctx, models.KindInformation)

		case "add":
			if len(args) != 1 {
				printlnFn("Usage: add task|info")
				continue
			}
			kind, err := models.ParseKind(args[0])
			if err != nil {
				printlnFn(err.Error())
				continue
			}
			_ = a.AddEntry(ctx, kind)

		case "show", "title", "notes", "attach", "done", "delete":
			id, err := targetID(a, args)
			if err != nil {
				printlnFn(err.Error())
				continue
			}
			switch cmd {
			case "show":
				_ = a.Show(ctx, id)
			case "title":
				_ = a.EditTitle(ctx, id)
			case "notes":
				_ = a.EditNotes(ctx, id)
			case "attach":
				_ = a.Attach(ctx, id)
			default:
				_ = a.Delete(ctx, id)
			}

		case "detach", "open":
			id, n, err := targetAttachment(a, args)
			if err != nil {
				printlnFn(err.Error())
				printlnFn(fmt.Sprintf("Usage: %s [id] <n>", cmd))
				continue
			}
			if cmd == "detach" {
				_ = a.Detach(ctx, id, n)
			} else {
				_ = a.OpenAttachment(ctx, id, n)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
