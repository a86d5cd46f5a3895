// Package opener hands attachment files to the application the host system
// associates with them.
package opener

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/dmitrijs2005/medikom/internal/filex"
)

// execCommand is a seam for testing exec.Command.
var execCommand = exec.Command

// Opener starts an external program for a file and does not wait for it.
type Opener struct {
	command []string
}

// New returns an Opener running command with the file path appended as the
// last argument. An empty command selects the platform default.
func New(command string) *Opener {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		fields = defaultCommand(runtime.GOOS)
	}
	return &Opener{command: fields}
}

func defaultCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Open launches the viewer for path. The file must exist.
func (o *Opener) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := filex.IsRegularFile(path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: no such file", path)
	}

	args := append(append([]string{}, o.command[1:]...), path)
	cmd := execCommand(o.command[0], args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", o.command[0], err)
	}

	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
