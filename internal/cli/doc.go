// Package cli provides the interactive medikom terminal front end.
//
// It wires configuration, the log file, the Store and the attachment opener,
// and runs a REPL over them. After every change the affected entry is shown
// again, so the screen always reflects the database.
//
// Key features:
//   - Overview of tasks and information entries, newest first
//   - Add, rename, edit notes, delete (with confirmation)
//   - Attach, detach and open files
//
// Commands that take an entry id fall back to the selected entry, which is
// the one most recently shown. See runREPL for the command list.
package cli
