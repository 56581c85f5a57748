// Package cli provides the interactive NoteWave command-line client.
//
// It wires configuration, local storage and the note and settings stores,
// and runs a REPL on top of them. The same App methods back the one-shot
// subcommands of cmd/notewave.
//
// Key features:
//   - List, show, search and filter notes by tag
//   - Add, edit, pin and delete notes
//   - Note and mood statistics
//   - User settings (name, dark mode, notifications)
//   - JSON backup export and import
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See runREPL for the command loop.
package cli
