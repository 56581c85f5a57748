// Package logging is the logging seam of notewave. Stores, the storage layer
// and the CLI log through Logger so tests can pass NewNop and the binary can
// pick a handler from configuration.
package logging

import "context"

// Attribute keys shared by every component, so that a log line about the
// same thing reads the same wherever it was emitted.
const (
	KeyError     = "error"
	KeyCause     = "cause"
	KeyStore     = "store"
	KeyComponent = "component"
	KeyCount     = "count"
	KeyNotes     = "notes"
	KeyIndex     = "index"
	KeyDropped   = "dropped"
	KeyBackupKey = "backup_key"
	KeyPath      = "path"
)

// Logger writes leveled records with alternating key/value attributes:
//
//	log.Warn(ctx, "note record skipped", logging.KeyIndex, i, logging.KeyError, err)
//
// Persistence failures are reported at Error, recoverable data problems
// (unparsable records, merged duplicates) at Warn.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With binds attributes to every record of the returned logger.
	With(args ...any) Logger
}
