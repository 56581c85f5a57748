// Package storage opens the local SQLite database and brings its schema up
// to date.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/notewave/internal/filex"
	"github.com/dmitrijs2005/notewave/internal/logging"
	"github.com/dmitrijs2005/notewave/internal/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{ctx: ctx, log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// OpenDatabase opens (creating if needed) the SQLite database at path,
// applies pragmas and runs migrations. A single connection is kept open so
// ":memory:" databases survive and writes are serialized.
func OpenDatabase(ctx context.Context, path string, busyTimeout time.Duration, log logging.Logger) (*sql.DB, error) {
	resolved, err := filex.ResolvePath(path)
	if err != nil {
		return nil, err
	}

	inMemory := resolved == ":memory:"
	if !inMemory {
		if err := filex.EnsureParentDir(resolved); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", resolved, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds())}
	if !inMemory {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q to %s: %w", p, resolved, err)
		}
	}

	if err := RunMigrations(ctx, db, log); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug(ctx, "database ready", logging.KeyPath, resolved)
	return db, nil
}

// gooseLogger routes goose output through the project logger.
type gooseLogger struct {
	ctx context.Context
	log logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(g.ctx, fmt.Sprintf(format, v...), logging.KeyComponent, "goose")
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	g.log.Error(g.ctx, msg, logging.KeyComponent, "goose")
	panic(msg)
}
