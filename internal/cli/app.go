package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/notewave/internal/config"
	"github.com/dmitrijs2005/notewave/internal/logging"
	"github.com/dmitrijs2005/notewave/internal/models"
	"github.com/dmitrijs2005/notewave/internal/repositories/kv"
	"github.com/dmitrijs2005/notewave/internal/services"
	"github.com/dmitrijs2005/notewave/internal/storage"
)

// noteStore is the part of services.NoteService the client uses.
type noteStore interface {
	Add(ctx context.Context, in models.NoteInput) (models.Note, error)
	Update(ctx context.Context, id string, in models.NoteInput) (models.Note, error)
	TogglePin(ctx context.Context, id string) (models.Note, error)
	Remove(ctx context.Context, id string) error
	Get(id string) (models.Note, error)
	List() []models.Note
}

// settingsStore is the part of services.SettingsService the client uses.
type settingsStore interface {
	Current() models.Settings
	Update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error)
}

type backupStore interface {
	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) error
}

type App struct {
	config   *config.Config
	log      logging.Logger
	notes    noteStore
	settings settingsStore
	backup   backupStore
	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

// NewApp opens the database named in c and loads both stores from it. When
// the database cannot be opened the app still starts, on an in-memory
// repository, and nothing is persisted.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) *App {
	var repo kv.Repository

	db, err := storage.OpenDatabase(ctx, c.DBPath, c.BusyTimeout, log)
	if err != nil {
		log.Error(ctx, "database unavailable, changes will not be saved", logging.KeyPath, c.DBPath, logging.KeyError, err)
		repo = kv.NewMemoryRepository()
	} else {
		repo = kv.NewSQLiteRepository(db)
	}

	notes := services.NewNoteService(repo, log)
	settings := services.NewSettingsService(repo, log)
	notes.Init(ctx)
	settings.Init(ctx)

	return &App{
		config:   c,
		log:      log,
		notes:    notes,
		settings: settings,
		backup:   services.NewBackupService(repo, notes, settings, log),
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
	}
}

// SetIO redirects user input and output, for commands that run against
// something other than the terminal.
func (a *App) SetIO(in io.Reader, out io.Writer) {
	a.reader = bufio.NewReader(in)
	a.out = out
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) recentLimit() int {
	if a.config == nil || a.config.RecentLimit <= 0 {
		return 5
	}
	return a.config.RecentLimit
}
