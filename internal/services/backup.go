package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/notewave/internal/common"
	"github.com/dmitrijs2005/notewave/internal/logging"
	"github.com/dmitrijs2005/notewave/internal/models"
	"github.com/dmitrijs2005/notewave/internal/repositories/kv"
)

const BackupVersion = 1

// Backup is the document written by Export and read by Import.
type Backup struct {
	Version    int              `json:"version"`
	ExportedAt models.Timestamp `json:"exportedAt"`
	Notes      []models.Note    `json:"notes"`
	Settings   models.Settings  `json:"settings"`
}

// backupDocument is Backup as read back, with records left raw so they go
// through the same normalization as a regular load.
type backupDocument struct {
	Version  int               `json:"version"`
	Notes    []json.RawMessage `json:"notes"`
	Settings json.RawMessage   `json:"settings"`
}

// BackupService copies both stores to and from a single JSON document.
type BackupService struct {
	repo     kv.Repository
	notes    *NoteService
	settings *SettingsService
	log      logging.Logger
	now      func() time.Time
}

func NewBackupService(repo kv.Repository, notes *NoteService, settings *SettingsService, log logging.Logger) *BackupService {
	return &BackupService{
		repo:     repo,
		notes:    notes,
		settings: settings,
		log:      log.With(logging.KeyComponent, "backup"),
		now:      time.Now,
	}
}

// Export writes the in-memory notes and settings to w as indented JSON.
func (b *BackupService) Export(ctx context.Context, w io.Writer) error {
	doc := Backup{
		Version:    BackupVersion,
		ExportedAt: models.NewTimestamp(b.now()),
		Notes:      b.notes.List(),
		Settings:   b.settings.Current(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	b.log.Info(ctx, "backup exported", logging.KeyNotes, len(doc.Notes))
	return nil
}

// Import replaces both persisted records with the contents of a backup in
// one write, then reloads both stores. Nothing is written if the document
// cannot be read.
func (b *BackupService) Import(ctx context.Context, r io.Reader) error {
	var doc backupDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidBackup, err)
	}
	if doc.Version != BackupVersion {
		return fmt.Errorf("%w: unsupported version %d", common.ErrInvalidBackup, doc.Version)
	}

	notes := normalizeNotes(ctx, b.log, doc.Notes, b.notes.newID)

	settings := models.DefaultSettings()
	if len(doc.Settings) > 0 && !bytes.Equal(doc.Settings, []byte("null")) {
		decoded, err := models.DecodeSettings(doc.Settings)
		if err != nil {
			return fmt.Errorf("%w: settings: %w", common.ErrInvalidBackup, err)
		}
		settings = decoded
	}

	notesJSON, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	err = b.repo.SetMany(ctx, map[string][]byte{
		common.NotesKey:    notesJSON,
		common.SettingsKey: settingsJSON,
	})
	if err != nil {
		return fmt.Errorf("import backup: %w: %w", common.ErrStorageWrite, err)
	}

	b.notes.Init(ctx)
	b.settings.Init(ctx)

	b.log.Info(ctx, "backup imported", logging.KeyNotes, len(notes))
	return nil
}
