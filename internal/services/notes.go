package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/notewave/internal/common"
	"github.com/dmitrijs2005/notewave/internal/logging"
	"github.com/dmitrijs2005/notewave/internal/models"
	"github.com/dmitrijs2005/notewave/internal/repositories/kv"
	"github.com/google/uuid"
)

// NoteService is the store for the ordered note collection.
type NoteService struct {
	repo  kv.Repository
	log   logging.Logger
	now   func() time.Time
	newID func() string

	mu    sync.Mutex
	notes []models.Note
}

type NoteOption func(*NoteService)

// WithClock sets the time source used for date and updatedAt.
func WithClock(now func() time.Time) NoteOption {
	return func(s *NoteService) { s.now = now }
}

// WithIDGenerator sets the generator of new note ids.
func WithIDGenerator(newID func() string) NoteOption {
	return func(s *NoteService) { s.newID = newID }
}

func NewNoteService(repo kv.Repository, log logging.Logger, opts ...NoteOption) *NoteService {
	s := &NoteService{
		repo:  repo,
		log:   log.With(logging.KeyStore, "notes"),
		now:   time.Now,
		newID: uuid.NewString,
		notes: []models.Note{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init replaces the in-memory collection with the persisted one.
func (s *NoteService) Init(ctx context.Context) {
	loaded := s.Load(ctx)

	s.mu.Lock()
	s.notes = loaded
	s.mu.Unlock()

	s.log.Debug(ctx, "notes loaded", logging.KeyCount, len(loaded))
}

// Load reads and normalizes the persisted collection. It never fails: an
// unreadable collection yields an empty one. An unparsable payload is first
// copied to a "notes.corrupt.<nanos>" key so the next save does not destroy
// it.
func (s *NoteService) Load(ctx context.Context) []models.Note {
	raw, err := s.repo.Get(ctx, common.NotesKey)
	if err != nil {
		s.log.Warn(ctx, "notes read failed, starting empty", logging.KeyError, fmt.Errorf("%w: %w", common.ErrStorageRead, err))
		return []models.Note{}
	}
	if len(raw) == 0 {
		return []models.Note{}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		s.backupCorrupt(ctx, raw, err)
		return []models.Note{}
	}
	return normalizeNotes(ctx, s.log, records, s.newID)
}

// Save replaces the collection and persists it. The input is normalized
// like a loaded payload: defaults are filled, missing ids are assigned and
// records sharing an id are merged.
func (s *NoteService) Save(ctx context.Context, notes []models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		n = models.ApplyDefaults(n.Clone())
		if n.ID == "" {
			n.ID = s.newID()
		}
		normalized = append(normalized, n)
	}
	merged := models.MergeByID(normalized)
	if dropped := len(normalized) - len(merged); dropped > 0 {
		s.log.Warn(ctx, "duplicate note ids merged", logging.KeyDropped, dropped)
	}

	s.notes = merged
	return s.persist(ctx)
}

// Add creates a note from in, filling omitted fields with defaults, and
// appends it to the collection. On a write failure the note stays in memory
// and is returned along with the error.
func (s *NoteService) Add(ctx context.Context, in models.NoteInput) (models.Note, error) {
	if err := validateInput(in); err != nil {
		return models.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := models.NewTimestamp(s.now())
	n := in.Apply(models.Note{ID: s.newID(), Date: now, UpdatedAt: now})
	s.notes = append(s.notes, n)

	return n.Clone(), s.persist(ctx)
}

// Update replaces the fields present in in on the note with the given id and
// refreshes its updatedAt. It returns common.ErrorNotFound for unknown ids.
func (s *NoteService) Update(ctx context.Context, id string, in models.NoteInput) (models.Note, error) {
	if err := validateInput(in); err != nil {
		return models.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(ctx, id, in)
}

// TogglePin flips the pinned flag of the note with the given id.
func (s *NoteService) TogglePin(ctx context.Context, id string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Note{}, notFound(id)
	}
	return s.update(ctx, id, models.NoteInput{IsPinned: models.Ptr(!s.notes[i].IsPinned)})
}

// Remove deletes the note with the given id. It returns common.ErrorNotFound
// when there is nothing to delete.
func (s *NoteService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	return s.persist(ctx)
}

// Get returns a copy of the note with the given id.
func (s *NoteService) Get(id string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Note{}, notFound(id)
	}
	return s.notes[i].Clone(), nil
}

// List returns a copy of the collection in stored order.
func (s *NoteService) List() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneNotes(s.notes)
}

func (s *NoteService) update(ctx context.Context, id string, in models.NoteInput) (models.Note, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Note{}, notFound(id)
	}

	prev := s.notes[i]
	n := in.Apply(prev)
	n.UpdatedAt = s.nextUpdatedAt(prev.UpdatedAt)
	s.notes[i] = n

	return n.Clone(), s.persist(ctx)
}

// nextUpdatedAt returns now, or one nanosecond past prev when the clock has
// not moved beyond it.
func (s *NoteService) nextUpdatedAt(prev models.Timestamp) models.Timestamp {
	now := s.now()
	if !now.After(prev.Time()) {
		now = prev.Time().Add(time.Nanosecond)
	}
	return models.NewTimestamp(now)
}

func (s *NoteService) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
}

func (s *NoteService) persist(ctx context.Context) error {
	b, err := json.Marshal(s.notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := s.repo.Set(ctx, common.NotesKey, b); err != nil {
		s.log.Error(ctx, "notes not persisted", logging.KeyCount, len(s.notes), logging.KeyError, err)
		return fmt.Errorf("save notes: %w: %w", common.ErrStorageWrite, err)
	}
	return nil
}

func (s *NoteService) backupCorrupt(ctx context.Context, raw []byte, cause error) {
	key := common.CorruptNotesKeyPrefix + strconv.FormatInt(s.now().UnixNano(), 10)
	if err := s.repo.Set(ctx, key, raw); err != nil {
		s.log.Error(ctx, "notes unparsable and backup failed", logging.KeyCause, cause, logging.KeyError, err)
		return
	}
	s.log.Warn(ctx, "notes unparsable, starting empty", logging.KeyCause, cause, logging.KeyBackupKey, key)
}

// normalizeNotes decodes stored records into the current schema. Records
// that are not objects are skipped, missing ids are assigned and duplicate
// ids are merged.
func normalizeNotes(ctx context.Context, log logging.Logger, records []json.RawMessage, newID func() string) []models.Note {
	notes := make([]models.Note, 0, len(records))
	for i, rec := range records {
		n, err := models.DecodeNote(rec)
		if err != nil {
			log.Warn(ctx, "note record skipped", logging.KeyIndex, i, logging.KeyError, err)
			continue
		}
		if n.ID == "" {
			n.ID = newID()
		}
		notes = append(notes, n)
	}

	merged := models.MergeByID(notes)
	if dropped := len(notes) - len(merged); dropped > 0 {
		log.Warn(ctx, "duplicate note ids merged", logging.KeyDropped, dropped)
	}
	return merged
}

func validateInput(in models.NoteInput) error {
	if in.Mood != nil && !in.Mood.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidMood, *in.Mood)
	}
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("note %q: %w", id, common.ErrorNotFound)
}

func cloneNotes(notes []models.Note) []models.Note {
	out := make([]models.Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
