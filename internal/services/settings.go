package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/notewave/internal/common"
	"github.com/dmitrijs2005/notewave/internal/logging"
	"github.com/dmitrijs2005/notewave/internal/models"
	"github.com/dmitrijs2005/notewave/internal/repositories/kv"
)

// SettingsService is the store for the single user settings record.
type SettingsService struct {
	repo kv.Repository
	log  logging.Logger

	mu      sync.Mutex
	current models.Settings
}

// NewSettingsService returns a store holding default settings until Init
// is called.
func NewSettingsService(repo kv.Repository, log logging.Logger) *SettingsService {
	return &SettingsService{
		repo:    repo,
		log:     log.With(logging.KeyStore, "settings"),
		current: models.DefaultSettings(),
	}
}

// Init replaces the in-memory settings with the persisted record.
func (s *SettingsService) Init(ctx context.Context) {
	loaded := s.Load(ctx)

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()
}

// Load reads the persisted settings. A missing or unreadable record yields
// the defaults; nothing is written in that case.
func (s *SettingsService) Load(ctx context.Context) models.Settings {
	raw, err := s.repo.Get(ctx, common.SettingsKey)
	if err != nil {
		s.log.Warn(ctx, "settings read failed, using defaults", logging.KeyError, fmt.Errorf("%w: %w", common.ErrStorageRead, err))
		return models.DefaultSettings()
	}
	if raw == nil {
		return models.DefaultSettings()
	}

	settings, err := models.DecodeSettings(raw)
	if err != nil {
		s.log.Warn(ctx, "settings record unparsable, using defaults", logging.KeyError, err)
		return models.DefaultSettings()
	}
	return settings
}

// Save stores settings in memory and persists the full record. The
// in-memory value is kept even if persisting fails.
func (s *SettingsService) Save(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, settings)
}

// Update applies fn to a copy of the current settings and saves the result.
func (s *SettingsService) Update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	fn(&next)
	return next, s.save(ctx, next)
}

// Current returns the in-memory settings.
func (s *SettingsService) Current() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

func (s *SettingsService) save(ctx context.Context, settings models.Settings) error {
	s.current = settings

	b, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.repo.Set(ctx, common.SettingsKey, b); err != nil {
		s.log.Error(ctx, "settings not persisted", logging.KeyError, err)
		return fmt.Errorf("save settings: %w: %w", common.ErrStorageWrite, err)
	}
	return nil
}
