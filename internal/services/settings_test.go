package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/notewave/internal/common"
	"github.com/dmitrijs2005/notewave/internal/logging"
	"github.com/dmitrijs2005/notewave/internal/models"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_LoadAbsentReturnsDefaultsWithoutWriting(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := NewSettingsService(repo, logging.NewNop())

	require.Equal(t, models.DefaultSettings(), s.Load(ctx))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestSettingsService_LoadUnparsableOrUnreadable(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	require.NoError(t, repo.Set(ctx, common.SettingsKey, []byte("{oops")))
	s := NewSettingsService(repo, logging.NewNop())

	require.Equal(t, models.DefaultSettings(), s.Load(ctx))

	repo.failGet = true
	require.Equal(t, models.DefaultSettings(), s.Load(ctx))
}

func TestSettingsService_LoadPartialRecord(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	require.NoError(t, repo.Set(ctx, common.SettingsKey, []byte(`{"name":"Kim"}`)))
	s := NewSettingsService(repo, logging.NewNop())

	s.Init(ctx)
	require.Equal(t, models.Settings{Name: "Kim", DarkMode: false, Notifications: true}, s.Current())
}

func TestSettingsService_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := NewSettingsService(repo, logging.NewNop())

	want := models.Settings{Name: "Sam", DarkMode: true, Notifications: false}
	require.NoError(t, s.Save(ctx, want))
	require.Equal(t, want, s.Current())

	other := NewSettingsService(repo, logging.NewNop())
	require.Equal(t, want, other.Load(ctx))
}

func TestSettingsService_SaveFailureIsReported(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	repo.failSet = true
	s := NewSettingsService(repo, logging.NewNop())

	want := models.Settings{Name: "Sam", DarkMode: true, Notifications: true}
	err := s.Save(ctx, want)
	require.ErrorIs(t, err, common.ErrStorageWrite)
	require.ErrorIs(t, err, errBroken)
	require.Equal(t, want, s.Current(), "in-memory value is kept")
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := NewSettingsService(repo, logging.NewNop())

	got, err := s.Update(ctx, func(st *models.Settings) { st.DarkMode = !st.DarkMode })
	require.NoError(t, err)
	require.True(t, got.DarkMode)
	require.Equal(t, got, s.Current())

	raw, err := repo.Get(ctx, common.SettingsKey)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"User","darkMode":true,"notifications":true}`, string(raw))
}
