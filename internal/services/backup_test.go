package services

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dmitrijs2005/notewave/internal/common"
	"github.com/dmitrijs2005/notewave/internal/logging"
	"github.com/dmitrijs2005/notewave/internal/models"
	"github.com/stretchr/testify/require"
)

type stores struct {
	repo     *flakyRepo
	notes    *NoteService
	settings *SettingsService
	backup   *BackupService
}

func newStores(t *testing.T) stores {
	t.Helper()
	repo := newFlakyRepo()
	notes := newTestNoteService(t, repo, newFakeClock())
	settings := NewSettingsService(repo, logging.NewNop())
	return stores{
		repo:     repo,
		notes:    notes,
		settings: settings,
		backup:   NewBackupService(repo, notes, settings, logging.NewNop()),
	}
}

func TestBackupService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newStores(t)

	_, err := src.notes.Add(ctx, models.NoteInput{Content: models.Ptr("one"), Mood: models.Ptr(models.MoodHappy)})
	require.NoError(t, err)
	_, err = src.notes.Add(ctx, models.NoteInput{Content: models.Ptr("two"), IsPinned: models.Ptr(true)})
	require.NoError(t, err)
	require.NoError(t, src.settings.Save(ctx, models.Settings{Name: "Lee", DarkMode: true}))

	var buf bytes.Buffer
	require.NoError(t, src.backup.Export(ctx, &buf))

	var doc Backup
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, BackupVersion, doc.Version)
	require.Len(t, doc.Notes, 2)

	dst := newStores(t)
	require.NoError(t, dst.backup.Import(ctx, &buf))

	require.Equal(t, src.notes.List(), dst.notes.List())
	require.Equal(t, src.settings.Current(), dst.settings.Current())

	// A fresh store over the same repository sees the imported data.
	reloaded := newTestNoteService(t, dst.repo, newFakeClock())
	require.Equal(t, src.notes.List(), reloaded.Load(ctx))
}

func TestBackupService_ImportNormalizesRecords(t *testing.T) {
	ctx := context.Background()
	st := newStores(t)

	doc := `{"version":1,"notes":[{"id":"a","text":"legacy"},{"text":"no id"},5],"settings":{"darkMode":"yes"}}`
	require.NoError(t, st.backup.Import(ctx, strings.NewReader(doc)))

	notes := st.notes.List()
	require.Len(t, notes, 2)
	require.Equal(t, "legacy", notes[0].Content)
	require.NotEmpty(t, notes[1].ID)
	require.Equal(t, models.DefaultColor, notes[1].Color)
	require.Equal(t, models.DefaultSettings(), st.settings.Current())
}

func TestBackupService_ImportRejectsBadDocuments(t *testing.T) {
	ctx := context.Background()

	for name, doc := range map[string]string{
		"not json":      `{`,
		"wrong version": `{"version":2,"notes":[]}`,
		"no version":    `{"notes":[]}`,
		"bad settings":  `{"version":1,"settings":[1]}`,
	} {
		t.Run(name, func(t *testing.T) {
			st := newStores(t)
			err := st.backup.Import(ctx, strings.NewReader(doc))
			require.ErrorIs(t, err, common.ErrInvalidBackup)

			all, err := st.repo.List(ctx)
			require.NoError(t, err)
			require.Empty(t, all)
		})
	}
}

func TestBackupService_ImportWriteFailure(t *testing.T) {
	ctx := context.Background()
	st := newStores(t)
	_, err := st.notes.Add(ctx, models.NoteInput{Content: models.Ptr("kept")})
	require.NoError(t, err)

	st.repo.failSet = true
	err = st.backup.Import(ctx, strings.NewReader(`{"version":1,"notes":[]}`))
	require.ErrorIs(t, err, common.ErrStorageWrite)
	require.Len(t, st.notes.List(), 1)
}
