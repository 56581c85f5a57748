package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/notewave/internal/filex"
)

// Export writes a JSON backup of all notes and settings to path.
func (a *App) Export(ctx context.Context, path string) error {
	path, err := filex.ResolvePath(path)
	if err != nil {
		return err
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}

	if err := a.backup.Export(ctx, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close backup file: %w", err)
	}

	fmt.Fprintf(a.out, "Exported %d notes to %s\n", len(a.notes.List()), path)
	return nil
}

// Import replaces all notes and settings with the backup at path.
func (a *App) Import(ctx context.Context, path string) error {
	path, err := filex.ResolvePath(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	if err := a.backup.Import(ctx, f); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Imported %d notes from %s\n", len(a.notes.List()), path)
	return nil
}
