package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notewave/internal/common"
	"github.com/dmitrijs2005/notewave/internal/insights"
	"github.com/dmitrijs2005/notewave/internal/models"
)

var errAmbiguousID = errors.New("id prefix matches more than one note")

// resolveID maps an exact id or a unique id prefix to a note id.
func (a *App) resolveID(ref string) (string, error) {
	if _, err := a.notes.Get(ref); err == nil {
		return ref, nil
	}

	var match string
	for _, n := range a.notes.List() {
		if !strings.HasPrefix(n.ID, ref) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("%q: %w", ref, errAmbiguousID)
		}
		match = n.ID
	}
	if match == "" {
		return "", fmt.Errorf("note %q: %w", ref, common.ErrorNotFound)
	}
	return match, nil
}

// List prints every note in display order.
func (a *App) List(ctx context.Context) error {
	renderList(a.out, insights.SortForDisplay(a.notes.List()))
	return nil
}

// Show prints one note in full.
func (a *App) Show(ctx context.Context, ref string) error {
	id, err := a.resolveID(ref)
	if err != nil {
		return err
	}
	n, err := a.notes.Get(id)
	if err != nil {
		return err
	}
	renderNote(a.out, n)
	return nil
}

// Search lists notes whose content or tags contain query.
func (a *App) Search(ctx context.Context, query string) error {
	renderList(a.out, insights.SortForDisplay(insights.Search(a.notes.List(), query)))
	return nil
}

// Tag lists notes carrying tag, or tag usage counts when tag is empty.
func (a *App) Tag(ctx context.Context, tag string) error {
	if tag == "" {
		renderTagCounts(a.out, insights.TagCounts(a.notes.List()))
		return nil
	}
	renderList(a.out, insights.SortForDisplay(insights.FilterByTag(a.notes.List(), tag)))
	return nil
}

// Add asks for the fields of a new note and saves it. Blank content is
// refused here; the store itself accepts it.
func (a *App) Add(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "Note text:", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		return errors.New("note is empty, nothing saved")
	}

	in := models.NoteInput{Content: &content}
	if err := a.readDetails(&in, models.Note{}); err != nil {
		return err
	}

	n, err := a.notes.Add(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved note %s\n", shortID(n.ID))
	return nil
}

// Edit asks for new values for a note; blank answers keep the current value.
func (a *App) Edit(ctx context.Context, ref string) error {
	id, err := a.resolveID(ref)
	if err != nil {
		return err
	}
	cur, err := a.notes.Get(id)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "New text (empty keeps current):", a.out)
	if err != nil {
		return err
	}

	var in models.NoteInput
	if content != "" {
		in.Content = &content
	}
	if err := a.readDetails(&in, cur); err != nil {
		return err
	}

	n, err := a.notes.Update(ctx, id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated note %s\n", shortID(n.ID))
	return nil
}

// readDetails prompts for tags, mood and background color. A blank answer
// leaves the field unset in in; "-" clears tags and mood.
func (a *App) readDetails(in *models.NoteInput, cur models.Note) error {
	tags, err := GetSimpleText(a.reader, fmt.Sprintf("Tags, comma separated [%s]:", strings.Join(cur.Tags, ", ")), a.out)
	if err != nil {
		return err
	}
	switch tags {
	case "":
	case "-":
		in.Tags = []string{}
	default:
		in.Tags = ParseList(tags)
	}

	moodText, err := GetSimpleText(a.reader, fmt.Sprintf("Mood (%s) [%s]:", moodChoices(), cur.Mood), a.out)
	if err != nil {
		return err
	}
	switch moodText {
	case "":
	case "-":
		in.Mood = models.Ptr(models.MoodNone)
	default:
		mood, err := models.ParseMood(moodText)
		if err != nil {
			return err
		}
		in.Mood = &mood
	}

	colorText, err := GetSimpleText(a.reader, fmt.Sprintf("Background color (1-%d or #rrggbb) [%s]:", len(models.Palette), cur.BackgroundColor), a.out)
	if err != nil {
		return err
	}
	if colorText != "" {
		color, err := ParseColor(colorText)
		if err != nil {
			return err
		}
		in.BackgroundColor = &color
	}
	return nil
}

// Pin toggles the pinned flag of a note.
func (a *App) Pin(ctx context.Context, ref string) error {
	id, err := a.resolveID(ref)
	if err != nil {
		return err
	}
	n, err := a.notes.TogglePin(ctx, id)
	if err != nil {
		return err
	}
	if n.IsPinned {
		fmt.Fprintf(a.out, "Pinned note %s\n", shortID(n.ID))
	} else {
		fmt.Fprintf(a.out, "Unpinned note %s\n", shortID(n.ID))
	}
	return nil
}

// Delete removes a note after the user confirms.
func (a *App) Delete(ctx context.Context, ref string) error {
	id, err := a.resolveID(ref)
	if err != nil {
		return err
	}
	n, err := a.notes.Get(id)
	if err != nil {
		return err
	}

	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete %q?", preview(n.Content, 40)), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.notes.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted note %s\n", shortID(id))
	return nil
}

func moodChoices() string {
	names := make([]string, len(models.Moods))
	for i, m := range models.Moods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
