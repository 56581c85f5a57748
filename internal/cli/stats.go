package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notewave/internal/insights"
	"github.com/dmitrijs2005/notewave/internal/models"
)

// Stats prints note counts and the most recent notes.
func (a *App) Stats(ctx context.Context) error {
	notes := a.notes.List()
	s := insights.ComputeStats(notes, a.now())

	fmt.Fprintf(a.out, "Total notes:    %d\n", s.Total)
	fmt.Fprintf(a.out, "This week:      %d\n", s.ThisWeek)
	fmt.Fprintf(a.out, "With a mood:    %d\n", s.WithMood)

	recent := insights.RecentNotes(notes, a.recentLimit())
	if len(recent) > 0 {
		fmt.Fprintln(a.out, "\nRecent:")
		renderList(a.out, recent)
	}
	return nil
}

// Moods prints the mood histogram, the latest moods and the most frequent one.
func (a *App) Moods(ctx context.Context) error {
	s := insights.ComputeMoodStats(a.notes.List())

	for _, m := range s.Order {
		fmt.Fprintf(a.out, "%-10s %3d %s\n", m, s.Counts[m], strings.Repeat("#", s.Counts[m]))
	}

	last := make([]string, len(s.Last7))
	for i, m := range s.Last7 {
		last[i] = string(m)
	}
	if len(last) > 0 {
		fmt.Fprintf(a.out, "Last moods:    %s\n", strings.Join(last, " > "))
	}
	fmt.Fprintf(a.out, "Most frequent: %s\n", s.MostFrequent)
	return nil
}

// Palette prints the selectable background colors with their indexes.
func (a *App) Palette(ctx context.Context) error {
	for i, c := range models.Palette {
		fmt.Fprintf(a.out, "%2d  %s\n", i+1, c)
	}
	return nil
}
