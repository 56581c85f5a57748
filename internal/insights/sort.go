package insights

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/notewave/internal/models"
)

// SortForDisplay returns the notes with pinned ones first and, within each
// group, the most recently modified first. Equal keys keep input order.
func SortForDisplay(notes []models.Note) []models.Note {
	out := slices.Clone(notes)
	slices.SortStableFunc(out, func(a, b models.Note) int {
		if a.IsPinned != b.IsPinned {
			if a.IsPinned {
				return -1
			}
			return 1
		}
		return b.LastModified().Time().Compare(a.LastModified().Time())
	})
	return out
}

// RecentNotes returns up to n notes, newest date first.
func RecentNotes(notes []models.Note, n int) []models.Note {
	if n <= 0 {
		return []models.Note{}
	}
	out := slices.Clone(notes)
	slices.SortStableFunc(out, func(a, b models.Note) int {
		return b.Date.Time().Compare(a.Date.Time())
	})
	return out[:min(n, len(out))]
}

// FilterByTag returns the notes carrying tag, compared case-insensitively.
func FilterByTag(notes []models.Note, tag string) []models.Note {
	tag = strings.TrimSpace(tag)
	out := []models.Note{}
	for _, n := range notes {
		if slices.ContainsFunc(n.Tags, func(t string) bool { return strings.EqualFold(t, tag) }) {
			out = append(out, n)
		}
	}
	return out
}

// Search returns the notes whose content or tags contain query, ignoring
// case. A blank query matches everything.
func Search(notes []models.Note, query string) []models.Note {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Note{}
	for _, n := range notes {
		if q == "" || strings.Contains(strings.ToLower(n.Content), q) ||
			slices.ContainsFunc(n.Tags, func(t string) bool { return strings.Contains(strings.ToLower(t), q) }) {
			out = append(out, n)
		}
	}
	return out
}

type TagCount struct {
	Tag   string
	Count int
}

// TagCounts counts tag usage, most used first and ties by name.
func TagCounts(notes []models.Note) []TagCount {
	counts := map[string]int{}
	for _, n := range notes {
		for _, t := range n.Tags {
			counts[t]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, c := range counts {
		out = append(out, TagCount{Tag: tag, Count: c})
	}
	slices.SortFunc(out, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})
	return out
}
