package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dmitrijs2005/notewave/internal/insights"
	"github.com/dmitrijs2005/notewave/internal/models"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// preview returns the first line of s cut to at most n runes.
func preview(s string, n int) string {
	s, _, _ = strings.Cut(s, "\n")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

func renderList(w io.Writer, notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range notes {
		pin := " "
		if n.IsPinned {
			pin = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			pin, shortID(n.ID), n.LastModified().Display(), n.Mood, preview(n.Content, 50))
	}
	tw.Flush()
}

func renderNote(w io.Writer, n models.Note) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", n.ID)
	fmt.Fprintf(tw, "Created:\t%s\n", n.Date.Display())
	fmt.Fprintf(tw, "Updated:\t%s\n", n.UpdatedAt.Display())
	fmt.Fprintf(tw, "Pinned:\t%t\n", n.IsPinned)
	fmt.Fprintf(tw, "Mood:\t%s\n", n.Mood)
	fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(n.Tags, ", "))
	fmt.Fprintf(tw, "Colors:\t%s on %s\n", n.Color, n.BackgroundColor)
	if len(n.Images) > 0 {
		fmt.Fprintf(tw, "Images:\t%s\n", strings.Join(n.Images, ", "))
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%s\n", n.Content)
}

func renderTagCounts(w io.Writer, counts []insights.TagCount) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "No tags.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Tag, c.Count)
	}
	tw.Flush()
}
