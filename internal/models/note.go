package models

import (
	"slices"
	"strings"
)

// Default colors of a note without explicit styling.
const (
	DefaultBackgroundColor = "#ffffff"
	DefaultColor           = "#000000"
)

// Palette is the set of background colors offered by the editor.
var Palette = []string{
	"#ffffff", "#f28b82", "#fbbc04", "#fff475",
	"#ccff90", "#a7ffeb", "#cbf0f8", "#aecbfa",
	"#d7aefb", "#fdcfe8", "#e6c9a8", "#e8eaed",
}

// Note is a single journal entry.
type Note struct {
	ID              string    `json:"id"`
	Content         string    `json:"content"`
	BackgroundColor string    `json:"backgroundColor"`
	Color           string    `json:"color"`
	IsPinned        bool      `json:"isPinned"`
	Tags            []string  `json:"tags"`
	Images          []string  `json:"images"`
	Mood            Mood      `json:"mood"`
	Date            Timestamp `json:"date"`
	UpdatedAt       Timestamp `json:"updatedAt"`
}

// LastModified is UpdatedAt, or Date for notes that were never edited.
func (n Note) LastModified() Timestamp {
	if !n.UpdatedAt.IsZero() {
		return n.UpdatedAt
	}
	return n.Date
}

// Clone returns a deep copy of n.
func (n Note) Clone() Note {
	n.Tags = slices.Clone(n.Tags)
	n.Images = slices.Clone(n.Images)
	return n
}

// NoteInput carries user-entered note fields. A nil field is omitted: Add
// fills it with the default, Update keeps the existing value.
type NoteInput struct {
	Content         *string
	BackgroundColor *string
	Color           *string
	IsPinned        *bool
	Tags            []string
	Images          []string
	Mood            *Mood
}

// Ptr returns a pointer to v, for building NoteInput literals.
func Ptr[T any](v T) *T { return &v }

// Apply returns base with every field present in in replaced. Tags are
// cleaned with CleanTags.
func (in NoteInput) Apply(base Note) Note {
	out := base.Clone()
	if in.Content != nil {
		out.Content = *in.Content
	}
	if in.BackgroundColor != nil {
		out.BackgroundColor = *in.BackgroundColor
	}
	if in.Color != nil {
		out.Color = *in.Color
	}
	if in.IsPinned != nil {
		out.IsPinned = *in.IsPinned
	}
	if in.Tags != nil {
		out.Tags = CleanTags(in.Tags)
	}
	if in.Images != nil {
		out.Images = slices.Clone(in.Images)
	}
	if in.Mood != nil {
		out.Mood = *in.Mood
	}
	return ApplyDefaults(out)
}

// ApplyDefaults fills every empty optional field of n with its default.
func ApplyDefaults(n Note) Note {
	if n.BackgroundColor == "" {
		n.BackgroundColor = DefaultBackgroundColor
	}
	if n.Color == "" {
		n.Color = DefaultColor
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.Images == nil {
		n.Images = []string{}
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = n.Date
	}
	return n
}

// CleanTags trims tags, drops blanks and removes duplicates keeping the
// first occurrence.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}
