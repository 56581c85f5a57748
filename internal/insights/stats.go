package insights

import (
	"time"

	"github.com/dmitrijs2005/notewave/internal/models"
)

// NoMoodData is MoodStats.MostFrequent when no note has a mood.
const NoMoodData = "No data"

const (
	week         = 7 * 24 * time.Hour
	recentMoodsN = 7
)

type Stats struct {
	Total    int
	ThisWeek int
	WithMood int
}

// ComputeStats counts the notes, those created within the week ending at now
// and those with a mood.
func ComputeStats(notes []models.Note, now time.Time) Stats {
	from := now.Add(-week)

	var s Stats
	s.Total = len(notes)
	for _, n := range notes {
		if d := n.Date.Time(); !d.IsZero() && !d.Before(from) && !d.After(now) {
			s.ThisWeek++
		}
		if n.Mood != models.MoodNone {
			s.WithMood++
		}
	}
	return s
}

type MoodStats struct {
	// Counts maps each recorded mood to its number of notes.
	Counts map[models.Mood]int
	// Order lists the keys of Counts in first-seen order.
	Order []models.Mood
	// Last7 holds the moods of the last seven notes with a mood, oldest first.
	Last7 []models.Mood
	// MostFrequent is the most counted mood, or NoMoodData.
	MostFrequent string
}

// ComputeMoodStats builds the mood histogram over notes in collection order.
// Ties for the most frequent mood go to the mood seen first.
func ComputeMoodStats(notes []models.Note) MoodStats {
	s := MoodStats{
		Counts:       map[models.Mood]int{},
		Order:        []models.Mood{},
		Last7:        []models.Mood{},
		MostFrequent: NoMoodData,
	}

	var withMood []models.Mood
	for _, n := range notes {
		if n.Mood == models.MoodNone {
			continue
		}
		if _, seen := s.Counts[n.Mood]; !seen {
			s.Order = append(s.Order, n.Mood)
		}
		s.Counts[n.Mood]++
		withMood = append(withMood, n.Mood)
	}

	s.Last7 = append(s.Last7, withMood[max(0, len(withMood)-recentMoodsN):]...)

	best := 0
	for _, m := range s.Order {
		if s.Counts[m] > best {
			best = s.Counts[m]
			s.MostFrequent = string(m)
		}
	}
	return s
}
