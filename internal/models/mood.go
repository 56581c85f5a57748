package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notewave/internal/common"
)

// Mood is an optional label from a fixed set. The empty Mood means no mood
// was recorded.
type Mood string

const (
	MoodNone     Mood = ""
	MoodHappy    Mood = "Happy"
	MoodCalm     Mood = "Calm"
	MoodFocused  Mood = "Focused"
	MoodTired    Mood = "Tired"
	MoodAnxious  Mood = "Anxious"
	MoodGrateful Mood = "Grateful"
)

// Moods lists the selectable moods in picker order.
var Moods = []Mood{MoodHappy, MoodCalm, MoodFocused, MoodTired, MoodAnxious, MoodGrateful}

// Valid reports whether m is MoodNone or one of Moods.
func (m Mood) Valid() bool {
	if m == MoodNone {
		return true
	}
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

// ParseMood matches s case-insensitively against Moods. Blank input yields
// MoodNone.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MoodNone, nil
	}
	for _, known := range Moods {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return MoodNone, fmt.Errorf("%w: %q", common.ErrInvalidMood, s)
}
