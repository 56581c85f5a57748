package models

import (
	"testing"

	"github.com/dmitrijs2005/notewave/internal/common"
	"github.com/stretchr/testify/require"
)

func TestParseMood(t *testing.T) {
	m, err := ParseMood("  happy ")
	require.NoError(t, err)
	require.Equal(t, MoodHappy, m)

	m, err = ParseMood("GRATEFUL")
	require.NoError(t, err)
	require.Equal(t, MoodGrateful, m)

	m, err = ParseMood("")
	require.NoError(t, err)
	require.Equal(t, MoodNone, m)

	_, err = ParseMood("Angry")
	require.ErrorIs(t, err, common.ErrInvalidMood)
}

func TestMood_Valid(t *testing.T) {
	for _, m := range Moods {
		require.True(t, m.Valid(), m)
	}
	require.True(t, MoodNone.Valid())
	require.False(t, Mood("happy").Valid())
}
