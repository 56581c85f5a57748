// Package common contains shared constants and sentinel errors used across
// NoteWave components.
package common

// Storage keys of the two independent records kept in the key-value store.
const (
	// NotesKey holds the serialized note collection.
	NotesKey = "notes"
	// SettingsKey holds the serialized user settings record.
	SettingsKey = "userSettings"
	// CorruptNotesKeyPrefix prefixes backup copies of note payloads that
	// could not be parsed on load.
	CorruptNotesKeyPrefix = "notes.corrupt."
)
