package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// fields is a decoded JSON object whose values are read one at a time.
type fields map[string]json.RawMessage

func decodeObject(data []byte) (fields, error) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("record is null")
	}
	return f, nil
}

// str returns the string under key; ok is false when the key is missing,
// null or not a string.
func (f fields) str(key string) (string, bool) {
	raw, ok := f[key]
	if !ok {
		return "", false
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}

// boolean coerces JSON booleans, strings accepted by strconv.ParseBool and
// numbers (non-zero is true).
func (f fields) boolean(key string) (bool, bool) {
	raw, ok := f[key]
	if !ok {
		return false, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, false
	}
	switch b := v.(type) {
	case bool:
		return b, true
	case float64:
		return b != 0, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

// strs returns the string elements of the array under key, skipping
// elements of other types.
func (f fields) strs(key string) ([]string, bool) {
	raw, ok := f[key]
	if !ok {
		return nil, false
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

func (f fields) timestamp(key string) (Timestamp, bool) {
	raw, ok := f[key]
	if !ok {
		return Timestamp{}, false
	}
	var ts Timestamp
	if err := json.Unmarshal(raw, &ts); err != nil || ts.IsZero() {
		return Timestamp{}, false
	}
	return ts, true
}

// DecodeNote normalizes one stored note record into the current schema.
// It fails only when data is not a JSON object. A missing id is left empty
// for the caller to assign.
func DecodeNote(data []byte) (Note, error) {
	f, err := decodeObject(data)
	if err != nil {
		return Note{}, fmt.Errorf("decode note: %w", err)
	}

	var n Note
	n.ID, _ = f.str("id")

	if content, ok := f.str("content"); ok {
		n.Content = content
	} else if text, ok := f.str("text"); ok {
		n.Content = text
	}

	n.BackgroundColor, _ = f.str("backgroundColor")
	n.Color, _ = f.str("color")
	n.IsPinned, _ = f.boolean("isPinned")
	n.Tags, _ = f.strs("tags")
	n.Images, _ = f.strs("images")

	mood, _ := f.str("mood")
	n.Mood = Mood(mood)

	n.Date, _ = f.timestamp("date")
	n.UpdatedAt, _ = f.timestamp("updatedAt")

	return ApplyDefaults(n), nil
}

// MergeByID collapses records sharing an id. The record with the later
// LastModified wins and takes the position of the first occurrence; on a
// tie the earlier record is kept. Notes with an empty id are kept as is.
func MergeByID(notes []Note) []Note {
	out := make([]Note, 0, len(notes))
	index := make(map[string]int, len(notes))

	for _, n := range notes {
		if n.ID == "" {
			out = append(out, n)
			continue
		}
		i, seen := index[n.ID]
		if !seen {
			index[n.ID] = len(out)
			out = append(out, n)
			continue
		}
		if n.LastModified().After(out[i].LastModified()) {
			out[i] = n
		}
	}
	return out
}
