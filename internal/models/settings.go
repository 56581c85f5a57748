package models

import (
	"fmt"
	"strings"
)

const DefaultUserName = "User"

// Settings is the per-installation user settings record.
type Settings struct {
	Name          string `json:"name"`
	DarkMode      bool   `json:"darkMode"`
	Notifications bool   `json:"notifications"`
}

func DefaultSettings() Settings {
	return Settings{Name: DefaultUserName, DarkMode: false, Notifications: true}
}

// DecodeSettings reads a stored settings record. Each field falls back to
// its default on its own when missing or not coercible; an error is
// returned only when data is not a JSON object.
func DecodeSettings(data []byte) (Settings, error) {
	f, err := decodeObject(data)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("decode settings: %w", err)
	}

	s := DefaultSettings()
	if name, ok := f.str("name"); ok && strings.TrimSpace(name) != "" {
		s.Name = name
	}
	if v, ok := f.boolean("darkMode"); ok {
		s.DarkMode = v
	}
	if v, ok := f.boolean("notifications"); ok {
		s.Notifications = v
	}
	return s, nil
}
