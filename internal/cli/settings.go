package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notewave/internal/models"
)

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Settings prints the current user settings.
func (a *App) Settings(ctx context.Context) error {
	s := a.settings.Current()
	fmt.Fprintf(a.out, "Name:          %s\n", s.Name)
	fmt.Fprintf(a.out, "Dark mode:     %s\n", onOff(s.DarkMode))
	fmt.Fprintf(a.out, "Notifications: %s\n", onOff(s.Notifications))
	return nil
}

// SetName changes the display name.
func (a *App) SetName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name must not be empty")
	}
	s, err := a.settings.Update(ctx, func(s *models.Settings) { s.Name = name })
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Hello, %s\n", s.Name)
	return nil
}

// ToggleDarkMode flips the dark mode flag.
func (a *App) ToggleDarkMode(ctx context.Context) error {
	s, err := a.settings.Update(ctx, func(s *models.Settings) { s.DarkMode = !s.DarkMode })
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Dark mode %s\n", onOff(s.DarkMode))
	return nil
}

// ToggleNotifications flips the notifications flag.
func (a *App) ToggleNotifications(ctx context.Context) error {
	s, err := a.settings.Update(ctx, func(s *models.Settings) { s.Notifications = !s.Notifications })
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Notifications %s\n", onOff(s.Notifications))
	return nil
}
