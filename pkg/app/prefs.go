package app

import (
	"encoding/json"
	"strconv"
	"strings"

	"tableflip.dev/omni/pkg/store"
)

// Documented preference defaults, used whenever a stored value is absent
// or does not decode.
const (
	DefaultAccent   = "#007acc"
	DefaultFontSize = 16
	DefaultTheme    = "dark"
)

// Accent returns the active user's accent color.
func (s *Service) Accent() string {
	data, ok := s.Persistence.Get(store.KeyAccent, s.user)
	if !ok || len(data) == 0 {
		return DefaultAccent
	}
	return string(data)
}

// SetAccent stores the accent color, kept as a raw string blob.
func (s *Service) SetAccent(accent string) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	return s.Persistence.Set(store.KeyAccent, s.user, []byte(accent))
}

// FontSize returns the active user's font size in pixels.
func (s *Service) FontSize() int {
	data, ok := s.Persistence.Get(store.KeyFontSize, s.user)
	if !ok {
		return DefaultFontSize
	}
	size, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || size <= 0 {
		return DefaultFontSize
	}
	return size
}

// SetFontSize stores the font size, kept as a raw decimal string blob.
func (s *Service) SetFontSize(size int) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	return s.Persistence.Set(store.KeyFontSize, s.user, []byte(strconv.Itoa(size)))
}

// Layout returns the persisted widget order, empty when never saved.
func (s *Service) Layout() []string {
	return s.stringList(store.KeyLayout)
}

// SetLayout persists the widget order list.
func (s *Service) SetLayout(order []string) error {
	return s.setStringList(store.KeyLayout, order)
}

// Hidden returns the hidden-widget set as a list.
func (s *Service) Hidden() []string {
	return s.stringList(store.KeyHidden)
}

// SetHidden persists the hidden-widget set.
func (s *Service) SetHidden(ids []string) error {
	return s.setStringList(store.KeyHidden, ids)
}

func (s *Service) stringList(key store.Key) []string {
	data, ok := s.Persistence.Get(key, s.user)
	if !ok {
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil
	}
	return list
}

func (s *Service) setStringList(key store.Key, list []string) error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.Persistence.Set(key, s.user, data)
}

// Theme returns the global theme shared by every profile.
func (s *Service) Theme() string {
	data, ok := s.Persistence.GetGlobal(store.GlobalTheme)
	if !ok || len(data) == 0 {
		return DefaultTheme
	}
	return string(data)
}

// SetTheme stores the global theme.
func (s *Service) SetTheme(theme string) error {
	return s.Persistence.SetGlobal(store.GlobalTheme, []byte(theme))
}

// ResetPreferences drops the theme and the active user's accent and font
// size back to defaults.
func (s *Service) ResetPreferences() error {
	if s.user == "" {
		return ErrNotLoggedIn
	}
	if err := s.Persistence.RemoveGlobal(store.GlobalTheme); err != nil {
		return err
	}
	if err := s.Persistence.Remove(store.KeyAccent, s.user); err != nil {
		return err
	}
	return s.Persistence.Remove(store.KeyFontSize, s.user)
}
