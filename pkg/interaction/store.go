// Package interaction keeps per-item liked/saved flags and the global theme flag
// in an injected durable key-value store. A key's presence means true, absence false.
package interaction

import (
	"context"
	"fmt"
	"log"

	"github.com/umputun/eduflow/pkg/domain"
)

//go:generate moq -out mocks/kv.go -pkg mocks -skip-ensure -fmt goimports . KV Notifier

// SavedMessage is the notification emitted when an item gets saved
const SavedMessage = "Video saved"

const themeKey = "theme"

// KV is a durable string key-value store
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Notifier shows transient user-visible messages
type Notifier interface {
	Notify(message string)
}

// Store provides interaction flags on top of KV
type Store struct {
	kv           KV
	notifier     Notifier
	defaultTheme domain.Theme
}

// NewStore makes a store. Unknown default theme falls back to light.
func NewStore(kv KV, notifier Notifier, defaultTheme domain.Theme) *Store {
	if !defaultTheme.Valid() {
		defaultTheme = domain.ThemeLight
	}
	return &Store{kv: kv, notifier: notifier, defaultTheme: defaultTheme}
}

// Get returns the interaction record for itemID
func (s *Store) Get(ctx context.Context, itemID string) (domain.InteractionRecord, error) {
	liked, err := s.flag(ctx, likedKey(itemID))
	if err != nil {
		return domain.InteractionRecord{}, err
	}
	saved, err := s.flag(ctx, savedKey(itemID))
	if err != nil {
		return domain.InteractionRecord{}, err
	}
	return domain.InteractionRecord{Liked: liked, Saved: saved}, nil
}

// SetLiked stores the liked flag, false removes the key
func (s *Store) SetLiked(ctx context.Context, itemID string, liked bool) error {
	return s.setFlag(ctx, likedKey(itemID), liked)
}

// SetSaved stores the saved flag and notifies when an item becomes saved
func (s *Store) SetSaved(ctx context.Context, itemID string, saved bool) error {
	if err := s.setFlag(ctx, savedKey(itemID), saved); err != nil {
		return err
	}
	if saved && s.notifier != nil {
		s.notifier.Notify(SavedMessage)
	}
	return nil
}

// ToggleLiked flips the liked flag and returns the updated record
func (s *Store) ToggleLiked(ctx context.Context, itemID string) (domain.InteractionRecord, error) {
	rec, err := s.Get(ctx, itemID)
	if err != nil {
		return rec, err
	}
	rec.Liked = !rec.Liked
	return rec, s.SetLiked(ctx, itemID, rec.Liked)
}

// ToggleSaved flips the saved flag and returns the updated record
func (s *Store) ToggleSaved(ctx context.Context, itemID string) (domain.InteractionRecord, error) {
	rec, err := s.Get(ctx, itemID)
	if err != nil {
		return rec, err
	}
	rec.Saved = !rec.Saved
	return rec, s.SetSaved(ctx, itemID, rec.Saved)
}

// Theme returns the stored theme or the default one
func (s *Store) Theme(ctx context.Context) (domain.Theme, error) {
	val, found, err := s.kv.Get(ctx, themeKey)
	if err != nil {
		return s.defaultTheme, fmt.Errorf("get theme: %w", err)
	}
	theme := domain.Theme(val)
	if !found || !theme.Valid() {
		return s.defaultTheme, nil
	}
	return theme, nil
}

// SetTheme persists the theme
func (s *Store) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("invalid theme %q", theme)
	}
	if err := s.kv.Set(ctx, themeKey, string(theme)); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}

// ToggleTheme switches between light and dark and returns the new theme
func (s *Store) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return current, err
	}
	next := current.Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return current, err
	}
	log.Printf("[DEBUG] theme switched to %s", next)
	return next, nil
}

func (s *Store) flag(ctx context.Context, key string) (bool, error) {
	_, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	return found, nil
}

func (s *Store) setFlag(ctx context.Context, key string, on bool) error {
	if on {
		if err := s.kv.Set(ctx, key, "1"); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	}
	if err := s.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func likedKey(itemID string) string { return "liked:" + itemID }
func savedKey(itemID string) string { return "saved:" + itemID }
