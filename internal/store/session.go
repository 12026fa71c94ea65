package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/kv"
)

// Login compares password against the configured admin credential and sets
// the authentication flag only on success.
//
// This is the original site's placeholder auth: one shared static password,
// no hashing, no lockout, no expiry. Reproduced as-is on purpose (see
// DESIGN.md); do not harden it here.
func (s *Store) Login(ctx context.Context, password string) bool {
	if password != s.adminPassword {
		return false
	}

	s.mu.Lock()
	s.authenticated = true
	kv.Save(ctx, s.kv, s.log, kv.KeyAuthStatus, s.authenticated)
	s.mu.Unlock()

	s.notify(kv.KeyAuthStatus)
	return true
}

// Logout clears the authentication flag.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.authenticated = false
	kv.Save(ctx, s.kv, s.log, kv.KeyAuthStatus, s.authenticated)
	s.mu.Unlock()

	s.notify(kv.KeyAuthStatus)
}

// IsAuthenticated reports whether an admin login has succeeded.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// TrackViewedTour records that the visitor opened the given tour. The
// viewing history is a set: tracking an already-viewed tour changes nothing
// and writes nothing.
func (s *Store) TrackViewedTour(ctx context.Context, tourID string) {
	s.mu.Lock()
	if slices.Contains(s.viewedTours, tourID) {
		s.mu.Unlock()
		return
	}
	s.viewedTours = append(s.viewedTours, tourID)
	kv.Save(ctx, s.kv, s.log, kv.KeyViewedTours, s.viewedTours)
	s.mu.Unlock()

	s.notify(kv.KeyViewedTours)
}

// ToggleWishlist adds the tour to the wishlist if absent, removes it if
// present, and reports whether it is wishlisted afterwards.
func (s *Store) ToggleWishlist(ctx context.Context, tourID string) bool {
	s.mu.Lock()
	i := slices.Index(s.wishlist, tourID)
	wishlisted := i < 0
	if wishlisted {
		s.wishlist = append(s.wishlist, tourID)
	} else {
		s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
	}
	kv.Save(ctx, s.kv, s.log, kv.KeyWishlist, s.wishlist)
	s.mu.Unlock()

	s.notify(kv.KeyWishlist)
	return wishlisted
}

// SetCurrency switches the display currency (EUR, USD, or XOF).
func (s *Store) SetCurrency(ctx context.Context, currency string) error {
	if !domain.ValidCurrency(currency) {
		return fmt.Errorf("store.SetCurrency: %w: unsupported currency %q", domain.ErrValidation, currency)
	}

	s.mu.Lock()
	s.currency = currency
	kv.Save(ctx, s.kv, s.log, kv.KeyCurrency, s.currency)
	s.mu.Unlock()

	s.notify(kv.KeyCurrency)
	return nil
}

// Currency returns the active display currency.
func (s *Store) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// SetTheme switches between the light and dark UI themes.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if !domain.ValidTheme(theme) {
		return fmt.Errorf("store.SetTheme: %w: unsupported theme %q", domain.ErrValidation, theme)
	}

	s.mu.Lock()
	s.theme = theme
	kv.Save(ctx, s.kv, s.log, kv.KeyTheme, s.theme)
	s.mu.Unlock()

	s.notify(kv.KeyTheme)
	return nil
}

// Theme returns the active UI theme.
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetLanguage switches the UI language. Unknown tags are rejected so a
// stored value always resolves against a bundled dictionary.
func (s *Store) SetLanguage(ctx context.Context, lang string) error {
	if !slices.Contains(s.languages, lang) {
		return fmt.Errorf("store.SetLanguage: %w: unsupported language %q", domain.ErrValidation, lang)
	}

	s.mu.Lock()
	s.language = lang
	kv.Save(ctx, s.kv, s.log, kv.KeyLanguage, s.language)
	s.mu.Unlock()

	s.notify(kv.KeyLanguage)
	return nil
}

// Language returns the active UI language tag.
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// OpenBookingModal marks the booking dialog open, optionally pre-selecting a
// tour (empty string for none). Modal state is transient: it is never
// persisted and resets on process start.
func (s *Store) OpenBookingModal(tourID string) {
	s.mu.Lock()
	s.modalOpen = true
	s.modalTourID = tourID
	s.mu.Unlock()
}

// CloseBookingModal closes the booking dialog and clears the selection.
func (s *Store) CloseBookingModal() {
	s.mu.Lock()
	s.modalOpen = false
	s.modalTourID = ""
	s.mu.Unlock()
}

// BookingModal returns the transient dialog state.
func (s *Store) BookingModal() (open bool, tourID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modalOpen, s.modalTourID
}
