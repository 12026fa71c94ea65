// Package kv is the persisted key-value boundary of the application.
// Each logical key holds one whole JSON document (a full collection or a
// scalar setting); writes always overwrite the entire value. The adapter has
// no semantic knowledge of what it stores.
//
// Load and Save implement the never-fails contract the store relies on:
// a failed read degrades to the caller's fallback value, a failed write
// leaves the previously persisted state untouched, and both are reported on
// the logger rather than returned.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/leguidebj/agency-backend/internal/domain"
)

// Logical storage keys. One entry per key, JSON-encoded.
const (
	KeyTours        = "tours_data"
	KeyBookings     = "bookings_data"
	KeyMessages     = "messages_data"
	KeyTestimonials = "testimonials_data"
	KeyBlogPosts    = "blogposts_data"
	KeyExperiences  = "experiences_data"
	KeyHomePage     = "homepage_content"
	KeyAuthStatus   = "auth_status"
	KeyViewedTours  = "viewed_tours"
	KeyWishlist     = "user_wishlist"
	KeyCurrency     = "user_currency"
	KeyTheme        = "app_theme"
	KeyLanguage     = "user_lang"
)

// Store is the raw persistence contract. Get returns domain.ErrNotFound when
// the key has never been written. There is no transactional guarantee across
// keys: a crash between two Set calls can leave collections out of sync with
// each other, and concurrent writers race with last-write-wins per key.
type Store interface {
	// Get returns the raw JSON previously stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key with raw JSON.
	Set(ctx context.Context, key string, raw []byte) error
}

// Load reads and decodes the value under key, returning fallback on any
// failure (missing key, storage error, malformed JSON). Failures other than
// a missing key are logged; Load itself never fails.
func Load[T any](ctx context.Context, s Store, log *slog.Logger, key string, fallback T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !isNotFound(err) {
			log.ErrorContext(ctx, "kv: read failed, using fallback", "key", key, "error", err)
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.ErrorContext(ctx, "kv: stored value is malformed, using fallback", "key", key, "error", err)
		return fallback
	}
	return v
}

// Save encodes v and writes it under key. On failure the prior persisted
// state is left untouched and the error is logged; Save never fails.
func Save[T any](ctx context.Context, s Store, log *slog.Logger, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.ErrorContext(ctx, "kv: encode failed, write dropped", "key", key, "error", err)
		return
	}
	if err := s.Set(ctx, key, raw); err != nil {
		log.ErrorContext(ctx, "kv: write failed, write dropped", "key", key, "error", err)
	}
}

// isNotFound reports whether err is the adapter's missing-key sentinel.
// A missing key is the normal first-run case and is not worth a log line.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
