// Package store is the single source of truth for all entity collections and
// session scalars. One Store instance exists per process; construct it in
// main and pass it down explicitly.
//
// Every collection is hydrated independently from the kv adapter (falling
// back to the bundled seed dataset) and mirrored back, whole collection per
// key, synchronously on every successful mutation. Mutations are serialized
// by an internal mutex; cross-process writers race with last-write-wins per
// key, which is a documented limitation rather than a defect.
package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/kv"
	"github.com/leguidebj/agency-backend/internal/seed"
)

// DefaultAdminPassword matches the credential shipped with the original
// site. Override it with WithAdminPassword (wired from ADMIN_PASSWORD).
const DefaultAdminPassword = "Ado@25"

// Store owns the seven entity collections plus the session scalars.
type Store struct {
	kv  kv.Store
	log *slog.Logger

	now           func() time.Time
	newID         func() string
	adminPassword string
	languages     []string
	defaultLang   string

	mu           sync.Mutex
	tours        []domain.Tour
	bookings     []domain.Booking
	messages     []domain.Message
	testimonials []domain.Testimonial
	blogPosts    []domain.BlogPost
	experiences  []domain.Experience
	homePage     domain.HomePageContent

	authenticated bool
	viewedTours   []string
	wishlist      []string
	currency      string
	theme         string
	language      string

	// Booking-modal state is transient UI state: it lives for the process
	// only and is never written to the kv adapter.
	modalOpen   bool
	modalTourID string

	subs []func(key string)
}

// Option customizes Store construction.
type Option func(*Store)

// WithAdminPassword sets the credential Login compares against.
func WithAdminPassword(pw string) Option {
	return func(s *Store) { s.adminPassword = pw }
}

// WithClock replaces the time source. Tests use a fixed clock so booking
// dates and CSV output are deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the entity id generator. The default is a
// uuid-v4 string; any generator must never repeat a value within a process.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLanguages sets the language tags SetLanguage accepts.
func WithLanguages(langs []string) Option {
	return func(s *Store) { s.languages = langs }
}

// WithDefaultLanguage sets the language used when none has been persisted.
func WithDefaultLanguage(lang string) Option {
	return func(s *Store) { s.defaultLang = lang }
}

// New hydrates a Store from the kv adapter. Collections that have never
// been persisted (or whose stored value cannot be read) start from the
// bundled seed dataset. Hydration order is irrelevant: collections are
// independent.
func New(kvs kv.Store, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		kv:            kvs,
		log:           log,
		now:           time.Now,
		newID:         uuid.NewString,
		adminPassword: DefaultAdminPassword,
		languages:     []string{"fr", "en"},
		defaultLang:   "fr",
	}
	for _, opt := range opts {
		opt(s)
	}

	ctx := context.Background()
	now := s.now()
	s.tours = kv.Load(ctx, s.kv, s.log, kv.KeyTours, seed.Tours())
	s.bookings = kv.Load(ctx, s.kv, s.log, kv.KeyBookings, seed.Bookings(now))
	s.messages = kv.Load(ctx, s.kv, s.log, kv.KeyMessages, seed.Messages(now))
	s.testimonials = kv.Load(ctx, s.kv, s.log, kv.KeyTestimonials, seed.Testimonials())
	s.blogPosts = kv.Load(ctx, s.kv, s.log, kv.KeyBlogPosts, seed.BlogPosts(now))
	s.experiences = kv.Load(ctx, s.kv, s.log, kv.KeyExperiences, seed.Experiences())
	s.homePage = kv.Load(ctx, s.kv, s.log, kv.KeyHomePage, seed.HomePage())
	s.authenticated = kv.Load(ctx, s.kv, s.log, kv.KeyAuthStatus, false)
	s.viewedTours = kv.Load(ctx, s.kv, s.log, kv.KeyViewedTours, []string{})
	s.wishlist = kv.Load(ctx, s.kv, s.log, kv.KeyWishlist, []string{})
	s.currency = kv.Load(ctx, s.kv, s.log, kv.KeyCurrency, domain.CurrencyEUR)
	s.theme = kv.Load(ctx, s.kv, s.log, kv.KeyTheme, domain.ThemeLight)
	s.language = kv.Load(ctx, s.kv, s.log, kv.KeyLanguage, s.defaultLang)

	return s
}

// Now returns the store's current time. Tests swap the clock via WithClock;
// anything deriving timestamps from store state (CSV filenames, dashboards)
// should read time here rather than calling time.Now directly.
func (s *Store) Now() time.Time {
	return s.now()
}

// Subscribe registers fn to be called with the logical key of every mutated
// collection or scalar, synchronously after the mutation returns. The
// callback may re-read snapshots but must not mutate the store.
func (s *Store) Subscribe(fn func(key string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// notify runs outside the store mutex so callbacks can re-read snapshots.
func (s *Store) notify(key string) {
	s.mu.Lock()
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}
}

// --- snapshot accessors -----------------------------------------------------
// All accessors return defensive copies; callers can never alias store
// internals.

// Tours returns a copy of the full tour collection, drafts included.
func (s *Store) Tours() []domain.Tour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTours(s.tours)
}

// Bookings returns a copy of the booking collection, newest first.
func (s *Store) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bookings)
}

// Messages returns a copy of the message collection, newest first.
func (s *Store) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

// Testimonials returns a copy of the testimonial collection.
func (s *Store) Testimonials() []domain.Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.testimonials)
}

// BlogPosts returns a copy of the blog collection, newest first.
func (s *Store) BlogPosts() []domain.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.blogPosts)
}

// Experiences returns a copy of the experience collection.
func (s *Store) Experiences() []domain.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.experiences)
}

// HomePage returns a copy of the home page document.
func (s *Store) HomePage() domain.HomePageContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneHomePage(s.homePage)
}

// ViewedTours returns the ids of tours the visitor has opened.
func (s *Store) ViewedTours() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.viewedTours)
}

// Wishlist returns the ids of wishlisted tours.
func (s *Store) Wishlist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.wishlist)
}

// cloneTours copies the slice and every per-tour sub-slice.
func cloneTours(tours []domain.Tour) []domain.Tour {
	out := slices.Clone(tours)
	for i := range out {
		out[i].Itinerary = slices.Clone(out[i].Itinerary)
		out[i].Gallery = slices.Clone(out[i].Gallery)
		out[i].Included = slices.Clone(out[i].Included)
		out[i].Excluded = slices.Clone(out[i].Excluded)
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}

func cloneHomePage(h domain.HomePageContent) domain.HomePageContent {
	h.Engagement.Items = slices.Clone(h.Engagement.Items)
	h.FAQ.Items = slices.Clone(h.FAQ.Items)
	return h
}
