package store

import (
	"context"
	"fmt"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/kv"
)

// The home page document is edited through typed setters per section rather
// than a generic patch: the engagement section has exactly three fixed
// slots, while the FAQ list grows and shrinks.

// ReplaceHomePage overwrites the whole home page document, as submitted by
// the admin form. The engagement section must carry exactly three items.
func (s *Store) ReplaceHomePage(ctx context.Context, h domain.HomePageContent) error {
	if len(h.Engagement.Items) != domain.EngagementItemCount {
		return fmt.Errorf("store.ReplaceHomePage: %w: engagement must have exactly %d items", domain.ErrValidation, domain.EngagementItemCount)
	}

	s.mu.Lock()
	s.homePage = cloneHomePage(h)
	kv.Save(ctx, s.kv, s.log, kv.KeyHomePage, s.homePage)
	s.mu.Unlock()

	s.notify(kv.KeyHomePage)
	return nil
}

// SetHero replaces the hero section.
func (s *Store) SetHero(ctx context.Context, h domain.Hero) {
	s.mu.Lock()
	s.homePage.Hero = h
	kv.Save(ctx, s.kv, s.log, kv.KeyHomePage, s.homePage)
	s.mu.Unlock()

	s.notify(kv.KeyHomePage)
}

// SetEngagementHeading replaces the engagement title, subtitle, and image
// without touching the three item slots.
func (s *Store) SetEngagementHeading(ctx context.Context, title, subtitle, imageURL string) {
	s.mu.Lock()
	s.homePage.Engagement.Title = title
	s.homePage.Engagement.Subtitle = subtitle
	s.homePage.Engagement.ImageURL = imageURL
	kv.Save(ctx, s.kv, s.log, kv.KeyHomePage, s.homePage)
	s.mu.Unlock()

	s.notify(kv.KeyHomePage)
}

// SetEngagementItem edits one of the three fixed engagement slots in place.
// Indexes outside 0..2 are rejected.
func (s *Store) SetEngagementItem(ctx context.Context, index int, item domain.EngagementItem) error {
	if index < 0 || index >= domain.EngagementItemCount {
		return fmt.Errorf("store.SetEngagementItem: %w: index %d out of range", domain.ErrValidation, index)
	}

	s.mu.Lock()
	s.homePage.Engagement.Items[index] = item
	kv.Save(ctx, s.kv, s.log, kv.KeyHomePage, s.homePage)
	s.mu.Unlock()

	s.notify(kv.KeyHomePage)
	return nil
}

// SetFAQHeading replaces the FAQ title and subtitle.
func (s *Store) SetFAQHeading(ctx context.Context, title, subtitle string) {
	s.mu.Lock()
	s.homePage.FAQ.Title = title
	s.homePage.FAQ.Subtitle = subtitle
	kv.Save(ctx, s.kv, s.log, kv.KeyHomePage, s.homePage)
	s.mu.Unlock()

	s.notify(kv.KeyHomePage)
}

// AddFAQItem appends a question/answer pair to the FAQ list.
func (s *Store) AddFAQItem(ctx context.Context, item domain.FAQItem) {
	s.mu.Lock()
	s.homePage.FAQ.Items = append(s.homePage.FAQ.Items, item)
	kv.Save(ctx, s.kv, s.log, kv.KeyHomePage, s.homePage)
	s.mu.Unlock()

	s.notify(kv.KeyHomePage)
}

// RemoveFAQItem deletes the FAQ entry at index. Out-of-range indexes are
// rejected.
func (s *Store) RemoveFAQItem(ctx context.Context, index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.homePage.FAQ.Items) {
		s.mu.Unlock()
		return fmt.Errorf("store.RemoveFAQItem: %w: index %d out of range", domain.ErrValidation, index)
	}
	s.homePage.FAQ.Items = append(s.homePage.FAQ.Items[:index], s.homePage.FAQ.Items[index+1:]...)
	kv.Save(ctx, s.kv, s.log, kv.KeyHomePage, s.homePage)
	s.mu.Unlock()

	s.notify(kv.KeyHomePage)
	return nil
}
