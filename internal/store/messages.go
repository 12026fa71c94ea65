package store

import (
	"context"
	"fmt"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/kv"
)

// NewMessage carries the caller-supplied fields of a contact-form
// submission.
type NewMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// AddMessage stores a contact-form submission: fresh id, timestamp, unread.
// Messages are prepended so the inbox stays newest-first.
func (s *Store) AddMessage(ctx context.Context, nm NewMessage) domain.Message {
	s.mu.Lock()
	m := domain.Message{
		ID:      s.newID(),
		Name:    nm.Name,
		Email:   nm.Email,
		Subject: nm.Subject,
		Message: nm.Message,
		Date:    s.now(),
		Read:    false,
	}
	s.messages = append([]domain.Message{m}, s.messages...)
	kv.Save(ctx, s.kv, s.log, kv.KeyMessages, s.messages)
	s.mu.Unlock()

	s.notify(kv.KeyMessages)
	return m
}

// MarkMessageRead flips the message with the given id to read. The
// transition is one-way: already-read messages and unknown ids are no-ops.
func (s *Store) MarkMessageRead(ctx context.Context, id string) {
	s.mu.Lock()
	changed := false
	for i := range s.messages {
		if s.messages[i].ID == id && !s.messages[i].Read {
			s.messages[i].Read = true
			changed = true
			break
		}
	}
	if changed {
		kv.Save(ctx, s.kv, s.log, kv.KeyMessages, s.messages)
	}
	s.mu.Unlock()

	if changed {
		s.notify(kv.KeyMessages)
	}
}

// NewTestimonial carries the caller-supplied fields of a visitor review.
type NewTestimonial struct {
	Author     string
	ReviewText string
	Rating     int
	ImageURL   string
}

// AddTestimonial stores a visitor review. The status always starts pending
// regardless of the caller; an admin approves or rejects it later.
func (s *Store) AddTestimonial(ctx context.Context, nt NewTestimonial) (domain.Testimonial, error) {
	if nt.Rating < 1 || nt.Rating > 5 {
		return domain.Testimonial{}, fmt.Errorf("store.AddTestimonial: %w: rating must be between 1 and 5", domain.ErrValidation)
	}

	s.mu.Lock()
	t := domain.Testimonial{
		ID:         s.newID(),
		Author:     nt.Author,
		ReviewText: nt.ReviewText,
		Rating:     nt.Rating,
		ImageURL:   nt.ImageURL,
		Status:     domain.TestimonialPending,
	}
	s.testimonials = append([]domain.Testimonial{t}, s.testimonials...)
	kv.Save(ctx, s.kv, s.log, kv.KeyTestimonials, s.testimonials)
	s.mu.Unlock()

	s.notify(kv.KeyTestimonials)
	return t, nil
}

// UpdateTestimonialStatus moves the testimonial with the given id to status.
// Admins may move between all three values freely. Invalid status values are
// rejected without touching stored state; unknown ids are a no-op.
func (s *Store) UpdateTestimonialStatus(ctx context.Context, id string, status domain.TestimonialStatus) error {
	if !status.Valid() {
		return fmt.Errorf("store.UpdateTestimonialStatus: %w: invalid status %q", domain.ErrValidation, status)
	}

	s.mu.Lock()
	changed := false
	for i := range s.testimonials {
		if s.testimonials[i].ID == id {
			s.testimonials[i].Status = status
			changed = true
			break
		}
	}
	if changed {
		kv.Save(ctx, s.kv, s.log, kv.KeyTestimonials, s.testimonials)
	}
	s.mu.Unlock()

	if changed {
		s.notify(kv.KeyTestimonials)
	}
	return nil
}
