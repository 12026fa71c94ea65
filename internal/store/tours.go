package store

import (
	"context"
	"fmt"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/kv"
)

// AddTour validates t, assigns a fresh id, renumbers the itinerary, and
// appends the tour to the catalog. The id field of t is ignored.
func (s *Store) AddTour(ctx context.Context, t domain.Tour) (domain.Tour, error) {
	if err := validateTour(t); err != nil {
		return domain.Tour{}, fmt.Errorf("store.AddTour: %w", err)
	}

	s.mu.Lock()
	t.ID = s.newID()
	renumberItinerary(t.Itinerary)
	s.tours = append(s.tours, t)
	kv.Save(ctx, s.kv, s.log, kv.KeyTours, s.tours)
	s.mu.Unlock()

	s.notify(kv.KeyTours)
	return t, nil
}

// UpdateTour replaces the stored tour matching t.ID. Unknown ids are a
// no-op: nothing is created and no error is returned.
func (s *Store) UpdateTour(ctx context.Context, t domain.Tour) error {
	if err := validateTour(t); err != nil {
		return fmt.Errorf("store.UpdateTour: %w", err)
	}

	s.mu.Lock()
	changed := false
	for i := range s.tours {
		if s.tours[i].ID == t.ID {
			renumberItinerary(t.Itinerary)
			s.tours[i] = t
			changed = true
			break
		}
	}
	if changed {
		kv.Save(ctx, s.kv, s.log, kv.KeyTours, s.tours)
	}
	s.mu.Unlock()

	if changed {
		s.notify(kv.KeyTours)
	}
	return nil
}

// DeleteTour removes the tour with the given id. Unknown ids are a no-op,
// so calling it twice is safe. Ids are never reused.
func (s *Store) DeleteTour(ctx context.Context, id string) {
	s.mu.Lock()
	changed := false
	for i := range s.tours {
		if s.tours[i].ID == id {
			s.tours = append(s.tours[:i], s.tours[i+1:]...)
			changed = true
			break
		}
	}
	if changed {
		kv.Save(ctx, s.kv, s.log, kv.KeyTours, s.tours)
	}
	s.mu.Unlock()

	if changed {
		s.notify(kv.KeyTours)
	}
}

// validateTour enforces the tour invariants shared by add and update.
func validateTour(t domain.Tour) error {
	if t.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", domain.ErrValidation, t.Status)
	}
	return nil
}

// renumberItinerary reassigns day numbers to match slice position, keeping
// them 1-based and contiguous regardless of what the caller supplied.
func renumberItinerary(days []domain.ItineraryDay) {
	for i := range days {
		days[i].Day = i + 1
	}
}
