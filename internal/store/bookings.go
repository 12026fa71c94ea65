package store

import (
	"context"
	"fmt"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/kv"
)

// NewBooking carries the caller-supplied fields of a booking request.
// Id, date, status, and the tour title snapshot are filled in by AddBooking.
type NewBooking struct {
	TourID         string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	NumberOfPeople int
}

// AddBooking creates a booking from nb: fresh id, creation timestamp, status
// Pending, and the referenced tour's title snapshotted at this moment. An
// unknown tour id is not an error — the booking stores a placeholder title
// instead. Bookings are prepended so the collection stays newest-first.
func (s *Store) AddBooking(ctx context.Context, nb NewBooking) (domain.Booking, error) {
	if nb.NumberOfPeople < 1 {
		return domain.Booking{}, fmt.Errorf("store.AddBooking: %w: numberOfPeople must be at least 1", domain.ErrValidation)
	}

	s.mu.Lock()
	title := domain.UnknownTourTitle
	for i := range s.tours {
		if s.tours[i].ID == nb.TourID {
			title = s.tours[i].Title
			break
		}
	}
	b := domain.Booking{
		ID:             s.newID(),
		TourID:         nb.TourID,
		TourTitle:      title,
		CustomerName:   nb.CustomerName,
		CustomerEmail:  nb.CustomerEmail,
		CustomerPhone:  nb.CustomerPhone,
		NumberOfPeople: nb.NumberOfPeople,
		BookingDate:    s.now(),
		Status:         domain.BookingPending,
	}
	s.bookings = append([]domain.Booking{b}, s.bookings...)
	kv.Save(ctx, s.kv, s.log, kv.KeyBookings, s.bookings)
	s.mu.Unlock()

	s.notify(kv.KeyBookings)
	return b, nil
}

// UpdateBookingStatus moves the booking with the given id to status. Invalid
// status values are rejected without touching stored state; unknown ids are
// a no-op. All other booking fields are immutable after creation.
func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("store.UpdateBookingStatus: %w: invalid status %q", domain.ErrValidation, status)
	}

	s.mu.Lock()
	changed := false
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			changed = true
			break
		}
	}
	if changed {
		kv.Save(ctx, s.kv, s.log, kv.KeyBookings, s.bookings)
	}
	s.mu.Unlock()

	if changed {
		s.notify(kv.KeyBookings)
	}
	return nil
}
