package domain

import "time"

// BookingStatus is the admin-managed state of a booking request.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

// Valid reports whether s is one of the three allowed booking statuses.
func (s BookingStatus) Valid() bool {
	return s == BookingPending || s == BookingConfirmed || s == BookingCancelled
}

// UnknownTourTitle is stored on a booking whose tour id does not resolve at
// creation time. The booking still succeeds; the title is a placeholder.
const UnknownTourTitle = "Circuit inconnu"

// Booking is a customer's reservation request for a tour.
//
// TourTitle is a denormalized snapshot taken when the booking is created; it
// deliberately does not track later renames of the referenced tour. TourID is
// a weak reference — the tour may have been deleted since.
type Booking struct {
	ID             string        `json:"id"`
	TourID         string        `json:"tourId"`
	TourTitle      string        `json:"tourTitle"`
	CustomerName   string        `json:"customerName"`
	CustomerEmail  string        `json:"customerEmail"`
	CustomerPhone  string        `json:"customerPhone"`
	NumberOfPeople int           `json:"numberOfPeople"`
	BookingDate    time.Time     `json:"bookingDate"` // creation timestamp, immutable
	Status         BookingStatus `json:"status"`
}
