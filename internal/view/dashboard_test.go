package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/view"
)

// TestNewDashboard_aggregates verifies counts, pending/unread tallies, and
// the bookings-by-tour chart in first-appearance order.
func TestNewDashboard_aggregates(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "b1", TourTitle: "Safari au Parc Pendjari", Status: domain.BookingPending},
		{ID: "b2", TourTitle: "Aventure à Ganvié", Status: domain.BookingConfirmed},
		{ID: "b3", TourTitle: "Safari au Parc Pendjari", Status: domain.BookingCancelled},
		{ID: "b4", TourTitle: "Safari au Parc Pendjari", Status: domain.BookingPending},
	}
	messages := []domain.Message{
		{ID: "m1", Read: false},
		{ID: "m2", Read: true},
		{ID: "m3", Read: false},
	}
	testimonials := []domain.Testimonial{
		{ID: "t1", Status: domain.TestimonialPending},
		{ID: "t2", Status: domain.TestimonialApproved},
	}

	d := view.NewDashboard(catalog(), bookings, messages, testimonials, []domain.BlogPost{{ID: "bp1"}})

	assert.Equal(t, 4, d.Tours)
	assert.Equal(t, 1, d.BlogPosts)
	assert.Equal(t, 2, d.PendingBookings)
	assert.Equal(t, 2, d.UnreadMessages)
	assert.Equal(t, 1, d.PendingTestimonials)
	assert.Equal(t, []view.ChartBar{
		{Label: "Safari au Parc Pendjari", Count: 3},
		{Label: "Aventure à Ganvié", Count: 1},
	}, d.BookingsByTour)
	assert.Equal(t, 3, d.MaxCount)
}

// TestNewDashboard_maxCountFlooredAtOne verifies the chart divisor never
// reaches zero on an empty bookings collection.
func TestNewDashboard_maxCountFlooredAtOne(t *testing.T) {
	d := view.NewDashboard(nil, nil, nil, nil, nil)
	assert.Equal(t, 1, d.MaxCount)
	assert.Empty(t, d.BookingsByTour)
}

// TestUnreadCount tallies unread messages only.
func TestUnreadCount(t *testing.T) {
	assert.Equal(t, 0, view.UnreadCount(nil))
	assert.Equal(t, 1, view.UnreadCount([]domain.Message{{Read: true}, {Read: false}}))
}
