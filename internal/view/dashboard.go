package view

import "github.com/leguidebj/agency-backend/internal/domain"

// ChartBar is one bar of the bookings-by-tour chart: the denormalized tour
// title and how many bookings reference it.
type ChartBar struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Dashboard aggregates the admin overview numbers.
type Dashboard struct {
	Tours                int        `json:"tours"`
	BlogPosts            int        `json:"blogPosts"`
	PendingBookings      int        `json:"pendingBookings"`
	UnreadMessages       int        `json:"unreadMessages"`
	PendingTestimonials  int        `json:"pendingTestimonials"`
	BookingsByTour       []ChartBar `json:"bookingsByTour"`
	// MaxCount is the largest bar count, floored at 1 so chart rendering can
	// divide by it without guarding against zero.
	MaxCount int `json:"maxCount"`
}

// NewDashboard computes the admin overview from a store snapshot. Bar order
// follows first appearance of each tour title in the bookings collection.
func NewDashboard(
	tours []domain.Tour,
	bookings []domain.Booking,
	messages []domain.Message,
	testimonials []domain.Testimonial,
	posts []domain.BlogPost,
) Dashboard {
	d := Dashboard{
		Tours:     len(tours),
		BlogPosts: len(posts),
		MaxCount:  1,
	}

	for _, b := range bookings {
		if b.Status == domain.BookingPending {
			d.PendingBookings++
		}
	}
	for _, m := range messages {
		if !m.Read {
			d.UnreadMessages++
		}
	}
	for _, t := range testimonials {
		if t.Status == domain.TestimonialPending {
			d.PendingTestimonials++
		}
	}

	index := make(map[string]int)
	for _, b := range bookings {
		i, ok := index[b.TourTitle]
		if !ok {
			i = len(d.BookingsByTour)
			index[b.TourTitle] = i
			d.BookingsByTour = append(d.BookingsByTour, ChartBar{Label: b.TourTitle})
		}
		d.BookingsByTour[i].Count++
		if d.BookingsByTour[i].Count > d.MaxCount {
			d.MaxCount = d.BookingsByTour[i].Count
		}
	}

	return d
}

// UnreadCount returns how many messages are still unread.
func UnreadCount(messages []domain.Message) int {
	n := 0
	for _, m := range messages {
		if !m.Read {
			n++
		}
	}
	return n
}
