package domain

import "time"

// TestimonialStatus is the moderation state of a visitor review.
type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

// Valid reports whether s is one of the three allowed testimonial statuses.
func (s TestimonialStatus) Valid() bool {
	return s == TestimonialPending || s == TestimonialApproved || s == TestimonialRejected
}

// Message is a contact-form submission. Read transitions one way: once a
// message is marked read it never becomes unread again.
type Message struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"` // immutable
	Read    bool      `json:"read"`
}

// Testimonial is a visitor review. User-submitted testimonials always start
// pending; only approved ones are shown publicly. An admin may move the
// status freely between all three values.
type Testimonial struct {
	ID         string            `json:"id"`
	Author     string            `json:"author"`
	ReviewText string            `json:"reviewText"`
	Rating     int               `json:"rating"` // integer 1..5
	ImageURL   string            `json:"imageUrl"`
	Status     TestimonialStatus `json:"status"`
}

// BlogPost is an article; only published posts are visible publicly.
type BlogPost struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	ImageURL  string        `json:"imageUrl"`
	CreatedAt time.Time     `json:"createdAt"` // immutable
	Status    ContentStatus `json:"status"`
}

// Experience is a highlighted destination card on the home page.
type Experience struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ImageURL    string        `json:"imageUrl"`
	Status      ContentStatus `json:"status"`
}
