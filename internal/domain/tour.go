// Package domain contains the core data types for the agency content backend.
// This package has zero external dependencies and is imported by every other
// internal package (kv, store, view, export, handler).
package domain

// ContentStatus gates public visibility of tours, blog posts, and experiences.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
)

// Valid reports whether s is one of the two allowed content statuses.
func (s ContentStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// ItineraryDay is one day of a tour program. Day numbers are 1-based and
// contiguous; the store renumbers them to match slice position on every write.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Tour represents a bookable circuit. Only published tours are visible and
// bookable publicly.
type Tour struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"` // in EUR, converted for display
	Duration    string         `json:"duration"` // e.g. "7 jours"; leading integer is the day count
	ImageURL    string         `json:"imageUrl"`
	Status      ContentStatus  `json:"status"`
	Category    string         `json:"category"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Gallery     []string       `json:"gallery"`
	Included    []string       `json:"included"`
	Excluded    []string       `json:"excluded"`
	Tags        []string       `json:"tags,omitempty"`
}
