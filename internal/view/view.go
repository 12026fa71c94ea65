// Package view computes presentation projections of store snapshots. Every
// function is pure: it reads its arguments, mutates nothing, and returns the
// same result for the same inputs, so callers may recompute on every render.
package view

import (
	"strconv"
	"strings"

	"github.com/leguidebj/agency-backend/internal/domain"
)

// All is the wildcard filter value meaning "no constraint" for a predicate.
const All = "all"

// Duration buckets for the catalog filter.
const (
	DurationShort  = "short"  // 3 days or fewer
	DurationMedium = "medium" // 4 to 7 days
	DurationLong   = "long"   // more than 7 days
)

// Published returns the publicly visible subset of the catalog, preserving
// order.
func Published(tours []domain.Tour) []domain.Tour {
	out := make([]domain.Tour, 0, len(tours))
	for _, t := range tours {
		if t.Status == domain.StatusPublished {
			out = append(out, t)
		}
	}
	return out
}

// PublishedPosts returns the publicly visible blog posts, preserving order.
func PublishedPosts(posts []domain.BlogPost) []domain.BlogPost {
	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Status == domain.StatusPublished {
			out = append(out, p)
		}
	}
	return out
}

// PublishedExperiences returns the publicly visible destination cards.
func PublishedExperiences(exps []domain.Experience) []domain.Experience {
	out := make([]domain.Experience, 0, len(exps))
	for _, e := range exps {
		if e.Status == domain.StatusPublished {
			out = append(out, e)
		}
	}
	return out
}

// Approved returns the testimonials shown publicly.
func Approved(ts []domain.Testimonial) []domain.Testimonial {
	out := make([]domain.Testimonial, 0, len(ts))
	for _, t := range ts {
		if t.Status == domain.TestimonialApproved {
			out = append(out, t)
		}
	}
	return out
}

// Filter holds the five catalog predicates. Zero values and All mean "no
// constraint"; a MaxPrice of 0 disables the price cap.
type Filter struct {
	Search   string  // case-insensitive substring over title and description
	Category string  // exact match or All
	Duration string  // DurationShort/Medium/Long or All
	MaxPrice float64 // inclusive upper bound, 0 = unbounded
	Tag      string  // tag membership or All
}

// FilterTours applies all five predicates, ANDed, over tours. Callers pass
// the published subset; FilterTours itself does not re-check status.
// Filtering an already-filtered result with the same predicates returns the
// same set.
func FilterTours(tours []domain.Tour, f Filter) []domain.Tour {
	search := strings.ToLower(f.Search)
	out := make([]domain.Tour, 0, len(tours))
	for _, t := range tours {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if f.Category != "" && f.Category != All && t.Category != f.Category {
			continue
		}
		if f.MaxPrice > 0 && t.Price > f.MaxPrice {
			continue
		}
		if f.Tag != "" && f.Tag != All && !contains(t.Tags, f.Tag) {
			continue
		}
		if !durationMatches(t.Duration, f.Duration) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// durationMatches buckets the tour's duration by its leading integer:
// short is 3 days or fewer, medium 4 to 7, long more than 7. Durations with
// no parseable leading integer never match a specific bucket.
func durationMatches(duration, bucket string) bool {
	if bucket == "" || bucket == All {
		return true
	}
	days, ok := DurationDays(duration)
	if !ok {
		return false
	}
	switch bucket {
	case DurationShort:
		return days <= 3
	case DurationMedium:
		return days > 3 && days <= 7
	case DurationLong:
		return days > 7
	}
	return false
}

// DurationDays parses the leading integer out of a duration string such as
// "7 jours". The second return is false when no leading integer exists.
func DurationDays(duration string) (int, bool) {
	field, _, _ := strings.Cut(strings.TrimSpace(duration), " ")
	days, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return days, true
}

// Recommend selects up to three published tours for the visitor:
//   - no viewing history: the first three published tours in catalog order;
//   - otherwise the first three published tours not yet viewed;
//   - all published tours viewed: fall back to the first three published.
//
// With one or two unviewed tours left, only those are returned — the list is
// deliberately not padded back up to three with already-viewed tours.
func Recommend(tours []domain.Tour, viewed []string) []domain.Tour {
	published := Published(tours)
	if len(viewed) == 0 {
		return head(published, 3)
	}

	notViewed := make([]domain.Tour, 0, len(published))
	for _, t := range published {
		if !contains(viewed, t.ID) {
			notViewed = append(notViewed, t)
		}
	}
	if len(notViewed) == 0 {
		return head(published, 3)
	}
	return head(notViewed, 3)
}

// WishlistTours resolves wishlist ids against the catalog, preserving
// catalog order and silently dropping ids of deleted tours.
func WishlistTours(tours []domain.Tour, wishlist []string) []domain.Tour {
	out := make([]domain.Tour, 0, len(wishlist))
	for _, t := range tours {
		if contains(wishlist, t.ID) {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the distinct categories of the given tours in first-
// appearance order.
func Categories(tours []domain.Tour) []string {
	return distinct(tours, func(t domain.Tour) []string { return []string{t.Category} })
}

// Tags returns the distinct tags of the given tours in first-appearance
// order.
func Tags(tours []domain.Tour) []string {
	return distinct(tours, func(t domain.Tour) []string { return t.Tags })
}

// ConvertPrice converts an EUR price to the display currency using the
// fixed exchange-rate table. Unknown currencies return the EUR value.
func ConvertPrice(eur float64, currency string) float64 {
	rate, ok := domain.ExchangeRates[currency]
	if !ok {
		return eur
	}
	return eur * rate
}

func distinct(tours []domain.Tour, get func(domain.Tour) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tours {
		for _, v := range get(t) {
			if v != "" && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func head(tours []domain.Tour, n int) []domain.Tour {
	if len(tours) > n {
		tours = tours[:n]
	}
	return tours
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
