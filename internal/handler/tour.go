package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/view"
)

// ListTours handles GET /api/tours.
// Query parameters: search, category, duration (all|short|medium|long),
// maxPrice (EUR), tag. All filters are optional and combine with AND.
func (s *Server) ListTours(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := view.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Duration: q.Get("duration"),
		Tag:      q.Get("tag"),
	}
	if raw := q.Get("maxPrice"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeBadRequest(w, "maxPrice must be a number")
			return
		}
		f.MaxPrice = p
	}

	tours := view.FilterTours(view.Published(s.store.Tours()), f)
	s.writeJSON(w, http.StatusOK, map[string]any{"data": tours})
}

// ListCategories handles GET /api/tours/categories.
// Categories come from published tours only, in first-appearance order.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": view.Categories(view.Published(s.store.Tours()))})
}

// ListTags handles GET /api/tours/tags.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": view.Tags(view.Published(s.store.Tours()))})
}

// tourDetail is the GET /api/tours/{id} response: the tour plus its price
// converted into the visitor's display currency.
type tourDetail struct {
	domain.Tour
	DisplayPrice float64 `json:"displayPrice"`
	Currency     string  `json:"currency"`
}

// GetTour handles GET /api/tours/{id}. Draft tours are invisible publicly,
// so an unpublished or unknown id both answer 404.
func (s *Server) GetTour(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, t := range view.Published(s.store.Tours()) {
		if t.ID == id {
			currency := s.store.Currency()
			s.writeJSON(w, http.StatusOK, tourDetail{
				Tour:         t,
				DisplayPrice: view.ConvertPrice(t.Price, currency),
				Currency:     currency,
			})
			return
		}
	}
	s.writeNotFound(w, "tour not found")
}

// TrackTourView handles POST /api/tours/{id}/view. Recording a view is
// idempotent and always succeeds, even for ids that no longer resolve.
func (s *Server) TrackTourView(w http.ResponseWriter, r *http.Request) {
	s.store.TrackViewedTour(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ListRecommendations handles GET /api/recommendations.
// Viewed tours come first, padded with unviewed published tours up to three.
func (s *Server) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	recs := view.Recommend(view.Published(s.store.Tours()), s.store.ViewedTours())
	s.writeJSON(w, http.StatusOK, map[string]any{"data": recs})
}

// GetWishlist handles GET /api/wishlist. Wishlisted ids whose tour has been
// deleted or unpublished since are silently dropped from the result.
func (s *Server) GetWishlist(w http.ResponseWriter, r *http.Request) {
	tours := view.WishlistTours(view.Published(s.store.Tours()), s.store.Wishlist())
	s.writeJSON(w, http.StatusOK, map[string]any{"data": tours})
}

// ToggleWishlist handles POST /api/wishlist/{tourId}: adds the id if absent,
// removes it if present, and reports the resulting state.
func (s *Server) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tourId")
	wishlisted := s.store.ToggleWishlist(r.Context(), id)
	s.writeJSON(w, http.StatusOK, map[string]any{"tourId": id, "wishlisted": wishlisted})
}
