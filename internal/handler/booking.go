package handler

import (
	"net/http"

	"github.com/leguidebj/agency-backend/internal/deeplink"
	"github.com/leguidebj/agency-backend/internal/store"
)

// createBookingRequest is the POST /api/bookings body.
type createBookingRequest struct {
	TourID         string `json:"tourId" validate:"required"`
	CustomerName   string `json:"customerName" validate:"required"`
	CustomerEmail  string `json:"customerEmail" validate:"required,email"`
	CustomerPhone  string `json:"customerPhone" validate:"required"`
	NumberOfPeople int    `json:"numberOfPeople" validate:"required,min=1"`
}

// CreateBooking handles POST /api/bookings. The booking is stored with status
// Pending and the tour title snapshotted at creation; a tour id that no
// longer resolves still succeeds with a placeholder title. The response
// carries a WhatsApp deep link so the customer can confirm with the agency
// directly.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	b, err := s.store.AddBooking(r.Context(), store.NewBooking{
		TourID:         req.TourID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		NumberOfPeople: req.NumberOfPeople,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"booking":     b,
		"whatsappUrl": deeplink.WhatsApp(s.whatsapp, b),
	})
}
