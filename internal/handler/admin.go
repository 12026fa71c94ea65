package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/export"
	"github.com/leguidebj/agency-backend/internal/view"
)

// loginRequest is the POST /api/admin/login body.
type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/admin/login. A correct password opens the single
// shared admin session; a wrong one answers 401 without opening it.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if !s.store.Login(r.Context(), req.Password) {
		s.writeJSON(w, http.StatusUnauthorized, errorBody{errorDetail{Code: "unauthorized", Message: "invalid password"}})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

// Logout handles POST /api/admin/logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.store.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// GetDashboard handles GET /api/admin/dashboard: collection counts, pending
// work, and the bookings-per-tour chart.
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d := view.NewDashboard(
		s.store.Tours(),
		s.store.Bookings(),
		s.store.Messages(),
		s.store.Testimonials(),
		s.store.BlogPosts(),
	)
	s.writeJSON(w, http.StatusOK, d)
}

// --- tours ------------------------------------------------------------------

// AdminListTours handles GET /api/admin/tours. Drafts included.
func (s *Server) AdminListTours(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": s.store.Tours()})
}

// CreateTour handles POST /api/admin/tours. The store assigns the id and
// renumbers the itinerary days.
func (s *Server) CreateTour(w http.ResponseWriter, r *http.Request) {
	var t domain.Tour
	if !s.decodeJSON(w, r, &t) {
		return
	}
	created, err := s.store.AddTour(r.Context(), t)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

// UpdateTour handles PUT /api/admin/tours/{id}. The path id wins over any id
// in the body. An unknown id is a silent no-op, mirroring the store.
func (s *Server) UpdateTour(w http.ResponseWriter, r *http.Request) {
	var t domain.Tour
	if !s.decodeJSON(w, r, &t) {
		return
	}
	t.ID = chi.URLParam(r, "id")
	if err := s.store.UpdateTour(r.Context(), t); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTour handles DELETE /api/admin/tours/{id}. Deleting is idempotent.
func (s *Server) DeleteTour(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteTour(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// --- bookings ---------------------------------------------------------------

// AdminListBookings handles GET /api/admin/bookings, newest first.
func (s *Server) AdminListBookings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": s.store.Bookings()})
}

// ExportBookings handles GET /api/admin/bookings/export: a CSV download with
// UTF-8 BOM and a date-stamped filename, newest booking first.
func (s *Server) ExportBookings(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.Bookings(&buf, s.store.Bookings()); err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(s.store.Now())+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Error("write csv export", "error", err)
	}
}

// updateStatusRequest is the body of the three PUT .../status endpoints.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateBookingStatus handles PUT /api/admin/bookings/{id}/status.
func (s *Server) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.store.UpdateBookingStatus(r.Context(), chi.URLParam(r, "id"), domain.BookingStatus(req.Status)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- messages and testimonials ----------------------------------------------

// AdminListMessages handles GET /api/admin/messages.
func (s *Server) AdminListMessages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": s.store.Messages()})
}

// MarkMessageRead handles PUT /api/admin/messages/{id}/read. Read is one-way:
// repeating the call changes nothing.
func (s *Server) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	s.store.MarkMessageRead(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// AdminListTestimonials handles GET /api/admin/testimonials. All moderation
// states included.
func (s *Server) AdminListTestimonials(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": s.store.Testimonials()})
}

// UpdateTestimonialStatus handles PUT /api/admin/testimonials/{id}/status.
func (s *Server) UpdateTestimonialStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.store.UpdateTestimonialStatus(r.Context(), chi.URLParam(r, "id"), domain.TestimonialStatus(req.Status)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- blog -------------------------------------------------------------------

// AdminListBlogPosts handles GET /api/admin/blog. Drafts included.
func (s *Server) AdminListBlogPosts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": s.store.BlogPosts()})
}

// CreateBlogPost handles POST /api/admin/blog.
func (s *Server) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var p domain.BlogPost
	if !s.decodeJSON(w, r, &p) {
		return
	}
	created, err := s.store.AddBlogPost(r.Context(), p)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

// UpdateBlogPost handles PUT /api/admin/blog/{id}.
func (s *Server) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	var p domain.BlogPost
	if !s.decodeJSON(w, r, &p) {
		return
	}
	p.ID = chi.URLParam(r, "id")
	if err := s.store.UpdateBlogPost(r.Context(), p); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteBlogPost handles DELETE /api/admin/blog/{id}.
func (s *Server) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteBlogPost(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// --- experiences ------------------------------------------------------------

// AdminListExperiences handles GET /api/admin/experiences. Drafts included.
func (s *Server) AdminListExperiences(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": s.store.Experiences()})
}

// CreateExperience handles POST /api/admin/experiences.
func (s *Server) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var e domain.Experience
	if !s.decodeJSON(w, r, &e) {
		return
	}
	created, err := s.store.AddExperience(r.Context(), e)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

// UpdateExperience handles PUT /api/admin/experiences/{id}.
func (s *Server) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	var e domain.Experience
	if !s.decodeJSON(w, r, &e) {
		return
	}
	e.ID = chi.URLParam(r, "id")
	if err := s.store.UpdateExperience(r.Context(), e); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteExperience handles DELETE /api/admin/experiences/{id}.
func (s *Server) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteExperience(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// --- home page --------------------------------------------------------------

// AdminGetHomePage handles GET /api/admin/home.
func (s *Server) AdminGetHomePage(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.HomePage())
}

// ReplaceHomePage handles PUT /api/admin/home: the whole document at once.
// The engagement section must carry exactly three items.
func (s *Server) ReplaceHomePage(w http.ResponseWriter, r *http.Request) {
	var h domain.HomePageContent
	if !s.decodeJSON(w, r, &h) {
		return
	}
	if err := s.store.ReplaceHomePage(r.Context(), h); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateHero handles PUT /api/admin/home/hero.
func (s *Server) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var h domain.Hero
	if !s.decodeJSON(w, r, &h) {
		return
	}
	s.store.SetHero(r.Context(), h)
	w.WriteHeader(http.StatusNoContent)
}

// engagementHeadingRequest is the PUT /api/admin/home/engagement body. It
// touches the section heading only; the three cards have their own endpoint.
type engagementHeadingRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
}

// UpdateEngagementHeading handles PUT /api/admin/home/engagement.
func (s *Server) UpdateEngagementHeading(w http.ResponseWriter, r *http.Request) {
	var req engagementHeadingRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.store.SetEngagementHeading(r.Context(), req.Title, req.Subtitle, req.ImageURL)
	w.WriteHeader(http.StatusNoContent)
}

// UpdateEngagementItem handles PUT /api/admin/home/engagement/{index}.
// The three card slots are edited in place; index is 0-based.
func (s *Server) UpdateEngagementItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeBadRequest(w, "index must be an integer")
		return
	}
	var item domain.EngagementItem
	if !s.decodeJSON(w, r, &item) {
		return
	}
	if err := s.store.SetEngagementItem(r.Context(), index, item); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// faqHeadingRequest is the PUT /api/admin/home/faq body.
type faqHeadingRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// UpdateFAQHeading handles PUT /api/admin/home/faq.
func (s *Server) UpdateFAQHeading(w http.ResponseWriter, r *http.Request) {
	var req faqHeadingRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.store.SetFAQHeading(r.Context(), req.Title, req.Subtitle)
	w.WriteHeader(http.StatusNoContent)
}

// AddFAQItem handles POST /api/admin/home/faq/items.
func (s *Server) AddFAQItem(w http.ResponseWriter, r *http.Request) {
	var item domain.FAQItem
	if !s.decodeJSON(w, r, &item) {
		return
	}
	s.store.AddFAQItem(r.Context(), item)
	w.WriteHeader(http.StatusCreated)
}

// RemoveFAQItem handles DELETE /api/admin/home/faq/items/{index}.
func (s *Server) RemoveFAQItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeBadRequest(w, "index must be an integer")
		return
	}
	if err := s.store.RemoveFAQItem(r.Context(), index); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
