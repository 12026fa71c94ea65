package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leguidebj/agency-backend/internal/store"
	"github.com/leguidebj/agency-backend/internal/view"
)

// ListBlogPosts handles GET /api/blog. Draft posts stay hidden.
func (s *Server) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": view.PublishedPosts(s.store.BlogPosts())})
}

// GetBlogPost handles GET /api/blog/{id}. Unknown and draft ids both 404.
func (s *Server) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, p := range view.PublishedPosts(s.store.BlogPosts()) {
		if p.ID == id {
			s.writeJSON(w, http.StatusOK, p)
			return
		}
	}
	s.writeNotFound(w, "blog post not found")
}

// ListExperiences handles GET /api/experiences.
func (s *Server) ListExperiences(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": view.PublishedExperiences(s.store.Experiences())})
}

// ListTestimonials handles GET /api/testimonials. Only approved reviews are
// public; pending and rejected ones exist solely on the admin side.
func (s *Server) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"data": view.Approved(s.store.Testimonials())})
}

// createTestimonialRequest is the POST /api/testimonials body. No status
// field: submissions always enter moderation as pending.
type createTestimonialRequest struct {
	Author     string `json:"author" validate:"required"`
	ReviewText string `json:"reviewText" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ImageURL   string `json:"imageUrl"`
}

// CreateTestimonial handles POST /api/testimonials.
func (s *Server) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req createTestimonialRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	t, err := s.store.AddTestimonial(r.Context(), store.NewTestimonial{
		Author:     req.Author,
		ReviewText: req.ReviewText,
		Rating:     req.Rating,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, t)
}

// createMessageRequest is the POST /api/messages contact-form body.
type createMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// CreateMessage handles POST /api/messages.
func (s *Server) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	m := s.store.AddMessage(r.Context(), store.NewMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	s.writeJSON(w, http.StatusCreated, m)
}

// GetHomePage handles GET /api/home.
func (s *Server) GetHomePage(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.HomePage())
}
