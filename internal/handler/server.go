// Package handler implements the HTTP surface of the agency content backend.
// All handlers are methods on Server. Methods are split into domain-specific
// files (tour.go, booking.go, admin.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/leguidebj/agency-backend/internal/i18n"
	"github.com/leguidebj/agency-backend/internal/middleware"
	"github.com/leguidebj/agency-backend/internal/store"
)

// maxRequestBody caps incoming JSON bodies. Tour payloads carry full
// itineraries and gallery URL lists, so the limit is generous.
const maxRequestBody = 1 << 20 // 1 MiB

// Server holds the dependencies shared by all handlers.
type Server struct {
	store    *store.Store
	i18n     *i18n.Bundle
	log      *slog.Logger
	validate *validator.Validate

	// whatsapp is the agency number booking confirmations deep-link to.
	whatsapp string
}

// NewServer constructs the Server with all its dependencies.
func NewServer(st *store.Store, bundle *i18n.Bundle, log *slog.Logger, whatsappNumber string) *Server {
	return &Server{
		store:    st,
		i18n:     bundle,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		whatsapp: whatsappNumber,
	}
}

// Routes assembles the full router: request-scoped middleware, the public
// API, and the admin API behind the session gate. The login endpoint sits
// outside the gate so an unauthenticated admin can open a session.
func (s *Server) Routes(corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewSlogLogger(s.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(corsOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBody))

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tours", s.ListTours)
		r.Get("/tours/categories", s.ListCategories)
		r.Get("/tours/tags", s.ListTags)
		r.Get("/tours/{id}", s.GetTour)
		r.Post("/tours/{id}/view", s.TrackTourView)
		r.Get("/recommendations", s.ListRecommendations)
		r.Get("/wishlist", s.GetWishlist)
		r.Post("/wishlist/{tourId}", s.ToggleWishlist)

		r.Get("/blog", s.ListBlogPosts)
		r.Get("/blog/{id}", s.GetBlogPost)
		r.Get("/experiences", s.ListExperiences)
		r.Get("/testimonials", s.ListTestimonials)
		r.Post("/testimonials", s.CreateTestimonial)
		r.Post("/messages", s.CreateMessage)
		r.Post("/bookings", s.CreateBooking)
		r.Get("/home", s.GetHomePage)

		r.Get("/settings", s.GetSettings)
		r.Put("/settings", s.UpdateSettings)
		r.Get("/i18n/{lang}/{key}", s.Translate)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", s.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.NewAdminGate(s.store))

				r.Post("/logout", s.Logout)
				r.Get("/dashboard", s.GetDashboard)

				r.Get("/tours", s.AdminListTours)
				r.Post("/tours", s.CreateTour)
				r.Put("/tours/{id}", s.UpdateTour)
				r.Delete("/tours/{id}", s.DeleteTour)

				r.Get("/bookings", s.AdminListBookings)
				r.Get("/bookings/export", s.ExportBookings)
				r.Put("/bookings/{id}/status", s.UpdateBookingStatus)

				r.Get("/messages", s.AdminListMessages)
				r.Put("/messages/{id}/read", s.MarkMessageRead)

				r.Get("/testimonials", s.AdminListTestimonials)
				r.Put("/testimonials/{id}/status", s.UpdateTestimonialStatus)

				r.Get("/blog", s.AdminListBlogPosts)
				r.Post("/blog", s.CreateBlogPost)
				r.Put("/blog/{id}", s.UpdateBlogPost)
				r.Delete("/blog/{id}", s.DeleteBlogPost)

				r.Get("/experiences", s.AdminListExperiences)
				r.Post("/experiences", s.CreateExperience)
				r.Put("/experiences/{id}", s.UpdateExperience)
				r.Delete("/experiences/{id}", s.DeleteExperience)

				r.Get("/home", s.AdminGetHomePage)
				r.Put("/home", s.ReplaceHomePage)
				r.Put("/home/hero", s.UpdateHero)
				r.Put("/home/engagement", s.UpdateEngagementHeading)
				r.Put("/home/engagement/{index}", s.UpdateEngagementItem)
				r.Put("/home/faq", s.UpdateFAQHeading)
				r.Post("/home/faq/items", s.AddFAQItem)
				r.Delete("/home/faq/items/{index}", s.RemoveFAQItem)
			})
		})
	})

	return r
}
