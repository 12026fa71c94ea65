package handler

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/leguidebj/agency-backend/internal/domain"
)

// settingsResponse is the GET /api/settings body.
type settingsResponse struct {
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// GetSettings handles GET /api/settings.
func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, settingsResponse{
		Currency: s.store.Currency(),
		Theme:    s.store.Theme(),
		Language: s.store.Language(),
	})
}

// updateSettingsRequest is the PUT /api/settings body. All fields are
// optional; absent fields keep their current value.
type updateSettingsRequest struct {
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// UpdateSettings handles PUT /api/settings. An invalid value for any field
// rejects the whole request before anything is written.
func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	// Validate every field up front so a bad value cannot leave the
	// settings half-applied.
	if req.Currency != "" && !domain.ValidCurrency(req.Currency) {
		s.writeBadRequest(w, "unsupported currency "+strconv.Quote(req.Currency))
		return
	}
	if req.Theme != "" && !domain.ValidTheme(req.Theme) {
		s.writeBadRequest(w, "unsupported theme "+strconv.Quote(req.Theme))
		return
	}
	if req.Language != "" && !slices.Contains(s.i18n.Languages(), req.Language) {
		s.writeBadRequest(w, "unsupported language "+strconv.Quote(req.Language))
		return
	}

	ctx := r.Context()
	if req.Currency != "" {
		if err := s.store.SetCurrency(ctx, req.Currency); err != nil {
			s.writeError(w, err)
			return
		}
	}
	if req.Theme != "" {
		if err := s.store.SetTheme(ctx, req.Theme); err != nil {
			s.writeError(w, err)
			return
		}
	}
	if req.Language != "" {
		if err := s.store.SetLanguage(ctx, req.Language); err != nil {
			s.writeError(w, err)
			return
		}
	}

	s.writeJSON(w, http.StatusOK, settingsResponse{
		Currency: s.store.Currency(),
		Theme:    s.store.Theme(),
		Language: s.store.Language(),
	})
}

// Translate handles GET /api/i18n/{lang}/{key}. Query parameters fill the
// {name} placeholders of the resolved string. Resolution never fails: an
// unknown key falls back through the default language to the key itself.
func (s *Server) Translate(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	key := chi.URLParam(r, "key")

	params := make(map[string]any, len(r.URL.Query()))
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"key":   key,
		"value": s.i18n.Resolve(lang, key, params),
	})
}
