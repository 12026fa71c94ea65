package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/leguidebj/agency-backend/internal/domain"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "error", err)
	}
}

// writeError maps a domain error to its HTTP status and JSON body.
// Unknown errors become 500 with a generic message; the detail goes to the
// log only.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorBody{errorDetail{Code: "not_found", Message: "resource not found"}})
	case errors.Is(err, domain.ErrValidation):
		s.writeJSON(w, http.StatusUnprocessableEntity, errorBody{errorDetail{Code: "validation_error", Message: err.Error()}})
	case errors.Is(err, domain.ErrUnauthorized):
		s.writeJSON(w, http.StatusUnauthorized, errorBody{errorDetail{Code: "unauthorized", Message: "authentication required"}})
	default:
		s.log.Error("internal error", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorBody{errorDetail{Code: "internal", Message: "internal server error"}})
	}
}

// writeNotFound writes a 404 with a caller-supplied message, for handlers
// that detect the missing resource themselves.
func (s *Server) writeNotFound(w http.ResponseWriter, message string) {
	s.writeJSON(w, http.StatusNotFound, errorBody{errorDetail{Code: "not_found", Message: message}})
}

// writeBadRequest writes a 422 for a request rejected before reaching the
// store (malformed body, failed field validation).
func (s *Server) writeBadRequest(w http.ResponseWriter, message string) {
	s.writeJSON(w, http.StatusUnprocessableEntity, errorBody{errorDetail{Code: "validation_error", Message: message}})
}

// decodeJSON decodes the request body into dst and runs struct validation.
// A false return means the error response has already been written.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{errorDetail{Code: "validation_error", Message: "request body too large"}})
			return false
		}
		s.writeBadRequest(w, "invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			s.writeBadRequest(w, fmt.Sprintf("field %q fails %q validation", f.Field(), f.Tag()))
			return false
		}
		s.writeBadRequest(w, err.Error())
		return false
	}
	return true
}
