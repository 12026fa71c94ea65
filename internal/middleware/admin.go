package middleware

import (
	"encoding/json"
	"net/http"
)

// SessionChecker reports whether the admin session is currently open.
// *store.Store satisfies it.
type SessionChecker interface {
	IsAuthenticated() bool
}

// NewAdminGate returns a middleware that rejects requests with 401 when no
// admin session is open. Mount it on the /admin subrouter, after the login
// endpoint so logging in stays reachable.
func NewAdminGate(session SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAuthenticated() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
