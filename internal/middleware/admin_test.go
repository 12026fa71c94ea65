package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leguidebj/agency-backend/internal/middleware"
)

type fakeSession bool

func (s fakeSession) IsAuthenticated() bool { return bool(s) }

// TestAdminGate_NoSession_Returns401 verifies that requests are rejected with
// 401 and a JSON error body when no admin session is open.
func TestAdminGate_NoSession_Returns401(t *testing.T) {
	h := middleware.NewAdminGate(fakeSession(false))(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"authentication required"}`, rec.Body.String())
}

// TestAdminGate_OpenSession_PassesThrough verifies that requests reach the
// next handler once the admin session is open.
func TestAdminGate_OpenSession_PassesThrough(t *testing.T) {
	h := middleware.NewAdminGate(fakeSession(true))(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
