package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/handler"
	"github.com/leguidebj/agency-backend/internal/i18n"
	"github.com/leguidebj/agency-backend/internal/kv"
	"github.com/leguidebj/agency-backend/internal/store"
)

var testTime = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

// newTestServer builds the full router over an in-memory adapter seeded
// with the bundled dataset, plus the backing store for direct assertions.
func newTestServer(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)

	st := store.New(kv.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)),
		store.WithClock(func() time.Time { return testTime }),
		store.WithLanguages(bundle.Languages()),
	)
	srv := handler.NewServer(st, bundle, slog.New(slog.NewTextHandler(io.Discard, nil)), "22952030744")
	return srv.Routes([]string{"http://localhost:5173"}), st
}

// do runs one request against the router and returns the recorder.
func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the {"data": ...} envelope used by list endpoints.
func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data
}

// login opens the admin session for the duration of the test.
func login(t *testing.T, h http.Handler) {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/admin/login", `{"password":"Ado@25"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	h, _ := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// TestListTours_publishedOnlyWithFilters verifies drafts stay hidden and
// query-parameter filters apply.
func TestListTours_publishedOnlyWithFilters(t *testing.T) {
	h, st := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/tours", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tours := decodeData[[]domain.Tour](t, rec)

	published := 0
	for _, tour := range st.Tours() {
		if tour.Status == domain.StatusPublished {
			published++
		}
	}
	require.Len(t, tours, published)
	for _, tour := range tours {
		assert.Equal(t, domain.StatusPublished, tour.Status)
	}

	rec = do(t, h, http.MethodGet, "/api/tours?maxPrice=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[[]domain.Tour](t, rec))

	rec = do(t, h, http.MethodGet, "/api/tours?maxPrice=abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// TestGetTour_draftAnswers404 verifies draft and unknown ids are
// indistinguishable publicly, and that a published tour carries its
// converted display price.
func TestGetTour_draftAnswers404(t *testing.T) {
	h, st := newTestServer(t)

	var draftID, publishedID string
	var publishedPrice float64
	for _, tour := range st.Tours() {
		if tour.Status == domain.StatusDraft && draftID == "" {
			draftID = tour.ID
		}
		if tour.Status == domain.StatusPublished && publishedID == "" {
			publishedID = tour.ID
			publishedPrice = tour.Price
		}
	}

	rec := do(t, h, http.MethodGet, "/api/tours/"+draftID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/tours/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/tours/"+publishedID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail struct {
		ID           string  `json:"id"`
		DisplayPrice float64 `json:"displayPrice"`
		Currency     string  `json:"currency"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, publishedID, detail.ID)
	assert.Equal(t, domain.CurrencyEUR, detail.Currency)
	assert.InDelta(t, publishedPrice, detail.DisplayPrice, 1e-9)
}

// TestRecommendations_reactToViews verifies view tracking feeds the
// recommendation list.
func TestRecommendations_reactToViews(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/recommendations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	initial := decodeData[[]domain.Tour](t, rec)
	require.NotEmpty(t, initial)
	viewed := initial[0].ID

	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPost, "/api/tours/"+viewed+"/view", "").Code)

	rec = do(t, h, http.MethodGet, "/api/recommendations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, tour := range decodeData[[]domain.Tour](t, rec) {
		assert.NotEqual(t, viewed, tour.ID)
	}
}

// TestWishlist_toggleRoundTrip verifies the toggle endpoint and list
// resolution.
func TestWishlist_toggleRoundTrip(t *testing.T) {
	h, st := newTestServer(t)
	id := st.Tours()[0].ID

	rec := do(t, h, http.MethodPost, "/api/wishlist/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tourId":"`+id+`","wishlisted":true}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/wishlist", "")
	require.Equal(t, http.StatusOK, rec.Code)
	wishlist := decodeData[[]domain.Tour](t, rec)
	require.Len(t, wishlist, 1)
	assert.Equal(t, id, wishlist[0].ID)

	rec = do(t, h, http.MethodPost, "/api/wishlist/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tourId":"`+id+`","wishlisted":false}`, rec.Body.String())
}

// TestCreateBooking_returnsWhatsAppLink verifies the happy path, including
// the deep link and the stored pending status.
func TestCreateBooking_returnsWhatsAppLink(t *testing.T) {
	h, st := newTestServer(t)
	tour := st.Tours()[0]

	rec := do(t, h, http.MethodPost, "/api/bookings",
		`{"tourId":"`+tour.ID+`","customerName":"Alice Martin","customerEmail":"alice@example.com","customerPhone":"0123456789","numberOfPeople":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Booking     domain.Booking `json:"booking"`
		WhatsAppURL string         `json:"whatsappUrl"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, tour.Title, body.Booking.TourTitle)
	assert.Equal(t, domain.BookingPending, body.Booking.Status)
	assert.True(t, strings.HasPrefix(body.WhatsAppURL, "https://wa.me/22952030744?text="), body.WhatsAppURL)

	// The booking is stored newest-first.
	assert.Equal(t, body.Booking.ID, st.Bookings()[0].ID)
}

// TestCreateBooking_validation verifies field validation rejects the
// request before it reaches the store.
func TestCreateBooking_validation(t *testing.T) {
	h, st := newTestServer(t)
	before := len(st.Bookings())

	rec := do(t, h, http.MethodPost, "/api/bookings",
		`{"tourId":"1","customerName":"X","customerEmail":"not-an-email","customerPhone":"0","numberOfPeople":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/bookings",
		`{"tourId":"1","customerName":"X","customerEmail":"x@example.com","customerPhone":"0","numberOfPeople":0}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	assert.Len(t, st.Bookings(), before)
}

// TestCreateTestimonial_forcedPending verifies public submissions cannot
// choose their own moderation state.
func TestCreateTestimonial_forcedPending(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/testimonials",
		`{"author":"Claire","reviewText":"Top.","rating":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var tst domain.Testimonial
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tst))
	assert.Equal(t, domain.TestimonialPending, tst.Status)

	// Pending submissions never appear on the public list.
	list := decodeData[[]domain.Testimonial](t, do(t, h, http.MethodGet, "/api/testimonials", ""))
	for _, got := range list {
		assert.NotEqual(t, tst.ID, got.ID)
	}
}

// TestUpdateSettings_rejectsInvalidWithoutPartialApply verifies a bad field
// leaves every setting untouched.
func TestUpdateSettings_rejectsInvalidWithoutPartialApply(t *testing.T) {
	h, st := newTestServer(t)

	rec := do(t, h, http.MethodPut, "/api/settings", `{"currency":"USD","theme":"sepia"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, domain.CurrencyEUR, st.Currency(), "valid field must not apply when another is invalid")

	rec = do(t, h, http.MethodPut, "/api/settings", `{"currency":"XOF","theme":"dark","language":"en"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"currency":"XOF","theme":"dark","language":"en"}`, rec.Body.String())
}

// TestTranslate_resolvesWithParams verifies the i18n endpoint including
// query-parameter substitution and the fallback chain.
func TestTranslate_resolvesWithParams(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/i18n/fr/tourDetail.day?day=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key":"tourDetail.day","value":"Jour 3"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/i18n/de/header.home", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key":"header.home","value":"Accueil"}`, rec.Body.String())
}

// TestAdminGate_blocksWithoutSession verifies every gated route answers 401
// until login, and again after logout.
func TestAdminGate_blocksWithoutSession(t *testing.T) {
	h, _ := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/api/admin/dashboard", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/api/admin/bookings/export", "").Code)

	rec := do(t, h, http.MethodPost, "/api/admin/login", `{"password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/api/admin/dashboard", "").Code)

	login(t, h)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/admin/dashboard", "").Code)

	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPost, "/api/admin/logout", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/api/admin/dashboard", "").Code)
}

// TestAdminTours_crud verifies the gated tour lifecycle end to end.
func TestAdminTours_crud(t *testing.T) {
	h, st := newTestServer(t)
	login(t, h)

	rec := do(t, h, http.MethodPost, "/api/admin/tours",
		`{"id":"","title":"Circuit test","description":"d","price":250,"duration":"2 jours","imageUrl":"","status":"draft","category":"Culture","itinerary":[{"day":9,"title":"Arrivée","description":""}],"gallery":[],"included":[],"excluded":[]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Tour
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 1, created.Itinerary[0].Day, "itinerary days are renumbered")

	// Drafts are visible on the admin list but not on the public one.
	adminList := decodeData[[]domain.Tour](t, do(t, h, http.MethodGet, "/api/admin/tours", ""))
	publicList := decodeData[[]domain.Tour](t, do(t, h, http.MethodGet, "/api/tours", ""))
	assert.Len(t, adminList, len(publicList)+2)

	created.Title = "Circuit révisé"
	body, err := json.Marshal(created)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPut, "/api/admin/tours/"+created.ID, string(body)).Code)

	found := false
	for _, tour := range st.Tours() {
		if tour.ID == created.ID {
			found = true
			assert.Equal(t, "Circuit révisé", tour.Title)
		}
	}
	require.True(t, found)

	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/admin/tours/"+created.ID, "").Code)
	for _, tour := range st.Tours() {
		assert.NotEqual(t, created.ID, tour.ID)
	}
}

// TestAdminBookingStatus_invalidRejected verifies the 422 path and that the
// booking keeps its state.
func TestAdminBookingStatus_invalidRejected(t *testing.T) {
	h, st := newTestServer(t)
	login(t, h)
	target := st.Bookings()[0]

	rec := do(t, h, http.MethodPut, "/api/admin/bookings/"+target.ID+"/status", `{"status":"Archived"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, target.Status, st.Bookings()[0].Status)

	rec = do(t, h, http.MethodPut, "/api/admin/bookings/"+target.ID+"/status", `{"status":"Cancelled"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, domain.BookingCancelled, st.Bookings()[0].Status)
}

// TestExportBookings_csvDownload verifies the download headers, the BOM,
// and the header row.
func TestExportBookings_csvDownload(t *testing.T) {
	h, _ := newTestServer(t)
	login(t, h)

	rec := do(t, h, http.MethodGet, "/api/admin/bookings/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="bookings_2026-08-28.csv"`, rec.Header().Get("Content-Disposition"))

	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	assert.True(t, strings.HasPrefix(strings.TrimPrefix(body, "\xEF\xBB\xBF"),
		"id,tourId,tourTitle,customerName,customerEmail,customerPhone,numberOfPeople,bookingDate,status\r\n"))
}

// TestAdminHomePage_sectionEndpoints verifies hero, engagement slots, and
// FAQ editing through the HTTP surface.
func TestAdminHomePage_sectionEndpoints(t *testing.T) {
	h, st := newTestServer(t)
	login(t, h)

	require.Equal(t, http.StatusNoContent,
		do(t, h, http.MethodPut, "/api/admin/home/hero", `{"title":"Bienvenue","subtitle":"s","imageUrl":"u"}`).Code)
	assert.Equal(t, "Bienvenue", st.HomePage().Hero.Title)

	require.Equal(t, http.StatusNoContent,
		do(t, h, http.MethodPut, "/api/admin/home/engagement/0", `{"icon":"leaf","title":"Éco","description":"d"}`).Code)
	assert.Equal(t, "Éco", st.HomePage().Engagement.Items[0].Title)

	assert.Equal(t, http.StatusUnprocessableEntity,
		do(t, h, http.MethodPut, "/api/admin/home/engagement/3", `{"icon":"x","title":"t","description":"d"}`).Code)

	before := len(st.HomePage().FAQ.Items)
	require.Equal(t, http.StatusCreated,
		do(t, h, http.MethodPost, "/api/admin/home/faq/items", `{"question":"Q ?","answer":"R."}`).Code)
	require.Len(t, st.HomePage().FAQ.Items, before+1)

	require.Equal(t, http.StatusNoContent,
		do(t, h, http.MethodDelete, "/api/admin/home/faq/items/"+strconv.Itoa(before), "").Code)
	assert.Len(t, st.HomePage().FAQ.Items, before)
}

// TestAdminMessages_markRead verifies the one-way read flag over HTTP.
func TestAdminMessages_markRead(t *testing.T) {
	h, st := newTestServer(t)
	login(t, h)
	id := st.Messages()[0].ID

	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPut, "/api/admin/messages/"+id+"/read", "").Code)
	assert.True(t, st.Messages()[0].Read)

	// Repeating the call is a no-op.
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPut, "/api/admin/messages/"+id+"/read", "").Code)
	assert.True(t, st.Messages()[0].Read)
}
