package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leguidebj/agency-backend/internal/domain"
)

// TestAddTour_renumbersItinerary verifies day numbers are reassigned to
// match slice position regardless of what the caller supplied.
func TestAddTour_renumbersItinerary(t *testing.T) {
	s, _ := newTestStore(t)

	tour, err := s.AddTour(context.Background(), domain.Tour{
		Title:  "Circuit test",
		Price:  250,
		Status: domain.StatusPublished,
		Itinerary: []domain.ItineraryDay{
			{Day: 7, Title: "Arrivée"},
			{Day: 7, Title: "Visite"},
			{Day: 0, Title: "Retour"},
		},
	})
	require.NoError(t, err)

	require.Len(t, tour.Itinerary, 3)
	for i, day := range tour.Itinerary {
		assert.Equal(t, i+1, day.Day)
	}
}

// TestAddTour_rejectsInvalidInput verifies price and status validation, and
// that nothing is stored on rejection.
func TestAddTour_rejectsInvalidInput(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	before := len(s.Tours())

	_, err := s.AddTour(ctx, domain.Tour{Title: "Gratuit", Price: 0, Status: domain.StatusPublished})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.AddTour(ctx, domain.Tour{Title: "Statut cassé", Price: 100, Status: "archived"})
	require.ErrorIs(t, err, domain.ErrValidation)

	assert.Len(t, s.Tours(), before)
}

// TestUpdateTour_replacesMatchingTour verifies the update frame property:
// the matching tour is replaced wholesale, every other tour is untouched.
func TestUpdateTour_replacesMatchingTour(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	before := s.Tours()

	updated := before[1]
	updated.Title = "Titre révisé"
	updated.Price = 999
	require.NoError(t, s.UpdateTour(ctx, updated))

	after := s.Tours()
	require.Len(t, after, len(before))
	assert.Equal(t, updated, after[1])
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2:], after[2:])
}

// TestUpdateTour_unknownIDIsNoOp verifies updating a missing id neither
// creates a tour nor errors.
func TestUpdateTour_unknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Tours()

	err := s.UpdateTour(context.Background(), domain.Tour{ID: "ghost", Title: "N/A", Price: 10, Status: domain.StatusDraft})
	require.NoError(t, err)
	assert.Equal(t, before, s.Tours())
}

// TestDeleteTour_isIdempotent verifies a second delete of the same id
// changes nothing.
func TestDeleteTour_isIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	before := s.Tours()

	s.DeleteTour(ctx, before[0].ID)
	afterFirst := s.Tours()
	require.Len(t, afterFirst, len(before)-1)

	s.DeleteTour(ctx, before[0].ID)
	assert.Equal(t, afterFirst, s.Tours())
}
