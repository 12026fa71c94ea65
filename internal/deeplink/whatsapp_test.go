package deeplink_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leguidebj/agency-backend/internal/deeplink"
	"github.com/leguidebj/agency-backend/internal/domain"
)

// TestWhatsApp_composeURL verifies the wa.me target and that the encoded
// message round-trips to the full booking summary.
func TestWhatsApp_composeURL(t *testing.T) {
	b := domain.Booking{
		TourTitle:      "Safari au Parc Pendjari",
		CustomerName:   "Alice Martin",
		CustomerEmail:  "alice@example.com",
		CustomerPhone:  "0123456789",
		NumberOfPeople: 2,
	}

	got := deeplink.WhatsApp("22952030744", b)
	require.True(t, strings.HasPrefix(got, "https://wa.me/22952030744?text="), got)

	u, err := url.Parse(got)
	require.NoError(t, err)
	msg := u.Query().Get("text")

	assert.Contains(t, msg, `circuit "Safari au Parc Pendjari"`)
	assert.Contains(t, msg, "- Nom: Alice Martin")
	assert.Contains(t, msg, "- Email: alice@example.com")
	assert.Contains(t, msg, "- Téléphone: 0123456789")
	assert.Contains(t, msg, "- Personnes: 2")
	assert.Contains(t, msg, "Merci de confirmer la disponibilité.")
}

// TestWhatsApp_placeholderTitle verifies a booking created against a
// deleted tour still composes a coherent message.
func TestWhatsApp_placeholderTitle(t *testing.T) {
	b := domain.Booking{TourTitle: domain.UnknownTourTitle, CustomerName: "X", NumberOfPeople: 1}
	got := deeplink.WhatsApp("22952030744", b)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), `circuit "Circuit inconnu"`)
}
