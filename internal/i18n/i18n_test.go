package i18n_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leguidebj/agency-backend/internal/i18n"
)

func newBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b, err := i18n.NewBundle()
	require.NoError(t, err)
	return b
}

// TestNewBundle_parsesEmbeddedLocales verifies both bundled dictionaries
// load.
func TestNewBundle_parsesEmbeddedLocales(t *testing.T) {
	b := newBundle(t)
	langs := b.Languages()
	slices.Sort(langs)
	assert.Equal(t, []string{"en", "fr"}, langs)
}

// TestResolve_knownKey verifies direct lookups in both languages.
func TestResolve_knownKey(t *testing.T) {
	b := newBundle(t)

	assert.Equal(t, "Accueil", b.Resolve("fr", "header.home", nil))
	assert.Equal(t, "Home", b.Resolve("en", "header.home", nil))
	assert.Equal(t, "Voir les détails", b.Resolve("fr", "ui.tourCard.details", nil))
}

// TestResolve_fallbackChain verifies the chain: unknown language falls back
// to the default dictionary, and a key missing everywhere resolves to the
// literal key.
func TestResolve_fallbackChain(t *testing.T) {
	b := newBundle(t)

	// Unknown language tag: default (fr) dictionary answers.
	assert.Equal(t, "Accueil", b.Resolve("de", "header.home", nil))

	// Missing key: the dotted key itself comes back verbatim.
	assert.Equal(t, "header.doesNotExist", b.Resolve("fr", "header.doesNotExist", nil))
	assert.Equal(t, "no.such.section", b.Resolve("en", "no.such.section", nil))
}

// TestResolve_subtreeIsAMiss verifies landing on a non-leaf node counts as
// a miss, not a stringified map.
func TestResolve_subtreeIsAMiss(t *testing.T) {
	b := newBundle(t)
	assert.Equal(t, "header", b.Resolve("fr", "header", nil))
}

// TestResolve_params verifies placeholder substitution, including the
// unmatched-placeholder rule.
func TestResolve_params(t *testing.T) {
	b := newBundle(t)

	assert.Equal(t, "Jour 3", b.Resolve("fr", "tourDetail.day", map[string]any{"day": 3}))
	assert.Equal(t, "Day 3", b.Resolve("en", "tourDetail.day", map[string]any{"day": 3}))

	// Unmatched placeholders are left verbatim.
	assert.Equal(t, "Jour {day}", b.Resolve("fr", "tourDetail.day", map[string]any{"date": "x"}))
	assert.Equal(t, "Jour {day}", b.Resolve("fr", "tourDetail.day", nil))
}
