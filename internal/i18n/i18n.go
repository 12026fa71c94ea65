// Package i18n resolves dotted translation keys against the bundled
// language dictionaries.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed locales/*.json
var locales embed.FS

// DefaultLanguage is the fallback dictionary for missing keys and unknown
// language tags.
const DefaultLanguage = "fr"

// Bundle holds the parsed dictionaries for all bundled languages.
type Bundle struct {
	dicts       map[string]map[string]any
	defaultLang string
}

// NewBundle parses every embedded dictionary. It fails only on a broken
// build (missing or malformed locale files).
func NewBundle() (*Bundle, error) {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n.NewBundle: %w", err)
	}

	b := &Bundle{dicts: make(map[string]map[string]any), defaultLang: DefaultLanguage}
	for _, e := range entries {
		raw, err := locales.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n.NewBundle: read %s: %w", e.Name(), err)
		}
		var dict map[string]any
		if err := json.Unmarshal(raw, &dict); err != nil {
			return nil, fmt.Errorf("i18n.NewBundle: parse %s: %w", e.Name(), err)
		}
		lang := strings.TrimSuffix(e.Name(), ".json")
		b.dicts[lang] = dict
	}

	if _, ok := b.dicts[b.defaultLang]; !ok {
		return nil, fmt.Errorf("i18n.NewBundle: default language %q not bundled", b.defaultLang)
	}
	return b, nil
}

// Languages returns the bundled language tags in no particular order.
func (b *Bundle) Languages() []string {
	out := make([]string, 0, len(b.dicts))
	for lang := range b.dicts {
		out = append(out, lang)
	}
	return out
}

// Resolve looks up a dotted key such as "booking.title" in the requested
// language, falling back to the default language and finally to the literal
// key itself. Every "{name}" placeholder in the resolved string is replaced
// with the stringified parameter value; unmatched placeholders are left
// verbatim. Resolve never fails.
func (b *Bundle) Resolve(lang, key string, params map[string]any) string {
	text, ok := lookup(b.dicts[lang], key)
	if !ok {
		text, ok = lookup(b.dicts[b.defaultLang], key)
	}
	if !ok {
		text = key
	}

	for name, v := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", fmt.Sprint(v))
	}
	return text
}

// lookup walks the nested dictionary segment by segment. Only a string leaf
// counts as a hit; landing on a sub-tree or falling off the structure is a
// miss.
func lookup(dict map[string]any, key string) (string, bool) {
	node := any(dict)
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = m[part]
		if !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}
