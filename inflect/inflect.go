package inflect

import (
	"strings"
	"unicode"
)

// Decamelize inserts underscores at camelCase word boundaries and lowercases
// the result. Acronym runs are kept together ("HTMLPage" -> "html_page").
// The empty string maps to the empty string.
func Decamelize(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Underscore normalizes a string into snake_case: dashes, spaces, dots and
// "::" separators become underscores, camelCase boundaries are split, and
// repeated underscores are collapsed. Already-underscored input passes
// through unchanged.
func Underscore(s string) string {
	if s == "" {
		return ""
	}

	replacer := strings.NewReplacer("::", "_", "-", "_", " ", "_", ".", "_")
	s = Decamelize(replacer.Replace(s))

	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// Camelize converts a snake_case string into lowerCamelCase
// ("home_planet_id" -> "homePlanetId"). It is the inverse of Underscore for
// single-word segments.
func Camelize(s string) string {
	if s == "" {
		return ""
	}

	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))

	wrote := false
	for _, p := range parts {
		if p == "" {
			continue
		}
		if !wrote {
			b.WriteString(strings.ToLower(p[:1]))
		} else {
			b.WriteString(strings.ToUpper(p[:1]))
		}
		b.WriteString(p[1:])
		wrote = true
	}
	return b.String()
}
