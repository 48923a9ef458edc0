package inflect

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// Ruleset holds explicit pluralization vocabulary. Irregulars map a singular
// word to its plural form, uncountables pass through unchanged. Words absent
// from both tables fall back to the standard English suffix rules provided
// by the inflection library.
//
// A Ruleset is a plain value: copy it, extend it, and pass it where needed.
// Lookups never mutate the Ruleset, so a shared instance is safe for
// concurrent use.
type Ruleset struct {
	Irregulars   map[string]string
	Uncountables map[string]struct{}
}

// DefaultRules returns the standard English ruleset.
func DefaultRules() Ruleset {
	return Ruleset{
		Irregulars: map[string]string{
			"person": "people",
			"child":  "children",
			"man":    "men",
			"woman":  "women",
			"foot":   "feet",
			"tooth":  "teeth",
			"goose":  "geese",
			"mouse":  "mice",
			"ox":     "oxen",
		},
		Uncountables: map[string]struct{}{
			"equipment":   {},
			"information": {},
			"money":       {},
			"news":        {},
			"police":      {},
			"series":      {},
			"sheep":       {},
			"species":     {},
			"fish":        {},
		},
	}
}

// Pluralize returns the plural form of an underscored word. Only the final
// underscore-separated segment is inflected, so compound names keep their
// qualifiers: "famous_person" -> "famous_people". The empty string maps to
// the empty string.
func (r Ruleset) Pluralize(s string) string {
	if s == "" {
		return ""
	}

	prefix, last := splitLastWord(s)

	if _, ok := r.Uncountables[last]; ok {
		return s
	}
	if plural, ok := r.Irregulars[last]; ok {
		return prefix + plural
	}
	return prefix + inflection.Plural(last)
}

// Singularize returns the singular form of an underscored word, inverting
// Pluralize for the final segment.
func (r Ruleset) Singularize(s string) string {
	if s == "" {
		return ""
	}

	prefix, last := splitLastWord(s)

	if _, ok := r.Uncountables[last]; ok {
		return s
	}
	for singular, plural := range r.Irregulars {
		if plural == last {
			return prefix + singular
		}
	}
	return prefix + inflection.Singular(last)
}

// Pluralize applies DefaultRules.
func Pluralize(s string) string {
	return DefaultRules().Pluralize(s)
}

// Singularize applies DefaultRules.
func Singularize(s string) string {
	return DefaultRules().Singularize(s)
}

// splitLastWord splits an underscored string into everything up to and
// including the final underscore, and the final segment.
func splitLastWord(s string) (prefix, last string) {
	if idx := strings.LastIndex(s, "_"); idx >= 0 {
		return s[:idx+1], s[idx+1:]
	}
	return "", s
}
