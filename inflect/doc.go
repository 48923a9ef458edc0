// Package inflect provides pure string inflection utilities for mapping
// model type names onto wire-level identifiers: camelCase boundary
// splitting, underscore normalization, camelization, and English
// pluralization.
//
// Pluralization is driven by an explicit Ruleset value so irregular and
// uncountable words are data, not hidden process state. The package-level
// functions use DefaultRules; callers with domain vocabulary build their
// own Ruleset and pass it around.
//
//	inflect.Underscore("famousPerson") // "famous_person"
//	inflect.Pluralize("famous_person") // "famous_people"
package inflect
