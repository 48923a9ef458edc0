package activemodel

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/restkit/restkit/errors"
	"github.com/restkit/restkit/inflect"
	"github.com/restkit/restkit/store"
)

// SerializerName is the registry name of the Rails-style document format.
const SerializerName = "active_model"

// PathForType maps a record type name to its URL path segment: camelCase
// boundaries become underscores and the result is pluralized, so
// "famousPerson" resolves to "famous_people". Pure and deterministic; the
// empty string maps to the empty string.
func PathForType(typeName string) string {
	return inflect.Pluralize(inflect.Underscore(typeName))
}

// ClassifyError refines the baseline error for a failed request. A 422
// response carries field-level validation messages in the shape
//
//	{"errors": {"name": ["can't be blank"]}}
//
// and any 422 body that parses as JSON becomes a *errors.ValidationError,
// even when the field map is absent or mis-shaped. A 422 body that does not
// parse is itself the returned error: a malformed validation payload is a
// server bug worth surfacing, not something to recover from. Every other
// status keeps the baseline error untouched.
func ClassifyError(status int, body []byte, fallback error) error {
	if status != http.StatusUnprocessableEntity {
		return fallback
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("activemodel: parse validation body: %w", err)
	}
	return errors.NewValidationError(fieldMessages(doc))
}

// fieldMessages extracts the {"errors": {field: [messages]}} map from a
// decoded 422 body. Entries that do not fit the shape are skipped; a body
// with no usable field map yields an empty map, and the 422 status alone
// marks the record invalid.
func fieldMessages(doc any) map[string][]string {
	fields := make(map[string][]string)
	obj, ok := doc.(map[string]any)
	if !ok {
		return fields
	}
	raw, ok := obj["errors"].(map[string]any)
	if !ok {
		return fields
	}
	for field, messages := range raw {
		list, ok := messages.([]any)
		if !ok {
			continue
		}
		for _, m := range list {
			if s, ok := m.(string); ok {
				fields[field] = append(fields[field], s)
			}
		}
	}
	return fields
}

// Profile bundles the hooks above into a store profile.
func Profile() store.Profile {
	return store.Profile{
		PathForType:    PathForType,
		ClassifyError:  ClassifyError,
		SerializerName: SerializerName,
	}
}
