package activemodel

import (
	"encoding/json"
	"fmt"

	"github.com/restkit/restkit/inflect"
	"github.com/restkit/restkit/serializer"
)

func init() {
	serializer.Register(Serializer{})
}

// Serializer implements the Rails-style wire document: a single record is
// keyed by the underscored type name, a collection by its pluralized form,
// and attribute keys are snake_case on the wire and camelCase in the
// attribute map. Foreign keys need no special handling, the key rules
// already produce them: "homePlanetId" crosses as "home_planet_id",
// "cadreIds" as "cadre_ids".
type Serializer struct{}

// Name returns the registry identifier.
func (Serializer) Name() string { return SerializerName }

// Serialize wraps the underscored attributes under the type's root key.
func (Serializer) Serialize(typeName string, attrs map[string]any) ([]byte, error) {
	doc := map[string]any{rootKey(typeName): underscoreKeys(attrs)}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", typeName, err)
	}
	return b, nil
}

// Normalize unwraps a single record from its root key and camelizes the
// attribute keys.
func (Serializer) Normalize(typeName string, payload []byte) (map[string]any, error) {
	key := rootKey(typeName)

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("normalize %s: %w", typeName, err)
	}
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("normalize %s: missing %q root key", typeName, key)
	}

	var attrs map[string]any
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, fmt.Errorf("normalize %s: %w", typeName, err)
	}
	return camelizeKeys(attrs), nil
}

// NormalizeMany unwraps a collection from its pluralized root key.
func (Serializer) NormalizeMany(typeName string, payload []byte) ([]map[string]any, error) {
	key := PathForType(typeName)

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("normalize %s collection: %w", typeName, err)
	}
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("normalize %s collection: missing %q root key", typeName, key)
	}

	var many []map[string]any
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("normalize %s collection: %w", typeName, err)
	}
	for i, attrs := range many {
		many[i] = camelizeKeys(attrs)
	}
	return many, nil
}

// rootKey is the document key for a single record. Type names are singular
// by convention, so underscoring suffices.
func rootKey(typeName string) string {
	return inflect.Underscore(typeName)
}

// underscoreKeys rewrites the top-level attribute keys to snake_case.
// Values pass through untouched; nested documents are the server's concern.
func underscoreKeys(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[inflect.Underscore(k)] = v
	}
	return out
}

// camelizeKeys rewrites the top-level attribute keys to lowerCamelCase.
func camelizeKeys(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[inflect.Camelize(k)] = v
	}
	return out
}
