package serializer

import (
	"encoding/json"
	"fmt"
)

// Serializer converts between attribute maps and wire documents for a given
// record type. Implementations must be safe for concurrent use.
type Serializer interface {
	// Name is the registry identifier of the serializer.
	Name() string
	// Serialize produces the outbound wire document for a single record.
	Serialize(typeName string, attrs map[string]any) ([]byte, error)
	// Normalize extracts a single record's attributes from an inbound payload.
	Normalize(typeName string, payload []byte) (map[string]any, error)
	// NormalizeMany extracts a collection of records from an inbound payload.
	NormalizeMany(typeName string, payload []byte) ([]map[string]any, error)
}

// JSONName is the registry name of the pass-through JSON serializer.
const JSONName = "json"

// JSON is a pass-through serializer: records cross the wire as plain JSON
// objects with attribute keys unchanged, collections as top-level arrays.
type JSON struct{}

// Name returns the registry identifier.
func (JSON) Name() string { return JSONName }

// Serialize marshals the attribute map as a JSON object.
func (JSON) Serialize(typeName string, attrs map[string]any) ([]byte, error) {
	b, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", typeName, err)
	}
	return b, nil
}

// Normalize unmarshals the payload as a single JSON object.
func (JSON) Normalize(typeName string, payload []byte) (map[string]any, error) {
	var attrs map[string]any
	if err := json.Unmarshal(payload, &attrs); err != nil {
		return nil, fmt.Errorf("normalize %s: %w", typeName, err)
	}
	return attrs, nil
}

// NormalizeMany unmarshals the payload as a JSON array of objects.
func (JSON) NormalizeMany(typeName string, payload []byte) ([]map[string]any, error) {
	var records []map[string]any
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("normalize %s collection: %w", typeName, err)
	}
	return records, nil
}
