package store

import (
	"encoding/json"

	"github.com/restkit/restkit/errors"
)

// recordAttrs converts a typed record into an attribute map through its
// JSON representation, so the record's own json tags decide the outbound
// key names before the serializer applies wire conventions.
func recordAttrs(typeName string, record any) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Serialization("encode "+typeName+" record", err)
	}
	var attrs map[string]any
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, errors.Serialization("encode "+typeName+" record", err)
	}
	return attrs, nil
}

// decodeRecord converts a normalized attribute map back into a typed record.
func decodeRecord[T any](typeName string, attrs map[string]any) (T, error) {
	var record T
	raw, err := json.Marshal(attrs)
	if err != nil {
		return record, errors.Serialization("decode "+typeName+" record", err)
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return record, errors.Serialization("decode "+typeName+" record", err)
	}
	return record, nil
}
