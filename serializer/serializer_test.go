package serializer

import (
	"testing"
)

func TestJSONSerializeRoundTrip(t *testing.T) {
	s := JSON{}
	attrs := map[string]any{"name": "Tom Dale", "occupation": "developer"}

	payload, err := s.Serialize("person", attrs)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	got, err := s.Normalize("person", payload)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if got["name"] != "Tom Dale" || got["occupation"] != "developer" {
		t.Errorf("Normalize() = %v, want original attrs", got)
	}
}

func TestJSONNormalizeMany(t *testing.T) {
	s := JSON{}
	payload := []byte(`[{"id":"1","name":"a"},{"id":"2","name":"b"}]`)

	records, err := s.NormalizeMany("person", payload)
	if err != nil {
		t.Fatalf("NormalizeMany() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("NormalizeMany() returned %d records, want 2", len(records))
	}
	if records[1]["name"] != "b" {
		t.Errorf("records[1][name] = %v, want b", records[1]["name"])
	}
}

func TestJSONNormalizeInvalidPayload(t *testing.T) {
	s := JSON{}
	if _, err := s.Normalize("person", []byte(`not json`)); err == nil {
		t.Error("Normalize() with invalid JSON should fail")
	}
	if _, err := s.NormalizeMany("person", []byte(`{"not":"array"}`)); err == nil {
		t.Error("NormalizeMany() with non-array payload should fail")
	}
}

func TestRegistry(t *testing.T) {
	s, err := Lookup(JSONName)
	if err != nil {
		t.Fatalf("Lookup(%q) error: %v", JSONName, err)
	}
	if s.Name() != JSONName {
		t.Errorf("Name() = %q, want %q", s.Name(), JSONName)
	}

	if _, err := Lookup("no-such-serializer"); err == nil {
		t.Error("Lookup of unregistered name should fail")
	}
}
