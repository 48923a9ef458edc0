package resttest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/restkit/restkit/testutil"
)

func startServer(t *testing.T) *Server {
	t.Helper()

	api := NewServer(nil)
	api.AddResource("famousPerson", func(attrs map[string]any) map[string][]string {
		if name, _ := attrs["first_name"].(string); name == "" {
			return map[string][]string{"first_name": {"can't be blank"}}
		}
		return nil
	})
	testutil.T(t).Setup(api)
	return api
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })

	var doc map[string]json.RawMessage
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp, doc
}

func TestCreateFindDelete(t *testing.T) {
	api := startServer(t)
	base := api.URL() + "/famous_people"

	resp, doc := doJSON(t, http.MethodPost, base, map[string]any{
		"famous_person": map[string]any{"first_name": "Tom", "last_name": "Dale"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201", resp.StatusCode)
	}

	var created map[string]any
	if err := json.Unmarshal(doc["famous_person"], &created); err != nil {
		t.Fatalf("decode created record: %v", err)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("created record should have an assigned id")
	}

	resp, doc = doJSON(t, http.MethodGet, base+"/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", resp.StatusCode)
	}
	var found map[string]any
	if err := json.Unmarshal(doc["famous_person"], &found); err != nil {
		t.Fatalf("decode found record: %v", err)
	}
	if found["first_name"] != "Tom" {
		t.Errorf("first_name = %v", found["first_name"])
	}

	resp, _ = doJSON(t, http.MethodDelete, base+"/"+id, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, base+"/"+id, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET after delete = %d, want 404", resp.StatusCode)
	}
}

func TestValidationFailureAnswers422(t *testing.T) {
	api := startServer(t)

	resp, doc := doJSON(t, http.MethodPost, api.URL()+"/famous_people", map[string]any{
		"famous_person": map[string]any{"last_name": "Dale"},
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	var fields map[string][]string
	if err := json.Unmarshal(doc["errors"], &fields); err != nil {
		t.Fatalf("decode errors: %v", err)
	}
	if got := fields["first_name"]; len(got) != 1 || got[0] != "can't be blank" {
		t.Errorf("errors[first_name] = %v", got)
	}
}

func TestListAndQuery(t *testing.T) {
	api := startServer(t)
	api.Seed("famousPerson",
		map[string]any{"id": "1", "first_name": "Tom", "home_planet_id": "42"},
		map[string]any{"id": "2", "first_name": "Yehuda", "home_planet_id": "7"},
	)

	resp, doc := doJSON(t, http.MethodGet, api.URL()+"/famous_people", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var all []map[string]any
	if err := json.Unmarshal(doc["famous_people"], &all); err != nil {
		t.Fatalf("decode collection: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d records, want 2", len(all))
	}

	_, doc = doJSON(t, http.MethodGet, api.URL()+"/famous_people?home_planet_id=42", nil)
	var filtered []map[string]any
	if err := json.Unmarshal(doc["famous_people"], &filtered); err != nil {
		t.Fatalf("decode filtered collection: %v", err)
	}
	if len(filtered) != 1 || filtered[0]["first_name"] != "Tom" {
		t.Errorf("filtered = %v, want only Tom", filtered)
	}
}

func TestUnknownResource(t *testing.T) {
	api := startServer(t)
	resp, _ := doJSON(t, http.MethodGet, api.URL()+"/unicorns", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestResetAndSnapshotRestore(t *testing.T) {
	api := startServer(t)
	ctx := context.Background()
	api.Seed("famousPerson", map[string]any{"id": "1", "first_name": "Tom"})

	snapshot, err := api.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	if err := api.Reset(ctx); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if got := api.Records("famousPerson"); len(got) != 0 {
		t.Fatalf("Records after Reset = %v, want empty", got)
	}

	if err := api.Restore(ctx, snapshot); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	records := api.Records("famousPerson")
	if len(records) != 1 || records[0]["first_name"] != "Tom" {
		t.Errorf("Records after Restore = %v", records)
	}
}

func TestSeedWithoutResourcePanics(t *testing.T) {
	api := NewServer(nil)
	defer func() {
		if recover() == nil {
			t.Error("Seed for an unregistered type should panic")
		}
	}()
	api.Seed("unicorn", map[string]any{"id": "1"})
}
