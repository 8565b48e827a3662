package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"fitcalc/internal/tracker"
)

func createEntry(t *testing.T, router http.Handler, body string) tracker.Entry {
	t.Helper()
	w := doRequest(router, "POST", "/api/weight-log", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create %s: expected 201, got %d: %s", body, w.Code, w.Body.String())
	}
	var e tracker.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	return e
}

func TestWeightLog_CreateAndList(t *testing.T) {
	router, _ := setupTest(t)
	createEntry(t, router, `{"date":"2026-10-02","weight_kg":80.4}`)
	createEntry(t, router, `{"date":"2026-10-01","weight_kg":81}`)

	w := doRequest(router, "GET", "/api/weight-log?start=2026-10-01&end=2026-10-31", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var entries []tracker.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 2 || entries[0].Date != "2026-10-01" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestWeightLog_EmptyListIsArray(t *testing.T) {
	router, _ := setupTest(t)
	w := doRequest(router, "GET", "/api/weight-log", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("got %d %s, want 200 []", w.Code, w.Body.String())
	}
}

func TestWeightLog_Validation(t *testing.T) {
	router, _ := setupTest(t)
	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"missing date", "POST", "/api/weight-log", `{"weight_kg":80}`},
		{"bad date", "POST", "/api/weight-log", `{"date":"10/01/2026","weight_kg":80}`},
		{"zero weight", "POST", "/api/weight-log", `{"date":"2026-10-01","weight_kg":0}`},
		{"too heavy", "POST", "/api/weight-log", `{"date":"2026-10-01","weight_kg":501}`},
		{"malformed body", "POST", "/api/weight-log", `not json`},
		{"inverted range", "GET", "/api/weight-log?start=2026-10-05&end=2026-10-01", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := doRequest(router, tc.method, tc.path, tc.body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestWeightLog_DuplicateDate(t *testing.T) {
	router, _ := setupTest(t)
	first := createEntry(t, router, `{"date":"2026-10-01","weight_kg":80}`)

	w := doRequest(router, "POST", "/api/weight-log", `{"date":"2026-10-01","weight_kg":79}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	w = doRequest(router, "POST", "/api/weight-log?overwrite=true", `{"date":"2026-10-01","weight_kg":79}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("overwrite: expected 201, got %d", w.Code)
	}
	var e tracker.Entry
	json.Unmarshal(w.Body.Bytes(), &e)
	if e.ID != first.ID || e.WeightKG != 79 {
		t.Errorf("overwrite = %+v, want id %s at 79kg", e, first.ID)
	}
}

func TestWeightLog_UpdateAndDelete(t *testing.T) {
	router, _ := setupTest(t)
	e := createEntry(t, router, `{"date":"2026-10-01","weight_kg":80}`)
	createEntry(t, router, `{"date":"2026-10-02","weight_kg":79.6}`)

	w := doRequest(router, "PUT", "/api/weight-log/"+e.ID, `{"weight_kg":79.9}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if m := decode(t, w); m["weight_kg"].(float64) != 79.9 || m["date"] != "2026-10-01" {
		t.Errorf("update = %v", m)
	}

	if w := doRequest(router, "PUT", "/api/weight-log/"+e.ID, `{"date":"2026-10-02"}`); w.Code != http.StatusConflict {
		t.Errorf("date clash: expected 409, got %d", w.Code)
	}
	if w := doRequest(router, "PUT", "/api/weight-log/nope", `{"weight_kg":70}`); w.Code != http.StatusNotFound {
		t.Errorf("missing id: expected 404, got %d", w.Code)
	}

	if w := doRequest(router, "DELETE", "/api/weight-log/"+e.ID, ""); w.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", w.Code)
	}
	if w := doRequest(router, "DELETE", "/api/weight-log/"+e.ID, ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", w.Code)
	}
}

func TestWeightLog_Clear(t *testing.T) {
	router, _ := setupTest(t)
	createEntry(t, router, `{"date":"2026-10-01","weight_kg":80}`)
	createEntry(t, router, `{"date":"2026-10-02","weight_kg":79}`)

	w := doRequest(router, "DELETE", "/api/weight-log", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if m := decode(t, w); m["deleted"].(float64) != 2 {
		t.Errorf("deleted = %v, want 2", m["deleted"])
	}
}
