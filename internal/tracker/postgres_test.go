package tracker

import (
	"context"
	"errors"
	"os"
	"testing"
)

// TestPGStore runs against a live database when FITCALC_TEST_DB_URL is set.
// The weight_log table must already exist (go run ./cmd/migrate).
func TestPGStore(t *testing.T) {
	url := os.Getenv("FITCALC_TEST_DB_URL")
	if url == "" {
		t.Skip("FITCALC_TEST_DB_URL not set")
	}
	ctx := context.Background()
	s, err := NewPGStore(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer s.Close()
	if _, err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	a := mustPut(t, s, "2026-10-01", 80)
	if _, err := s.Put(ctx, PutParams{Date: "2026-10-01", WeightKG: 79}); !errors.Is(err, ErrEntryExists) {
		t.Errorf("duplicate err = %v, want ErrEntryExists", err)
	}
	over, err := s.Put(ctx, PutParams{Date: "2026-10-01", WeightKG: 79, Overwrite: true})
	if err != nil || over.ID != a.ID || over.WeightKG != 79 {
		t.Errorf("overwrite = %+v, %v", over, err)
	}

	mustPut(t, s, "2026-10-03", 78)
	all, err := s.List(ctx, "2026-10-01", "")
	if err != nil || len(all) != 2 || all[0].Date != "2026-10-01" {
		t.Errorf("list = %+v, %v", all, err)
	}

	clash := "2026-10-03"
	if _, err := s.Update(ctx, a.ID, UpdateParams{Date: &clash}); !errors.Is(err, ErrEntryExists) {
		t.Errorf("date clash err = %v, want ErrEntryExists", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing err = %v, want ErrNotFound", err)
	}
	if latest, err := s.Latest(ctx); err != nil || latest.Date != "2026-10-03" {
		t.Errorf("latest = %+v, %v", latest, err)
	}
}
