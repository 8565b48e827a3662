package nutrition

import (
	"strings"
	"testing"
)

func samples(weights ...float64) []WeightSample {
	dates := []string{"2026-10-01", "2026-10-02", "2026-10-03", "2026-10-04", "2026-10-05"}
	out := make([]WeightSample, len(weights))
	for i, w := range weights {
		out[i] = WeightSample{Date: dates[i], Weight: w}
	}
	return out
}

func TestRecalibrate(t *testing.T) {
	cases := []struct {
		name     string
		goal     Goal
		samples  []WeightSample
		want     int
		wantNote string
	}{
		{"too few samples", WeightLoss, samples(80, 80), 2000, ""},
		{"loss stalled", WeightLoss, samples(80, 80.5, 80.1), 1900, "Weight stagnant (Diff: +0.1kg)"},
		{"loss progressing", ExtremeWeightLoss, samples(80, 79.5, 79), 2000, ""},
		{"gain stalled", WeightGain, samples(60, 59.8, 59.5), 2100, "Slow progress (Diff: -0.5kg)"},
		{"gain progressing", WeightGain, samples(60, 60.4, 61), 2000, ""},
		{"maintain ignores trend", Maintain, samples(60, 65, 70), 2000, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, note := Recalibrate(2000, tc.goal, tc.samples)
			if got != tc.want {
				t.Errorf("target = %d, want %d", got, tc.want)
			}
			if tc.wantNote == "" && note != "" {
				t.Errorf("unexpected note %q", note)
			}
			if tc.wantNote != "" && !strings.Contains(note, tc.wantNote) {
				t.Errorf("note = %q, want it to contain %q", note, tc.wantNote)
			}
		})
	}
}

// TestRecalibrate_SortsByDate verifies the trend uses date order, not input
// order: sorted, the weight drops 1kg so a loss goal is on track.
func TestRecalibrate_SortsByDate(t *testing.T) {
	in := []WeightSample{
		{Date: "2026-10-05", Weight: 79},
		{Date: "2026-10-01", Weight: 80},
		{Date: "2026-10-03", Weight: 79.6},
	}
	if got, note := Recalibrate(2000, WeightLoss, in); got != 2000 || note != "" {
		t.Errorf("Recalibrate = (%d, %q), want (2000, \"\")", got, note)
	}
	if in[0].Date != "2026-10-05" {
		t.Error("input slice was reordered")
	}
}
