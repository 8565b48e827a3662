package nutrition

import (
	"fmt"
	"sort"
)

// WeightSample is one tracker reading used for trend recalibration.
type WeightSample struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}

const (
	minTrendSamples  = 3
	trendAdjustShare = 0.05
	// trendStallKG is the weight change under which progress counts as stalled.
	trendStallKG = 0.1
)

// Recalibrate nudges target by 5% when the weight trend is not moving toward
// the goal: down for stalled loss, up for stalled gain. It needs at least three
// samples; otherwise target is returned untouched with an empty note.
func Recalibrate(target int, goal Goal, samples []WeightSample) (int, string) {
	if len(samples) < minTrendSamples {
		return target, ""
	}
	sorted := append([]WeightSample(nil), samples...)
	// YYYY-MM-DD sorts lexically.
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	diff := sorted[len(sorted)-1].Weight - sorted[0].Weight

	adjustment := int(float64(target) * trendAdjustShare)
	switch {
	case goal.IsLoss() && diff >= -trendStallKG:
		return target - adjustment, fmt.Sprintf("Trend Alert: Weight stagnant (Diff: %+.1fkg). Calories adjusted by -5%% to break plateau.", diff)
	case goal.IsGain() && diff <= trendStallKG:
		return target + adjustment, fmt.Sprintf("Trend Alert: Slow progress (Diff: %+.1fkg). Calories adjusted by +5%% to boost growth.", diff)
	}
	return target, ""
}
