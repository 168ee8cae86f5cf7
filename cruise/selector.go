package cruise

import (
	"fmt"

	"github.com/uyouii/cruise-profile/model"
)

// SelectSpeed picks the recommended speed from the admissible samples:
// no samples falls back to the effective limit, fewer than threshold uses the most recent
// setpoint, otherwise the median. The result is never above effectiveLimitKmh.
func SelectSpeed(admissible []model.Sample, effectiveLimitKmh float64, threshold int) (float64, model.SelectionMethod, string) {
	n := len(admissible)

	if n == 0 {
		return effectiveLimitKmh, model.SelectionFallback, ReasonFallback
	}

	if n < threshold {
		mostRecent, _ := MostRecent(admissible)
		speed := min(mostRecent.CruiseSetpointKmh, effectiveLimitKmh)
		return speed, model.SelectionMostRecent, fmt.Sprintf(ReasonMostRecentFormat, n)
	}

	speed := min(Median(Setpoints(admissible)), effectiveLimitKmh)
	return speed, model.SelectionMedian, fmt.Sprintf(ReasonMedianFormat, n)
}

// MostRecent returns the sample with the latest timestamp.
// On equal timestamps the later one in the slice wins.
func MostRecent(samples []model.Sample) (model.Sample, bool) {
	if len(samples) == 0 {
		return model.Sample{}, false
	}
	res := samples[0]
	for _, sample := range samples[1:] {
		if !res.After(sample) {
			res = sample
		}
	}
	return res, true
}
