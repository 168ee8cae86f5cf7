package cruise

import (
	"time"

	"github.com/uyouii/cruise-profile/model"
)

type FilterResult struct {
	Admissible []model.Sample

	// a sample both stale and above the ceiling counts as stale
	RejectedStale   int
	RejectedOutlier int
}

// FilterSamples keeps the samples that are fresh enough and not above the outlier ceiling,
// preserving their order. Samples dated after at have a negative age and are kept.
func FilterSamples(samples []model.Sample, at time.Time, mapSpeedLimitKmh float64, cfg model.Config) FilterResult {
	maxAge := cfg.MaxSampleAge()
	ceiling := cfg.OutlierCeilingKmh(mapSpeedLimitKmh)

	res := FilterResult{Admissible: make([]model.Sample, 0, len(samples))}
	for _, sample := range samples {
		if sample.Age(at) > maxAge {
			res.RejectedStale++
			continue
		}
		if sample.CruiseSetpointKmh > ceiling {
			res.RejectedOutlier++
			continue
		}
		res.Admissible = append(res.Admissible, sample)
	}
	return res
}
