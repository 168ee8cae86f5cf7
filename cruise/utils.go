package cruise

import (
	"math"
	"sort"

	"github.com/uyouii/cruise-profile/model"
)

func Setpoints(samples []model.Sample) []float64 {
	res := make([]float64, len(samples))
	for i := range samples {
		res[i] = samples[i].CruiseSetpointKmh
	}
	return res
}

// Median sorts a copy of values, an even count averages the two middle values.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// SamplesBySegment groups samples by their segment id, keeping the input order.
func SamplesBySegment(samples []model.Sample) map[string][]model.Sample {
	res := map[string][]model.Sample{}
	for _, sample := range samples {
		res[sample.SegmentID] = append(res[sample.SegmentID], sample)
	}
	return res
}
