package cruise

import (
	"time"

	"github.com/uyouii/cruise-profile/model"
)

// Wednesday 09:30 UTC
var evalTime = time.Date(2025, time.June, 11, 9, 30, 0, 0, time.UTC)

func newSegment(mapLimit float64, restrictions ...model.TimeRestriction) *model.SegmentMetadata {
	return &model.SegmentMetadata{
		SegmentID:        "SEG1",
		MapSpeedLimitKmh: mapLimit,
		Lat:              48.7837,
		Long:             9.1829,
		TimeRestrictions: restrictions,
	}
}

// newSamples builds one sample per setpoint, the first one an hour old, each next one an hour older.
func newSamples(at time.Time, setpoints ...float64) []model.Sample {
	res := make([]model.Sample, 0, len(setpoints))
	for i, setpoint := range setpoints {
		res = append(res, model.Sample{
			Timestamp:         at.Add(-time.Duration(i+1) * time.Hour),
			SegmentID:         "SEG1",
			CruiseSetpointKmh: setpoint,
		})
	}
	return res
}
