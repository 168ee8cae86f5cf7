package cruise

import (
	"time"

	"github.com/uyouii/cruise-profile/model"
	"gonum.org/v1/gonum/floats"
)

// ActiveRestrictions returns the rules of the segment matching the hour and weekday of at.
// at must already be in the calendar the rules were written for.
func ActiveRestrictions(segment *model.SegmentMetadata, at time.Time) []model.TimeRestriction {
	hour, day := at.Hour(), int(at.Weekday())

	res := []model.TimeRestriction{}
	for _, restriction := range segment.TimeRestrictions {
		if restriction.Active(hour, day) {
			res = append(res, restriction)
		}
	}
	return res
}

// EffectiveSpeedLimit is the map limit lowered by every active restriction, the tightest one wins.
func EffectiveSpeedLimit(segment *model.SegmentMetadata, at time.Time) float64 {
	limits := []float64{segment.MapSpeedLimitKmh}
	for _, restriction := range ActiveRestrictions(segment, at) {
		limits = append(limits, restriction.LimitKmh)
	}
	return floats.Min(limits)
}
