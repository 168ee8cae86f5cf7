package fixture

import "github.com/uyouii/cruise-profile/model"

const EarthRadiusMeters = 6371000.0

type RouteLeg struct {
	From             string  `json:"from"`
	To               string  `json:"to"`
	DistanceMeters   float64 `json:"distance_meters"`
	CumulativeMeters float64 `json:"cumulative_meters"`
}

// RouteDistances returns the great-circle legs between consecutive segments.
func RouteDistances(segments []model.SegmentMetadata) []RouteLeg {
	res := []RouteLeg{}
	cumulative := 0.0
	for i := 1; i < len(segments); i++ {
		from, to := &segments[i-1], &segments[i]
		distance := from.LatLng().Distance(to.LatLng()).Radians() * EarthRadiusMeters
		cumulative += distance
		res = append(res, RouteLeg{
			From:             from.SegmentID,
			To:               to.SegmentID,
			DistanceMeters:   distance,
			CumulativeMeters: cumulative,
		})
	}
	return res
}
