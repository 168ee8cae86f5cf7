package fixture

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/uyouii/cruise-profile/model"
)

type routePoint struct {
	lat, long float64
}

// city route from Stuttgart Hauptbahnhof down Heilbronner Strasse
var stuttgartRoute = []routePoint{
	{48.7837, 9.1829}, // Hauptbahnhof
	{48.7832, 9.1815}, // Arnulf-Klett-Platz
	{48.7825, 9.1800}, // Heilbronner Strasse, start
	{48.7815, 9.1790}, // Heilbronner Strasse, mid
	{48.7805, 9.1780}, // Heilbronner Strasse, end
	{48.7795, 9.1770}, // Wolframstrasse intersection
	{48.7785, 9.1760},
}

var stuttgartRestrictions = [][]model.TimeRestriction{
	{
		{FromHour: 7, ToHour: 10, DaysOfWeek: []int{1, 2, 3, 4, 5}, LimitKmh: 15}, // school zone
		{FromHour: 10, ToHour: 24, LimitKmh: 45},
	},
	{
		{FromHour: 6, ToHour: 9, LimitKmh: 25},
		{FromHour: 9, ToHour: 18, LimitKmh: 60},
	},
	{
		{FromHour: 17, ToHour: 20, LimitKmh: 35}, // evening rush
		{FromHour: 6, ToHour: 17, LimitKmh: 70},
	},
	{
		{FromHour: 12, ToHour: 14, LimitKmh: 40}, // lunch
		{FromHour: 0, ToHour: 12, LimitKmh: 65},
	},
	{
		{FromHour: 8, ToHour: 11, LimitKmh: 30},
		{FromHour: 11, ToHour: 24, LimitKmh: 80},
	},
	{
		{FromHour: 18, ToHour: 22, LimitKmh: 50},
		{FromHour: 0, ToHour: 18, LimitKmh: 75},
	},
	{
		{FromHour: 22, ToHour: 6, LimitKmh: 20}, // night, crosses midnight
		{FromHour: 6, ToHour: 22, LimitKmh: 90},
	},
}

func stuttgartMapLimit(idx int) float64 {
	switch {
	case idx == 0:
		return 30
	case idx < 3:
		return 50
	case idx < 5:
		return 60
	default:
		return 80
	}
}

// Stuttgart builds the seven segment demo route with eight hourly samples per segment
// taken before now. The setpoints spread around each map limit and include one sample
// 15 km/h above it; the same seed gives the same samples.
func Stuttgart(now time.Time, seed int64) *Fixture {
	rnd := rand.New(rand.NewSource(seed))
	cfg := model.DefaultConfig()

	fixture := &Fixture{Config: &cfg}
	for idx, point := range stuttgartRoute {
		segment := model.SegmentMetadata{
			SegmentID:        fmt.Sprintf("SEG%d", idx+1),
			MapSpeedLimitKmh: stuttgartMapLimit(idx),
			Lat:              point.lat,
			Long:             point.long,
			TimeRestrictions: slices.Clone(stuttgartRestrictions[idx]),
		}
		fixture.Segments = append(fixture.Segments, segment)

		base := segment.MapSpeedLimitKmh
		setpoints := []float64{
			base - 10 + float64(rnd.Intn(5)),
			base + 5 + float64(rnd.Intn(10)),
			base - 5 + float64(rnd.Intn(10)),
			base + 15,
			base,
			base + 2,
			base - 7,
			base + 8,
		}
		for i, setpoint := range setpoints {
			fixture.Samples = append(fixture.Samples, model.Sample{
				Timestamp:         now.Add(-time.Duration(i+1) * time.Hour),
				SegmentID:         segment.SegmentID,
				CruiseSetpointKmh: setpoint,
			})
		}
	}
	return fixture
}
