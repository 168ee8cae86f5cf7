package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uyouii/cruise-profile/cruise"
	"github.com/uyouii/cruise-profile/fixture"
	"github.com/uyouii/cruise-profile/model"
	"github.com/uyouii/cruise-profile/utils"
	"gonum.org/v1/gonum/stat"
)

const (
	separator  = "=============================="
	timeLayout = "2006-01-02 15:04 MST"
)

type segmentView struct {
	Segment                    model.SegmentMetadata   `json:"segment"`
	EffectiveLimitKmh          float64                 `json:"effective_limit_kmh"`
	ActiveRestrictions         []model.TimeRestriction `json:"active_restrictions"`
	DistanceFromPreviousMeters float64                 `json:"distance_from_previous_meters,omitempty"`
	Samples                    []model.Sample          `json:"samples"`
	MeanSetpointKmh            float64                 `json:"mean_setpoint_kmh,omitempty"`
	SetpointStddevKmh          float64                 `json:"setpoint_stddev_kmh,omitempty"`
}

func newSegmentViews(f *fixture.Fixture, at time.Time) []segmentView {
	legs := fixture.RouteDistances(f.Segments)

	res := make([]segmentView, 0, len(f.Segments))
	for i := range f.Segments {
		segment := &f.Segments[i]
		view := segmentView{
			Segment:            *segment,
			EffectiveLimitKmh:  cruise.EffectiveSpeedLimit(segment, at),
			ActiveRestrictions: cruise.ActiveRestrictions(segment, at),
			Samples:            f.SamplesOf(segment.SegmentID),
		}
		if i > 0 {
			view.DistanceFromPreviousMeters = utils.FormatFloat(legs[i-1].DistanceMeters, 1)
		}
		if len(view.Samples) > 1 {
			mean, stddev := stat.MeanStdDev(cruise.Setpoints(view.Samples), nil)
			view.MeanSetpointKmh = utils.FormatFloat(mean, 2)
			view.SetpointStddevKmh = utils.FormatFloat(stddev, 2)
		}
		res = append(res, view)
	}
	return res
}

func printSegments(w io.Writer, f *fixture.Fixture, at time.Time, jsonOutput bool) error {
	views := newSegmentViews(f, at)
	if jsonOutput {
		return writeJSON(w, views)
	}

	var b strings.Builder
	for _, view := range views {
		segment := view.Segment
		fmt.Fprintln(&b, separator)
		fmt.Fprintf(&b, "Segment: %s\n", segment.SegmentID)
		fmt.Fprintf(&b, "  Latitude: %v\n", segment.Lat)
		fmt.Fprintf(&b, "  Longitude: %v\n", segment.Long)
		if view.DistanceFromPreviousMeters > 0 {
			fmt.Fprintf(&b, "  Distance From Previous (m): %v\n", view.DistanceFromPreviousMeters)
		}
		fmt.Fprintf(&b, "  Map Speed Limit (km/h): %v\n", segment.MapSpeedLimitKmh)
		fmt.Fprintf(&b, "  Effective Limit At %s (km/h): %v\n", at.Format(timeLayout), view.EffectiveLimitKmh)

		fmt.Fprintln(&b, "  Time-Dependent Limits:")
		for _, restriction := range segment.TimeRestrictions {
			fmt.Fprintf(&b, "    - %s\n", restriction.String())
		}

		fmt.Fprintf(&b, "  Samples: %d", len(view.Samples))
		if len(view.Samples) > 1 {
			fmt.Fprintf(&b, " (mean %v km/h, stddev %v)", view.MeanSetpointKmh, view.SetpointStddevKmh)
		}
		fmt.Fprintln(&b)
		for i, sample := range view.Samples {
			fmt.Fprintf(&b, "    [%d] %s | Cruise Setpoint: %v km/h | Age: %d days\n", i+1,
				sample.Timestamp.In(at.Location()).Format(timeLayout), sample.CruiseSetpointKmh,
				utils.DayCntBetween(at, sample.Timestamp))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func printProfiles(w io.Writer, profiles []*model.Profile, cfg model.Config, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, profiles)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Config: max sample age %v days, median threshold %d, outlier threshold %v%%\n",
		cfg.MaxSampleAgeDays, cfg.SampleThresholdForMedian, cfg.OutlierThresholdPercent)
	for _, profile := range profiles {
		fmt.Fprintln(&b, separator)
		fmt.Fprintf(&b, "Segment: %s\n", profile.SegmentID)
		fmt.Fprintf(&b, "  Chosen Speed (km/h): %v\n", utils.FormatFloat(profile.ChosenSpeedKmh, 2))
		fmt.Fprintf(&b, "  Effective Limit (km/h): %v\n", profile.EffectiveLimitKmh)
		fmt.Fprintf(&b, "  Reason: %s\n", profile.Reason)
		fmt.Fprintf(&b, "  Samples: %d admissible, %d stale, %d outliers\n",
			profile.AdmissibleCount, profile.RejectedStale, profile.RejectedOutlier)
		fmt.Fprintf(&b, "  Computed At: %s\n", profile.ComputedAt.Format(timeLayout))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
