package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/golang/geo/s2"
)

type Sample struct {
	Timestamp         time.Time `json:"timestamp" yaml:"timestamp"`
	SegmentID         string    `json:"segment_id" yaml:"segment_id"`
	CruiseSetpointKmh float64   `json:"cruise_setpoint_kmh" yaml:"cruise_setpoint_kmh"`

	// contextual tags, carried with the record but not used for selection
	VehicleSpeedKmh  *float64 `json:"vehicle_speed_kmh,omitempty" yaml:"vehicle_speed_kmh,omitempty"`
	TrafficCondition string   `json:"traffic_condition,omitempty" yaml:"traffic_condition,omitempty"`
	TimeOfDayBucket  string   `json:"time_of_day_bucket,omitempty" yaml:"time_of_day_bucket,omitempty"`
}

// Age is how long before at the sample was recorded, negative for samples from the future.
func (s *Sample) Age(at time.Time) time.Duration {
	return at.Sub(s.Timestamp)
}

func (s *Sample) After(sample Sample) bool {
	return s.Timestamp.After(sample.Timestamp)
}

// TimeRestriction lowers a segment limit during [FromHour, ToHour) on the listed days.
// DaysOfWeek uses 0=Sunday .. 6=Saturday, an empty list means every day.
type TimeRestriction struct {
	FromHour   int     `json:"from_hour" yaml:"from_hour"`
	ToHour     int     `json:"to_hour" yaml:"to_hour"`
	DaysOfWeek []int   `json:"days_of_week,omitempty" yaml:"days_of_week,omitempty"`
	LimitKmh   float64 `json:"limit_kmh" yaml:"limit_kmh"`
}

// Active reports whether the restriction applies at the given hour of day and day of week.
// A rule with ToHour < FromHour never matches.
func (r *TimeRestriction) Active(hour, day int) bool {
	inHour := hour >= r.FromHour && hour < r.ToHour
	inDay := len(r.DaysOfWeek) == 0 || slices.Contains(r.DaysOfWeek, day)
	return inHour && inDay
}

func (r *TimeRestriction) String() string {
	res := fmt.Sprintf("%v km/h from %02d:00 to %02d:00", r.LimitKmh, r.FromHour, r.ToHour)
	if len(r.DaysOfWeek) > 0 {
		res += fmt.Sprintf(" (days: %v)", r.DaysOfWeek)
	}
	return res
}

type SegmentMetadata struct {
	SegmentID        string            `json:"segment_id" yaml:"segment_id"`
	MapSpeedLimitKmh float64           `json:"map_speed_limit_kmh" yaml:"map_speed_limit_kmh"`
	Lat              float64           `json:"lat" yaml:"lat"`
	Long             float64           `json:"long" yaml:"long"`
	TimeRestrictions []TimeRestriction `json:"time_restrictions,omitempty" yaml:"time_restrictions,omitempty"`
}

func (m *SegmentMetadata) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(m.Lat, m.Long)
}

func (m *SegmentMetadata) DebugString() string {
	return fmt.Sprintf("segment: %v, mapLimit: %v, restrictionCount: %v",
		m.SegmentID, m.MapSpeedLimitKmh, len(m.TimeRestrictions))
}
