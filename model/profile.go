package model

import "time"

type SelectionMethod string

const (
	SelectionFallback   SelectionMethod = "fallback"
	SelectionMostRecent SelectionMethod = "most_recent"
	SelectionMedian     SelectionMethod = "median"
)

type Profile struct {
	SegmentID      string    `json:"segment_id"`
	ChosenSpeedKmh float64   `json:"chosen_speed_kmh"`
	Reason         string    `json:"reason"`
	ComputedAt     time.Time `json:"computed_at"`

	EffectiveLimitKmh float64         `json:"effective_limit_kmh"`
	Method            SelectionMethod `json:"method"`
	AdmissibleCount   int             `json:"admissible_count"`
	RejectedStale     int             `json:"rejected_stale,omitempty"`
	RejectedOutlier   int             `json:"rejected_outlier,omitempty"`
}

func (p *Profile) ComputedAtMillis() int64 {
	return p.ComputedAt.UnixMilli()
}
