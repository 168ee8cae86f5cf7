package model

import (
	"math"
	"time"
)

const (
	DefaultMaxSampleAgeDays         = 30
	DefaultSampleThresholdForMedian = 8
	DefaultOutlierThresholdPercent  = 120
)

type Config struct {
	// samples older than this are inadmissible
	MaxSampleAgeDays float64 `json:"max_sample_age_days" yaml:"max_sample_age_days"`

	// minimum admissible sample count to use the median instead of the most recent sample
	SampleThresholdForMedian int `json:"sample_threshold_for_median" yaml:"sample_threshold_for_median"`

	// setpoints above this percentage of the map limit are outliers, e.g. 120 for 120%
	OutlierThresholdPercent float64 `json:"outlier_threshold_percent" yaml:"outlier_threshold_percent"`
}

func DefaultConfig() Config {
	return Config{
		MaxSampleAgeDays:         DefaultMaxSampleAgeDays,
		SampleThresholdForMedian: DefaultSampleThresholdForMedian,
		OutlierThresholdPercent:  DefaultOutlierThresholdPercent,
	}
}

// MaxSampleAge saturates at the largest Duration for ages too long to represent.
func (c *Config) MaxSampleAge() time.Duration {
	age := c.MaxSampleAgeDays * float64(24*time.Hour)
	if age >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(age)
}

// OutlierCeilingKmh is measured against the base map limit, never the time adjusted one.
func (c *Config) OutlierCeilingKmh(mapSpeedLimitKmh float64) float64 {
	return c.OutlierThresholdPercent / 100 * mapSpeedLimitKmh
}
