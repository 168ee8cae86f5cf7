package cruise

import (
	"fmt"
	"time"

	"github.com/uyouii/cruise-profile/common"
	"github.com/uyouii/cruise-profile/model"
	"github.com/uyouii/cruise-profile/utils"
	"go.uber.org/multierr"
)

func ValidateConfig(cfg model.Config) error {
	var err error
	if cfg.SampleThresholdForMedian < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: sample threshold for median %d < 1",
			common.ErrorInvalidConfig, cfg.SampleThresholdForMedian))
	}
	if !utils.IsFinite(cfg.MaxSampleAgeDays) || cfg.MaxSampleAgeDays < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: max sample age days %v",
			common.ErrorInvalidConfig, cfg.MaxSampleAgeDays))
	}
	if !utils.IsFinite(cfg.OutlierThresholdPercent) || cfg.OutlierThresholdPercent < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: outlier threshold percent %v",
			common.ErrorInvalidConfig, cfg.OutlierThresholdPercent))
	}
	return err
}

func ValidateSegment(segment *model.SegmentMetadata) error {
	if segment == nil {
		return fmt.Errorf("%w: nil segment", common.ErrorInvalidSegment)
	}

	var err error
	if segment.SegmentID == "" {
		err = multierr.Append(err, fmt.Errorf("%w: empty segment id", common.ErrorInvalidSegment))
	}
	if !utils.IsFinite(segment.MapSpeedLimitKmh) || segment.MapSpeedLimitKmh < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: segment %v map speed limit %v",
			common.ErrorInvalidSegment, segment.SegmentID, segment.MapSpeedLimitKmh))
	}

	for i, restriction := range segment.TimeRestrictions {
		if restriction.FromHour < MinHour || restriction.FromHour > MaxFromHour {
			err = multierr.Append(err, fmt.Errorf("%w: segment %v restriction %d from hour %d",
				common.ErrorInvalidSegment, segment.SegmentID, i, restriction.FromHour))
		}
		if restriction.ToHour < MinHour || restriction.ToHour > MaxToHour {
			err = multierr.Append(err, fmt.Errorf("%w: segment %v restriction %d to hour %d",
				common.ErrorInvalidSegment, segment.SegmentID, i, restriction.ToHour))
		}
		for _, day := range restriction.DaysOfWeek {
			if day < MinDayOfWeek || day > MaxDayOfWeek {
				err = multierr.Append(err, fmt.Errorf("%w: segment %v restriction %d day of week %d",
					common.ErrorInvalidSegment, segment.SegmentID, i, day))
			}
		}
		if !utils.IsFinite(restriction.LimitKmh) || restriction.LimitKmh < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: segment %v restriction %d limit %v",
				common.ErrorInvalidSegment, segment.SegmentID, i, restriction.LimitKmh))
		}
	}
	return err
}

func ValidateSamples(samples []model.Sample) error {
	var err error
	for i, sample := range samples {
		if sample.Timestamp.IsZero() {
			err = multierr.Append(err, fmt.Errorf("%w: sample %d has no timestamp", common.ErrorInvalidSample, i))
		}
		if !utils.IsFinite(sample.CruiseSetpointKmh) || sample.CruiseSetpointKmh < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: sample %d setpoint %v",
				common.ErrorInvalidSample, i, sample.CruiseSetpointKmh))
		}
	}
	return err
}

// Validate reports every problem of the input at once.
func Validate(samples []model.Sample, segment *model.SegmentMetadata, cfg model.Config, at time.Time) error {
	var err error
	if at.IsZero() {
		err = multierr.Append(err, fmt.Errorf("%w: zero evaluation time", common.ErrorInvalidValue))
	}
	err = multierr.Append(err, ValidateConfig(cfg))
	err = multierr.Append(err, ValidateSegment(segment))
	err = multierr.Append(err, ValidateSamples(samples))
	return err
}
