package cruise

import (
	"context"
	"fmt"
	"time"

	"github.com/uyouii/cruise-profile/model"
	"github.com/uyouii/cruise-profile/utils"
	"go.uber.org/zap"
)

// ComputeProfile recommends a cruise speed for the segment at the given time.
// It trusts its input, use Evaluate to reject malformed data first.
func ComputeProfile(samples []model.Sample, segment *model.SegmentMetadata, cfg model.Config, at time.Time) model.Profile {
	effectiveLimit := EffectiveSpeedLimit(segment, at)
	filtered := FilterSamples(samples, at, segment.MapSpeedLimitKmh, cfg)
	speed, method, reason := SelectSpeed(filtered.Admissible, effectiveLimit, cfg.SampleThresholdForMedian)

	return model.Profile{
		SegmentID:         segment.SegmentID,
		ChosenSpeedKmh:    speed,
		Reason:            reason,
		ComputedAt:        at,
		EffectiveLimitKmh: effectiveLimit,
		Method:            method,
		AdmissibleCount:   len(filtered.Admissible),
		RejectedStale:     filtered.RejectedStale,
		RejectedOutlier:   filtered.RejectedOutlier,
	}
}

// Evaluate validates the input and computes the profile.
// samples must all belong to segment, they are not filtered by id here.
func Evaluate(ctx context.Context, samples []model.Sample, segment *model.SegmentMetadata,
	cfg model.Config, at time.Time) (*model.Profile, error) {
	logger := utils.GetLogger(ctx)

	if err := Validate(samples, segment, cfg, at); err != nil {
		logger.Error("Validate failed", zap.Error(err))
		return nil, err
	}

	profile := ComputeProfile(samples, segment, cfg, at)

	logger.Debug("cruise profile computed", zap.String("segmentId", profile.SegmentID),
		zap.Float64("chosenSpeedKmh", profile.ChosenSpeedKmh),
		zap.Float64("effectiveLimitKmh", profile.EffectiveLimitKmh),
		zap.String("method", string(profile.Method)),
		zap.Int("sampleCnt", len(samples)), zap.Int("admissibleCnt", profile.AdmissibleCount))

	return &profile, nil
}

// EvaluateAll evaluates every segment with the samples carrying its id, in segment order.
func EvaluateAll(ctx context.Context, segments []model.SegmentMetadata, samples []model.Sample,
	cfg model.Config, at time.Time) ([]*model.Profile, error) {
	logger := utils.GetLogger(ctx)

	bySegment := SamplesBySegment(samples)

	res := make([]*model.Profile, 0, len(segments))
	for i := range segments {
		segment := &segments[i]
		profile, err := Evaluate(ctx, bySegment[segment.SegmentID], segment, cfg, at)
		if err != nil {
			logger.Error("Evaluate failed", zap.String("segment", segment.DebugString()))
			return nil, fmt.Errorf("evaluate segment %v: %w", segment.SegmentID, err)
		}
		res = append(res, profile)
	}

	logger.Info(fmt.Sprintf("computed %v cruise profiles", len(res)))
	return res, nil
}
