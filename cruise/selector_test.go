package cruise

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/cruise-profile/model"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		given    []float64
		expected float64
	}{
		{given: []float64{40, 50, 60}, expected: 50},
		{given: []float64{40, 50, 60, 70}, expected: 55},
		{given: []float64{60, 40, 50}, expected: 50},
		{given: []float64{70, 40, 60, 50}, expected: 55},
		{given: []float64{42}, expected: 42},
		{given: []float64{30, 31}, expected: 30.5},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Median(test.given), "median of %v", test.given)
	}
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	values := []float64{70, 40, 60, 50}
	Median(values)
	assert.Equal(t, []float64{70, 40, 60, 50}, values)
}

func TestMedian_Empty(t *testing.T) {
	assert.True(t, math.IsNaN(Median(nil)))
}

func TestMostRecent(t *testing.T) {
	samples := []model.Sample{
		{Timestamp: evalTime.Add(-3 * time.Hour), CruiseSetpointKmh: 40},
		{Timestamp: evalTime.Add(-1 * time.Hour), CruiseSetpointKmh: 47},
		{Timestamp: evalTime.Add(-2 * time.Hour), CruiseSetpointKmh: 44},
	}

	res, ok := MostRecent(samples)
	require.True(t, ok)
	assert.Equal(t, 47.0, res.CruiseSetpointKmh)

	_, ok = MostRecent(nil)
	assert.False(t, ok)
}

func TestSelectSpeed_Fallback(t *testing.T) {
	speed, method, reason := SelectSpeed(nil, 35, 8)

	assert.Equal(t, 35.0, speed)
	assert.Equal(t, model.SelectionFallback, method)
	assert.Equal(t, "no valid samples; fallback to effective limit", reason)
}

func TestSelectSpeed_ThresholdBoundary(t *testing.T) {
	seven := newSamples(evalTime, 44, 30, 31, 32, 33, 34, 35)
	speed, method, reason := SelectSpeed(seven, 50, 8)
	assert.Equal(t, 44.0, speed)
	assert.Equal(t, model.SelectionMostRecent, method)
	assert.Equal(t, "most recent of 7 samples, capped at effective limit", reason)

	eight := newSamples(evalTime, 44, 30, 31, 32, 33, 34, 35, 36)
	speed, method, reason = SelectSpeed(eight, 50, 8)
	assert.Equal(t, 33.5, speed)
	assert.Equal(t, model.SelectionMedian, method)
	assert.Equal(t, "median of 8 samples, capped at effective limit", reason)
}

func TestSelectSpeed_CapsAtEffectiveLimit(t *testing.T) {
	speed, method, _ := SelectSpeed(newSamples(evalTime, 48), 30, 8)
	assert.Equal(t, 30.0, speed)
	assert.Equal(t, model.SelectionMostRecent, method)

	speed, method, _ = SelectSpeed(newSamples(evalTime, 40, 50, 60), 45, 3)
	assert.Equal(t, 45.0, speed)
	assert.Equal(t, model.SelectionMedian, method)
}

func TestSelectSpeed_DoesNotFloor(t *testing.T) {
	speed, _, _ := SelectSpeed(newSamples(evalTime, 12), 50, 8)
	assert.Equal(t, 12.0, speed)
}

func TestSelectSpeed_ThresholdOne(t *testing.T) {
	speed, method, _ := SelectSpeed(newSamples(evalTime, 42), 50, 1)
	assert.Equal(t, 42.0, speed)
	assert.Equal(t, model.SelectionMedian, method)
}
