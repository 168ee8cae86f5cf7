package cruise

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uyouii/cruise-profile/model"
)

func TestEffectiveSpeedLimit(t *testing.T) {
	weekdays := []int{1, 2, 3, 4, 5}
	weekend := []int{0, 6}

	tests := []struct {
		name     string
		given    *model.SegmentMetadata
		at       time.Time
		expected float64
	}{
		{
			name:     "no restrictions",
			given:    newSegment(50),
			at:       evalTime,
			expected: 50,
		},
		{
			name:     "hour and day match",
			given:    newSegment(30, model.TimeRestriction{FromHour: 7, ToHour: 10, DaysOfWeek: weekdays, LimitKmh: 15}),
			at:       evalTime,
			expected: 15,
		},
		{
			name:     "no days means every day",
			given:    newSegment(50, model.TimeRestriction{FromHour: 6, ToHour: 10, LimitKmh: 25}),
			at:       evalTime,
			expected: 25,
		},
		{
			name:     "day matches but hour is outside",
			given:    newSegment(50, model.TimeRestriction{FromHour: 17, ToHour: 20, DaysOfWeek: weekdays, LimitKmh: 35}),
			at:       evalTime,
			expected: 50,
		},
		{
			name:     "hour matches but day is outside",
			given:    newSegment(30, model.TimeRestriction{FromHour: 7, ToHour: 10, DaysOfWeek: weekend, LimitKmh: 15}),
			at:       evalTime,
			expected: 30,
		},
		{
			name: "tightest of two active restrictions",
			given: newSegment(60,
				model.TimeRestriction{FromHour: 8, ToHour: 11, LimitKmh: 30},
				model.TimeRestriction{FromHour: 0, ToHour: 12, LimitKmh: 45},
			),
			at:       evalTime,
			expected: 30,
		},
		{
			name:     "restriction above map limit does not raise it",
			given:    newSegment(50, model.TimeRestriction{FromHour: 6, ToHour: 17, LimitKmh: 70}),
			at:       evalTime,
			expected: 50,
		},
		{
			name:     "from hour is inclusive",
			given:    newSegment(50, model.TimeRestriction{FromHour: 9, ToHour: 10, LimitKmh: 20}),
			at:       time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC),
			expected: 20,
		},
		{
			name:     "to hour is exclusive",
			given:    newSegment(50, model.TimeRestriction{FromHour: 8, ToHour: 9, LimitKmh: 20}),
			at:       time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC),
			expected: 50,
		},
		{
			name:     "to hour 24 closes at midnight",
			given:    newSegment(80, model.TimeRestriction{FromHour: 10, ToHour: 24, LimitKmh: 45}),
			at:       time.Date(2025, time.June, 11, 23, 59, 0, 0, time.UTC),
			expected: 45,
		},
		{
			// rules crossing midnight are not split into two ranges
			name:     "wraparound rule never matches",
			given:    newSegment(80, model.TimeRestriction{FromHour: 22, ToHour: 6, LimitKmh: 20}),
			at:       time.Date(2025, time.June, 11, 23, 0, 0, 0, time.UTC),
			expected: 80,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, EffectiveSpeedLimit(test.given, test.at))
		})
	}
}

func TestEffectiveSpeedLimit_UsesLocationOfInstant(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)
	segment := newSegment(50, model.TimeRestriction{FromHour: 11, ToHour: 12, LimitKmh: 20})

	// 09:30 UTC is 11:30 in Berlin
	assert.Equal(t, 50.0, EffectiveSpeedLimit(segment, evalTime))
	assert.Equal(t, 20.0, EffectiveSpeedLimit(segment, evalTime.In(berlin)))
}

func TestActiveRestrictions(t *testing.T) {
	school := model.TimeRestriction{FromHour: 7, ToHour: 10, DaysOfWeek: []int{1, 2, 3, 4, 5}, LimitKmh: 15}
	evening := model.TimeRestriction{FromHour: 10, ToHour: 24, LimitKmh: 45}
	segment := newSegment(30, school, evening)

	active := ActiveRestrictions(segment, evalTime)
	assert.Equal(t, []model.TimeRestriction{school}, active)

	assert.Empty(t, ActiveRestrictions(newSegment(30), evalTime))
}
