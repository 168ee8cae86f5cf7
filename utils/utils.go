package utils

import (
	"math"
	"time"
)

// DayCntBetween returns the whole days between two instants, in either order.
func DayCntBetween(t1, t2 time.Time) int64 {
	if t1.Before(t2) {
		t1, t2 = t2, t1
	}
	return int64(t1.Sub(t2) / (24 * time.Hour))
}

func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow10(int(round))
	return math.Round(f*scale) / scale
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
