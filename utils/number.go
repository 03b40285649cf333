package utils

import (
	"math"
	"strconv"
	"time"
)

// ToFixed rounds val to the given number of decimal places, half away from
// zero.
func ToFixed(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}

// FormatCoord writes a coordinate with the fewest digits that read back to
// the same float64.
func FormatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func DiffMs(b time.Time, a time.Time) float64 {
	return DurationMs(b.Sub(a))
}

func DurationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1000000.0
}
