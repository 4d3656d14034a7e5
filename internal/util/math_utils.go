package util

import "math"

// RoundPercent returns round(100 * part / whole) with halves rounded up,
// or 0 when whole is not positive.
func RoundPercent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(part)/float64(whole) + 0.5))
}
