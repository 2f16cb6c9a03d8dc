package util

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration formats a duration as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatLength formats a path length with one decimal, switching to a k
// suffix from ten thousand units.
func FormatLength(l float64) string {
	switch {
	case math.IsNaN(l) || math.IsInf(l, 0):
		return "-"
	case math.Abs(l) >= 10000:
		return fmt.Sprintf("%.1fk", l/1000)
	default:
		return fmt.Sprintf("%.1f", l)
	}
}
