package garden

import (
	"time"

	"garden/entities"
)

// Watering classifications. Informational only: they feed the log entry and
// never block a watering.
const (
	StatusOnTime = "On Time"
	StatusLate   = "Late"
	StatusEarly  = "Early"
)

const (
	hourMs = int64(time.Hour / time.Millisecond)
	dayMs  = 24 * hourMs
)

// Classify buckets a watering by how far from the due instant it happened.
// Strictly more than an hour past due is Late, strictly more than an hour
// ahead is Early; exactly one hour either way still counts as On Time.
func Classify(timeDifference int64) string {
	switch {
	case timeDifference > hourMs:
		return StatusLate
	case timeDifference < -hourMs:
		return StatusEarly
	default:
		return StatusOnTime
	}
}

// IsDue reports whether the plot's due instant has passed.
func IsDue(p entities.Plot, now time.Time) bool {
	return now.UnixMilli() >= p.NextWateringTime
}

// Progress is the display fraction of the interval already elapsed, clamped
// to [0, 1]. A zero interval is always fully elapsed.
func Progress(p entities.Plot, now time.Time) float64 {
	if p.WateringInterval <= 0 {
		return 1
	}
	left := p.NextWateringTime - now.UnixMilli()
	f := float64(p.WateringInterval-left) / float64(p.WateringInterval)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
