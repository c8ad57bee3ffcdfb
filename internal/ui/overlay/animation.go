package overlay

import (
	"math"
	"time"
)

// transition interpolates the overlay's presence between from and to
type transition struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

// progress returns the linear presence at now, in [0, 1]
func (t transition) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return t.to
	}
	frac := float64(now.Sub(t.start)) / float64(t.duration)
	switch {
	case frac <= 0:
		return t.from
	case frac >= 1:
		return t.to
	}
	return t.from + (t.to-t.from)*frac
}

// done reports whether the transition has reached its target
func (t transition) done(now time.Time) bool {
	return t.duration <= 0 || !now.Before(t.start.Add(t.duration))
}

// easeOutCubic decelerates towards the end
func easeOutCubic(x float64) float64 {
	x = math.Max(0, math.Min(1, x))
	return 1 - math.Pow(1-x, 3)
}

// Entry/exit geometry
const (
	startScale = 0.95
	slideRows  = 2
)

// scaleAt returns the panel scale for eased presence p
func scaleAt(p float64) float64 {
	return startScale + (1-startScale)*p
}

// offsetAt returns the panel's downward offset in rows for eased presence p
func offsetAt(p float64) int {
	return int(math.Round((1 - p) * slideRows))
}
