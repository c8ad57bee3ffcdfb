package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransitionProgress(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := transition{from: 0, to: 1, start: start, duration: 100 * time.Millisecond}

	assert.InDelta(t, 0, tr.progress(start.Add(-time.Second)), 1e-9)
	assert.InDelta(t, 0, tr.progress(start), 1e-9)
	assert.InDelta(t, 0.25, tr.progress(start.Add(25*time.Millisecond)), 1e-9)
	assert.InDelta(t, 1, tr.progress(start.Add(time.Second)), 1e-9)
	assert.False(t, tr.done(start.Add(99*time.Millisecond)))
	assert.True(t, tr.done(start.Add(100*time.Millisecond)))

	exit := transition{from: 0.8, to: 0, start: start, duration: 80 * time.Millisecond}
	assert.InDelta(t, 0.4, exit.progress(start.Add(40*time.Millisecond)), 1e-9)

	instant := transition{from: 0, to: 1, start: start}
	assert.InDelta(t, 1, instant.progress(start), 1e-9)
	assert.True(t, instant.done(start))
}

func TestEasing(t *testing.T) {
	assert.InDelta(t, 0, easeOutCubic(0), 1e-9)
	assert.InDelta(t, 1, easeOutCubic(1), 1e-9)
	assert.Greater(t, easeOutCubic(0.5), 0.5, "eases out")

	assert.InDelta(t, startScale, scaleAt(0), 1e-9)
	assert.InDelta(t, 1, scaleAt(1), 1e-9)
	assert.Equal(t, slideRows, offsetAt(0))
	assert.Equal(t, 0, offsetAt(1))
}
