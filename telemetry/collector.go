// Package telemetry aggregates swarm activity into time windows and writes it as CSV.
package telemetry

import "github.com/pthm-cable/wordswarm/systems"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	captures       int
	releases       int
	disperseClicks int
	formClicks     int
	ignoredClicks  int
	completions    int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordStep records the capture and completion events of one controller step.
func (c *Collector) RecordStep(r systems.StepResult) {
	c.captures += r.Captured
	c.releases += r.Released
	if r.CompletionFired {
		c.completions++
	}
}

// RecordClick records the outcome of a click.
func (c *Collector) RecordClick(outcome systems.ClickOutcome) {
	switch outcome {
	case systems.ClickDispersed:
		c.disperseClicks++
	case systems.ClickReformed:
		c.formClicks++
	default:
		c.ignoredClicks++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// counts, distances and speeds are sampled from the swarm at window end.
func (c *Collector) Flush(currentTick int32, word string, counts systems.ModeCounts, distances, speeds []float64) WindowStats {
	mean, p50, p90 := ComputeDistanceStats(distances)

	var arrivedFrac float64
	if total := counts.Total(); total > 0 {
		arrivedFrac = float64(counts.Arrived) / float64(total)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),
		Word:            word,

		Particles:   counts.Total(),
		Forming:     counts.Forming,
		Stuck:       counts.Stuck,
		Dispersing:  counts.Dispersing,
		Arrived:     counts.Arrived,
		ArrivedFrac: arrivedFrac,

		Captures:       c.captures,
		Releases:       c.releases,
		DisperseClicks: c.disperseClicks,
		FormClicks:     c.formClicks,
		IgnoredClicks:  c.ignoredClicks,
		Completions:    c.completions,

		DistMean: mean,
		DistP50:  p50,
		DistP90:  p90,

		SpeedMean: Mean(speeds),
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.captures = 0
	c.releases = 0
	c.disperseClicks = 0
	c.formClicks = 0
	c.ignoredClicks = 0
	c.completions = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
