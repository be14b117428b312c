package game

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/wordswarm/systems"
)

// autopilotSpeed is the headless pointer speed in pixels per tick.
// It must exceed particle max speed and stay under half the cursor size.
const autopilotSpeed = 12.0

// Autopilot is a synthetic pointer that glides toward the nearest free particle.
type Autopilot struct {
	pos   r2.Vec
	speed float64
}

// NewAutopilot creates an autopilot at start moving at most speed per step.
func NewAutopilot(start r2.Vec, speed float64) *Autopilot {
	return &Autopilot{pos: start, speed: speed}
}

// Step moves toward the nearest particle that is not stuck and returns the new position.
// It holds still once every particle is stuck.
func (a *Autopilot) Step(swarm *systems.Swarm) r2.Vec {
	target, ok := swarm.NearestFree(a.pos)
	if !ok {
		return a.pos
	}
	move := systems.Limit(r2.Sub(target, a.pos), a.speed)
	a.pos = r2.Add(a.pos, move)
	return a.pos
}
