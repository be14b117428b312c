// Package components defines ECS components for the particle swarm.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Mode is the behavior state of a particle.
type Mode uint8

const (
	ModeForming    Mode = iota // steering toward its target
	ModeStuck                  // pinned to the pointer
	ModeDispersing             // random walk
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeForming:
		return "forming"
	case ModeStuck:
		return "stuck"
	case ModeDispersing:
		return "dispersing"
	default:
		return "unknown"
	}
}

// Position represents a particle's canvas position.
type Position r2.Vec

// Velocity represents a particle's velocity in pixels per tick.
type Velocity r2.Vec

// Acceleration accumulates forces for the current tick.
type Acceleration r2.Vec

// Target is the glyph sample point a particle forms on.
// Fixed for the lifetime of the particle.
type Target r2.Vec

// Particle holds per-particle state that is not a vector.
type Particle struct {
	Mode     Mode
	Arrived  bool
	MaxSpeed float64
	Radius   float64
}

// Reset clears transient state so the next tick re-evaluates the particle from scratch.
func (p *Particle) Reset() {
	p.Mode = ModeForming
	p.Arrived = false
}
