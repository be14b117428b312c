package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/wordswarm/components"
)

// PointerState is the pointer position plus its static capture radii.
type PointerState struct {
	Position         r2.Vec
	AttractionRadius float64 // free particles closer than this get captured
	CursorSize       float64 // stuck particles farther than this drop off
}

// ParticleParams holds the steering constants shared by every particle.
type ParticleParams struct {
	MaxSpeed         float64
	Radius           float64
	ArrivalThreshold float64
	BrakingDistance  float64
	DispersalForce   float64
}

// DefaultParticleParams returns the stock steering constants.
func DefaultParticleParams() ParticleParams {
	return ParticleParams{
		MaxSpeed:         8,
		Radius:           2,
		ArrivalThreshold: 5,
		BrakingDistance:  100,
		DispersalForce:   2,
	}
}

// TransitionInput is everything the mode transition reads.
// Position is the particle position before any pin this tick.
type TransitionInput struct {
	Position   r2.Vec
	Pointer    PointerState
	Dispersing bool
}

// Transition returns the next mode for a particle.
func Transition(mode components.Mode, in TransitionInput) components.Mode {
	d := Dist(in.Position, in.Pointer.Position)

	if mode == components.ModeStuck {
		switch {
		case in.Dispersing:
			return components.ModeDispersing
		case d > in.Pointer.CursorSize:
			return components.ModeForming
		default:
			return components.ModeStuck
		}
	}

	switch {
	case !in.Dispersing && d < in.Pointer.AttractionRadius:
		return components.ModeStuck
	case in.Dispersing:
		return components.ModeDispersing
	default:
		return components.ModeForming
	}
}

// DesiredVelocity returns the arrival velocity toward target.
// Speed is maxSpeed beyond the braking distance and ramps linearly to zero inside it.
func DesiredVelocity(pos, target r2.Vec, maxSpeed, brakingDistance float64) r2.Vec {
	desired := r2.Sub(target, pos)
	d := r2.Norm(desired)
	speed := maxSpeed
	if d < brakingDistance {
		speed = MapRange(d, 0, brakingDistance, 0, maxSpeed)
	}
	return SetMag(desired, speed)
}

// Arrive returns the steering force toward target: desired velocity minus current velocity.
func Arrive(pos, vel, target r2.Vec, maxSpeed, brakingDistance float64) r2.Vec {
	return r2.Sub(DesiredVelocity(pos, target, maxSpeed, brakingDistance), vel)
}

// StuckOffset returns a random offset within half the cursor size.
func StuckOffset(rng *rand.Rand, cursorSize float64) r2.Vec {
	return r2.Scale(rng.Float64()*cursorSize/2, RandomUnit(rng))
}

// particleRefs groups the component pointers of one particle for a tick.
type particleRefs struct {
	pos    *components.Position
	vel    *components.Velocity
	acc    *components.Acceleration
	target *components.Target
	p      *components.Particle
}

// step runs transition, behavior and integration for one particle.
// Returns the mode the particle had before the step.
func step(r particleRefs, pointer PointerState, dispersing bool, params ParticleParams, rng *rand.Rand) components.Mode {
	prev := r.p.Mode
	r.p.Mode = Transition(prev, TransitionInput{
		Position:   r2.Vec(*r.pos),
		Pointer:    pointer,
		Dispersing: dispersing,
	})

	switch r.p.Mode {
	case components.ModeStuck:
		if prev != components.ModeStuck {
			// Drop motion on capture so a later release starts from rest
			*r.vel = components.Velocity{}
			*r.acc = components.Acceleration{}
		}
		*r.pos = components.Position(r2.Add(pointer.Position, StuckOffset(rng, pointer.CursorSize)))
		return prev

	case components.ModeDispersing:
		force := r2.Scale(params.DispersalForce, RandomUnit(rng))
		applyForce(r.acc, force)

	default:
		pos := r2.Vec(*r.pos)
		target := r2.Vec(*r.target)
		applyForce(r.acc, Arrive(pos, r2.Vec(*r.vel), target, r.p.MaxSpeed, params.BrakingDistance))

		if Dist(pos, target) < params.ArrivalThreshold {
			r.p.Arrived = true
			*r.vel = components.Velocity{}
			*r.acc = components.Acceleration{}
		}
	}

	integrate(r.pos, r.vel, r.acc)
	return prev
}

// applyForce accumulates a force into acceleration (unit mass).
func applyForce(acc *components.Acceleration, force r2.Vec) {
	*acc = components.Acceleration(r2.Add(r2.Vec(*acc), force))
}

// integrate advances velocity and position and clears acceleration.
func integrate(pos *components.Position, vel *components.Velocity, acc *components.Acceleration) {
	v := r2.Add(r2.Vec(*vel), r2.Vec(*acc))
	*vel = components.Velocity(v)
	*pos = components.Position(r2.Add(r2.Vec(*pos), v))
	*acc = components.Acceleration{}
}
