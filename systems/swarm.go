// Package systems contains the particle state machine, the swarm and the interaction controller.
package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/wordswarm/components"
)

// TickResult reports mode changes from one swarm tick.
type TickResult struct {
	Captured int // particles that entered STUCK
	Released int // particles that left STUCK
}

// ModeCounts holds the number of particles in each mode.
type ModeCounts struct {
	Forming    int
	Stuck      int
	Dispersing int
	Arrived    int
}

// Total returns the number of particles counted. Arrived overlaps the mode counts.
func (c ModeCounts) Total() int {
	return c.Forming + c.Stuck + c.Dispersing
}

// ParticleView is a read-only copy of the state a renderer needs.
type ParticleView struct {
	Position r2.Vec
	Radius   float64
	Mode     components.Mode
}

// Swarm owns the particle entities for one word.
type Swarm struct {
	world  *ecs.World
	mapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Acceleration,
		components.Target,
		components.Particle,
	]
	filter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Acceleration,
		components.Target,
		components.Particle,
	]

	params ParticleParams
	rng    *rand.Rand
	count  int
}

// NewSwarm creates an empty swarm.
func NewSwarm(params ParticleParams, rng *rand.Rand) *Swarm {
	world := ecs.NewWorld()
	return &Swarm{
		world: world,
		mapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Acceleration,
			components.Target,
			components.Particle,
		](world),
		filter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Acceleration,
			components.Target,
			components.Particle,
		](world),
		params: params,
		rng:    rng,
	}
}

// Rebuild discards every particle and creates one per target, all starting at origin.
func (s *Swarm) Rebuild(targets []r2.Vec, origin r2.Vec) {
	// First pass: collect entities (must complete before modifying)
	var toRemove []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}

	// Second pass: remove entities (query iteration complete)
	for _, e := range toRemove {
		s.world.RemoveEntity(e)
	}

	for _, t := range targets {
		pos := components.Position(origin)
		vel := components.Velocity{}
		acc := components.Acceleration{}
		target := components.Target(t)
		p := components.Particle{
			Mode:     components.ModeForming,
			MaxSpeed: s.params.MaxSpeed,
			Radius:   s.params.Radius,
		}
		s.mapper.NewEntity(&pos, &vel, &acc, &target, &p)
	}
	s.count = len(targets)
}

// Tick runs one transition, behavior and integration pass over every particle.
// Particles do not read each other, so iteration order does not matter.
func (s *Swarm) Tick(pointer PointerState, mode GlobalMode) TickResult {
	var res TickResult

	query := s.filter.Query()
	for query.Next() {
		pos, vel, acc, target, p := query.Get()
		prev := step(particleRefs{pos: pos, vel: vel, acc: acc, target: target, p: p},
			pointer, mode.Dispersing, s.params, s.rng)

		switch {
		case prev != components.ModeStuck && p.Mode == components.ModeStuck:
			res.Captured++
		case prev == components.ModeStuck && p.Mode != components.ModeStuck:
			res.Released++
		}
	}

	return res
}

// AllStuck reports whether every particle is pinned to the pointer.
// An empty swarm is vacuously all stuck.
func (s *Swarm) AllStuck() bool {
	all := true
	query := s.filter.Query()
	for query.Next() {
		_, _, _, _, p := query.Get()
		if p.Mode != components.ModeStuck {
			all = false
		}
	}
	return all
}

// Reset clears every particle's transient state.
func (s *Swarm) Reset() {
	query := s.filter.Query()
	for query.Next() {
		_, _, _, _, p := query.Get()
		p.Reset()
	}
}

// Len returns the number of particles.
func (s *Swarm) Len() int {
	return s.count
}

// Counts tallies particles by mode.
func (s *Swarm) Counts() ModeCounts {
	var c ModeCounts
	query := s.filter.Query()
	for query.Next() {
		_, _, _, _, p := query.Get()
		switch p.Mode {
		case components.ModeForming:
			c.Forming++
		case components.ModeStuck:
			c.Stuck++
		case components.ModeDispersing:
			c.Dispersing++
		}
		if p.Arrived {
			c.Arrived++
		}
	}
	return c
}

// Snapshot appends a view of every particle to dst and returns it.
func (s *Swarm) Snapshot(dst []ParticleView) []ParticleView {
	dst = dst[:0]
	query := s.filter.Query()
	for query.Next() {
		pos, _, _, _, p := query.Get()
		dst = append(dst, ParticleView{Position: r2.Vec(*pos), Radius: p.Radius, Mode: p.Mode})
	}
	return dst
}

// Distances appends each particle's distance to its target to dst and returns it.
func (s *Swarm) Distances(dst []float64) []float64 {
	dst = dst[:0]
	query := s.filter.Query()
	for query.Next() {
		pos, _, _, target, _ := query.Get()
		dst = append(dst, Dist(r2.Vec(*pos), r2.Vec(*target)))
	}
	return dst
}

// NearestFree returns the position of the closest particle that is not stuck.
func (s *Swarm) NearestFree(from r2.Vec) (r2.Vec, bool) {
	best := math.Inf(1)
	var nearest r2.Vec
	found := false

	query := s.filter.Query()
	for query.Next() {
		pos, _, _, _, p := query.Get()
		if p.Mode == components.ModeStuck {
			continue
		}
		if d := Dist(from, r2.Vec(*pos)); d < best {
			best = d
			nearest = r2.Vec(*pos)
			found = true
		}
	}
	return nearest, found
}

// Velocities appends each particle's velocity to dst and returns it.
func (s *Swarm) Velocities(dst []r2.Vec) []r2.Vec {
	dst = dst[:0]
	query := s.filter.Query()
	for query.Next() {
		_, vel, _, _, _ := query.Get()
		dst = append(dst, r2.Vec(*vel))
	}
	return dst
}

// Speeds appends each particle's speed to dst and returns it.
func (s *Swarm) Speeds(dst []float64) []float64 {
	dst = dst[:0]
	query := s.filter.Query()
	for query.Next() {
		_, vel, _, _, _ := query.Get()
		dst = append(dst, r2.Norm(r2.Vec(*vel)))
	}
	return dst
}
