package game

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/wordswarm/systems"
)

func TestAutopilotMovesAtMostSpeed(t *testing.T) {
	swarm := systems.NewSwarm(systems.DefaultParticleParams(), rand.New(rand.NewSource(1)))
	swarm.Rebuild([]r2.Vec{{X: 500, Y: 0}}, r2.Vec{X: 100, Y: 0})

	a := NewAutopilot(r2.Vec{}, 12)
	got := a.Step(swarm)
	if math.Abs(got.X-12) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("Step() = %v, want (12, 0)", got)
	}
}

func TestAutopilotLandsOnNearbyParticle(t *testing.T) {
	swarm := systems.NewSwarm(systems.DefaultParticleParams(), rand.New(rand.NewSource(1)))
	swarm.Rebuild([]r2.Vec{{X: 50, Y: 50}}, r2.Vec{X: 5, Y: 5})

	a := NewAutopilot(r2.Vec{}, 12)
	if got := a.Step(swarm); got != (r2.Vec{X: 5, Y: 5}) {
		t.Errorf("Step() = %v, want (5, 5)", got)
	}
}

func TestAutopilotHoldsWhenNothingFree(t *testing.T) {
	swarm := systems.NewSwarm(systems.DefaultParticleParams(), rand.New(rand.NewSource(1)))

	a := NewAutopilot(r2.Vec{X: 3, Y: 4}, 12)
	if got := a.Step(swarm); got != (r2.Vec{X: 3, Y: 4}) {
		t.Errorf("Step() on empty swarm = %v, want (3, 4)", got)
	}
}
