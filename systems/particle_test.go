package systems

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/wordswarm/components"
)

func testPointer(x, y float64) PointerState {
	return PointerState{Position: r2.Vec{X: x, Y: y}, AttractionRadius: 25, CursorSize: 50}
}

func TestTransition(t *testing.T) {
	pointer := testPointer(100, 100)

	testCases := []struct {
		name       string
		mode       components.Mode
		pos        r2.Vec
		dispersing bool
		want       components.Mode
	}{
		{"forming far stays forming", components.ModeForming, r2.Vec{X: 300, Y: 300}, false, components.ModeForming},
		{"forming near gets captured", components.ModeForming, r2.Vec{X: 110, Y: 100}, false, components.ModeStuck},
		{"forming at radius edge not captured", components.ModeForming, r2.Vec{X: 125, Y: 100}, false, components.ModeForming},
		{"forming while dispersing disperses", components.ModeForming, r2.Vec{X: 300, Y: 300}, true, components.ModeDispersing},
		{"forming near while dispersing not captured", components.ModeForming, r2.Vec{X: 105, Y: 100}, true, components.ModeDispersing},
		{"dispersing near while dispersing stays dispersing", components.ModeDispersing, r2.Vec{X: 100, Y: 100}, true, components.ModeDispersing},
		{"dispersing after reform goes forming", components.ModeDispersing, r2.Vec{X: 300, Y: 300}, false, components.ModeForming},
		{"dispersing near after reform gets captured", components.ModeDispersing, r2.Vec{X: 90, Y: 100}, false, components.ModeStuck},
		{"stuck near stays stuck", components.ModeStuck, r2.Vec{X: 120, Y: 100}, false, components.ModeStuck},
		{"stuck at cursor size stays stuck", components.ModeStuck, r2.Vec{X: 150, Y: 100}, false, components.ModeStuck},
		{"stuck beyond cursor size goes forming", components.ModeStuck, r2.Vec{X: 151, Y: 100}, false, components.ModeForming},
		{"stuck while dispersing disperses", components.ModeStuck, r2.Vec{X: 100, Y: 100}, true, components.ModeDispersing},
		{"stuck far while dispersing disperses", components.ModeStuck, r2.Vec{X: 900, Y: 100}, true, components.ModeDispersing},
	}

	for _, tc := range testCases {
		got := Transition(tc.mode, TransitionInput{Position: tc.pos, Pointer: pointer, Dispersing: tc.dispersing})
		if got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestDesiredVelocityBraking(t *testing.T) {
	const maxSpeed = 8.0
	const braking = 100.0
	target := r2.Vec{}

	testCases := []struct {
		d    float64
		want float64
	}{
		{0, 0},
		{1, 0.08},
		{25, 2},
		{50, 4},
		{99.5, 7.96},
		{100, 8},
		{150, 8},
		{1000, 8},
	}

	for _, tc := range testCases {
		pos := r2.Vec{X: tc.d * 0.6, Y: tc.d * 0.8}
		got := r2.Norm(DesiredVelocity(pos, target, maxSpeed, braking))
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("d=%f: desired speed %f, want %f", tc.d, got, tc.want)
		}
	}
}

func TestDesiredVelocityPointsAtTarget(t *testing.T) {
	pos := r2.Vec{X: 0, Y: 0}
	target := r2.Vec{X: 300, Y: 0}
	v := DesiredVelocity(pos, target, 8, 100)
	if v.X <= 0 || math.Abs(v.Y) > eps {
		t.Errorf("expected desired velocity along +X, got %v", v)
	}
}

func TestArriveIsDesiredMinusVelocity(t *testing.T) {
	pos := r2.Vec{X: 0, Y: 0}
	target := r2.Vec{X: 0, Y: 500}
	vel := r2.Vec{X: 3, Y: 1}

	steer := Arrive(pos, vel, target, 8, 100)
	want := r2.Vec{X: -3, Y: 7}
	if math.Abs(steer.X-want.X) > eps || math.Abs(steer.Y-want.Y) > eps {
		t.Errorf("steer = %v, want %v", steer, want)
	}
}

func TestStuckOffsetWithinHalfCursor(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		off := StuckOffset(rng, 50)
		if r2.Norm(off) > 25+eps {
			t.Fatalf("offset %v exceeds half the cursor size", off)
		}
	}
}

func TestIntegrateClearsAcceleration(t *testing.T) {
	pos := components.Position{X: 10, Y: 10}
	vel := components.Velocity{X: 1, Y: 0}
	acc := components.Acceleration{X: 0, Y: 2}

	integrate(&pos, &vel, &acc)

	if vel != (components.Velocity{X: 1, Y: 2}) {
		t.Errorf("velocity = %v, want (1, 2)", vel)
	}
	if pos != (components.Position{X: 11, Y: 12}) {
		t.Errorf("position = %v, want (11, 12)", pos)
	}
	if acc != (components.Acceleration{}) {
		t.Errorf("acceleration not cleared: %v", acc)
	}
}

func TestStepSnapsOnArrival(t *testing.T) {
	params := DefaultParticleParams()
	rng := rand.New(rand.NewSource(1))

	pos := components.Position{X: 102, Y: 100}
	vel := components.Velocity{X: 0.5, Y: -0.5}
	acc := components.Acceleration{}
	target := components.Target{X: 100, Y: 100}
	p := components.Particle{Mode: components.ModeForming, MaxSpeed: params.MaxSpeed}

	step(particleRefs{&pos, &vel, &acc, &target, &p}, testPointer(900, 900), false, params, rng)

	if !p.Arrived {
		t.Error("expected particle to be marked arrived")
	}
	if vel != (components.Velocity{}) {
		t.Errorf("expected zero velocity after arrival, got %v", vel)
	}
	if pos != (components.Position{X: 102, Y: 100}) {
		t.Errorf("expected position unchanged after snap, got %v", pos)
	}
}

func TestStepStuckPinsToPointer(t *testing.T) {
	params := DefaultParticleParams()
	rng := rand.New(rand.NewSource(1))
	pointer := testPointer(200, 200)

	pos := components.Position{X: 210, Y: 200}
	vel := components.Velocity{X: 4, Y: 4}
	acc := components.Acceleration{X: 1, Y: 1}
	target := components.Target{X: 0, Y: 0}
	p := components.Particle{Mode: components.ModeForming, MaxSpeed: params.MaxSpeed}

	prev := step(particleRefs{&pos, &vel, &acc, &target, &p}, pointer, false, params, rng)

	if prev != components.ModeForming || p.Mode != components.ModeStuck {
		t.Fatalf("expected forming -> stuck, got %s -> %s", prev, p.Mode)
	}
	if d := Dist(r2.Vec(pos), pointer.Position); d > pointer.CursorSize/2+eps {
		t.Errorf("stuck particle %f away from pointer, want <= %f", d, pointer.CursorSize/2)
	}
	if vel != (components.Velocity{}) || acc != (components.Acceleration{}) {
		t.Errorf("expected motion cleared on capture, got vel=%v acc=%v", vel, acc)
	}
}

func TestStepDispersingAppliesFixedForce(t *testing.T) {
	params := DefaultParticleParams()
	rng := rand.New(rand.NewSource(9))

	pos := components.Position{X: 500, Y: 500}
	vel := components.Velocity{}
	acc := components.Acceleration{}
	target := components.Target{X: 0, Y: 0}
	p := components.Particle{Mode: components.ModeDispersing, MaxSpeed: params.MaxSpeed}

	step(particleRefs{&pos, &vel, &acc, &target, &p}, testPointer(-900, -900), true, params, rng)

	// Starting from rest, one tick of force leaves |v| equal to the force magnitude
	if got := r2.Norm(r2.Vec(vel)); math.Abs(got-params.DispersalForce) > 1e-9 {
		t.Errorf("expected |v| = %f after one dispersal tick, got %f", params.DispersalForce, got)
	}
}
