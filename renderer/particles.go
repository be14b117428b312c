// Package renderer draws the swarm, the cursor and the completion prompt with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wordswarm/config"
	"github.com/pthm-cable/wordswarm/systems"
)

// Color converts a config color to a raylib color.
func Color(c config.ColorConfig) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ParticleRenderer renders swarm particles.
type ParticleRenderer struct {
	color rl.Color
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer(color rl.Color) *ParticleRenderer {
	return &ParticleRenderer{color: color}
}

// Draw renders all particles.
func (r *ParticleRenderer) Draw(particles []systems.ParticleView) {
	for i := range particles {
		p := &particles[i]
		center := rl.Vector2{X: float32(p.Position.X), Y: float32(p.Position.Y)}
		rl.DrawCircleV(center, float32(p.Radius), r.color)
	}
}

// CursorRenderer draws the translucent custom cursor.
type CursorRenderer struct {
	color rl.Color
}

// NewCursorRenderer creates a new cursor renderer.
func NewCursorRenderer(color rl.Color) *CursorRenderer {
	return &CursorRenderer{color: color}
}

// Draw renders the cursor circle; size is its diameter.
func (r *CursorRenderer) Draw(pointer systems.PointerState) {
	center := rl.Vector2{X: float32(pointer.Position.X), Y: float32(pointer.Position.Y)}
	rl.DrawCircleV(center, float32(pointer.CursorSize/2), r.color)
}
