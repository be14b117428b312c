package renderer

import (
	"math"

	"github.com/charmbracelet/harmonica"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wordswarm/config"
)

// Pulse animates the prompt text size between two bounds with a spring.
// It only moves while hovered.
type Pulse struct {
	spring   harmonica.Spring
	min, max float64
	size     float64
	vel      float64
	target   float64
}

// NewPulse creates a pulse resting at min and heading for max.
func NewPulse(fps int, min, max, frequency, damping float64) *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		min:    min,
		max:    max,
		size:   min,
		target: max,
	}
}

// Update advances the pulse one frame and returns the current size.
func (p *Pulse) Update(hovered bool) float64 {
	if !hovered {
		return p.size
	}

	p.size, p.vel = p.spring.Update(p.size, p.vel, p.target)

	// Clamp overshoot and reverse at either bound
	if p.size >= p.max {
		p.size, p.vel = p.max, 0
	} else if p.size <= p.min {
		p.size, p.vel = p.min, 0
	}
	if math.Abs(p.size-p.target) < 0.25 {
		if p.target == p.max {
			p.target = p.min
		} else {
			p.target = p.max
		}
	}
	return p.size
}

// Size returns the current text size.
func (p *Pulse) Size() float64 {
	return p.size
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies strictly inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// CenteredRect returns a w x h rectangle centered on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// PromptRenderer draws the "click here" prompt shown once the swarm is collected.
type PromptRenderer struct {
	text   string
	color  rl.Color
	pulse  *Pulse
	border float32
}

// NewPromptRenderer creates a prompt renderer from config.
func NewPromptRenderer(cfg config.PromptConfig, fps int) *PromptRenderer {
	return &PromptRenderer{
		text:   cfg.Text,
		color:  Color(cfg.Color),
		pulse:  NewPulse(fps, cfg.MinSize, cfg.MaxSize, cfg.Frequency, cfg.Damping),
		border: 4,
	}
}

// HitBox returns the prompt text bounds at the base size, centered on (cx, cy).
func (r *PromptRenderer) HitBox(cx, cy float64) Rect {
	size := int32(r.pulse.min)
	w := float64(rl.MeasureText(r.text, size))
	return CenteredRect(cx, cy, w, float64(size))
}

// Draw renders the prompt centered on (cx, cy); the pulse advances only while the pointer hovers it.
func (r *PromptRenderer) Draw(cx, cy, pointerX, pointerY float64) {
	hit := r.HitBox(cx, cy)
	size := int32(r.pulse.Update(hit.Contains(pointerX, pointerY)))

	w := rl.MeasureText(r.text, size)
	rl.DrawText(r.text, int32(cx)-w/2, int32(cy)-size/2, size, r.color)

	frame := CenteredRect(cx, cy, hit.W+20, hit.H+20)
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X:      float32(frame.X),
		Y:      float32(frame.Y),
		Width:  float32(frame.W),
		Height: float32(frame.H),
	}, r.border, r.color)
}
