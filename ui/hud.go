// Package ui draws the heads-up display over the swarm.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Word       string
	Particles  int
	Forming    int
	Stuck      int
	Dispersing int
	Arrived    int
	Tick       int32
	FPS        int32
	Paused     bool
	Editing    bool   // a new word is being typed
	Draft      string // the word typed so far
}

// Lines returns the HUD text lines top to bottom.
func (d HUDData) Lines() []string {
	lines := []string{
		fmt.Sprintf("Word: %q | Particles: %d", d.Word, d.Particles),
		fmt.Sprintf("Forming: %d | Stuck: %d | Dispersing: %d | Arrived: %d",
			d.Forming, d.Stuck, d.Dispersing, d.Arrived),
		fmt.Sprintf("Tick: %d | FPS: %d", d.Tick, d.FPS),
	}
	if d.Editing {
		lines = append(lines, fmt.Sprintf("New word: %s_", d.Draft))
	}
	return lines
}

// HUD renders the main heads-up display.
type HUD struct {
	color rl.Color
}

// NewHUD creates a new HUD renderer.
func NewHUD(color rl.Color) *HUD {
	return &HUD{color: color}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	y := int32(10)
	for _, line := range data.Lines() {
		rl.DrawText(line, 10, y, 16, h.color)
		y += 20
	}

	if data.Paused {
		rl.DrawText("PAUSED", 10, y, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Fade(h.color, 0.6))
}
