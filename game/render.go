package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wordswarm/renderer"
	"github.com/pthm-cable/wordswarm/telemetry"
	"github.com/pthm-cable/wordswarm/ui"
)

const controlsLegend = "Click: Disperse/Reform | Type + Enter: New word | SPACE: Pause | F11: Fullscreen"

// Draw renders the frame and closes the perf frame begun in Update.
func (g *Game) Draw() {
	g.perfCollector.Enter(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(renderer.Color(g.cfg.Screen.Background))

	g.views = g.swarm.Snapshot(g.views)
	g.particleRenderer.Draw(g.views)

	if g.controller.FullyCollected() {
		g.promptRenderer.Draw(float64(g.width)/2, float64(g.height)/2, g.pointer.Position.X, g.pointer.Position.Y)
	}

	g.cursorRenderer.Draw(g.pointer)
	g.drawUI()

	rl.EndDrawing()
	g.perfCollector.End(g.swarm.Len())
}

// drawUI draws the HUD and control legend.
func (g *Game) drawUI() {
	counts := g.swarm.Counts()
	g.hud.Draw(ui.HUDData{
		Word:       g.word,
		Particles:  counts.Total(),
		Forming:    counts.Forming,
		Stuck:      counts.Stuck,
		Dispersing: counts.Dispersing,
		Arrived:    counts.Arrived,
		Tick:       g.tick,
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
		Editing:    g.editing,
		Draft:      string(g.draft),
	})
	g.hud.DrawControls(int32(g.height), controlsLegend)
}
