// Glyph sampling preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/glyphpreview [-config config.yaml] [word]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wordswarm/config"
	"github.com/pthm-cable/wordswarm/glyph"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	previewWidth = 880
	panelWidth   = windowWidth - previewWidth - 30
)

// SampleParams holds the sampling parameters being tuned.
type SampleParams struct {
	FontSize float32
	Density  float32
	Radius   float32
}

func defaultParams(cfg *config.Config) SampleParams {
	return SampleParams{
		FontSize: float32(cfg.Word.FontSize),
		Density:  float32(cfg.Word.SampleDensity),
		Radius:   float32(cfg.Particle.Radius),
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	config.MustInit(*configPath)
	cfg := config.Cfg()

	word := cfg.Word.Text
	if flag.NArg() > 0 {
		word = flag.Arg(0)
	}

	sampler, err := glyph.NewSamplerFromFile(cfg.Word.FontPath)
	if err != nil {
		slog.Error("failed to load font", "path", cfg.Word.FontPath, "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Glyph Sampling Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams(cfg)
	background := rl.Color{R: cfg.Screen.Background.R, G: cfg.Screen.Background.G, B: cfg.Screen.Background.B, A: 255}
	particle := rl.Color{R: cfg.Particle.Color.R, G: cfg.Particle.Color.G, B: cfg.Particle.Color.B, A: 255}

	var sample glyph.Sample
	needsResample := true

	for !rl.WindowShouldClose() {
		if needsResample {
			sample, err = sampler.Sample(word, float64(params.FontSize), config.SampleSpacing(float64(params.Density)))
			if err != nil {
				slog.Error("sampling failed", "word", word, "error", err)
			}
			needsResample = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview area
		rl.DrawRectangle(10, 10, previewWidth, windowHeight-20, background)
		points := sample.Centered(previewWidth, windowHeight-20)
		for _, p := range points {
			rl.DrawCircleV(rl.Vector2{X: float32(p.X) + 10, Y: float32(p.Y) + 10}, params.Radius, particle)
		}
		rl.DrawText(fmt.Sprintf("%q  points: %d", word, len(points)), 20, windowHeight-40, 16, rl.RayWhite)

		// Control panel
		panelX := float32(previewWidth + 20)
		panelY := float32(10)

		rl.DrawText("Sampling Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Font size (px)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSize := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"40", "400",
			params.FontSize, 40, 400,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.FontSize), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newSize != params.FontSize {
			params.FontSize = newSize
			needsResample = true
		}
		panelY += 35

		rl.DrawText("Density (samples per px of outline)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newDensity := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.02", "0.5",
			params.Density, 0.02, 0.5,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Density), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newDensity != params.Density {
			params.Density = newDensity
			needsResample = true
		}
		panelY += 35

		rl.DrawText("Particle radius", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Radius = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "8",
			params.Radius, 1, 8,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Radius), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(cfg)
			needsResample = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yaml := configYAML(word, params)
		for _, line := range strings.Split(yaml, "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func configYAML(word string, params SampleParams) string {
	return fmt.Sprintf(`word:
  text: %s
  font_size: %.0f
  sample_density: %.2f
particle:
  radius: %.1f`, word, params.FontSize, params.Density, params.Radius)
}
