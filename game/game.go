// Package game wires the swarm, input, audio, rendering and telemetry into a frame loop.
package game

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/wordswarm/audio"
	"github.com/pthm-cable/wordswarm/config"
	"github.com/pthm-cable/wordswarm/glyph"
	"github.com/pthm-cable/wordswarm/renderer"
	"github.com/pthm-cable/wordswarm/systems"
	"github.com/pthm-cable/wordswarm/telemetry"
	"github.com/pthm-cable/wordswarm/ui"
)

// Options configures a new game.
type Options struct {
	Config         *config.Config // nil = config.Cfg()
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = config telemetry.stats_window
	OutputDir      string
	Headless       bool
	Word           string  // empty = config word.text
	ClickInterval  float64 // headless seconds between autopilot clicks; 0 = never click
}

// Game holds the complete animation state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	sampler    *glyph.Sampler
	swarm      *systems.Swarm
	controller *systems.Controller
	cues       systems.CuePlayer
	redirect   *Redirect

	// Rendering (nil when headless)
	particleRenderer *renderer.ParticleRenderer
	cursorRenderer   *renderer.CursorRenderer
	promptRenderer   *renderer.PromptRenderer
	hud              *ui.HUD

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// Headless driving
	autopilot  *Autopilot
	clickEvery int32

	// Word editing
	word    string
	editing bool
	draft   []rune

	// State
	tick        int32
	paused      bool
	completions int
	pointer     systems.PointerState

	// Window dimensions
	width, height float32

	// Scratch buffers reused every frame
	views     []systems.ParticleView
	distances []float64
	speeds    []float64
}

// NewGameWithOptions creates a game and builds the initial word.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	word := cfg.Word.Text
	if opts.Word != "" {
		word = opts.Word
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	sampler, err := newSampler(cfg.Word.FontPath)
	if err != nil {
		return nil, err
	}

	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		cfg:           cfg,
		rng:           rng,
		sampler:       sampler,
		swarm:         systems.NewSwarm(particleParams(cfg.Particle), rng),
		redirect:      NewRedirect(cfg.Completion.URL, !opts.Headless),
		collector:     telemetry.NewCollector(statsWindow, float32(cfg.Derived.DT)),
		perfCollector: telemetry.NewPerfCollector(cfg.Screen.TargetFPS),
		outputManager: outputManager,
		logStats:      opts.LogStats,
		word:          word,
		width:         cfg.Derived.ScreenW32,
		height:        cfg.Derived.ScreenH32,
		pointer: systems.PointerState{
			AttractionRadius: cfg.Cursor.AttractionRadius,
			CursorSize:       cfg.Cursor.Size,
		},
	}

	if opts.Headless {
		g.cues = audio.Nop{}
		g.autopilot = NewAutopilot(r2.Vec{}, autopilotSpeed)
		if opts.ClickInterval > 0 {
			g.clickEvery = int32(math.Round(opts.ClickInterval / cfg.Derived.DT))
			if g.clickEvery < 1 {
				g.clickEvery = 1
			}
		}
	} else {
		g.cues = audio.NewPlayer(cfg.Audio)
		g.particleRenderer = renderer.NewParticleRenderer(renderer.Color(cfg.Particle.Color))
		g.cursorRenderer = renderer.NewCursorRenderer(renderer.Color(cfg.Cursor.Color))
		g.promptRenderer = renderer.NewPromptRenderer(cfg.Prompt, cfg.Screen.TargetFPS)
		g.hud = ui.NewHUD(renderer.Color(cfg.Particle.Color))
	}

	completion := systems.NewCompletionTimer(cfg.Completion.Delay, g.redirect.Fire)
	g.controller = systems.NewController(g.swarm, g.cues, completion)

	if err := g.rebuildWord(); err != nil {
		g.Unload()
		return nil, err
	}

	return g, nil
}

func newSampler(fontPath string) (*glyph.Sampler, error) {
	if fontPath == "" {
		return glyph.NewSampler()
	}
	s, err := glyph.NewSamplerFromFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %w", fontPath, err)
	}
	return s, nil
}

func particleParams(cfg config.ParticleConfig) systems.ParticleParams {
	return systems.ParticleParams{
		MaxSpeed:         cfg.MaxSpeed,
		Radius:           cfg.Radius,
		ArrivalThreshold: cfg.ArrivalThreshold,
		BrakingDistance:  cfg.BrakingDistance,
		DispersalForce:   cfg.DispersalForce,
	}
}

// rebuildWord samples the current word and rebuilds the swarm centered on the canvas.
func (g *Game) rebuildWord() error {
	sample, err := g.sampler.Sample(g.word, g.cfg.Word.FontSize, g.cfg.Derived.SampleEvery)
	if err != nil {
		return fmt.Errorf("sampling %q: %w", g.word, err)
	}

	w, h := float64(g.width), float64(g.height)
	targets := sample.Centered(w, h)
	g.swarm.Rebuild(targets, r2.Vec{X: w / 2, Y: h / 2})

	slog.Info("word built",
		"word", g.word,
		"particles", len(targets),
		"width", w,
		"height", h,
		"tick", g.tick,
	)
	return nil
}

// setWord replaces the word and rebuilds the swarm. Blank words are ignored.
func (g *Game) setWord(word string) error {
	word = strings.TrimSpace(word)
	if word == "" || word == g.word {
		return nil
	}
	g.word = word
	return g.rebuildWord()
}

// Update runs one graphical frame: input then a simulation step.
// Draw ends the perf frame begun here.
func (g *Game) Update() {
	g.perfCollector.Begin()
	g.perfCollector.Enter(telemetry.PhaseInput)
	g.handleInput()

	if g.paused {
		return
	}

	g.step()
}

// UpdateHeadless runs one frame driven by the autopilot pointer and click interval.
func (g *Game) UpdateHeadless() {
	g.perfCollector.Begin()
	g.perfCollector.Enter(telemetry.PhaseInput)

	g.pointer.Position = g.autopilot.Step(g.swarm)
	if g.clickEvery > 0 && g.tick > 0 && g.tick%g.clickEvery == 0 {
		g.click()
	}

	g.step()
	g.perfCollector.End(g.swarm.Len())
}

// step advances the controller one tick at the current pointer.
func (g *Game) step() {
	g.perfCollector.Enter(telemetry.PhaseSwarm)
	res := g.controller.Step(g.pointer, g.cfg.Derived.DT)
	g.tick++

	g.perfCollector.Enter(telemetry.PhaseTelemetry)
	g.collector.RecordStep(res)
	if res.CompletionFired {
		g.completions++
	}
	g.flushTelemetry()
}

// click forwards a click to the controller.
func (g *Game) click() systems.ClickOutcome {
	outcome := g.controller.Click()
	g.collector.RecordClick(outcome)
	slog.Debug("click", "outcome", outcome.String(), "tick", g.tick)
	return outcome
}

// Unload releases audio and output files.
func (g *Game) Unload() {
	if p, ok := g.cues.(*audio.Player); ok {
		p.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the number of simulation steps run.
func (g *Game) Tick() int32 {
	return g.tick
}

// Word returns the word currently formed.
func (g *Game) Word() string {
	return g.word
}

// Completions returns how many times the completion callback fired.
func (g *Game) Completions() int {
	return g.completions
}

// Controller returns the interaction controller.
func (g *Game) Controller() *systems.Controller {
	return g.controller
}
