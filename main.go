package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"github.com/pthm-cable/wordswarm/config"
	"github.com/pthm-cable/wordswarm/game"
	"github.com/pthm-cable/wordswarm/glyph"
)

var (
	configPath    string
	word          string
	headless      bool
	logStats      bool
	statsWindow   float64
	outputDir     string
	seed          int64
	maxTicks      int
	clickInterval float64
)

func main() {
	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:           "wordswarm",
		Short:         "particles that form a word, follow the pointer and scatter on click",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (empty = use defaults)")
	rootCmd.PersistentFlags().StringVar(&word, "word", "", "Word to form (empty = use config)")

	rootCmd.Flags().BoolVar(&headless, "headless", false, "Run without graphics, driven by an autopilot pointer")
	rootCmd.Flags().BoolVar(&logStats, "log-stats", false, "Output stats via slog")
	rootCmd.Flags().Float64Var(&statsWindow, "stats-window", 0, "Stats window size in seconds (0 = use config)")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory for CSV logs and config snapshot")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	rootCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	rootCmd.Flags().Float64Var(&clickInterval, "click-interval", 0, "Headless seconds between autopilot clicks (0 = never)")

	pointsCmd := &cobra.Command{
		Use:   "points",
		Short: "print the sampled, canvas-centered target points as CSV",
		Args:  cobra.NoArgs,
		RunE:  printPoints,
	}
	rootCmd.AddCommand(pointsCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("wordswarm failed", "error", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Initialize config before anything else
	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	rngSeed := seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       logStats,
		StatsWindowSec: statsWindow,
		OutputDir:      outputDir,
		Headless:       headless,
		Word:           word,
		ClickInterval:  clickInterval,
	}

	if headless {
		// Headless mode - no raylib window or audio
		g, err := game.NewGameWithOptions(opts)
		if err != nil {
			return err
		}
		defer g.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"word", g.Word(),
			"max_ticks", maxTicks,
			"click_interval", clickInterval,
		)

		for {
			g.UpdateHeadless()

			if maxTicks > 0 && int(g.Tick()) >= maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick(), "completions", g.Completions())
				return nil
			}
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Word Swarm")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(rl.KeyNull)
	rl.HideCursor()

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	slog.Info("starting", "seed", rngSeed, "word", g.Word())

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	return nil
}

// printPoints samples the word and writes the centered points to stdout.
func printPoints(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	text := cfg.Word.Text
	if word != "" {
		text = word
	}

	sampler, err := glyph.NewSamplerFromFile(cfg.Word.FontPath)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}

	sample, err := sampler.Sample(text, cfg.Word.FontSize, cfg.Derived.SampleEvery)
	if err != nil {
		return fmt.Errorf("sampling %q: %w", text, err)
	}

	centered := glyph.Sample{
		Points: sample.Centered(float64(cfg.Screen.Width), float64(cfg.Screen.Height)),
		Bounds: sample.Bounds,
	}
	return centered.WriteCSV(cmd.OutOrStdout())
}
