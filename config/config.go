// Package config provides configuration loading and access for the animation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all animation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Word       WordConfig       `yaml:"word"`
	Particle   ParticleConfig   `yaml:"particle"`
	Cursor     CursorConfig     `yaml:"cursor"`
	Prompt     PromptConfig     `yaml:"prompt"`
	Completion CompletionConfig `yaml:"completion"`
	Audio      AudioConfig      `yaml:"audio"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ColorConfig is an RGBA color. Alpha defaults to opaque when omitted.
type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	TargetFPS  int         `yaml:"target_fps"`
	Background ColorConfig `yaml:"background"`
}

// WordConfig controls which word is sampled and how densely.
type WordConfig struct {
	Text          string  `yaml:"text"`
	FontSize      float64 `yaml:"font_size"`
	SampleDensity float64 `yaml:"sample_density"` // outline samples per pixel (0.15 ~ one point every 6.7px)
	FontPath      string  `yaml:"font_path"`      // TTF/OTF file; empty = embedded Go Bold
}

// ParticleConfig holds steering and rendering parameters for a single particle.
type ParticleConfig struct {
	MaxSpeed         float64     `yaml:"max_speed"`
	Radius           float64     `yaml:"radius"`
	ArrivalThreshold float64     `yaml:"arrival_threshold"` // snap onto target below this distance
	BrakingDistance  float64     `yaml:"braking_distance"`  // arrival ramp starts at this distance
	DispersalForce   float64     `yaml:"dispersal_force"`
	Color            ColorConfig `yaml:"color"`
}

// CursorConfig holds pointer capture parameters.
type CursorConfig struct {
	AttractionRadius float64     `yaml:"attraction_radius"`
	Size             float64     `yaml:"size"`
	Color            ColorConfig `yaml:"color"`
}

// PromptConfig holds the completion prompt appearance.
type PromptConfig struct {
	Text      string      `yaml:"text"`
	MinSize   float64     `yaml:"min_size"`
	MaxSize   float64     `yaml:"max_size"`
	Frequency float64     `yaml:"frequency"` // spring angular frequency
	Damping   float64     `yaml:"damping"`   // spring damping ratio
	Color     ColorConfig `yaml:"color"`
}

// CompletionConfig holds the fully-collected action.
type CompletionConfig struct {
	Delay float64 `yaml:"delay"` // seconds between full collection and the callback
	URL   string  `yaml:"url"`   // opened when the callback fires; empty = log only
}

// AudioConfig holds cue playback settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`
	CollectPath string  `yaml:"collect_path"`
	FormPath    string  `yaml:"form_path"`
}

// TelemetryConfig holds telemetry and logging parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	DT          float64 // seconds per tick
	ScreenW32   float32
	ScreenH32   float32
	SampleEvery float64 // minimum spacing between outline samples, in pixels
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.DT = 1.0 / float64(fps)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	c.Derived.SampleEvery = SampleSpacing(c.Word.SampleDensity)
}

// SampleSpacing converts samples per pixel into pixels between samples.
// A non-positive density means one sample per pixel.
func SampleSpacing(density float64) float64 {
	if density <= 0 {
		return 1
	}
	return 1 / density
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
