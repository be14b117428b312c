package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Word.Text != "hello" {
		t.Errorf("expected default word %q, got %q", "hello", cfg.Word.Text)
	}
	if cfg.Particle.ArrivalThreshold != 5 {
		t.Errorf("expected arrival threshold 5, got %f", cfg.Particle.ArrivalThreshold)
	}
	if cfg.Particle.BrakingDistance != 100 {
		t.Errorf("expected braking distance 100, got %f", cfg.Particle.BrakingDistance)
	}
	if cfg.Cursor.AttractionRadius != 25 || cfg.Cursor.Size != 50 {
		t.Errorf("unexpected cursor defaults: %+v", cfg.Cursor)
	}
	if cfg.Screen.Background.R != 128 || cfg.Screen.Background.B != 32 {
		t.Errorf("unexpected background: %+v", cfg.Screen.Background)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if math.Abs(cfg.Derived.DT-1.0/60.0) > 1e-12 {
		t.Errorf("expected dt 1/60, got %f", cfg.Derived.DT)
	}
	if math.Abs(cfg.Derived.SampleEvery-1/0.15) > 1e-9 {
		t.Errorf("expected sample spacing %f, got %f", 1/0.15, cfg.Derived.SampleEvery)
	}
	if cfg.Derived.ScreenW32 != 1280 {
		t.Errorf("expected screen width 1280, got %f", cfg.Derived.ScreenW32)
	}
}

func TestSampleSpacing(t *testing.T) {
	testCases := []struct {
		name    string
		density float64
		want    float64
	}{
		{"default density", 0.15, 1 / 0.15},
		{"one per pixel", 1, 1},
		{"zero", 0, 1},
		{"negative", -2, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SampleSpacing(tc.density); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("SampleSpacing(%v) = %v, want %v", tc.density, got, tc.want)
			}
		})
	}
}

func TestMustInit(t *testing.T) {
	t.Cleanup(func() { global = nil })

	MustInit("")
	if Cfg().Word.Text != "hello" {
		t.Errorf("expected defaults after MustInit, got word %q", Cfg().Word.Text)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected MustInit to panic on a missing file")
		}
	}()
	MustInit(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestUserFileOverridesOnlyGivenKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.yaml")
	data := []byte("word:\n  text: hi\ncursor:\n  size: 80\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing user config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading user config: %v", err)
	}

	if cfg.Word.Text != "hi" {
		t.Errorf("expected overridden word %q, got %q", "hi", cfg.Word.Text)
	}
	if cfg.Cursor.Size != 80 {
		t.Errorf("expected overridden cursor size 80, got %f", cfg.Cursor.Size)
	}
	// Untouched keys keep their defaults
	if cfg.Word.FontSize != 250 {
		t.Errorf("expected default font size 250, got %f", cfg.Word.FontSize)
	}
	if cfg.Cursor.AttractionRadius != 25 {
		t.Errorf("expected default attraction radius 25, got %f", cfg.Cursor.AttractionRadius)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.Word.Text = "swarm"

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot: %v", err)
	}
	if back.Word.Text != "swarm" {
		t.Errorf("expected %q after reload, got %q", "swarm", back.Word.Text)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected Cfg() to panic before Init()")
		}
	}()
	Cfg()
}
