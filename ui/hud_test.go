package ui

import (
	"strings"
	"testing"
)

func TestHUDLines(t *testing.T) {
	d := HUDData{Word: "hello", Particles: 120, Stuck: 20, Forming: 100, Tick: 42, FPS: 60}

	lines := d.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"hello"`) || !strings.Contains(lines[0], "120") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Stuck: 20") {
		t.Errorf("unexpected mode line: %q", lines[1])
	}
}

func TestHUDLinesWhileEditing(t *testing.T) {
	d := HUDData{Word: "hello", Editing: true, Draft: "wor"}

	lines := d.Lines()
	last := lines[len(lines)-1]
	if last != "New word: wor_" {
		t.Errorf("last line = %q, want %q", last, "New word: wor_")
	}
}
