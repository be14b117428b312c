package game

import (
	"log/slog"
	"unicode"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
)

// maxWordLen caps the typed word.
const maxWordLen = 24

// handleInput processes pointer and keyboard input.
func (g *Game) handleInput() {
	// Window resize re-centers the word
	g.handleResize()

	mouse := rl.GetMousePosition()
	g.pointer.Position = r2.Vec{X: float64(mouse.X), Y: float64(mouse.Y)}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !g.paused {
		g.click()
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	g.handleTyping()

	if !g.editing && rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
}

// handleTyping feeds typed characters into the word draft.
func (g *Game) handleTyping() {
	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		// Space toggles pause unless a word is in progress
		if r == ' ' && !g.editing {
			continue
		}
		g.typeRune(r)
	}

	if rl.IsKeyPressed(rl.KeyBackspace) {
		g.backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		if err := g.commitDraft(); err != nil {
			slog.Error("failed to build word", "error", err)
		}
	}
}

// typeRune appends a printable rune to the draft and starts editing.
func (g *Game) typeRune(r rune) {
	if !unicode.IsPrint(r) || len(g.draft) >= maxWordLen {
		return
	}
	g.editing = true
	g.draft = append(g.draft, r)
}

// backspace removes the last drafted rune; an empty draft ends editing.
func (g *Game) backspace() {
	if len(g.draft) > 0 {
		g.draft = g.draft[:len(g.draft)-1]
	}
	if len(g.draft) == 0 {
		g.editing = false
	}
}

// commitDraft replaces the word with the draft and ends editing.
func (g *Game) commitDraft() error {
	if !g.editing {
		return nil
	}
	word := string(g.draft)
	g.draft = g.draft[:0]
	g.editing = false
	return g.setWord(word)
}

// handleResize checks for window resize and rebuilds the word at the new center.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if err := g.resize(w, h); err != nil {
		slog.Error("failed to rebuild word after resize", "error", err)
	}
}

// resize updates the canvas size and rebuilds the swarm if it changed.
func (g *Game) resize(w, h float32) error {
	if w == g.width && h == g.height {
		return nil
	}
	g.width = w
	g.height = h
	return g.rebuildWord()
}
