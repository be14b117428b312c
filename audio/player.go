// Package audio plays the swarm's transition cues through raylib.
package audio

import (
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wordswarm/config"
	"github.com/pthm-cable/wordswarm/systems"
)

// Nop discards cues. Used headless and when audio is disabled.
type Nop struct{}

// Play does nothing.
func (Nop) Play(systems.Cue) {}

// Player plays cues on the raylib audio device.
// Each cue is loaded from its configured file, or synthesized when the file is missing.
type Player struct {
	sounds map[systems.Cue]rl.Sound
}

// NewPlayer opens the audio device and loads every cue.
// Returns Nop when audio is disabled or the device cannot be opened.
func NewPlayer(cfg config.AudioConfig) systems.CuePlayer {
	if !cfg.Enabled {
		return Nop{}
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		slog.Warn("audio device unavailable, cues disabled")
		return Nop{}
	}

	p := &Player{sounds: make(map[systems.Cue]rl.Sound, 2)}
	p.load(systems.CueCollect, cfg.CollectPath)
	p.load(systems.CueForm, cfg.FormPath)

	for _, s := range p.sounds {
		rl.SetSoundVolume(s, float32(cfg.Volume))
	}
	return p
}

// load reads a cue file, falling back to a synthesized tone.
func (p *Player) load(cue systems.Cue, path string) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			p.sounds[cue] = rl.LoadSound(path)
			slog.Info("loaded cue", "cue", cue.String(), "path", path)
			return
		}
		slog.Warn("cue file missing, synthesizing", "cue", cue.String(), "path", path)
	}

	buf := synthesize(cue)
	if len(buf) == 0 {
		return
	}
	wave := rl.NewWave(uint32(len(buf)), SampleRate, 16, 1, pcm16(buf))
	p.sounds[cue] = rl.LoadSoundFromWave(wave)
}

// Play starts the cue, restarting it if it is already playing.
func (p *Player) Play(cue systems.Cue) {
	s, ok := p.sounds[cue]
	if !ok {
		return
	}
	rl.PlaySound(s)
}

// Unload releases the sounds and closes the audio device.
func (p *Player) Unload() {
	for cue, s := range p.sounds {
		rl.UnloadSound(s)
		delete(p.sounds, cue)
	}
	rl.CloseAudioDevice()
}
