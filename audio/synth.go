package audio

import (
	"encoding/binary"
	"math"

	"github.com/pthm-cable/wordswarm/systems"
)

// SampleRate is the rate of synthesized cues.
const SampleRate = 44100

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// sweep generates a sine whose frequency glides linearly from f0 to f1.
func sweep(f0, f1, durationSec float64) floatBuffer {
	n := int(durationSec * SampleRate)
	buf := make(floatBuffer, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := f0 + (f1-f0)*t
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += freq / SampleRate
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attack := int(attackSec * SampleRate)
	release := int(releaseSec * SampleRate)

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
}

// mix adds b into a scaled by bScale, extending a if needed.
func mix(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// synthesize builds the fallback tone for a cue.
func synthesize(cue systems.Cue) floatBuffer {
	switch cue {
	case systems.CueCollect:
		// Short bright blip
		buf := sweep(880, 1320, 0.08)
		applyEnvelope(buf, 0.005, 0.05)
		return buf
	case systems.CueForm:
		// Rising two-voice swell
		buf := sweep(220, 440, 0.45)
		buf = mix(buf, sweep(330, 660, 0.45), 0.6)
		applyEnvelope(buf, 0.05, 0.25)
		normalize(buf, 0.8)
		return buf
	default:
		return nil
	}
}

// normalize scales buf so its peak equals peak.
func normalize(buf floatBuffer, peak float64) {
	var maxAbs float64
	for _, v := range buf {
		maxAbs = max(maxAbs, math.Abs(v))
	}
	if maxAbs == 0 {
		return
	}
	scale := peak / maxAbs
	for i := range buf {
		buf[i] *= scale
	}
}

// pcm16 converts samples to little-endian signed 16-bit PCM, clipping to [-1, 1].
func pcm16(buf floatBuffer) []byte {
	out := make([]byte, len(buf)*2)
	for i, v := range buf {
		v = max(-1, min(1, v))
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v*math.MaxInt16)))
	}
	return out
}
