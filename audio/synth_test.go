package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/pthm-cable/wordswarm/systems"
)

func TestSynthesizeCues(t *testing.T) {
	testCases := []struct {
		cue     systems.Cue
		minSecs float64
	}{
		{systems.CueCollect, 0.05},
		{systems.CueForm, 0.3},
	}

	for _, tc := range testCases {
		buf := synthesize(tc.cue)
		if float64(len(buf))/SampleRate < tc.minSecs {
			t.Errorf("%s: expected at least %fs of audio, got %d samples", tc.cue, tc.minSecs, len(buf))
		}
		for i, v := range buf {
			if math.Abs(v) > 1 {
				t.Fatalf("%s: sample %d out of range: %f", tc.cue, i, v)
			}
		}
	}

	if buf := synthesize(systems.Cue(99)); buf != nil {
		t.Errorf("expected no audio for unknown cue, got %d samples", len(buf))
	}
}

func TestEnvelopeSilencesEdges(t *testing.T) {
	buf := make(floatBuffer, SampleRate/10)
	for i := range buf {
		buf[i] = 1
	}
	applyEnvelope(buf, 0.01, 0.01)

	if buf[0] != 0 {
		t.Errorf("expected silent first sample, got %f", buf[0])
	}
	if buf[len(buf)/2] != 1 {
		t.Errorf("expected full volume in the middle, got %f", buf[len(buf)/2])
	}
	if last := buf[len(buf)-1]; last > 0.01 {
		t.Errorf("expected near-silent last sample, got %f", last)
	}
}

func TestMixExtends(t *testing.T) {
	a := floatBuffer{1, 1}
	b := floatBuffer{1, 1, 1, 1}
	got := mix(a, b, 0.5)
	want := floatBuffer{1.5, 1.5, 0.5, 0.5}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestPCM16(t *testing.T) {
	out := pcm16(floatBuffer{0, 1, -1, 2})
	if len(out) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(out))
	}

	samples := make([]int16, 4)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(out[i*2:]))
	}
	want := []int16{0, math.MaxInt16, -math.MaxInt16, math.MaxInt16}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, samples[i], want[i])
		}
	}
}
