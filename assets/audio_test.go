package assets

import (
	"encoding/binary"
	"math/rand/v2"
	"testing"
	"time"

	cfg "github.com/automoto/trapschool/config"
)

func TestSynthesizeLength(t *testing.T) {
	tone := cfg.Tone{Duration: 100 * time.Millisecond, StartFreq: 440, EndFreq: 440, Decay: 5, Volume: 0.5}
	buf := Synthesize(tone, 44100, nil)
	// 4410 stereo frames of two 16-bit samples
	if len(buf) != 4410*4 {
		t.Errorf("expected %d bytes, got %d", 4410*4, len(buf))
	}
}

func TestSynthesizeChannelsMatchAndFadeOut(t *testing.T) {
	tone := cfg.Sound.Tones[cfg.SoundShatter]
	buf := Synthesize(tone, 44100, rand.New(rand.NewPCG(1, 2)))
	if len(buf) == 0 {
		t.Fatal("expected samples")
	}

	frames := len(buf) / 4
	peak := 0
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(buf[i*4:]))
		r := int16(binary.LittleEndian.Uint16(buf[i*4+2:]))
		if l != r {
			t.Fatalf("expected identical channels at frame %d, got %d and %d", i, l, r)
		}
		if a := int(l); a > peak {
			peak = a
		} else if -a > peak {
			peak = -a
		}
	}
	if peak == 0 {
		t.Error("expected audible output")
	}

	last := int16(binary.LittleEndian.Uint16(buf[(frames-1)*4:]))
	if last > 1000 || last < -1000 {
		t.Errorf("expected the tail to fade out, got %d", last)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	tone := cfg.Sound.Tones[cfg.SoundShot]
	a := Synthesize(tone, 22050, rand.New(rand.NewPCG(7, 7)))
	b := Synthesize(tone, 22050, rand.New(rand.NewPCG(7, 7)))
	if string(a) != string(b) {
		t.Error("expected the same seed to render the same samples")
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	if buf := Synthesize(cfg.Tone{}, 44100, nil); buf != nil {
		t.Errorf("expected no samples for a zero tone, got %d bytes", len(buf))
	}
}

func TestEveryToneConfigured(t *testing.T) {
	for _, id := range []cfg.SoundID{cfg.SoundShot, cfg.SoundShatter, cfg.SoundNavigate} {
		tone, ok := cfg.Sound.Tones[id]
		if !ok {
			t.Errorf("expected a tone for sound %d", id)
			continue
		}
		if tone.Duration <= 0 || tone.Volume <= 0 {
			t.Errorf("expected sound %d to be audible, got %+v", id, tone)
		}
	}
}
