package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	cfg "github.com/automoto/trapschool/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects once and hands out players for them.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = Synthesize(tone, l.context.SampleRate(), rand.New(rand.NewPCG(uint64(id), 0x5eed)))
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// Synthesize renders tone as 16-bit little-endian stereo PCM, the format an
// audio.Context plays directly. noise supplies the noise component.
func Synthesize(tone cfg.Tone, sampleRate int, noise *rand.Rand) []byte {
	n := int(tone.Duration.Seconds() * float64(sampleRate))
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		frac := float64(i) / float64(n)
		freq := tone.StartFreq + (tone.EndFreq-tone.StartFreq)*frac
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase) * (1 - tone.Noise)
		if tone.Noise > 0 && noise != nil {
			v += (noise.Float64()*2 - 1) * tone.Noise
		}
		v *= math.Exp(-tone.Decay*t) * tone.Volume
		// short release so the tail never clicks
		if rest := n - i; rest < 64 {
			v *= float64(rest) / 64
		}

		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
