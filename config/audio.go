package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Aim demo sounds
	SoundShot
	SoundShatter
	// UI sounds
	SoundNavigate
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes a synthesized effect: a decaying sine sweep mixed with
// noise. The site ships no audio files.
type Tone struct {
	Duration  time.Duration
	StartFreq float64 // Hz
	EndFreq   float64 // Hz
	Noise     float64 // 0 = pure tone, 1 = pure noise
	Decay     float64 // exponential decay rate per second
	Volume    float64
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundShot: {
				Duration:  120 * time.Millisecond,
				StartFreq: 180,
				EndFreq:   60,
				Noise:     0.7,
				Decay:     30,
				Volume:    0.5,
			},
			SoundShatter: {
				Duration:  350 * time.Millisecond,
				StartFreq: 1400,
				EndFreq:   300,
				Noise:     0.85,
				Decay:     12,
				Volume:    0.8,
			},
			SoundNavigate: {
				Duration:  60 * time.Millisecond,
				StartFreq: 660,
				EndFreq:   880,
				Noise:     0,
				Decay:     20,
				Volume:    0.25,
			},
		},
	}
}
