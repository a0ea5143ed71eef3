package audio

import "errors"

// Sound identifies one of the game's sound handles
type Sound int

const (
	SoundAmbient  Sound = iota // Background loop
	SoundAttack                // Click swing
	SoundHit                   // Enemy or boss hit
	SoundBossRoar              // Boss appears
	SoundLose                  // Game over jingle
	SoundCount                 // Number of sound handles
)

func (s Sound) String() string {
	switch s {
	case SoundAmbient:
		return "ambient"
	case SoundAttack:
		return "attack"
	case SoundHit:
		return "hit"
	case SoundBossRoar:
		return "boss"
	case SoundLose:
		return "lose"
	}
	return "unknown"
}

// AudioConfig holds mixing settings shared by all backends
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[Sound]float64
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.6,
		EffectVolumes: map[Sound]float64{
			SoundAmbient:  0.25,
			SoundAttack:   0.5,
			SoundHit:      0.6,
			SoundBossRoar: 0.8,
			SoundLose:     0.8,
		},
	}
}

// volumeOf returns the effective volume of a sound in [0, 1]
func (c *AudioConfig) volumeOf(s Sound) float64 {
	v := c.EffectVolumes[s] * c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Sentinel errors
var (
	ErrUnknownSound = errors.New("unknown sound")
	ErrAudioClosed  = errors.New("audio backend closed")
)
