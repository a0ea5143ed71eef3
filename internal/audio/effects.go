package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sliding in pitch
type oscillator struct {
	freq     float64
	slide    float64 // Hz per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSlidingOscillator(freq, 0, duration, wave, rate)
}

// NewSlidingOscillator creates an oscillator whose pitch changes by slide Hz per second
func NewSlidingOscillator(freq, slide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.rate)
		if freq < 0 {
			freq = 0
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume becomes a silent effect
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	attackDuration  = 90 * time.Millisecond
	hitDuration     = 60 * time.Millisecond
	roarDuration    = 700 * time.Millisecond
	loseNote        = 260 * time.Millisecond
	ambientDuration = 4 * time.Second
)

// CreateAttackSound generates a short descending zap for a click
func CreateAttackSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	zap := NewSlidingOscillator(900, -4000, attackDuration, WaveSaw, rate)
	air := NewOscillator(0, attackDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(zap, 0.6), newVolume(air, 0.25))
	shaped := NewEnvelope(mixed, attackDuration, 4*time.Millisecond, 60*time.Millisecond, rate)

	return newVolume(shaped, cfg.volumeOf(SoundAttack))
}

// CreateHitSound generates a short ding for a landed hit
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(880, hitDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, hitDuration, 2*time.Millisecond, 40*time.Millisecond, rate)

	return newVolume(shaped, cfg.volumeOf(SoundHit))
}

// CreateBossRoarSound generates a low growl when the boss appears
func CreateBossRoarSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	growl := NewSlidingOscillator(90, -40, roarDuration, WaveSaw, rate)
	rumble := NewOscillator(0, roarDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(growl, 0.7), newVolume(rumble, 0.3))
	shaped := NewEnvelope(mixed, roarDuration, 80*time.Millisecond, 300*time.Millisecond, rate)

	return newVolume(shaped, cfg.volumeOf(SoundBossRoar))
}

// CreateLoseSound generates three falling notes
func CreateLoseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{392.00, 329.63, 261.63}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, loseNote, WaveSquare, rate)
		parts = append(parts, NewEnvelope(osc, loseNote, 5*time.Millisecond, 120*time.Millisecond, rate))
	}

	return newVolume(beep.Seq(parts...), cfg.volumeOf(SoundLose))
}

// CreateAmbientSound generates a drone that loops without a seam: both
// partials complete whole cycles in ambientDuration.
func CreateAmbientSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	n := rate.N(ambientDuration)

	var partials []beep.Streamer
	for _, freq := range []float64{110, 165} {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			// The tone is above Nyquist for this rate; skip it
			continue
		}
		partials = append(partials, newVolume(beep.Take(n, tone), 0.5))
	}
	if len(partials) == 0 {
		return beep.Silence(n)
	}

	return newVolume(beep.Mix(partials...), cfg.volumeOf(SoundAmbient))
}

// CreateSound dispatches to the generator of the given sound
func CreateSound(s Sound, cfg *AudioConfig) (beep.Streamer, error) {
	switch s {
	case SoundAmbient:
		return CreateAmbientSound(cfg), nil
	case SoundAttack:
		return CreateAttackSound(cfg), nil
	case SoundHit:
		return CreateHitSound(cfg), nil
	case SoundBossRoar:
		return CreateBossRoarSound(cfg), nil
	case SoundLose:
		return CreateLoseSound(cfg), nil
	}
	return nil, ErrUnknownSound
}
