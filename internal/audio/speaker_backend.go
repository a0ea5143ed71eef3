package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SpeakerBackend plays sounds through the beep speaker. The terminal host
// uses it since there is no ebiten audio context there.
type SpeakerBackend struct {
	mu      sync.Mutex
	buffers [SoundCount]*beep.Buffer
	loops   [SoundCount]*beep.Ctrl
	mixer   *beep.Mixer
	master  *effects.Volume
	closed  bool
}

// NewSpeakerBackend initializes the speaker and buffers every sound
func NewSpeakerBackend(cfg *AudioConfig) (*SpeakerBackend, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	b := &SpeakerBackend{}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	for s := Sound(0); s < SoundCount; s++ {
		st, err := CreateSound(s, cfg)
		if err != nil {
			return nil, err
		}
		buf := beep.NewBuffer(format)
		buf.Append(beep.Take(rate.N(maxSoundLength), st))
		b.buffers[s] = buf
	}

	// Every voice goes through one mixer so volume changes apply to all
	mixer := &beep.Mixer{}
	b.master = &effects.Volume{Streamer: mixer, Base: 2}
	b.mixer = mixer
	speaker.Play(b.master)
	return b, nil
}

func (b *SpeakerBackend) Play(s Sound) error {
	if s < 0 || s >= SoundCount {
		return ErrUnknownSound
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrAudioClosed
	}

	buf := b.buffers[s]
	speaker.Lock()
	b.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
	return nil
}

func (b *SpeakerBackend) Loop(s Sound) error {
	if s < 0 || s >= SoundCount {
		return ErrUnknownSound
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrAudioClosed
	}

	speaker.Lock()
	defer speaker.Unlock()
	if ctrl := b.loops[s]; ctrl != nil {
		ctrl.Paused = false
		return nil
	}
	buf := b.buffers[s]
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	b.loops[s] = ctrl
	b.mixer.Add(ctrl)
	return nil
}

// Stop pauses a looping sound. One-shots are short enough to run out.
func (b *SpeakerBackend) Stop(s Sound) {
	if s < 0 || s >= SoundCount {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if ctrl := b.loops[s]; ctrl != nil {
		speaker.Lock()
		ctrl.Paused = true
		speaker.Unlock()
	}
}

func (b *SpeakerBackend) SetVolume(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	speaker.Lock()
	if v <= 0 {
		b.master.Silent = true
	} else {
		b.master.Silent = false
		b.master.Volume = math.Log2(v)
	}
	speaker.Unlock()
}

func (b *SpeakerBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}
