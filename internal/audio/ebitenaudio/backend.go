// Package ebitenaudio plays game sounds through ebiten's audio context.
package ebitenaudio

import (
	"bytes"
	"fmt"
	"sync"

	"dragon-siege/internal/audio"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

var _ audio.Backend = (*Backend)(nil)

// maxVoices bounds how many copies of one effect can overlap
const maxVoices = 4

// Backend implements audio.Backend on ebiten's audio context
type Backend struct {
	mu     sync.Mutex
	ctx    *eaudio.Context
	pcm    [audio.SoundCount][]byte
	voices [audio.SoundCount][]*eaudio.Player
	volume float64
	closed bool
}

// NewBackend renders every sound once and binds to the shared
// audio context, creating it on first use.
func NewBackend(cfg *audio.AudioConfig) (*Backend, error) {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(cfg.SampleRate)
	} else if ctx.SampleRate() != cfg.SampleRate {
		return nil, fmt.Errorf("audio context runs at %d Hz, want %d", ctx.SampleRate(), cfg.SampleRate)
	}

	b := &Backend{ctx: ctx, volume: 1}
	for s := audio.Sound(0); s < audio.SoundCount; s++ {
		pcm, err := audio.RenderSound(s, cfg)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", s, err)
		}
		b.pcm[s] = pcm
	}
	return b, nil
}

func (b *Backend) Play(s audio.Sound) error {
	if s < 0 || s >= audio.SoundCount {
		return audio.ErrUnknownSound
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return audio.ErrAudioClosed
	}

	p := b.idleVoice(s)
	if p == nil {
		return nil
	}
	p.SetVolume(b.volume)
	if err := p.Rewind(); err != nil {
		return err
	}
	p.Play()
	return nil
}

// idleVoice returns a player that is not currently playing, or nil when
// all voices of the sound are busy.
func (b *Backend) idleVoice(s audio.Sound) *eaudio.Player {
	for _, p := range b.voices[s] {
		if !p.IsPlaying() {
			return p
		}
	}
	if len(b.voices[s]) >= maxVoices {
		return nil
	}
	p := b.ctx.NewPlayerFromBytes(b.pcm[s])
	b.voices[s] = append(b.voices[s], p)
	return p
}

func (b *Backend) Loop(s audio.Sound) error {
	if s < 0 || s >= audio.SoundCount {
		return audio.ErrUnknownSound
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return audio.ErrAudioClosed
	}

	if len(b.voices[s]) > 0 {
		p := b.voices[s][0]
		if !p.IsPlaying() {
			p.SetVolume(b.volume)
			p.Play()
		}
		return nil
	}

	pcm := b.pcm[s]
	loop := eaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := b.ctx.NewPlayer(loop)
	if err != nil {
		return fmt.Errorf("loop %s: %w", s, err)
	}
	p.SetVolume(b.volume)
	p.Play()
	b.voices[s] = []*eaudio.Player{p}
	return nil
}

func (b *Backend) Stop(s audio.Sound) {
	if s < 0 || s >= audio.SoundCount {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.voices[s] {
		p.Pause()
	}
}

func (b *Backend) SetVolume(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.volume = v
	for _, voices := range b.voices {
		for _, p := range voices {
			p.SetVolume(v)
		}
	}
}

func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	var firstErr error
	for i, voices := range b.voices {
		for _, p := range voices {
			if err := p.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		b.voices[i] = nil
	}
	return firstErr
}
