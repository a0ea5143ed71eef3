package audio

import (
	"log"

	"dragon-siege/internal/event"
)

// Manager maps game events to sounds on a backend
type Manager struct {
	backend Backend
	volume  float64
	muted   bool
	ambient bool
}

// NewManager wraps a backend. A nil backend plays nothing.
func NewManager(backend Backend, volume float64) *Manager {
	if backend == nil {
		backend = NullBackend{}
	}
	m := &Manager{backend: backend, volume: volume}
	backend.SetVolume(volume)
	return m
}

// OnEvent implements event.Listener
func (m *Manager) OnEvent(e event.Event) {
	switch e.Type {
	case event.AttackPerformed:
		m.play(SoundAttack)
	case event.EnemyHit, event.EnemyKilled, event.BossHit:
		m.play(SoundHit)
	case event.BossSpawned:
		m.play(SoundBossRoar)
	case event.GameOver:
		m.StopAmbient()
		m.play(SoundLose)
	}
}

// HandleEvents feeds a frame's events through OnEvent in order
func (m *Manager) HandleEvents(events []event.Event) {
	for _, e := range events {
		m.OnEvent(e)
	}
}

func (m *Manager) play(s Sound) {
	if err := m.backend.Play(s); err != nil {
		log.Printf("audio: play %s: %v", s, err)
	}
}

// StartAmbient starts the background loop
func (m *Manager) StartAmbient() {
	if m.ambient {
		return
	}
	if err := m.backend.Loop(SoundAmbient); err != nil {
		log.Printf("audio: loop %s: %v", SoundAmbient, err)
		return
	}
	m.ambient = true
}

// StopAmbient stops the background loop
func (m *Manager) StopAmbient() {
	if !m.ambient {
		return
	}
	m.backend.Stop(SoundAmbient)
	m.ambient = false
}

// SetMuted silences all output without stopping the loop
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	if muted {
		m.backend.SetVolume(0)
	} else {
		m.backend.SetVolume(m.volume)
	}
}

// ToggleMute flips the mute state and returns the new one
func (m *Manager) ToggleMute() bool {
	m.SetMuted(!m.muted)
	return m.muted
}

func (m *Manager) Muted() bool { return m.muted }

func (m *Manager) Close() error {
	return m.backend.Close()
}
