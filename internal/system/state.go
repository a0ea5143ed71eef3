// internal/system/state.go
package system

import (
	"log"

	"dragon-siege/internal/component"
	"dragon-siege/internal/entity"
	"dragon-siege/internal/event"
)

// StateSystem фиксирует конец игры и определяет текущую фазу.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Update() {
	if !s.ecs.Session.GameOver && s.ecs.Player.IsDead() {
		s.SwitchToGameOver()
	}
}

// SwitchToGameOver выставляет флаг конца игры один раз и останавливает спавн.
func (s *StateSystem) SwitchToGameOver() {
	if s.ecs.Session.GameOver {
		return
	}
	s.ecs.Session.GameOver = true
	s.ecs.Wave.IsSpawning = false

	log.Printf("Game over on wave %d with score %d after %.1fs", s.ecs.Wave.Number, s.ecs.Session.Score, s.ecs.Session.Elapsed)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Score: s.ecs.Session.Score, Wave: s.ecs.Wave.Number},
	})
}

func (s *StateSystem) Current() component.Phase {
	switch {
	case s.ecs.Session.GameOver:
		return component.GameOverPhase
	case s.ecs.Wave.ShowWaveMessage:
		return component.GetReadyPhase
	case s.ecs.Boss.Active:
		return component.BossPhase
	}
	return component.WavePhase
}
