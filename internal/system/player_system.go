// internal/system/player_system.go
package system

import (
	"dragon-siege/internal/entity"
	"dragon-siege/internal/event"
)

// PlayerSystem отвечает за счёт игрока: начисляет очки за убийства.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyData); ok {
			s.ecs.Session.Score += data.Points
		}
	case event.BossKilled:
		if data, ok := e.Data.(event.BossData); ok {
			s.ecs.Session.Score += data.Points
		}
	}
}
