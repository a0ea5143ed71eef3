// internal/system/movement.go
package system

import (
	"dragon-siege/internal/entity"
	"dragon-siege/internal/utils"
)

// MovementSystem двигает врагов и босса к игроку по прямой.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update — один шаг за кадр, скорость задана в пикселях за кадр.
func (s *MovementSystem) Update() {
	target := s.ecs.Player.Position
	for id := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		utils.StepToward(pos, target, vel.Speed)
	}

	if boss := s.ecs.Boss; boss.Active {
		utils.StepToward(&boss.Position, target, boss.Speed)
	}
}
