// internal/system/visual_effect.go
package system

import (
	"dragon-siege/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
	if boss := s.ecs.Boss; boss.Flash.Timer > 0 {
		boss.Flash.Timer -= deltaTime
	}

	// Круги от кликов расходятся и исчезают
	for id, effect := range s.ecs.ClickEffects {
		effect.CurrentTimer += deltaTime
		if effect.CurrentTimer >= effect.Duration {
			delete(s.ecs.ClickEffects, id)
		}
	}
}
