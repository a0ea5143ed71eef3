// internal/system/utils.go
package system

import (
	"dragon-siege/internal/component"
	"dragon-siege/internal/config"
	"dragon-siege/internal/entity"
	"dragon-siege/internal/types"
)

// ApplyDamage наносит урон сущности и возвращает true, если она погибла.
// Выжившая сущность получает вспышку урона.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return false
	}

	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
		return true
	}

	ecs.DamageFlashes[entityID] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}
	return false
}
