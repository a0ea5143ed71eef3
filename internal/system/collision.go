package system

import (
	"dragon-siege/internal/entity"
	"dragon-siege/internal/event"
	"dragon-siege/internal/utils"
)

// CollisionSystem наносит игроку урон от контакта с врагами и боссом.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update: враг в радиусе игрока + размер врага наносит урон и исчезает,
// засчитываясь в побеждённых. Босс бьёт каждый кадр контакта и остаётся.
func (s *CollisionSystem) Update() {
	player := s.ecs.Player

	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if !utils.Within(*pos, player.Position, player.Radius+enemy.Size) {
			continue
		}

		player.Life -= enemy.Damage
		s.ecs.RemoveEntity(id)
		s.ecs.Wave.EnemiesDefeated++

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyReachedPlayer,
			Data: event.EnemyData{ID: id, DefID: enemy.DefID},
		})
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerDamaged,
			Data: event.DamageData{Amount: enemy.Damage, Life: player.Life, Source: enemy.DefID},
		})
	}

	boss := s.ecs.Boss
	if boss.Active && utils.Within(boss.Position, player.Position, player.Radius+boss.Radius) {
		player.Life -= boss.Damage
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerDamaged,
			Data: event.DamageData{Amount: boss.Damage, Life: player.Life, Source: "BOSS"},
		})
	}
}
