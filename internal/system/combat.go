package system

import (
	"dragon-siege/internal/component"
	"dragon-siege/internal/config"
	"dragon-siege/internal/entity"
	"dragon-siege/internal/event"
	"dragon-siege/internal/interfaces"
	"dragon-siege/internal/utils"
)

// CombatSystem разбирает клики игрока по врагам и боссу.
type CombatSystem struct {
	ecs             *entity.ECS
	rules           config.Rules
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, rules config.Rules, game interfaces.GameContext, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		rules:           rules,
		game:            game,
		eventDispatcher: eventDispatcher,
	}
}

// HandleClick наносит 1 урон каждому врагу, в радиус которого попал клик,
// и боссу в пределах его радиуса. Возвращает число попаданий.
// После конца игры клики игнорируются полностью.
func (s *CombatSystem) HandleClick(x, y float64) int {
	if s.ecs.Session.GameOver {
		return 0
	}

	click := component.Position{X: x, Y: y}
	hits := 0

	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos || !utils.Within(click, *pos, enemy.Size) {
			continue
		}
		hits++

		data := event.EnemyData{ID: id, DefID: enemy.DefID, Points: enemy.Points}
		if !ApplyDamage(s.ecs, id, 1) {
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: data})
			continue
		}
		s.ecs.RemoveEntity(id)
		s.ecs.Wave.EnemiesDefeated++
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
	}

	if s.hitBoss(click) {
		hits++
	}

	s.addClickEffect(click)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.AttackPerformed,
		Data: event.AttackData{X: x, Y: y, Hits: hits},
	})
	return hits
}

// hitBoss: убийство босса даёт бонус, обнуляет счётчик побеждённых и
// запускает волну сразу, без паузы «приготовься».
func (s *CombatSystem) hitBoss(click component.Position) bool {
	boss := s.ecs.Boss
	if !boss.Active || !utils.Within(click, boss.Position, boss.Radius) {
		return false
	}

	boss.Health.Value--
	if boss.Health.Value > 0 {
		boss.Flash = component.DamageFlash{Timer: config.DamageFlashDuration, Duration: config.DamageFlashDuration}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.BossHit,
			Data: event.BossData{HP: boss.Health.Value},
		})
		return true
	}

	boss.Health.Value = 0
	boss.Active = false
	boss.Flash = component.DamageFlash{}
	s.ecs.Wave.EnemiesDefeated = 0
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BossKilled,
		Data: event.BossData{HP: 0, Points: s.rules.BossKillBonus},
	})

	if s.rules.BossKillAdvancesWave {
		s.game.AdvanceWave()
	} else {
		s.game.StartWave()
	}
	return true
}

func (s *CombatSystem) addClickEffect(click component.Position) {
	id := s.ecs.NewEntity()
	s.ecs.ClickEffects[id] = &component.ClickEffect{
		Position:  click,
		Duration:  config.ClickEffectDuration,
		MaxRadius: config.ClickEffectRadius,
	}
}
