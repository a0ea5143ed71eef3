package system

import (
	"log"

	"dragon-siege/internal/component"
	"dragon-siege/internal/config"
	"dragon-siege/internal/defs"
	"dragon-siege/internal/entity"
	"dragon-siege/internal/event"
	"dragon-siege/internal/types"
	"dragon-siege/internal/utils"
)

// Стороны поля для появления врагов.
const (
	EdgeLeft = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// SpawnSystem создаёт врагов на краях поля и босса.
type SpawnSystem struct {
	ecs             *entity.ECS
	library         *defs.EnemyLibrary
	rng             *utils.PRNGService
	rules           config.Rules
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(ecs *entity.ECS, library *defs.EnemyLibrary, rng *utils.PRNGService, rules config.Rules, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		library:         library,
		rng:             rng,
		rules:           rules,
		eventDispatcher: eventDispatcher,
	}
}

// SpawnEnemy выбирает уровень по весам и ставит врага на случайную точку края.
func (s *SpawnSystem) SpawnEnemy() types.EntityID {
	if s.ecs.Session.GameOver {
		return 0
	}
	tier := s.rng.ChooseTier(s.library.Tiers)
	x, y := s.edgePoint(0)
	speed := s.rules.MinEnemySpeed + s.rng.Float64()*s.rules.EnemySpeedSpread
	return s.SpawnEnemyOfTier(tier, component.Position{X: x, Y: y}, speed)
}

// SpawnEnemyOfTier создаёт врага заданного уровня в заданной точке.
func (s *SpawnSystem) SpawnEnemyOfTier(tier int, pos component.Position, speed float64) types.EntityID {
	if tier < 0 || tier >= s.library.Len() {
		log.Printf("Error: enemy tier %d out of range, using tier 0", tier)
		tier = 0
	}
	def := s.library.Tiers[tier]

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &pos
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:  def.ID,
		Tier:   tier,
		Damage: def.Damage,
		Size:   def.Size,
		Points: def.Points,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Glyph:     glyphOf(def),
		HasStroke: def.Visuals.Stroke,
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: id, DefID: def.ID, Points: def.Points},
	})
	return id
}

// CanSpawnBoss: волна босса, босса нет, квота волны выбита и не идёт пауза
// между волнами (в паузе счётчики ещё относятся к прошлой волне).
func (s *SpawnSystem) CanSpawnBoss() bool {
	wave := s.ecs.Wave
	return s.rules.IsBossWave(wave.Number) &&
		!s.ecs.Boss.Active &&
		wave.QuotaCleared() &&
		!wave.ShowWaveMessage &&
		!s.ecs.Session.GameOver
}

// SpawnBoss ставит босса за краем поля. Возвращает false, если условия не выполнены.
func (s *SpawnSystem) SpawnBoss() bool {
	if !s.CanSpawnBoss() {
		return false
	}

	x, y := s.edgePoint(s.rules.BossSpawnOffset)
	boss := s.ecs.Boss
	// BossHPIncrement настроен, но не применяется: здоровье босса всегда BossMaxHP.
	*boss = component.Boss{
		Active:      true,
		Position:    component.Position{X: x, Y: y},
		Health:      component.Health{Value: s.rules.BossMaxHP, Max: s.rules.BossMaxHP},
		Speed:       s.rules.BossSpeed,
		Damage:      s.rules.BossDamage,
		Radius:      s.rules.BossRadius,
		Appearances: boss.Appearances + 1,
	}

	log.Printf("Boss spawned on wave %d at (%.0f, %.0f)", s.ecs.Wave.Number, x, y)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BossSpawned,
		Data: event.BossData{HP: boss.Health.Value, Points: s.rules.BossKillBonus},
	})
	return true
}

// edgePoint возвращает случайную точку на одной из четырёх сторон,
// отодвинутую наружу на offset пикселей.
func (s *SpawnSystem) edgePoint(offset float64) (float64, float64) {
	w, h := s.rules.Width, s.rules.Height
	switch s.rng.Intn(4) {
	case EdgeLeft:
		return -offset, s.rng.Float64() * h
	case EdgeRight:
		return w + offset, s.rng.Float64() * h
	case EdgeTop:
		return s.rng.Float64() * w, -offset
	default:
		return s.rng.Float64() * w, h + offset
	}
}

func glyphOf(def defs.EnemyDefinition) rune {
	for _, r := range def.Visuals.Glyph {
		return r
	}
	return '?'
}
