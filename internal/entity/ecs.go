package entity

import (
	"sort"

	"dragon-siege/internal/component"
	"dragon-siege/internal/types"
)

// ECS — единственный контейнер состояния сессии. Системы получают его
// явно и мутируют только через свои методы Update/Handle.
type ECS struct {
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Enemies       map[types.EntityID]*component.Enemy
	Renderables   map[types.EntityID]*component.Renderable
	DamageFlashes map[types.EntityID]*component.DamageFlash
	ClickEffects  map[types.EntityID]*component.ClickEffect
	Player        *component.Player
	Boss          *component.Boss
	Wave          *component.Wave
	Session       *component.Session
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		ClickEffects:  make(map[types.EntityID]*component.ClickEffect),
		Player:        &component.Player{},
		Boss:          &component.Boss{},
		Wave:          &component.Wave{Number: 1},
		Session:       &component.Session{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Renderables, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.ClickEffects, id)
}

// ClearEnemies удаляет всех живых врагов.
func (ecs *ECS) ClearEnemies() {
	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
}

// EnemyIDs возвращает ID врагов в порядке появления.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EnemyCount возвращает число живых врагов.
func (ecs *ECS) EnemyCount() int {
	return len(ecs.Enemies)
}
