package system

import (
	"testing"

	"dragon-siege/internal/component"
	"dragon-siege/internal/config"
	"dragon-siege/internal/defs"
	"dragon-siege/internal/entity"
	"dragon-siege/internal/event"
	"dragon-siege/internal/utils"
)

// testWorld связывает системы так же, как app.Game, но без пакета app.
type testWorld struct {
	ecs       *entity.ECS
	rules     config.Rules
	recorder  *event.Recorder
	spawner   *SpawnSystem
	waves     *WaveSystem
	combat    *CombatSystem
	collision *CollisionSystem
	state     *StateSystem
	movement  *MovementSystem
}

func (w *testWorld) StartWave()   { w.waves.StartWave() }
func (w *testWorld) AdvanceWave() { w.waves.AdvanceWave() }

func newTestWorld(t *testing.T, rules config.Rules, lib *defs.EnemyLibrary) *testWorld {
	t.Helper()
	if lib == nil {
		lib = defs.DefaultEnemyLibrary()
	}
	ecs := entity.NewECS()
	ecs.Player = &component.Player{
		Position: component.Position{X: rules.Width / 2, Y: rules.Height / 2},
		Radius:   rules.PlayerRadius,
		Life:     rules.PlayerMaxLife,
		MaxLife:  rules.PlayerMaxLife,
	}
	dispatcher := event.NewDispatcher()
	recorder := &event.Recorder{}
	dispatcher.SubscribeAll(recorder)
	player := NewPlayerSystem(ecs)
	dispatcher.Subscribe(event.EnemyKilled, player)
	dispatcher.Subscribe(event.BossKilled, player)

	w := &testWorld{ecs: ecs, rules: rules, recorder: recorder}
	w.spawner = NewSpawnSystem(ecs, lib, utils.NewPRNGService(1), rules, dispatcher)
	w.waves = NewWaveSystem(ecs, rules, w.spawner, dispatcher)
	w.combat = NewCombatSystem(ecs, rules, w, dispatcher)
	w.collision = NewCollisionSystem(ecs, dispatcher)
	w.state = NewStateSystem(ecs, dispatcher)
	w.movement = NewMovementSystem(ecs)
	return w
}

func countEvents(events []event.Event, typ event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
