// internal/app/game.go
package app

import (
	"dragon-siege/internal/component"
	"dragon-siege/internal/config"
	"dragon-siege/internal/defs"
	"dragon-siege/internal/entity"
	"dragon-siege/internal/event"
	"dragon-siege/internal/system"
	"dragon-siege/internal/utils"
)

// Game holds the simulation state and the systems that advance it.
// It never touches a screen or a speaker: Update and Click return the
// events of the step, and the host turns them into sounds.
type Game struct {
	ECS                *entity.ECS
	Rules              config.Rules
	Library            *defs.EnemyLibrary
	Rng                *utils.PRNGService
	EventDispatcher    *event.Dispatcher
	SpawnSystem        *system.SpawnSystem
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	CollisionSystem    *system.CollisionSystem
	CombatSystem       *system.CombatSystem
	StateSystem        *system.StateSystem
	PlayerSystem       *system.PlayerSystem
	VisualEffectSystem *system.VisualEffectSystem

	recorder *event.Recorder
}

// NewGame builds a session with the player in the centre and starts wave 1.
func NewGame(rules config.Rules, library *defs.EnemyLibrary, rng *utils.PRNGService) *Game {
	if library == nil {
		library = defs.DefaultEnemyLibrary()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	ecs := entity.NewECS()
	ecs.Player = &component.Player{
		Position: component.Position{X: rules.Width / 2, Y: rules.Height / 2},
		Radius:   rules.PlayerRadius,
		Life:     rules.PlayerMaxLife,
		MaxLife:  rules.PlayerMaxLife,
	}

	eventDispatcher := event.NewDispatcher()
	recorder := &event.Recorder{}
	eventDispatcher.SubscribeAll(recorder)

	g := &Game{
		ECS:                ecs,
		Rules:              rules,
		Library:            library,
		Rng:                rng,
		EventDispatcher:    eventDispatcher,
		MovementSystem:     system.NewMovementSystem(ecs),
		CollisionSystem:    system.NewCollisionSystem(ecs, eventDispatcher),
		StateSystem:        system.NewStateSystem(ecs, eventDispatcher),
		PlayerSystem:       system.NewPlayerSystem(ecs),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		recorder:           recorder,
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, library, rng, rules, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, rules, g.SpawnSystem, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, rules, g, eventDispatcher)

	eventDispatcher.Subscribe(event.EnemyKilled, g.PlayerSystem)
	eventDispatcher.Subscribe(event.BossKilled, g.PlayerSystem)

	g.WaveSystem.StartWave()
	return g
}

// StartWave restarts spawning for the current wave number.
func (g *Game) StartWave() {
	g.WaveSystem.StartWave()
}

// AdvanceWave moves to the next wave without the get-ready pause.
func (g *Game) AdvanceWave() {
	g.WaveSystem.AdvanceWave()
}

// Update advances the simulation by one frame. deltaTime drives the spawn
// and get-ready countdowns; movement and contact damage are per frame.
func (g *Game) Update(deltaTime float64) []event.Event {
	if g.ECS.Session.GameOver {
		return g.recorder.Drain()
	}
	g.ECS.Session.Elapsed += deltaTime

	g.VisualEffectSystem.Update(deltaTime)
	g.SpawnSystem.SpawnBoss()
	g.WaveSystem.UpdateSpawning(deltaTime)
	g.MovementSystem.Update()
	g.CollisionSystem.Update()
	g.StateSystem.Update()
	g.WaveSystem.UpdateProgress(deltaTime)

	return g.recorder.Drain()
}

// Click resolves an attack at canvas coordinates (x, y).
func (g *Game) Click(x, y float64) []event.Event {
	g.CombatSystem.HandleClick(x, y)
	return g.recorder.Drain()
}

// IsGameOver reports whether the session has ended.
func (g *Game) IsGameOver() bool {
	return g.ECS.Session.GameOver
}

// Phase returns the current phase for the HUD.
func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}
