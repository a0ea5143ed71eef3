package app

import (
	"dragon-siege/internal/component"
	"dragon-siege/internal/types"
)

// EnemyView is a read-only copy of one enemy for renderers.
type EnemyView struct {
	ID       types.EntityID
	DefID    string
	Tier     int
	Position component.Position
	Size     float64
	Health   component.Health
	Visual   component.Renderable
	Flashing bool
}

// BossView is a read-only copy of the boss.
type BossView struct {
	Active   bool
	Position component.Position
	Radius   float64
	Health   component.Health
	Flashing bool
}

// Snapshot is everything a renderer may read. It shares no pointers with
// the simulation.
type Snapshot struct {
	Width, Height   float64
	Player          component.Player
	Enemies         []EnemyView
	Boss            BossView
	ClickEffects    []component.ClickEffect
	Score           int
	Wave            int
	ShowWaveMessage bool
	GameOver        bool
	Phase           component.Phase
}

// ArenaVisible reports whether player, enemies and boss are drawn. The
// get-ready message hides them and shows only the background.
func (s Snapshot) ArenaVisible() bool {
	return !s.ShowWaveMessage
}

// Snapshot copies the current state for drawing.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	snap := Snapshot{
		Width:           g.Rules.Width,
		Height:          g.Rules.Height,
		Player:          *ecs.Player,
		Score:           ecs.Session.Score,
		Wave:            ecs.Wave.Number,
		ShowWaveMessage: ecs.Wave.ShowWaveMessage,
		GameOver:        ecs.Session.GameOver,
		Phase:           g.StateSystem.Current(),
		Boss: BossView{
			Active:   ecs.Boss.Active,
			Position: ecs.Boss.Position,
			Radius:   ecs.Boss.Radius,
			Health:   ecs.Boss.Health,
			Flashing: ecs.Boss.Flash.Timer > 0,
		},
	}
	ids := ecs.EnemyIDs()
	snap.Enemies = make([]EnemyView, 0, len(ids))
	for _, id := range ids {
		enemy := ecs.Enemies[id]
		view := EnemyView{
			ID:    id,
			DefID: enemy.DefID,
			Tier:  enemy.Tier,
			Size:  enemy.Size,
		}
		if health, ok := ecs.Healths[id]; ok {
			view.Health = *health
		}
		if pos, ok := ecs.Positions[id]; ok {
			view.Position = *pos
		}
		if r, ok := ecs.Renderables[id]; ok {
			view.Visual = *r
		}
		_, view.Flashing = ecs.DamageFlashes[id]
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, effect := range ecs.ClickEffects {
		snap.ClickEffects = append(snap.ClickEffects, *effect)
	}
	return snap
}
