package system

import (
	"testing"

	"dragon-siege/internal/component"
	"dragon-siege/internal/config"
	"dragon-siege/internal/event"
)

func TestEnemyContactDamagesAndCountsDefeated(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	p := w.ecs.Player.Position
	id := w.spawner.SpawnEnemyOfTier(1, component.Position{X: p.X + 50, Y: p.Y}, 1)

	w.collision.Update()
	if w.ecs.Player.Life != 12 {
		t.Errorf("Expected life 12, got %d", w.ecs.Player.Life)
	}
	if _, ok := w.ecs.Enemies[id]; ok {
		t.Error("Expected enemy removed on contact")
	}
	if w.ecs.Wave.EnemiesDefeated != 1 || w.ecs.Session.Score != 0 {
		t.Errorf("Expected 1 defeated without score, got %d / %d", w.ecs.Wave.EnemiesDefeated, w.ecs.Session.Score)
	}
	if got := countEvents(w.recorder.Drain(), event.PlayerDamaged); got != 1 {
		t.Errorf("Expected 1 PlayerDamaged, got %d", got)
	}
}

func TestEnemyJustOutsideRangeNoContact(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	p := w.ecs.Player.Position
	w.spawner.SpawnEnemyOfTier(0, component.Position{X: p.X, Y: p.Y + 35.01}, 1)

	w.collision.Update()
	if w.ecs.Player.Life != 15 || w.ecs.EnemyCount() != 1 {
		t.Errorf("Expected no contact, life %d enemies %d", w.ecs.Player.Life, w.ecs.EnemyCount())
	}
}

func TestAdjacentEnemiesAllCollideInOneFrame(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	p := w.ecs.Player.Position
	for i := 0; i < 3; i++ {
		w.spawner.SpawnEnemyOfTier(0, component.Position{X: p.X + float64(i), Y: p.Y + 10}, 1)
	}

	w.collision.Update()
	if w.ecs.Player.Life != 12 || w.ecs.EnemyCount() != 0 {
		t.Errorf("Expected all three to hit, life %d enemies %d", w.ecs.Player.Life, w.ecs.EnemyCount())
	}
}

func TestBossContactDamagesEveryFrame(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	p := w.ecs.Player.Position
	w.ecs.Boss.Active = true
	w.ecs.Boss.Radius = 60
	w.ecs.Boss.Damage = 3
	w.ecs.Boss.Position = component.Position{X: p.X + 80, Y: p.Y}

	w.collision.Update()
	w.collision.Update()
	if w.ecs.Player.Life != 9 {
		t.Errorf("Expected life 9 after two frames, got %d", w.ecs.Player.Life)
	}
	if !w.ecs.Boss.Active {
		t.Error("Expected boss to survive contact")
	}
}

func TestGameOverLatchedOnce(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	w.ecs.Player.Life = -2

	w.state.Update()
	w.state.Update()
	w.state.SwitchToGameOver()

	if !w.ecs.Session.GameOver {
		t.Fatal("Expected game over")
	}
	if got := countEvents(w.recorder.Drain(), event.GameOver); got != 1 {
		t.Errorf("Expected exactly 1 GameOver event, got %d", got)
	}
	if w.state.Current() != component.GameOverPhase {
		t.Errorf("Expected game-over phase, got %v", w.state.Current())
	}
}

func TestMovementStepsTowardPlayer(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	p := w.ecs.Player.Position
	id := w.spawner.SpawnEnemyOfTier(0, component.Position{X: p.X - 100, Y: p.Y}, 2)
	w.ecs.Boss.Active = true
	w.ecs.Boss.Speed = 1.2
	w.ecs.Boss.Position = component.Position{X: p.X, Y: p.Y + 300}

	w.movement.Update()

	pos := w.ecs.Positions[id]
	if pos.X != p.X-98 || pos.Y != p.Y {
		t.Errorf("Expected enemy at (%v, %v), got %+v", p.X-98, p.Y, *pos)
	}
	if got := w.ecs.Boss.Position.Y; got < p.Y+298.8-1e-9 || got > p.Y+298.8+1e-9 {
		t.Errorf("Expected boss y %v, got %v", p.Y+298.8, got)
	}
}
