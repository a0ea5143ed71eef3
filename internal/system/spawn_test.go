package system

import (
	"testing"

	"dragon-siege/internal/component"
	"dragon-siege/internal/config"
	"dragon-siege/internal/event"
)

func TestSpawnEnemyOnEdgeWithSpeedRange(t *testing.T) {
	rules := config.DefaultRules()
	w := newTestWorld(t, rules, nil)

	for i := 0; i < 500; i++ {
		id := w.spawner.SpawnEnemy()
		pos := w.ecs.Positions[id]
		onEdge := pos.X == 0 || pos.X == rules.Width || pos.Y == 0 || pos.Y == rules.Height
		if !onEdge {
			t.Fatalf("Enemy %d not on an edge: %+v", id, *pos)
		}
		speed := w.ecs.Velocities[id].Speed
		if speed < 1 || speed >= 2.5 {
			t.Fatalf("Enemy %d speed %v outside [1, 2.5)", id, speed)
		}
		enemy := w.ecs.Enemies[id]
		def := w.spawner.library.Tiers[enemy.Tier]
		if enemy.DefID != def.ID || enemy.Size != def.Size || w.ecs.Healths[id].Value != def.Health {
			t.Fatalf("Enemy %d does not match its tier tag: %+v", id, *enemy)
		}
	}

	if got := countEvents(w.recorder.Drain(), event.EnemySpawned); got != 500 {
		t.Errorf("Expected 500 EnemySpawned events, got %d", got)
	}
}

func TestSpawnEnemyOfTierOutOfRangeFallsBack(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	id := w.spawner.SpawnEnemyOfTier(99, component.Position{X: 1, Y: 1}, 1)
	if w.ecs.Enemies[id].Tier != 0 {
		t.Errorf("Expected fallback to tier 0, got %d", w.ecs.Enemies[id].Tier)
	}
}

func TestSpawnedEnemyCarriesTierVisuals(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	for tier, def := range w.spawner.library.Tiers {
		id := w.spawner.SpawnEnemyOfTier(tier, component.Position{X: 1, Y: 1}, 1)
		r := w.ecs.Renderables[id]
		if r.Color != def.Visuals.Color || r.HasStroke != def.Visuals.Stroke {
			t.Errorf("Tier %s: expected color %v stroke %v, got %+v", def.ID, def.Visuals.Color, def.Visuals.Stroke, *r)
		}
	}
	if w.ecs.Renderables[w.spawner.SpawnEnemyOfTier(0, component.Position{}, 1)].HasStroke {
		t.Error("Expected no stroke on the small tier")
	}
}

func TestSpawnEnemySkippedAfterGameOver(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	w.ecs.Session.GameOver = true
	if id := w.spawner.SpawnEnemy(); id != 0 {
		t.Errorf("Expected no spawn after game over, got id %d", id)
	}
	if w.ecs.EnemyCount() != 0 {
		t.Error("Expected no enemies")
	}
}

func TestBossSpawnCondition(t *testing.T) {
	tests := []struct {
		name     string
		wave     int
		active   bool
		defeated int
		message  bool
		want     bool
	}{
		{"wave 3 cleared", 3, false, 21, false, true},
		{"wave 6 over-cleared", 6, false, 40, false, true},
		{"wave 3 not cleared", 3, false, 20, false, false},
		{"wave 2 cleared", 2, false, 18, false, false},
		{"boss already active", 3, true, 21, false, false},
		{"get-ready window", 3, false, 21, true, false},
	}
	for _, tt := range tests {
		w := newTestWorld(t, config.DefaultRules(), nil)
		w.ecs.Wave.Number = tt.wave
		w.ecs.Wave.EnemiesToSpawn = w.rules.EnemiesForWave(tt.wave)
		w.ecs.Wave.EnemiesDefeated = tt.defeated
		w.ecs.Wave.ShowWaveMessage = tt.message
		w.ecs.Boss.Active = tt.active

		if got := w.spawner.CanSpawnBoss(); got != tt.want {
			t.Errorf("%s: CanSpawnBoss expected %v, got %v", tt.name, tt.want, got)
		}
		spawned := w.spawner.SpawnBoss()
		if spawned != tt.want {
			t.Errorf("%s: SpawnBoss expected %v, got %v", tt.name, tt.want, spawned)
		}
	}
}

func TestSpawnBossOffScreen(t *testing.T) {
	rules := config.DefaultRules()
	for seed := 0; seed < 20; seed++ {
		w := newTestWorld(t, rules, nil)
		w.ecs.Wave.Number = 3
		w.ecs.Wave.EnemiesToSpawn = 21
		w.ecs.Wave.EnemiesDefeated = 21
		for i := 0; i < seed; i++ {
			w.spawner.rng.Float64()
		}
		if !w.spawner.SpawnBoss() {
			t.Fatal("Expected boss to spawn")
		}
		boss := w.ecs.Boss
		pos := boss.Position
		off := pos.X == -200 || pos.X == rules.Width+200 || pos.Y == -200 || pos.Y == rules.Height+200
		if !off {
			t.Errorf("Expected boss 200px beyond an edge, got %+v", pos)
		}
		if boss.Health.Value != 15 || boss.Health.Max != 15 || boss.Speed != 1.2 || boss.Damage != 3 || boss.Radius != 60 {
			t.Errorf("Unexpected boss stats: %+v", *boss)
		}
	}
}

func TestBossHPIncrementIsInert(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	w.ecs.Wave.Number = 3
	w.ecs.Wave.EnemiesToSpawn = 21
	for i := 0; i < 3; i++ {
		w.ecs.Wave.EnemiesDefeated = 21
		w.ecs.Boss.Active = false
		if !w.spawner.SpawnBoss() {
			t.Fatalf("Expected boss spawn #%d", i+1)
		}
		if w.ecs.Boss.Health.Max != 15 {
			t.Errorf("Appearance %d: expected max HP 15, got %d", i+1, w.ecs.Boss.Health.Max)
		}
	}
	if w.ecs.Boss.Appearances != 3 {
		t.Errorf("Expected 3 appearances, got %d", w.ecs.Boss.Appearances)
	}
}
