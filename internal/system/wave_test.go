package system

import (
	"testing"

	"dragon-siege/internal/config"
	"dragon-siege/internal/event"
)

func TestStartWaveQuota(t *testing.T) {
	for wave := 1; wave <= 5; wave++ {
		w := newTestWorld(t, config.DefaultRules(), nil)
		w.ecs.Wave.Number = wave
		w.waves.StartWave()

		want := 15 + (wave-1)*3
		if w.ecs.Wave.EnemiesToSpawn != want {
			t.Errorf("Wave %d: expected quota %d, got %d", wave, want, w.ecs.Wave.EnemiesToSpawn)
		}

		for i := 0; i < want+10; i++ {
			w.waves.UpdateSpawning(1.0)
		}
		events := w.recorder.Drain()
		if got := countEvents(events, event.EnemySpawned); got != want {
			t.Errorf("Wave %d: expected %d spawns, got %d", wave, want, got)
		}
		if w.ecs.EnemyCount() != want {
			t.Errorf("Wave %d: expected %d live enemies, got %d", wave, want, w.ecs.EnemyCount())
		}
		if w.ecs.Wave.IsSpawning {
			t.Errorf("Wave %d: expected spawning to stop after the quota", wave)
		}
	}
}

func TestSpawnIntervalTiming(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	w.waves.StartWave()

	w.waves.UpdateSpawning(0.5)
	if w.ecs.EnemyCount() != 0 {
		t.Fatalf("Expected no spawn before the first interval, got %d", w.ecs.EnemyCount())
	}
	w.waves.UpdateSpawning(0.5)
	if w.ecs.EnemyCount() != 1 {
		t.Fatalf("Expected first spawn after 1s, got %d", w.ecs.EnemyCount())
	}
	// Большой шаг не теряет тики таймера
	w.waves.UpdateSpawning(3.0)
	if w.ecs.EnemyCount() != 4 {
		t.Errorf("Expected 4 enemies after 4s, got %d", w.ecs.EnemyCount())
	}
}

func TestStartWaveClearsEnemiesButKeepsBoss(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	w.waves.StartWave()
	w.waves.UpdateSpawning(3.0)
	w.ecs.Boss.Active = true
	w.ecs.Wave.EnemiesDefeated = 2

	w.waves.StartWave()
	if w.ecs.EnemyCount() != 0 {
		t.Errorf("Expected enemy list cleared, got %d", w.ecs.EnemyCount())
	}
	if w.ecs.Wave.EnemiesDefeated != 0 || w.ecs.Wave.Spawned != 0 {
		t.Errorf("Expected counters reset, got %+v", *w.ecs.Wave)
	}
	if !w.ecs.Boss.Active {
		t.Error("Expected StartWave to leave the boss alone")
	}
}

func TestWaveAdvanceWithGetReadyDelay(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	w.waves.StartWave()
	w.ecs.Wave.EnemiesDefeated = 15
	w.recorder.Drain()

	w.waves.UpdateProgress(0.25)
	wave := w.ecs.Wave
	if wave.Number != 2 || !wave.ShowWaveMessage {
		t.Fatalf("Expected wave 2 with get-ready message, got %+v", *wave)
	}
	if got := countEvents(w.recorder.Drain(), event.WaveCleared); got != 1 {
		t.Errorf("Expected 1 WaveCleared event, got %d", got)
	}

	for i := 0; i < 7; i++ {
		w.waves.UpdateProgress(0.25)
	}
	if !wave.ShowWaveMessage || wave.EnemiesToSpawn != 15 {
		t.Fatalf("Expected message still showing after 1.75s, got %+v", *wave)
	}

	w.waves.UpdateProgress(0.25)
	if wave.ShowWaveMessage {
		t.Error("Expected message hidden after 2s")
	}
	if wave.EnemiesToSpawn != 18 || !wave.IsSpawning || wave.EnemiesDefeated != 0 {
		t.Errorf("Expected wave 2 started with quota 18, got %+v", *wave)
	}
	if got := countEvents(w.recorder.Drain(), event.WaveStarted); got != 1 {
		t.Errorf("Expected 1 WaveStarted event, got %d", got)
	}
}

func TestWaveAdvanceBlockedByBoss(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	w.ecs.Wave.Number = 3
	w.waves.StartWave()
	w.ecs.Wave.EnemiesDefeated = w.ecs.Wave.EnemiesToSpawn

	// Босс ещё не заспавнен, но положен
	w.waves.UpdateProgress(0.1)
	if w.ecs.Wave.Number != 3 || w.ecs.Wave.ShowWaveMessage {
		t.Fatalf("Expected no advance while boss pending, got %+v", *w.ecs.Wave)
	}

	w.spawner.SpawnBoss()
	w.waves.UpdateProgress(0.1)
	if w.ecs.Wave.Number != 3 || w.ecs.Wave.ShowWaveMessage {
		t.Fatalf("Expected no advance while boss active, got %+v", *w.ecs.Wave)
	}
}

func TestWaveSystemIdleAfterGameOver(t *testing.T) {
	w := newTestWorld(t, config.DefaultRules(), nil)
	w.waves.StartWave()
	w.ecs.Session.GameOver = true
	w.ecs.Wave.EnemiesDefeated = 15

	w.waves.UpdateSpawning(5)
	w.waves.UpdateProgress(5)
	if w.ecs.EnemyCount() != 0 {
		t.Errorf("Expected no spawns after game over, got %d", w.ecs.EnemyCount())
	}
	if w.ecs.Wave.Number != 1 || w.ecs.Wave.ShowWaveMessage {
		t.Errorf("Expected no wave advance after game over, got %+v", *w.ecs.Wave)
	}
}
