// internal/system/wave.go
package system

import (
	"log"

	"dragon-siege/internal/config"
	"dragon-siege/internal/entity"
	"dragon-siege/internal/event"
)

type WaveSystem struct {
	ecs             *entity.ECS
	rules           config.Rules
	spawner         *SpawnSystem
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, rules config.Rules, spawner *SpawnSystem, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		rules:           rules,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave сбрасывает врагов и счётчики и запускает спавн текущей волны.
// Активного босса не трогает.
func (s *WaveSystem) StartWave() {
	wave := s.ecs.Wave
	s.ecs.ClearEnemies()
	wave.IsSpawning = true
	wave.EnemiesToSpawn = s.rules.EnemiesForWave(wave.Number)
	wave.EnemiesDefeated = 0
	wave.Spawned = 0
	wave.SpawnTimer = 0
	wave.SpawnInterval = s.rules.SpawnInterval

	log.Printf("Wave %d started: %d enemies", wave.Number, wave.EnemiesToSpawn)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: wave.Number, Quota: wave.EnemiesToSpawn},
	})
}

// AdvanceWave увеличивает номер волны и сразу запускает её.
func (s *WaveSystem) AdvanceWave() {
	s.ecs.Wave.Number++
	s.StartWave()
}

// UpdateSpawning — секундный таймер спавна: один враг за интервал,
// пока квота не заполнена.
func (s *WaveSystem) UpdateSpawning(deltaTime float64) {
	wave := s.ecs.Wave
	if !wave.IsSpawning || s.ecs.Session.GameOver {
		return
	}
	wave.SpawnTimer += deltaTime
	for wave.SpawnTimer >= wave.SpawnInterval && wave.Spawned < wave.EnemiesToSpawn {
		wave.SpawnTimer -= wave.SpawnInterval
		s.spawner.SpawnEnemy()
		wave.Spawned++
	}
	if wave.Spawned >= wave.EnemiesToSpawn {
		wave.IsSpawning = false
		wave.SpawnTimer = 0
	}
}

// UpdateProgress ведёт переход между волнами: по выбитой квоте
// показывает «приготовься», по истечении паузы запускает следующую волну.
func (s *WaveSystem) UpdateProgress(deltaTime float64) {
	wave := s.ecs.Wave
	if s.ecs.Session.GameOver {
		return
	}

	if wave.ShowWaveMessage {
		wave.MessageTimer -= deltaTime
		if wave.MessageTimer <= 0 {
			wave.ShowWaveMessage = false
			wave.MessageTimer = 0
			s.StartWave()
		}
		return
	}

	if !wave.QuotaCleared() || s.ecs.Boss.Active || s.spawner.CanSpawnBoss() {
		return
	}

	wave.Number++
	wave.ShowWaveMessage = true
	wave.MessageTimer = s.rules.WaveMessageDuration
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveCleared,
		Data: event.WaveData{Number: wave.Number, Quota: s.rules.EnemiesForWave(wave.Number)},
	})
}
