package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Rules holds the tunable numbers of a session. Fields absent from a JSON
// override keep their defaults; a field present with 0 is taken as 0.
// boss_wave_every set to 0 turns bosses off.
type Rules struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	PlayerRadius  float64 `json:"player_radius"`
	PlayerMaxLife int     `json:"player_max_life"`

	BaseEnemiesPerWave      int     `json:"base_enemies_per_wave"`
	EnemiesIncrementPerWave int     `json:"enemies_increment_per_wave"`
	SpawnInterval           float64 `json:"spawn_interval"`        // seconds
	WaveMessageDuration     float64 `json:"wave_message_duration"` // seconds
	MinEnemySpeed           float64 `json:"min_enemy_speed"`       // px per frame
	EnemySpeedSpread        float64 `json:"enemy_speed_spread"`

	BossWaveEvery        int     `json:"boss_wave_every"`
	BossMaxHP            int     `json:"boss_max_hp"`
	BossHPIncrement      int     `json:"boss_hp_increment"`
	BossSpeed            float64 `json:"boss_speed"`
	BossDamage           int     `json:"boss_damage"`
	BossRadius           float64 `json:"boss_radius"`
	BossKillBonus        int     `json:"boss_kill_bonus"`
	BossSpawnOffset      float64 `json:"boss_spawn_offset"`
	BossKillAdvancesWave bool    `json:"boss_kill_advances_wave"`
}

// DefaultRules returns the stock game balance.
func DefaultRules() Rules {
	return Rules{
		Width:  ScreenWidth,
		Height: ScreenHeight,

		PlayerRadius:  PlayerRadius,
		PlayerMaxLife: PlayerMaxLife,

		BaseEnemiesPerWave:      15,
		EnemiesIncrementPerWave: 3,
		SpawnInterval:           1.0,
		WaveMessageDuration:     2.0,
		MinEnemySpeed:           1.0,
		EnemySpeedSpread:        1.5,

		BossWaveEvery:   3,
		BossMaxHP:       15,
		BossHPIncrement: 3,
		BossSpeed:       1.2,
		BossDamage:      3,
		BossRadius:      60,
		BossKillBonus:   100,
		BossSpawnOffset: 200,
	}
}

// EnemiesForWave returns the spawn quota of the given wave.
func (r Rules) EnemiesForWave(wave int) int {
	return r.BaseEnemiesPerWave + (wave-1)*r.EnemiesIncrementPerWave
}

// IsBossWave reports whether a boss appears once the wave quota is cleared.
func (r Rules) IsBossWave(wave int) bool {
	return r.BossWaveEvery > 0 && wave%r.BossWaveEvery == 0
}

// LoadRules reads a JSON file over DefaultRules.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	file, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := json.Unmarshal(file, &rules); err != nil {
		return rules, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return rules, err
	}
	return rules, nil
}

// Validate rejects rule sets the simulation cannot run with.
func (r Rules) Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("invalid field size %.0fx%.0f", r.Width, r.Height)
	case r.PlayerMaxLife <= 0:
		return fmt.Errorf("player_max_life must be positive, got %d", r.PlayerMaxLife)
	case r.BaseEnemiesPerWave <= 0:
		return fmt.Errorf("base_enemies_per_wave must be positive, got %d", r.BaseEnemiesPerWave)
	case r.SpawnInterval <= 0:
		return fmt.Errorf("spawn_interval must be positive, got %v", r.SpawnInterval)
	case r.BossMaxHP <= 0:
		return fmt.Errorf("boss_max_hp must be positive, got %d", r.BossMaxHP)
	case r.BossWaveEvery < 0:
		return fmt.Errorf("boss_wave_every must not be negative, got %d", r.BossWaveEvery)
	case r.EnemiesIncrementPerWave < 0:
		return fmt.Errorf("enemies_increment_per_wave must not be negative, got %d", r.EnemiesIncrementPerWave)
	case r.MinEnemySpeed <= 0 || r.EnemySpeedSpread < 0:
		return fmt.Errorf("enemy speed must be positive, got min %v spread %v", r.MinEnemySpeed, r.EnemySpeedSpread)
	case r.BossSpeed <= 0:
		return fmt.Errorf("boss_speed must be positive, got %v", r.BossSpeed)
	case r.PlayerRadius <= 0 || r.BossRadius <= 0:
		return fmt.Errorf("radii must be positive, got player %v boss %v", r.PlayerRadius, r.BossRadius)
	}
	return nil
}
