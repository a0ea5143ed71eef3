package event

import "dragon-siege/internal/types"

const (
	WaveStarted        EventType = "WaveStarted"        // Волна началась, данные: WaveData
	WaveCleared        EventType = "WaveCleared"        // Квота выбита, показываем «приготовься»
	EnemySpawned       EventType = "EnemySpawned"       // данные: EnemyData
	EnemyHit           EventType = "EnemyHit"           // Попадание без убийства
	EnemyKilled        EventType = "EnemyKilled"        // Убит кликом
	EnemyReachedPlayer EventType = "EnemyReachedPlayer" // Врезался в игрока
	PlayerDamaged      EventType = "PlayerDamaged"      // данные: DamageData
	BossSpawned        EventType = "BossSpawned"
	BossHit            EventType = "BossHit"
	BossKilled         EventType = "BossKilled"
	AttackPerformed    EventType = "AttackPerformed" // Любой принятый клик, данные: AttackData
	GameOver           EventType = "GameOver"        // Выдаётся ровно один раз за сессию
)

type WaveData struct {
	Number int
	Quota  int
}

type EnemyData struct {
	ID     types.EntityID
	DefID  string
	Points int
}

type DamageData struct {
	Amount int
	Life   int
	Source string
}

type AttackData struct {
	X, Y float64
	Hits int
}

type BossData struct {
	HP     int
	Points int
}

type GameOverData struct {
	Score int
	Wave  int
}
