package component

// Wave хранит состояние текущей волны.
// Таймеры считаются в секундах виртуального времени.
type Wave struct {
	Number          int
	EnemiesToSpawn  int // Квота волны
	Spawned         int // Сколько уже заспавнено
	EnemiesDefeated int // Убито кликом или погибло при столкновении
	IsSpawning      bool
	SpawnTimer      float64
	SpawnInterval   float64

	ShowWaveMessage bool // «Приготовься» между волнами
	MessageTimer    float64
}

// QuotaCleared сообщает, что все враги волны побеждены.
func (w *Wave) QuotaCleared() bool {
	return w.EnemiesDefeated >= w.EnemiesToSpawn
}
