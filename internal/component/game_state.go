// internal/component/game_state.go
package component

// Session — счёт и флаг конца игры
type Session struct {
	Score    int
	GameOver bool
	Elapsed  float64 // Виртуальное время сессии в секундах
}

// Phase — фаза игры для интерфейса
type Phase int

const (
	WavePhase Phase = iota
	GetReadyPhase
	BossPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case WavePhase:
		return "wave"
	case GetReadyPhase:
		return "get-ready"
	case BossPhase:
		return "boss"
	case GameOverPhase:
		return "game-over"
	}
	return "unknown"
}
