// internal/interfaces/game_context.go
package interfaces

// GameContext — методы игры, которые нужны системам без прямой зависимости
// от пакета app.
type GameContext interface {
	StartWave()
	AdvanceWave()
}
