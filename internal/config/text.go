// internal/config/text.go
package config

// Надписи оверлеев, общие для окна и терминала
const (
	WaveMessageTitle    = "¡Prepárate!"
	WaveMessageSubtitle = "Siguiente ronda"
	GameOverTitle       = "PERDISTE"
	GameOverScoreFormat = "Puntuación: %d"
	GameOverHint        = "R: reiniciar"
	PauseTitle          = "PAUSA"
	MenuTitle           = WindowTitle
	MenuHint            = "Click to start"
)
