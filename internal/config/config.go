// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Dragon Siege"
	TPS          = 60
	MaxDeltaTime = 0.06

	PlayerRadius  = 20.0
	PlayerMaxLife = 15

	HealthBarX      = 10
	HealthBarY      = 10
	HealthBarWidth  = 200
	HealthBarHeight = 20
	HUDFontSize     = 20
	TitleFontSize   = 40
	SubFontSize     = 30

	EnemyHPBarHeight = 4
	BossHPBarWidth   = 120
)

var (
	BackgroundColor   = color.RGBA{18, 14, 28, 255}
	PlayerColor       = color.RGBA{90, 140, 255, 255}
	PlayerStrokeColor = color.RGBA{220, 230, 255, 255}
	BossColor         = color.RGBA{150, 20, 40, 255}
	BossStrokeColor   = color.RGBA{255, 200, 0, 255}
	HealthBackColor   = color.RGBA{255, 0, 0, 255}
	HealthFillColor   = color.RGBA{0, 128, 0, 255}
	HealthStrokeColor = color.RGBA{255, 255, 255, 255}
	TextLightColor    = color.RGBA{255, 255, 255, 255}
	WaveOverlayColor  = color.RGBA{0, 0, 0, 128}
	LossOverlayColor  = color.RGBA{0, 0, 0, 178}
	PauseOverlayColor = color.RGBA{0, 0, 0, 96}
	EnemyHPBackColor  = color.RGBA{60, 0, 0, 200}
	EnemyHPFillColor  = color.RGBA{255, 80, 80, 255}
	FlashColor        = color.RGBA{255, 255, 255, 255}
	ClickEffectColor  = color.RGBA{255, 240, 160, 255}
	StrokeWidth       = 2.0
)

const (
	DamageFlashDuration = 0.12 // секунды
	ClickEffectDuration = 0.25
	ClickEffectRadius   = 18.0
)
