// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"dragon-siege/internal/app"
	"dragon-siege/internal/config"
	"dragon-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Отступы текста под полоской здоровья
const (
	hudLineSpacing = 30
	hudTextOffsetY = 20
)

// HUD рисует полоску здоровья, счёт и номер волны поверх арены.
type HUD struct {
	fonts     *render.Fonts
	healthBar *HealthBar
	textColor color.RGBA
}

func NewHUD(fonts *render.Fonts) *HUD {
	return &HUD{
		fonts: fonts,
		healthBar: NewHealthBar(
			config.HealthBarX, config.HealthBarY,
			config.HealthBarWidth, config.HealthBarHeight,
			config.HealthBackColor, config.HealthFillColor, config.HealthStrokeColor,
		),
		textColor: config.TextLightColor,
	}
}

// Lines возвращает строки счёта и волны.
func Lines(snap app.Snapshot) []string {
	return []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Wave: %d", snap.Wave),
	}
}

// Draw рисует HUD и нужный оверлей. Во время сообщения о волне виден только оверлей.
func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	switch {
	case snap.GameOver:
		h.drawElements(screen, snap)
		DrawGameOver(screen, h.fonts, snap.Score)
	case snap.ShowWaveMessage:
		DrawWaveMessage(screen, h.fonts)
	default:
		h.drawElements(screen, snap)
	}
}

func (h *HUD) drawElements(screen *ebiten.Image, snap app.Snapshot) {
	h.healthBar.Draw(screen, snap.Player.Life, snap.Player.MaxLife)

	y := int(h.healthBar.Y+h.healthBar.Height) + hudTextOffsetY - h.fonts.HUD.Metrics().Ascent.Ceil()
	for i, line := range Lines(snap) {
		render.DrawText(screen, h.fonts.HUD, line, int(h.healthBar.X), y+i*hudLineSpacing, h.textColor)
	}
}
