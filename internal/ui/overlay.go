// internal/ui/overlay.go
package ui

import (
	"fmt"
	"image/color"

	"dragon-siege/internal/config"
	"dragon-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func drawShade(screen *ebiten.Image, clr color.RGBA) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), clr, false)
}

func center(screen *ebiten.Image) (int, int) {
	return screen.Bounds().Dx() / 2, screen.Bounds().Dy() / 2
}

// DrawWaveMessage рисует затемнение и надпись между волнами.
func DrawWaveMessage(screen *ebiten.Image, fonts *render.Fonts) {
	drawShade(screen, config.WaveOverlayColor)
	cx, cy := center(screen)
	render.DrawCenteredText(screen, fonts.Title, config.WaveMessageTitle, cx, cy-20, config.TextLightColor)
	render.DrawCenteredText(screen, fonts.Sub, config.WaveMessageSubtitle, cx, cy+30, config.TextLightColor)
}

// DrawGameOver рисует экран проигрыша с итоговым счётом.
func DrawGameOver(screen *ebiten.Image, fonts *render.Fonts, score int) {
	drawShade(screen, config.LossOverlayColor)
	cx, cy := center(screen)
	render.DrawCenteredText(screen, fonts.Title, config.GameOverTitle, cx, cy-20, config.TextLightColor)
	render.DrawCenteredText(screen, fonts.Sub, fmt.Sprintf(config.GameOverScoreFormat, score), cx, cy+30, config.TextLightColor)
	render.DrawCenteredText(screen, fonts.HUD, config.GameOverHint, cx, cy+80, config.TextLightColor)
}

// DrawPause рисует оверлей паузы.
func DrawPause(screen *ebiten.Image, fonts *render.Fonts) {
	drawShade(screen, config.PauseOverlayColor)
	cx, cy := center(screen)
	render.DrawCenteredText(screen, fonts.Title, config.PauseTitle, cx, cy, config.TextLightColor)
}

// DrawMenu рисует стартовый экран.
func DrawMenu(screen *ebiten.Image, fonts *render.Fonts) {
	screen.Fill(config.BackgroundColor)
	cx, cy := center(screen)
	render.DrawCenteredText(screen, fonts.Title, config.MenuTitle, cx, cy-20, config.PlayerStrokeColor)
	render.DrawCenteredText(screen, fonts.HUD, config.MenuHint, cx, cy+30, config.TextLightColor)
}
