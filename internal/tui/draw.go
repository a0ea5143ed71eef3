package tui

import (
	"fmt"
	"image/color"

	"dragon-siege/internal/app"
	"dragon-siege/internal/config"

	"github.com/gdamore/tcell/v2"
)

const (
	playerGlyph = '@'
	bossGlyph   = '#'
	rippleGlyph = '*'
	barWidth    = 20
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (h *Host) draw() {
	snap := h.game.Snapshot()
	bg := tcell.StyleDefault.Background(rgb(config.BackgroundColor))

	h.screen.SetStyle(bg)
	h.screen.Clear()

	if snap.ArenaVisible() {
		h.drawArena(snap, bg)
	}

	light := bg.Foreground(rgb(config.TextLightColor))
	switch {
	case snap.GameOver:
		h.drawHUD(snap, bg)
		h.drawCentered(-1, config.GameOverTitle, light.Bold(true))
		h.drawCentered(1, fmt.Sprintf(config.GameOverScoreFormat, snap.Score), light)
		h.drawCentered(3, "r: reiniciar  q: salir", light)
	case snap.ShowWaveMessage:
		h.drawCentered(-1, config.WaveMessageTitle, light.Bold(true))
		h.drawCentered(1, config.WaveMessageSubtitle, light)
	default:
		h.drawHUD(snap, bg)
		if h.paused {
			h.drawCentered(0, config.PauseTitle, light.Bold(true))
		}
	}

	h.screen.Show()
}

func (h *Host) drawArena(snap app.Snapshot, bg tcell.Style) {
	flash := bg.Foreground(rgb(config.FlashColor)).Bold(true)

	for _, cell := range h.viewport.DiskCells(snap.Player.X, snap.Player.Y, snap.Player.Radius) {
		h.screen.SetContent(cell[0], cell[1], playerGlyph, nil, bg.Foreground(rgb(config.PlayerColor)))
	}
	for _, enemy := range snap.Enemies {
		style := bg.Foreground(rgb(enemy.Visual.Color))
		if enemy.Flashing {
			style = flash
		}
		glyph := enemy.Visual.Glyph
		if glyph == 0 {
			glyph = 'd'
		}
		col, row := h.viewport.ToCell(enemy.Position.X, enemy.Position.Y)
		h.screen.SetContent(col, row, glyph, nil, style)
	}
	if snap.Boss.Active {
		style := bg.Foreground(rgb(config.BossColor))
		if snap.Boss.Flashing {
			style = flash
		}
		for _, cell := range h.viewport.DiskCells(snap.Boss.Position.X, snap.Boss.Position.Y, snap.Boss.Radius) {
			h.screen.SetContent(cell[0], cell[1], bossGlyph, nil, style)
		}
		col, row := h.viewport.ToCell(snap.Boss.Position.X, snap.Boss.Position.Y-snap.Boss.Radius)
		h.drawText(col-3, row-1, fmt.Sprintf("%d/%d", snap.Boss.Health.Value, snap.Boss.Health.Max), bg.Foreground(rgb(config.BossStrokeColor)))
	}
	for _, effect := range snap.ClickEffects {
		col, row := h.viewport.ToCell(effect.Position.X, effect.Position.Y)
		h.screen.SetContent(col, row, rippleGlyph, nil, bg.Foreground(rgb(config.ClickEffectColor)))
	}
}

func (h *Host) drawHUD(snap app.Snapshot, bg tcell.Style) {
	filled := 0
	if snap.Player.MaxLife > 0 && snap.Player.Life > 0 {
		filled = barWidth * snap.Player.Life / snap.Player.MaxLife
	}
	fill := bg.Background(rgb(config.HealthFillColor))
	back := bg.Background(rgb(config.HealthBackColor))
	for i := 0; i < barWidth; i++ {
		style := back
		if i < filled {
			style = fill
		}
		h.screen.SetContent(1+i, 0, ' ', nil, style)
	}
	h.drawText(1+barWidth, 0, Status(snap), bg.Foreground(rgb(config.TextLightColor)))
}

func (h *Host) drawText(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		if col >= 0 && col < h.viewport.Cols && row >= 0 && row < h.viewport.Rows {
			h.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

// drawCentered draws s around the screen centre, offset by dy rows.
func (h *Host) drawCentered(dy int, s string, style tcell.Style) {
	col := (h.viewport.Cols - len([]rune(s))) / 2
	h.drawText(col, h.viewport.Rows/2+dy, s, style)
}
