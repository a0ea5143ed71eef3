// internal/ui/health_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HealthBar отображает жизнь игрока: красная подложка, зелёная заливка и белая рамка.
type HealthBar struct {
	X, Y          float32
	Width, Height float32
	BackColor     color.RGBA
	FillColor     color.RGBA
	StrokeColor   color.RGBA
}

// NewHealthBar создает новый индикатор здоровья.
func NewHealthBar(x, y, width, height float32, back, fill, stroke color.RGBA) *HealthBar {
	return &HealthBar{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BackColor:   back,
		FillColor:   fill,
		StrokeColor: stroke,
	}
}

// FillWidth возвращает ширину зелёной части для life из maxLife.
func (h *HealthBar) FillWidth(life, maxLife int) float32 {
	if maxLife <= 0 || life <= 0 {
		return 0
	}
	if life > maxLife {
		life = maxLife
	}
	return h.Width * float32(life) / float32(maxLife)
}

// Draw рисует индикатор.
func (h *HealthBar) Draw(screen *ebiten.Image, life, maxLife int) {
	vector.DrawFilledRect(screen, h.X, h.Y, h.Width, h.Height, h.BackColor, false)
	if w := h.FillWidth(life, maxLife); w > 0 {
		vector.DrawFilledRect(screen, h.X, h.Y, w, h.Height, h.FillColor, false)
	}
	vector.StrokeRect(screen, h.X, h.Y, h.Width, h.Height, 2, h.StrokeColor, false)
}
