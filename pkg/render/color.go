// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors used to draw the arena.
type Palette struct {
	BackgroundColor   color.RGBA
	PlayerColor       color.RGBA
	PlayerStrokeColor color.RGBA
	BossColor         color.RGBA
	BossStrokeColor   color.RGBA
	FlashColor        color.RGBA
	EnemyHPBackColor  color.RGBA
	EnemyHPFillColor  color.RGBA
	ClickEffectColor  color.RGBA
	StrokeWidth       float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade scales the alpha channel. Colors are premultiplied, so every
// channel is scaled.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
