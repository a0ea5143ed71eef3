// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Glyph     rune // Символ для терминального режима
	HasStroke bool
}
