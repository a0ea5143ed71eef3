package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts are the three faces used by the HUD and overlays.
type Fonts struct {
	HUD   font.Face
	Title font.Face
	Sub   font.Face
}

// LoadFonts builds faces from the bundled Go Regular font.
func LoadFonts(hudSize, titleSize, subSize float64) (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	newFace := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	fonts := &Fonts{}
	if fonts.HUD, err = newFace(hudSize); err != nil {
		return nil, fmt.Errorf("hud face: %w", err)
	}
	if fonts.Title, err = newFace(titleSize); err != nil {
		return nil, fmt.Errorf("title face: %w", err)
	}
	if fonts.Sub, err = newFace(subSize); err != nil {
		return nil, fmt.Errorf("sub face: %w", err)
	}
	return fonts, nil
}

// DrawText draws str with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, face font.Face, str string, x, y int, clr color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(dst, str, face, x, y+ascent, clr)
}

// DrawCenteredText draws str centered on (cx, cy).
func DrawCenteredText(dst *ebiten.Image, face font.Face, str string, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, str)
	x := cx - bounds.Dx()/2 - bounds.Min.X
	y := cy - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(dst, str, face, x, y, clr)
}
