package render

import (
	"dragon-siege/internal/app"
	"dragon-siege/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	enemyBarGap   = 6
	bossBarHeight = 8
)

// Renderer draws the arena: background, player, enemies, boss, click
// ripples. HUD and overlays are drawn by the ui package on top.
type Renderer struct {
	palette *Palette
}

func NewRenderer(palette *Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Draw renders one snapshot to the screen.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(r.palette.BackgroundColor)
	if !snap.ArenaVisible() {
		return
	}

	r.drawPlayer(screen, snap)
	for _, enemy := range snap.Enemies {
		r.drawEnemy(screen, enemy)
	}
	if snap.Boss.Active {
		r.drawBoss(screen, snap.Boss)
	}
	for _, effect := range snap.ClickEffects {
		r.drawClickEffect(screen, effect.Position.X, effect.Position.Y, effect.Radius(), effect.CurrentTimer/effect.Duration)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, snap app.Snapshot) {
	p := snap.Player
	x, y, radius := float32(p.X), float32(p.Y), float32(p.Radius)
	vector.DrawFilledCircle(screen, x, y, radius, r.palette.PlayerColor, true)
	vector.StrokeCircle(screen, x, y, radius, r.palette.StrokeWidth, r.palette.PlayerStrokeColor, true)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, enemy app.EnemyView) {
	x, y, radius := float32(enemy.Position.X), float32(enemy.Position.Y), float32(enemy.Size)

	fill := enemy.Visual.Color
	if enemy.Flashing {
		fill = r.palette.FlashColor
	}
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	if enemy.Visual.HasStroke {
		vector.StrokeCircle(screen, x, y, radius, r.palette.StrokeWidth, DarkenColor(enemy.Visual.Color), true)
	}

	// Полоска здоровья только у многоударных
	if enemy.Health.Max > 1 {
		width := radius * 2
		r.drawBar(screen, x-radius, y-radius-enemyBarGap-config.EnemyHPBarHeight, width, config.EnemyHPBarHeight, enemy.Health.Fraction())
	}
}

func (r *Renderer) drawBoss(screen *ebiten.Image, boss app.BossView) {
	x, y, radius := float32(boss.Position.X), float32(boss.Position.Y), float32(boss.Radius)

	fill := r.palette.BossColor
	if boss.Flashing {
		fill = r.palette.FlashColor
	}
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	vector.StrokeCircle(screen, x, y, radius, r.palette.StrokeWidth*2, r.palette.BossStrokeColor, true)

	r.drawBar(screen, x-config.BossHPBarWidth/2, y-radius-enemyBarGap-bossBarHeight, config.BossHPBarWidth, bossBarHeight, boss.Health.Fraction())
}

func (r *Renderer) drawBar(screen *ebiten.Image, x, y, width, height float32, fraction float64) {
	vector.DrawFilledRect(screen, x, y, width, height, r.palette.EnemyHPBackColor, false)
	if fraction > 0 {
		vector.DrawFilledRect(screen, x, y, width*float32(fraction), height, r.palette.EnemyHPFillColor, false)
	}
}

func (r *Renderer) drawClickEffect(screen *ebiten.Image, x, y, radius, progress float64) {
	if radius <= 0 {
		return
	}
	clr := Fade(r.palette.ClickEffectColor, 1-progress)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), r.palette.StrokeWidth, clr, true)
}
