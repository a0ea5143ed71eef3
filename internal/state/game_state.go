// internal/state/game_state.go
package state

import (
	"log"

	"dragon-siege/internal/app"
	"dragon-siege/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm   *StateMachine
	deps *Deps
	game *app.Game
}

func NewGameState(sm *StateMachine, deps *Deps) *GameState {
	return &GameState{
		sm:   sm,
		deps: deps,
		game: deps.NewGame(),
	}
}

// Game возвращает текущую партию
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	if g.deps.Audio != nil && !g.game.IsGameOver() {
		g.deps.Audio.StartAmbient()
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.deps.Audio != nil {
		muted := g.deps.Audio.ToggleMute()
		log.Printf("Звук: muted=%v", muted)
	}

	if g.game.IsGameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.sm.SetState(NewGameState(g.sm, g.deps))
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, g.deps))
		return
	}

	// Клик обрабатывается до тика, как событие ввода между кадрами
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleEvents(g.game.Click(float64(x), float64(y)))
	}

	g.handleEvents(g.game.Update(deltaTime))
}

func (g *GameState) handleEvents(events []event.Event) {
	if g.deps.Audio != nil {
		g.deps.Audio.HandleEvents(events)
	}
	for _, e := range events {
		if e.Type == event.GameOver {
			if data, ok := e.Data.(event.GameOverData); ok {
				log.Printf("Игра окончена: счёт %d, волна %d", data.Score, data.Wave)
			}
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.deps.Renderer.Draw(screen, snap)
	g.deps.HUD.Draw(screen, snap)
}

func (g *GameState) Exit() {}
