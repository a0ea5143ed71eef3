// internal/state/menu_state.go
package state

import (
	"dragon-siege/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран, ждёт клика
type MenuState struct {
	sm   *StateMachine
	deps *Deps
}

func NewMenuState(sm *StateMachine, deps *Deps) *MenuState {
	return &MenuState{sm: sm, deps: deps}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	ui.DrawMenu(screen, m.deps.Fonts)
}

func (m *MenuState) Exit() {}
