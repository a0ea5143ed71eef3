// internal/state/pause_state.go
package state

import (
	"dragon-siege/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает партию: симуляция не тикает, арена рисуется под оверлеем
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	deps          *Deps
}

func NewPauseState(sm *StateMachine, prevState State, deps *Deps) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		deps:          deps,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.deps.Audio != nil {
		s.deps.Audio.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	ui.DrawPause(screen, s.deps.Fonts)
}

func (s *PauseState) Exit() {}
