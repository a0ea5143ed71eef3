package tui

import (
	"testing"

	"dragon-siege/internal/app"
	"dragon-siege/internal/config"

	"github.com/gdamore/tcell/v2"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	setup, err := app.LoadSetup(app.Options{Seed: 42})
	if err != nil {
		t.Fatal(err)
	}
	return NewHost(screen, setup, nil)
}

func TestHostClickAttacksAtWorldPoint(t *testing.T) {
	h := newTestHost(t)

	// Нажатие, затем движение с зажатой кнопкой: атака только одна
	h.handleInput(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	h.handleInput(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
	h.handleInput(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))

	if len(h.game.ECS.ClickEffects) != 1 {
		t.Fatalf("Expected exactly one click effect, got %d", len(h.game.ECS.ClickEffects))
	}
	for _, effect := range h.game.ECS.ClickEffects {
		wantX, wantY := h.viewport.ToWorld(10, 5)
		if effect.Position.X != wantX || effect.Position.Y != wantY {
			t.Errorf("Expected click at (%v, %v), got %+v", wantX, wantY, effect.Position)
		}
	}
}

func TestHostPauseAndQuit(t *testing.T) {
	h := newTestHost(t)

	h.handleKey(tcell.KeyRune, 'p')
	if !h.paused {
		t.Fatal("Expected pause after 'p'")
	}
	h.handleInput(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if len(h.game.ECS.ClickEffects) != 0 {
		t.Error("Expected clicks to be ignored while paused")
	}

	if h.handleKey(tcell.KeyRune, 'q') {
		t.Error("Expected 'q' to quit")
	}
	if h.handleKey(tcell.KeyEscape, 0) {
		t.Error("Expected Escape to quit")
	}
}

func TestHostRestartAfterGameOver(t *testing.T) {
	h := newTestHost(t)
	first := h.game

	h.handleKey(tcell.KeyRune, 'r')
	if h.game != first {
		t.Fatal("Expected 'r' to be ignored while the session is running")
	}

	first.ECS.Player.Life = 0
	h.handleEvents(first.Update(config.MaxDeltaTime))
	if !first.IsGameOver() {
		t.Fatal("Expected game over with zero life")
	}

	h.handleKey(tcell.KeyRune, 'r')
	if h.game == first {
		t.Error("Expected a fresh session after 'r'")
	}
	if h.game.ECS.Player.Life != h.game.Rules.PlayerMaxLife {
		t.Errorf("Expected full life, got %d", h.game.ECS.Player.Life)
	}
}

func TestHostDrawSmoke(t *testing.T) {
	h := newTestHost(t)
	h.draw()
	h.paused = true
	h.draw()
	h.game.ECS.Wave.ShowWaveMessage = true
	h.draw()
}

func TestStatus(t *testing.T) {
	snap := app.Snapshot{Score: 30, Wave: 2}
	snap.Player.Life, snap.Player.MaxLife = 12, 15
	if got := Status(snap); got != " 12/15  Score: 30  Wave: 2" {
		t.Errorf("Unexpected status %q", got)
	}
}

func TestHostHidesArenaDuringGetReady(t *testing.T) {
	h := newTestHost(t)
	col, row := h.viewport.ToCell(h.game.ECS.Player.X, h.game.ECS.Player.Y)

	h.draw()
	if r, _, _, _ := h.screen.GetContent(col, row); r != playerGlyph {
		t.Fatalf("Expected player glyph at (%d, %d), got %q", col, row, r)
	}

	h.game.ECS.Wave.ShowWaveMessage = true
	h.draw()
	if r, _, _, _ := h.screen.GetContent(col, row); r == playerGlyph {
		t.Error("Expected the get-ready message to hide the player")
	}
}
