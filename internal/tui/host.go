package tui

import (
	"fmt"
	"log"
	"time"

	"dragon-siege/internal/app"
	"dragon-siege/internal/audio"
	"dragon-siege/internal/config"
	"dragon-siege/internal/event"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Host runs sessions in a terminal: mouse clicks become attacks, the
// arena is drawn with glyphs.
type Host struct {
	screen tcell.Screen
	setup  *app.Setup
	audio  *audio.Manager

	game       *app.Game
	viewport   Viewport
	paused     bool
	buttonDown bool
	lastFrame  time.Time
}

// NewHost takes ownership of an initialized screen.
func NewHost(screen tcell.Screen, setup *app.Setup, sound *audio.Manager) *Host {
	if sound == nil {
		sound = audio.NewManager(nil, 0)
	}
	screen.EnableMouse()
	screen.HideCursor()

	h := &Host{
		screen: screen,
		setup:  setup,
		audio:  sound,
	}
	h.resize()
	h.restart()
	return h
}

func (h *Host) resize() {
	cols, rows := h.screen.Size()
	h.viewport = Viewport{
		Cols:   cols,
		Rows:   rows,
		WorldW: h.setup.Rules.Width,
		WorldH: h.setup.Rules.Height,
	}
}

func (h *Host) restart() {
	h.game = h.setup.NewGame()
	h.paused = false
	h.audio.StartAmbient()
}

// Run blocks until the player quits.
func (h *Host) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	h.lastFrame = time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(h.lastFrame).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			h.lastFrame = now

			if !h.paused && !h.game.IsGameOver() {
				h.handleEvents(h.game.Update(deltaTime))
			}
			h.draw()
		}
	}
}

// handleInput returns false when the player asked to quit.
func (h *Host) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		// Только фронт нажатия: tcell шлёт события и на движение с зажатой кнопкой
		if pressed && !h.buttonDown && !h.paused {
			col, row := ev.Position()
			x, y := h.viewport.ToWorld(col, row)
			h.handleEvents(h.game.Click(x, y))
		}
		h.buttonDown = pressed

	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if h.game.IsGameOver() {
			h.restart()
		}
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'p':
			if !h.game.IsGameOver() {
				h.paused = !h.paused
			}
		case 'm':
			h.audio.ToggleMute()
		case 'r':
			if h.game.IsGameOver() {
				h.restart()
			}
		}
	}
	return true
}

func (h *Host) handleEvents(events []event.Event) {
	h.audio.HandleEvents(events)
	for _, e := range events {
		if e.Type != event.GameOver {
			continue
		}
		if err := h.screen.Beep(); err != nil {
			log.Printf("beep: %v", err)
		}
		if data, ok := e.Data.(event.GameOverData); ok {
			log.Printf("Игра окончена: счёт %d, волна %d", data.Score, data.Wave)
		}
	}
}

// Status is the one-line HUD shown in the top row.
func Status(snap app.Snapshot) string {
	return fmt.Sprintf(" %d/%d  Score: %d  Wave: %d", snap.Player.Life, snap.Player.MaxLife, snap.Score, snap.Wave)
}
