// cmd/game/main.go
package main

import (
	"flag"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"dragon-siege/internal/app"
	"dragon-siege/internal/audio"
	"dragon-siege/internal/audio/ebitenaudio"
	"dragon-siege/internal/config"
	"dragon-siege/internal/state"
	"dragon-siege/internal/ui"
	"dragon-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int // Логический экран совпадает с ареной из правил
}

func newAppGame(sm *state.StateMachine, rules config.Rules) *AppGame {
	return &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          int(rules.Width),
		height:         int(rules.Height),
	}
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	var opts app.Options
	flag.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 for time-based")
	flag.StringVar(&opts.RulesPath, "rules", "", "JSON file overriding game rules")
	flag.StringVar(&opts.EnemiesPath, "enemies", "", "JSON file replacing the enemy tier table")
	mute := flag.Bool("mute", false, "disable sound")
	volume := flag.Float64("volume", 1.0, "master volume, 0..1")
	startFromMenu := flag.Bool("menu", true, "show the start screen before the first session")
	quiet := flag.Bool("quiet", false, "disable logging")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}
	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	setup, err := app.LoadSetup(opts)
	if err != nil {
		log.Fatal(err)
	}

	fonts, err := render.LoadFonts(config.HUDFontSize, config.TitleFontSize, config.SubFontSize)
	if err != nil {
		log.Fatal(err)
	}

	var backend audio.Backend = audio.NullBackend{}
	if !*mute {
		audioCfg := audio.DefaultAudioConfig()
		ebitenBackend, err := ebitenaudio.NewBackend(audioCfg)
		if err != nil {
			log.Printf("Звук отключён: %v", err)
		} else {
			backend = ebitenBackend
		}
	}
	sound := audio.NewManager(backend, *volume)
	defer sound.Close()

	deps := &state.Deps{
		NewGame: setup.NewGame,
		Renderer: render.NewRenderer(&render.Palette{
			BackgroundColor:   config.BackgroundColor,
			PlayerColor:       config.PlayerColor,
			PlayerStrokeColor: config.PlayerStrokeColor,
			BossColor:         config.BossColor,
			BossStrokeColor:   config.BossStrokeColor,
			FlashColor:        config.FlashColor,
			EnemyHPBackColor:  config.EnemyHPBackColor,
			EnemyHPFillColor:  config.EnemyHPFillColor,
			ClickEffectColor:  config.ClickEffectColor,
			StrokeWidth:       float32(config.StrokeWidth),
		}),
		HUD:   ui.NewHUD(fonts),
		Fonts: fonts,
		Audio: sound,
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *startFromMenu {
		sm.SetState(state.NewMenuState(sm, deps))
	} else {
		sm.SetState(state.NewGameState(sm, deps))
	}
	game := newAppGame(sm, setup.Rules)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
