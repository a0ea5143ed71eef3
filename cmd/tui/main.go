// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"dragon-siege/internal/app"
	"dragon-siege/internal/audio"
	"dragon-siege/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	var opts app.Options
	flag.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 for time-based")
	flag.StringVar(&opts.RulesPath, "rules", "", "JSON file overriding game rules")
	flag.StringVar(&opts.EnemiesPath, "enemies", "", "JSON file replacing the enemy tier table")
	mute := flag.Bool("mute", false, "disable sound")
	volume := flag.Float64("volume", 1.0, "master volume, 0..1")
	logPath := flag.String("log", "", "write logs to this file; logs are discarded otherwise")
	flag.Parse()

	// Лог в терминал сломал бы отрисовку
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	setup, err := app.LoadSetup(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var backend audio.Backend = audio.NullBackend{}
	if !*mute {
		speakerBackend, err := audio.NewSpeakerBackend(audio.DefaultAudioConfig())
		if err != nil {
			log.Printf("Звук отключён: %v", err)
		} else {
			backend = speakerBackend
		}
	}
	sound := audio.NewManager(backend, *volume)
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	tui.NewHost(screen, setup, sound).Run()
}
