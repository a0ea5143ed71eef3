package app

import (
	"fmt"
	"log"

	"dragon-siege/internal/config"
	"dragon-siege/internal/defs"
	"dragon-siege/internal/utils"
)

// Options are the command-line choices shared by both hosts.
type Options struct {
	Seed        int64  // 0 picks a time-based seed for every session
	RulesPath   string // JSON overlay on config.DefaultRules
	EnemiesPath string // JSON tier table replacing the embedded one
}

// Setup is the loaded configuration a host builds sessions from.
type Setup struct {
	Rules   config.Rules
	Library *defs.EnemyLibrary
	Seed    int64
}

// LoadSetup resolves rules and the enemy table from opts.
func LoadSetup(opts Options) (*Setup, error) {
	rules := config.DefaultRules()
	if opts.RulesPath != "" {
		loaded, err := config.LoadRules(opts.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
		rules = loaded
	}

	library := defs.DefaultEnemyLibrary()
	if opts.EnemiesPath != "" {
		loaded, err := defs.LoadEnemyDefinitions(opts.EnemiesPath)
		if err != nil {
			return nil, fmt.Errorf("load enemies: %w", err)
		}
		library = loaded
	}

	return &Setup{Rules: rules, Library: library, Seed: opts.Seed}, nil
}

// NewGame starts a fresh session. A fixed seed replays the same session.
func (s *Setup) NewGame() *Game {
	rng := utils.NewPRNGService(s.Seed)
	log.Printf("New session: seed %d, %d tiers", rng.Seed(), s.Library.Len())
	return NewGame(s.Rules, s.Library, rng)
}
