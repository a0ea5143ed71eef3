package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

//go:embed data/enemies.json
var defaultEnemiesJSON []byte

var (
	// ErrNoDefinitions is returned when a tier table is empty.
	ErrNoDefinitions = errors.New("no enemy definitions")
	// ErrBadChances is returned when tier chances do not sum to 1.
	ErrBadChances = errors.New("enemy chances must sum to 1")
)

const chanceTolerance = 1e-9

// DefaultEnemyLibrary returns the built-in three-tier table.
func DefaultEnemyLibrary() *EnemyLibrary {
	lib, err := ParseEnemyDefinitions(defaultEnemiesJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded enemy definitions are invalid: %v", err))
	}
	return lib
}

// LoadEnemyDefinitions reads the enemy configuration file and builds a library.
func LoadEnemyDefinitions(path string) (*EnemyLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return ParseEnemyDefinitions(file)
}

// ParseEnemyDefinitions decodes and validates a JSON tier table.
func ParseEnemyDefinitions(data []byte) (*EnemyLibrary, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	if err := Validate(enemyDefs); err != nil {
		return nil, err
	}
	return NewEnemyLibrary(enemyDefs), nil
}

// Validate checks that a tier table can drive the spawn draw.
func Validate(enemyDefs []EnemyDefinition) error {
	if len(enemyDefs) == 0 {
		return ErrNoDefinitions
	}

	seen := make(map[string]bool, len(enemyDefs))
	total := 0.0
	for _, def := range enemyDefs {
		if def.ID == "" {
			return fmt.Errorf("enemy definition without id")
		}
		if seen[def.ID] {
			return fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		seen[def.ID] = true
		if def.Size <= 0 || def.Health <= 0 {
			return fmt.Errorf("enemy %q: size and hp must be positive", def.ID)
		}
		if def.Chance < 0 {
			return fmt.Errorf("enemy %q: negative chance %v", def.ID, def.Chance)
		}
		total += def.Chance
	}
	if math.Abs(total-1.0) > chanceTolerance {
		return fmt.Errorf("%w: got %v", ErrBadChances, total)
	}
	return nil
}
