// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for one enemy tier.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Damage  int     `json:"damage"`
	Size    float64 `json:"size"`
	Health  int     `json:"hp"`
	Chance  float64 `json:"chance"` // Weight in the cumulative spawn draw
	Points  int     `json:"points"`
	Visuals Visuals `json:"visuals"`
}

// Visuals describes how a tier is drawn by the hosts.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Glyph  string     `json:"glyph"` // Terminal host only
	Stroke bool       `json:"stroke"`
}

// EnemyLibrary is the ordered tier table. Order matters: the spawn draw
// walks it accumulating chances.
type EnemyLibrary struct {
	Tiers []EnemyDefinition
}

// NewEnemyLibrary wraps the given tiers.
func NewEnemyLibrary(tiers []EnemyDefinition) *EnemyLibrary {
	return &EnemyLibrary{Tiers: tiers}
}

// Len returns the number of tiers.
func (l *EnemyLibrary) Len() int {
	return len(l.Tiers)
}
