package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSetupDefaults(t *testing.T) {
	setup, err := LoadSetup(Options{Seed: 7})
	if err != nil {
		t.Fatalf("LoadSetup failed: %v", err)
	}
	if setup.Library.Len() != 3 {
		t.Errorf("Expected 3 tiers, got %d", setup.Library.Len())
	}
	if setup.Rules.BaseEnemiesPerWave != 15 {
		t.Errorf("Expected default rules, got %+v", setup.Rules)
	}

	game := setup.NewGame()
	if game.Rng.Seed() != 7 {
		t.Errorf("Expected seed 7, got %d", game.Rng.Seed())
	}
	if game.ECS.Wave.Number != 1 || game.ECS.Wave.EnemiesToSpawn != 15 {
		t.Errorf("Expected wave 1 with quota 15, got %+v", *game.ECS.Wave)
	}
}

func TestLoadSetupFiles(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.json")
	enemiesPath := filepath.Join(dir, "enemies.json")
	if err := os.WriteFile(rulesPath, []byte(`{"base_enemies_per_wave": 4}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(enemiesPath, []byte(`[{"id":"ONLY","damage":1,"size":10,"hp":1,"chance":1,"points":1}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	setup, err := LoadSetup(Options{RulesPath: rulesPath, EnemiesPath: enemiesPath})
	if err != nil {
		t.Fatalf("LoadSetup failed: %v", err)
	}
	if setup.Rules.BaseEnemiesPerWave != 4 {
		t.Errorf("Expected 4 enemies per wave, got %d", setup.Rules.BaseEnemiesPerWave)
	}
	if setup.Library.Len() != 1 {
		t.Errorf("Expected 1 tier, got %d", setup.Library.Len())
	}

	if _, err := LoadSetup(Options{RulesPath: filepath.Join(dir, "missing.json")}); err == nil {
		t.Error("Expected error for missing rules file")
	}
	if _, err := LoadSetup(Options{EnemiesPath: filepath.Join(dir, "missing.json")}); err == nil {
		t.Error("Expected error for missing enemies file")
	}
}
