package config

import (
	"os"
	"path/filepath"
	"testing"

	"battlesim/pkg/integration"
	"battlesim/pkg/resilience"
)

// resetCircuitBreakerForTesting resets the circuit breaker state for testing
func resetCircuitBreakerForTesting() {
	manager := resilience.GetGlobalCircuitBreakerManager()
	// Remove the existing store_loader circuit breaker to reset its state
	manager.Remove("store_loader")

	// Reset the integration executors to ensure clean state
	integration.ResetExecutorsForTesting()
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}

func TestLoadDataStore_ValidDirectory(t *testing.T) {
	resetCircuitBreakerForTesting()

	dir := t.TempDir()
	writeFixture(t, dir, "species.yaml", `
species:
  - id: "pikachu"
    name: "Pikachu"
    types: ["electric"]
    base_stats: {hp: 35, atk: 55, def: 40, spa: 50, spd: 50, spe: 90}
`)
	writeFixture(t, dir, "moves.yaml", `
moves:
  - id: "thundershock"
    name: "Thunder Shock"
    type: "electric"
    base_power: 40
    accuracy: 100
    pp: 30
`)

	store, err := LoadDataStore(dir)
	if err != nil {
		t.Fatalf("LoadDataStore failed: %v", err)
	}

	sp, err := store.Species("pikachu")
	if err != nil {
		t.Fatalf("Species(pikachu): %v", err)
	}
	if sp.Name != "Pikachu" {
		t.Errorf("species name = %q, want Pikachu", sp.Name)
	}

	mv, err := store.Move("thundershock")
	if err != nil {
		t.Fatalf("Move(thundershock): %v", err)
	}
	if mv.BasePower != 40 {
		t.Errorf("move base power = %d, want 40", mv.BasePower)
	}
}

func TestLoadDataStore_EmptyDirectory(t *testing.T) {
	resetCircuitBreakerForTesting()

	dir := t.TempDir()
	store, err := LoadDataStore(dir)
	if err != nil {
		t.Fatalf("LoadDataStore on an empty directory failed: %v", err)
	}
	if _, err := store.Species("anything"); err == nil {
		t.Errorf("expected ErrNotFound on an empty store")
	}
}

func TestLoadDataStore_NonExistentDirectory(t *testing.T) {
	resetCircuitBreakerForTesting()

	_, err := LoadDataStore(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected an error for a non-existent directory, got nil")
	}
}

func TestLoadDataStore_IgnoresFilesMatchingNoKnownShape(t *testing.T) {
	resetCircuitBreakerForTesting()

	dir := t.TempDir()
	writeFixture(t, dir, "notes.yaml", "just_some_notes: true\n")
	writeFixture(t, dir, "natures.yaml", `
natures:
  - id: "adamant"
    increase: 1
    decrease: 3
`)

	store, err := LoadDataStore(dir)
	if err != nil {
		t.Fatalf("LoadDataStore failed: %v", err)
	}
	if _, err := store.Nature("adamant"); err != nil {
		t.Errorf("Nature(adamant): %v", err)
	}
}
