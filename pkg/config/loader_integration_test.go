package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"battlesim/pkg/integration"
	"battlesim/pkg/resilience"
)

// TestLoadDataStoreWithCircuitBreakerProtection tests the integration approach for config loading
func TestLoadDataStoreWithCircuitBreakerProtection(t *testing.T) {
	// Reset circuit breaker state and integration executors
	resetCircuitBreakerForTesting()
	integration.ResetExecutorsForTesting()

	tempDir := t.TempDir()

	// Test 1: Successful directory loading
	writeFixture(t, tempDir, "species.yaml", `
species:
  - id: "eevee"
    name: "Eevee"
    types: ["normal"]
    base_stats: {hp: 55, atk: 55, def: 50, spa: 45, spd: 65, spe: 55}
`)

	store, err := LoadDataStore(tempDir)
	if err != nil {
		t.Fatalf("Expected successful load, got error: %v", err)
	}
	if _, err := store.Species("eevee"); err != nil {
		t.Errorf("Species(eevee): %v", err)
	}

	// Test 2: non-existent directory to verify error handling
	_, err = LoadDataStore(filepath.Join(tempDir, "does_not_exist"))
	if err == nil {
		t.Error("Expected error when loading a non-existent directory")
	}

	// The error should contain information about the operation failing
	// (it might be wrapped by retry logic or circuit breaker)
	errorStr := strings.ToLower(err.Error())
	if !strings.Contains(errorStr, "no such file") && !strings.Contains(errorStr, "operation failed") {
		t.Errorf("Expected file not found or operation failed error, got: %v", err)
	}
}

// TestStoreLoaderCircuitBreakerConfiguration tests the circuit breaker configuration
func TestStoreLoaderCircuitBreakerConfiguration(t *testing.T) {
	resetCircuitBreakerForTesting()
	integration.ResetExecutorsForTesting()

	manager := resilience.GetGlobalCircuitBreakerManager()
	cb := manager.GetOrCreate("store_loader", &resilience.StoreLoaderConfig)
	// Test configuration values
	config := resilience.StoreLoaderConfig

	if config.MaxFailures != 2 {
		t.Errorf("Expected MaxFailures to be 2, got %d", config.MaxFailures)
	}

	if config.Timeout != 15*time.Second {
		t.Errorf("Expected Timeout to be 15s, got %v", config.Timeout)
	}

	if config.Name != "store_loader" {
		t.Errorf("Expected Name to be 'store_loader', got %s", config.Name)
	}

	// Verify circuit breaker uses the expected configuration
	if cb.GetState() != resilience.StateClosed {
		t.Errorf("Expected initial state to be closed, got %s", cb.GetState())
	}
}

// TestCircuitBreakerRecovery tests circuit breaker recovery behavior
func TestCircuitBreakerRecovery(t *testing.T) {
	resetCircuitBreakerForTesting()
	integration.ResetExecutorsForTesting()

	tempDir := t.TempDir()
	writeFixture(t, tempDir, "recovery.yaml", `
species:
  - id: "ditto"
    name: "Ditto"
    types: ["normal"]
    base_stats: {hp: 48, atk: 48, def: 48, spa: 48, spd: 48, spe: 48}
`)

	// Force circuit breaker to open
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_ = resilience.ExecuteWithStoreLoaderCircuitBreaker(ctx, func(ctx context.Context) error {
			return fmt.Errorf("failure %d", i)
		})
	}

	manager := resilience.GetGlobalCircuitBreakerManager()
	cb := manager.GetOrCreate("store_loader", &resilience.StoreLoaderConfig)

	if cb.GetState() != resilience.StateOpen {
		t.Errorf("Expected circuit breaker to be open, got %s", cb.GetState())
	}

	// Wait for circuit breaker to transition to half-open
	// Note: In a real test, we might need to wait or mock time
	// For this test, we'll simulate the behavior

	// The circuit breaker should eventually allow recovery
	// This is a simplified test since full recovery testing would require time manipulation
	if cb.GetState() == resilience.StateOpen {
		t.Log("Circuit breaker is open as expected after failures")
	}
}
