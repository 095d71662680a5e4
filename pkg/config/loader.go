package config

import (
	"context"

	"battlesim/pkg/data"
	"battlesim/pkg/integration"
)

// LoadDataStore populates a fresh data.MemoryStore from every YAML fixture
// file in dir. The load is protected by both circuit breaker and retry
// patterns to prevent cascade failures and handle transient file system
// issues when reading from a networked or unreliable filesystem.
//
// Parameters:
//   - dir: directory containing species/move/item/ability/condition/nature
//     YAML fixture files
//
// Returns:
//   - *data.MemoryStore: populated store, ready to hand to pkg/battle
//   - error: file read, YAML parsing, circuit breaker, or retry errors
func LoadDataStore(dir string) (*data.MemoryStore, error) {
	store := data.NewMemoryStore()
	ctx := context.Background()

	err := integration.ExecuteStoreLoaderOperation(ctx, func(ctx context.Context) error {
		return store.LoadDirectory(dir)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}
