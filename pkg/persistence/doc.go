// Package persistence provides file-based storage for paused battles, with
// atomic writes, file locking, and YAML serialization to protect against
// corruption from concurrent access or crashes.
//
// # FileStore
//
// FileStore is the primary interface for persisting arbitrary YAML-shaped
// data:
//
//	store, err := persistence.NewFileStore("/path/to/data")
//
//	err = store.Save("battle-42.yaml", snapshot)
//
//	var loaded BattleSnapshot
//	err = store.Load("battle-42.yaml", &loaded)
//
// # BattleSnapshot
//
// BattleSnapshot captures a battle's persisted-state layout: format rules,
// seed state, field, sides with players and mons, queued actions, turn
// counter, and the full log vector. SaveBattleSnapshot and
// LoadBattleSnapshot build on FileStore and run under circuit breaker and
// retry protection from pkg/integration:
//
//	err := persistence.SaveBattleSnapshot(ctx, store, "battle-42.yaml", b)
//	...
//	restored, err := persistence.LoadBattleSnapshot(ctx, store, "battle-42.yaml", dataStore)
//
// # Atomic Writes
//
// All write operations use atomic file replacement to prevent corruption:
//
//  1. Data is written to a temporary file
//  2. Temporary file is synced to disk
//  3. Temporary file is renamed to target (atomic operation)
//
// This ensures that even if a crash occurs during save, the original file
// remains intact.
//
// # File Locking
//
// FileLock provides cross-process synchronization using flock syscalls:
//
//	lock, err := persistence.NewFileLock("/path/to/lockfile")
//
//	// Blocking lock acquisition
//	if err := lock.Lock(); err != nil {
//	    return err
//	}
//	defer lock.Unlock()
//
//	// Non-blocking lock attempt
//	acquired, err := lock.TryLock()
//	if !acquired {
//	    return errors.New("resource busy")
//	}
//
// # File Operations
//
// Additional file management methods:
//
//	// Check existence
//	if store.Exists("battle-42.yaml") {
//	    // File exists
//	}
//
//	// Delete file and associated lock
//	err := store.Delete("battle-42.yaml")
//
//	// List files matching pattern
//	files, err := store.List("saves/*.yaml")
//
// # Thread Safety
//
// FileStore operations are protected by internal mutexes for safe concurrent
// access within a single process. FileLock extends protection across processes.
//
// # Platform Support
//
// File locking uses Unix flock syscalls through syscall.Flock. There are no
// build tags or per-platform variants, so the package builds only where
// syscall.Flock exists (Unix-like systems).
package persistence
