package persistence

import (
	"context"
	"fmt"

	"battlesim/pkg/battle"
	"battlesim/pkg/data"
	"battlesim/pkg/integration"
)

// BattleSnapshot is the persisted-state layout of a paused battle (§6):
// format rules, seed state, field, sides with players and mons, queued
// actions, turn counter, and the full log vector. No implicit fields —
// everything RestoreBattle needs to resume is carried here explicitly.
type BattleSnapshot struct {
	FormatRules map[string]string `yaml:"format_rules"`

	Seed  int64 `yaml:"seed"`
	Draws int   `yaml:"draws"`

	Field *battle.Field `yaml:"field"`

	// QueuedActions is always empty in practice: BeginTurn and RunTurn
	// are called together synchronously, so a snapshot is only ever
	// taken between turns, never mid-resolution. It is carried
	// explicitly so the layout has no implicit fields.
	QueuedActions []battle.Action `yaml:"queued_actions"`

	Log []battle.Entry `yaml:"log"`
}

// SnapshotBattle captures b's persisted-state layout. FormatRules is
// copied from b.Field.Rules, since that is where the rule set already
// lives.
func SnapshotBattle(b *battle.Battle) *BattleSnapshot {
	return &BattleSnapshot{
		FormatRules:   b.Field.Rules,
		Seed:          b.RNG.Seed(),
		Draws:         b.RNG.Draws(),
		Field:         b.Field,
		QueuedActions: nil,
		Log:           b.Log.Entries(),
	}
}

// Restore rebuilds a live Battle from the snapshot against store. The
// caller re-registers hooks afterward, exactly as a freshly-built Battle
// requires.
func (snap *BattleSnapshot) Restore(store data.Store) *battle.Battle {
	snap.Field.Rules = snap.FormatRules
	rng := battle.RestoreRNG(snap.Seed, snap.Draws)
	log := battle.RestoreLog(snap.Log)
	return battle.RestoreBattle(snap.Field, store, rng, log)
}

// SaveBattleSnapshot serializes b's current state to name under fs,
// protected by circuit breaker and retry so a transient filesystem fault
// during autosave doesn't lose the battle.
func SaveBattleSnapshot(ctx context.Context, fs *FileStore, name string, b *battle.Battle) error {
	snap := SnapshotBattle(b)
	return integration.ExecuteSnapshotOperation(ctx, func(context.Context) error {
		return fs.Save(name, snap)
	})
}

// LoadBattleSnapshot reads name from fs and restores it against store,
// under the same circuit breaker and retry protection as the save path.
func LoadBattleSnapshot(ctx context.Context, fs *FileStore, name string, store data.Store) (*battle.Battle, error) {
	var snap BattleSnapshot
	err := integration.ExecuteSnapshotOperation(ctx, func(context.Context) error {
		return fs.Load(name, &snap)
	})
	if err != nil {
		return nil, fmt.Errorf("loading battle snapshot %q: %w", name, err)
	}
	return snap.Restore(store), nil
}
