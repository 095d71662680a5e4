package persistence

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battlesim/pkg/battle"
	"battlesim/pkg/data"
)

func newTestBattle(t *testing.T) *battle.Battle {
	t.Helper()
	store := data.DefaultStore()
	field := battle.NewSingleBattleField()
	b := battle.NewBattle(field, store, 42)

	nature, err := store.Nature("hardy")
	require.NoError(t, err)
	sp1, err := store.Species("bulbasaur")
	require.NoError(t, err)
	sp2, err := store.Species("charmander")
	require.NoError(t, err)

	m1 := battle.NewMon("bulbasaur", 50, nature, data.StatTable{}, data.StatTable{}, sp1)
	m2 := battle.NewMon("charmander", 50, nature, data.StatTable{}, data.StatTable{}, sp2)
	battle.PlaceMon(field, 0, 0, m1)
	battle.PlaceMon(field, 1, 0, m2)

	b.Log.Emit(0, battle.EntryBattleStart)
	return b
}

func TestSnapshotBattleRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "snapshot-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	fs, err := NewFileStore(tmpDir)
	require.NoError(t, err)

	b := newTestBattle(t)
	b.RNG.Intn(6) // advance the draw counter so Draws() is non-zero

	ctx := context.Background()
	require.NoError(t, SaveBattleSnapshot(ctx, fs, "battle.yaml", b))

	restored, err := LoadBattleSnapshot(ctx, fs, "battle.yaml", b.Store)
	require.NoError(t, err)

	assert.Equal(t, b.RNG.Seed(), restored.RNG.Seed())
	assert.Equal(t, b.RNG.Draws(), restored.RNG.Draws())
	assert.Equal(t, b.Field.Turn, restored.Field.Turn)
	assert.Equal(t, len(b.Log.Entries()), len(restored.Log.Entries()))
	assert.Equal(t, b.Log.Entries()[0].Kind, restored.Log.Entries()[0].Kind)

	restoredMon := restored.Mon(battle.Handle{SideIdx: 0, PlayerIdx: 0, TeamIdx: 0})
	require.NotNil(t, restoredMon)
	assert.Equal(t, "bulbasaur", restoredMon.SpeciesID)
}

func TestSnapshotBattlePreservesFormatRules(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "snapshot-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	fs, err := NewFileStore(tmpDir)
	require.NoError(t, err)

	b := newTestBattle(t)
	b.Field.Rules = map[string]string{"format": "singles"}

	ctx := context.Background()
	require.NoError(t, SaveBattleSnapshot(ctx, fs, "battle.yaml", b))

	restored, err := LoadBattleSnapshot(ctx, fs, "battle.yaml", b.Store)
	require.NoError(t, err)
	assert.Equal(t, "singles", restored.Field.Rules["format"])
}

func TestLoadBattleSnapshotMissingFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "snapshot-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	fs, err := NewFileStore(tmpDir)
	require.NoError(t, err)

	store := data.DefaultStore()
	_, err = LoadBattleSnapshot(context.Background(), fs, "missing.yaml", store)
	assert.Error(t, err)
}
