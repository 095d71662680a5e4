package battle

import "testing"

func TestLogPartitionsByTurn(t *testing.T) {
	l := NewLog()
	l.Emit(1, EntryMove, F("mon", "0.0.0"))
	l.Emit(1, EntryDamage, F("mon", "1.0.0"), F("hp", "10/20"))
	l.Emit(2, EntryTurn, F("turn", "2"))

	turn1 := l.Turn(1)
	if len(turn1) != 2 {
		t.Fatalf("len(Turn(1)) = %d, want 2", len(turn1))
	}
	if turn1[0].Kind != EntryMove || turn1[1].Kind != EntryDamage {
		t.Errorf("Turn(1) kinds = [%v, %v], want [move, damage] in emission order", turn1[0].Kind, turn1[1].Kind)
	}

	turn2 := l.Turn(2)
	if len(turn2) != 1 || turn2[0].Kind != EntryTurn {
		t.Errorf("Turn(2) = %+v, want a single turn entry", turn2)
	}

	if len(l.Entries()) != 3 {
		t.Errorf("len(Entries()) = %d, want 3", len(l.Entries()))
	}
}

func TestLogEntriesNeverReordered(t *testing.T) {
	l := NewLog()
	for i := 0; i < 5; i++ {
		l.Emit(1, EntryInfo, F("i", string(rune('a'+i))))
	}
	entries := l.Entries()
	for i, e := range entries {
		want := string(rune('a' + i))
		if e.Fields[0].Value != want {
			t.Errorf("Entries()[%d].Fields[0].Value = %q, want %q", i, e.Fields[0].Value, want)
		}
	}
}
