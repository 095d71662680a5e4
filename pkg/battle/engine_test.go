package battle

import (
	"testing"

	"battlesim/pkg/data"
)

func TestRunTurnExecutesMoveAndDamagesTarget(t *testing.T) {
	b, attacker, defender := newTestBattle(t)
	defenderMon := b.Mon(defender)
	startHP := defenderMon.HP

	b.BeginTurn([]Choice{
		{Kind: ActionMove, User: attacker, MoveID: "tackle", TargetSlot: defender},
	})
	result := b.RunTurn()

	if len(result.Executed) != 1 {
		t.Fatalf("len(Executed) = %d, want 1", len(result.Executed))
	}
	mr := result.Executed[0]
	outcome, ok := mr.PerTarget[defender]
	if !ok {
		t.Fatalf("no outcome recorded against the defender")
	}
	if outcome.Kind != OutcomeDamage {
		t.Fatalf("outcome kind = %v, want Damage", outcome.Kind)
	}
	if defenderMon.HP >= startHP {
		t.Errorf("defender HP after Tackle = %d, want less than starting %d", defenderMon.HP, startHP)
	}
	if defenderMon.HP != startHP-mr.TotalDamage {
		t.Errorf("defender HP = %d, want %d (startHP - TotalDamage)", defenderMon.HP, startHP-mr.TotalDamage)
	}
}

func TestRunTurnRecordsFaintWhenDamageIsLethal(t *testing.T) {
	b, attacker, defender := newTestBattle(t)
	defenderMon := b.Mon(defender)
	defenderMon.HP = 1

	b.BeginTurn([]Choice{
		{Kind: ActionMove, User: attacker, MoveID: "tackle", TargetSlot: defender},
	})
	result := b.RunTurn()

	found := false
	for _, h := range result.Fainted {
		if h == defender {
			found = true
		}
	}
	if !found {
		t.Errorf("Fainted = %+v, want it to include the defender", result.Fainted)
	}
	if !defenderMon.Fainted {
		t.Errorf("defender.Fainted = false, want true")
	}
}

func TestBeginTurnIncrementsFieldTurnCounter(t *testing.T) {
	b, attacker, defender := newTestBattle(t)
	before := b.Field.Turn
	b.BeginTurn([]Choice{{Kind: ActionMove, User: attacker, MoveID: "tackle", TargetSlot: defender}})
	if b.Field.Turn != before+1 {
		t.Errorf("Field.Turn = %d, want %d", b.Field.Turn, before+1)
	}
}

func TestResetActiveClearsBoostsAndStatus(t *testing.T) {
	b, attacker, _ := newTestBattle(t)
	mon := b.Mon(attacker)
	mon.Boosts[data.StatAtk] = 3
	mon.StatusID = "burn"
	mon.Trapped = true

	mon.ResetActive()

	if len(mon.Boosts) != 0 {
		t.Errorf("Boosts after ResetActive = %v, want empty", mon.Boosts)
	}
	if mon.StatusID != "" {
		t.Errorf("StatusID after ResetActive = %q, want empty", mon.StatusID)
	}
	if mon.Trapped {
		t.Errorf("Trapped after ResetActive = true, want false")
	}
}
