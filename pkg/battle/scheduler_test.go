package battle

import "testing"

func TestSchedulerOrdersBySpeedWhenPrioritiesMatch(t *testing.T) {
	b, fast, slow := newTestBattle(t)
	b.Mon(fast).Stats.Spe = 100
	b.Mon(slow).Stats.Spe = 10

	sched := b.Scheduler()
	sched.Submit(&Action{Kind: ActionMove, User: slow, MoveID: "tackle"})
	sched.Submit(&Action{Kind: ActionMove, User: fast, MoveID: "tackle"})

	first, ok := sched.Next()
	if !ok || first.User != fast {
		t.Fatalf("first action user = %+v, want the faster mon", first)
	}
	second, ok := sched.Next()
	if !ok || second.User != slow {
		t.Fatalf("second action user = %+v, want the slower mon", second)
	}
}

func TestSchedulerForcedSwitchPrecedesFasterMoves(t *testing.T) {
	b, fast, slow := newTestBattle(t)
	b.Mon(fast).Stats.Spe = 200
	b.Mon(slow).Stats.Spe = 5

	sched := b.Scheduler()
	sched.Submit(&Action{Kind: ActionMove, User: fast, MoveID: "tackle"})
	sched.Submit(&Action{Kind: ActionMove, User: slow, MoveID: "tackle"})

	// A forced switch always precedes any move regardless of speed.
	sched.Submit(&Action{Kind: ActionSwitch, User: slow, Forced: true, SwitchToIndex: 0})

	first, ok := sched.Next()
	if !ok || first.Kind != ActionSwitch {
		t.Fatalf("first action = %+v, want the forced switch", first)
	}
}

func TestSchedulerSkipsFaintedUsers(t *testing.T) {
	b, alive, fainted := newTestBattle(t)
	b.Mon(fainted).Fainted = true

	sched := b.Scheduler()
	sched.Submit(&Action{Kind: ActionMove, User: fainted, MoveID: "tackle"})
	sched.Submit(&Action{Kind: ActionMove, User: alive, MoveID: "tackle"})

	a, ok := sched.Next()
	if !ok || a.User != alive {
		t.Fatalf("Next = %+v, want the non-fainted mon's action, fainted user's action skipped", a)
	}
	if _, ok := sched.Next(); ok {
		t.Errorf("expected queue drained after skipping the fainted user's action")
	}
}

func TestSchedulerInsertReordersRemainingQueue(t *testing.T) {
	b, a, c := newTestBattle(t)
	b.Mon(a).Stats.Spe = 50
	b.Mon(c).Stats.Spe = 50

	sched := b.Scheduler()
	sched.Submit(&Action{Kind: ActionMove, User: a, MoveID: "tackle"})
	sched.Insert(&Action{Kind: ActionForfeit, User: c})

	first, ok := sched.Next()
	if !ok || first.Kind != ActionForfeit {
		t.Fatalf("first action after Insert = %+v, want the forfeit", first)
	}
}

func TestExplicitClassOrdering(t *testing.T) {
	if explicitClass(ActionMove, false) >= explicitClass(ActionItem, false) {
		t.Errorf("move should sort below item")
	}
	if explicitClass(ActionItem, false) >= explicitClass(ActionEscape, false) {
		t.Errorf("item should sort below escape")
	}
	if explicitClass(ActionSwitch, false) >= explicitClass(ActionSwitch, true) {
		t.Errorf("a chosen switch should sort below a forced switch")
	}
	if explicitClass(ActionForfeit, false) <= explicitClass(ActionSwitch, true) {
		t.Errorf("forfeit should sort above every other class")
	}
}
