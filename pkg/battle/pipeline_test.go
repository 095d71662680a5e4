package battle

import (
	"testing"

	"battlesim/pkg/data"
)

func TestResolveTargetsNormalPrefersRequestedIfAlive(t *testing.T) {
	b, user, requested := newTestBattle(t)
	move, _ := b.Store.Move("tackle")
	got := ResolveTargets(b, user, move, requested)
	if len(got) != 1 || got[0] != requested {
		t.Errorf("ResolveTargets = %+v, want [%v]", got, requested)
	}
}

func TestResolveTargetsFallsBackWhenRequestedFainted(t *testing.T) {
	b, user, requested := newTestBattle(t)
	b.Mon(requested).Fainted = true
	move, _ := b.Store.Move("tackle")
	got := ResolveTargets(b, user, move, requested)
	if len(got) != 0 {
		t.Errorf("ResolveTargets with only a fainted foe = %+v, want no legal target", got)
	}
}

func TestResolveTargetsSelfMove(t *testing.T) {
	b, user, _ := newTestBattle(t)
	move := &data.MoveData{Target: data.TargetSelf}
	got := ResolveTargets(b, user, move, NilHandle)
	if len(got) != 1 || got[0] != user {
		t.Errorf("ResolveTargets(TargetSelf) = %+v, want [%v]", got, user)
	}
}

func TestExecuteMoveFailsWithNoLegalTarget(t *testing.T) {
	b, user, requested := newTestBattle(t)
	b.Mon(requested).Fainted = true
	move, _ := b.Store.Move("tackle")
	result := ExecuteMove(b, user, move, requested)
	if !result.Failed {
		t.Errorf("ExecuteMove against an all-fainted side = %+v, want Failed", result)
	}
}

func TestExecuteMoveMultiHitRunsBetweenTwoAndFiveHits(t *testing.T) {
	b, user, target := newTestBattle(t)
	move, _ := b.Store.Move("furyattack")
	result := ExecuteMove(b, user, move, target)
	if result.HitCount < 2 || result.HitCount > 5 {
		t.Errorf("HitCount = %d, want within [2,5]", result.HitCount)
	}
}

func TestApplyHitEffectSetsStatus(t *testing.T) {
	b, user, target := newTestBattle(t)
	eff := &data.HitEffectData{Status: "paralysis"}
	applyHitEffect(b, user, target, eff)
	if b.Mon(target).StatusID != "paralysis" {
		t.Errorf("StatusID after applyHitEffect = %q, want paralysis", b.Mon(target).StatusID)
	}
}

func TestApplyHitEffectHealsByPercentOfMaxHP(t *testing.T) {
	b, user, target := newTestBattle(t)
	mon := b.Mon(target)
	mon.HP = mon.MaxHP / 2
	before := mon.HP
	applyHitEffect(b, user, target, &data.HitEffectData{HealPercent: 25})
	want := before + mon.MaxHP*25/100
	if mon.HP != want {
		t.Errorf("HP after 25%% heal = %d, want %d", mon.HP, want)
	}
}
