package battle

import (
	"fmt"
)

// Choice is one per-active-slot command a player submits for a turn
// (§6): exactly one of the fields below is meaningful, selected by Kind.
type Choice struct {
	Kind       ActionKind
	User       Handle
	MoveID     string
	TargetSlot Handle
	SwitchTo   int
	ItemID     string
}

// TurnResult summarises one completed turn: the moves/switches executed
// in order and any mon that fainted along the way.
type TurnResult struct {
	Executed []MoveResult
	Fainted  []Handle
}

// BeginTurn advances the field's turn counter, emits the `turn` log
// entry, and converts choices into scheduled actions — the entry point
// to §4.3's scheduler.
func (b *Battle) BeginTurn(choices []Choice) {
	b.Field.Turn++
	b.Log.Emit(b.Field.Turn, EntryTurn, F("turn", fmt.Sprintf("%d", b.Field.Turn)))
	b.Scheduler().Clear()
	for _, c := range choices {
		b.Scheduler().Submit(&Action{
			Kind:          c.Kind,
			User:          c.User,
			MoveID:        c.MoveID,
			Target:        c.TargetSlot,
			SwitchToIndex: c.SwitchTo,
			ItemID:        c.ItemID,
		})
	}
}

// RunTurn drains the scheduler, executing every action in order (§4.3,
// §4.4), and runs residual effects at the end (§4.5's Residual event).
// BeginTurn must be called first with this turn's choices.
func (b *Battle) RunTurn() TurnResult {
	var result TurnResult

	for {
		action, ok := b.Scheduler().Next()
		if !ok {
			break
		}
		switch action.Kind {
		case ActionMove:
			move, err := b.Store.Move(action.MoveID)
			if err != nil {
				continue
			}
			mr := ExecuteMove(b, action.User, move, action.Target)
			result.Executed = append(result.Executed, mr)
			b.drainFaints(&result)
		case ActionSwitch:
			b.executeSwitch(action.User, action.SwitchToIndex)
		case ActionPass:
			// no-op
		}
	}

	residualCtx := &Context{Battle: b, Event: EventResidual}
	for _, h := range b.Field.ActiveHandles() {
		residualCtx.Target = h
		b.DispatchVoid(residualCtx, Value{})
	}
	b.drainFaints(&result)

	return result
}

// drainFaints scans every active slot for a newly-fainted mon and records
// it; a real deployment would also insert a forced-switch action into the
// scheduler here (§4.3's "inserted into sorted position"), left to the
// host loop driving player choice acquisition for the replacement pick.
func (b *Battle) drainFaints(result *TurnResult) {
	for _, h := range b.Field.ActiveHandles() {
		mon := b.Mon(h)
		if mon.Fainted {
			alreadyRecorded := false
			for _, f := range result.Fainted {
				if f == h {
					alreadyRecorded = true
					break
				}
			}
			if !alreadyRecorded {
				result.Fainted = append(result.Fainted, h)
			}
		}
	}
}

// executeSwitch pulls the mon at teamIdx into the slot user currently
// occupies, resetting the outgoing mon's active-only fields and the
// incoming mon's types/stats to its species baseline (§8's switch-out /
// switch-in round trip law).
func (b *Battle) executeSwitch(user Handle, teamIdx int) {
	side := b.Side(user.SideIdx)
	player := side.Players[user.PlayerIdx]
	outgoing := player.Team[user.TeamIdx]
	outgoing.ResetActive()

	incoming := player.Team[teamIdx]
	if sp, err := b.Store.Species(incoming.SpeciesID); err == nil {
		incoming.Types = append([]string(nil), sp.Types...)
		incoming.RecomputeStats(sp)
	}
	newHandle := Handle{SideIdx: user.SideIdx, PlayerIdx: user.PlayerIdx, TeamIdx: teamIdx}
	for slot, h := range side.Active {
		if h == user {
			side.Active[slot] = newHandle
		}
	}
	b.Log.Emit(b.Field.Turn, EntrySwitch, F("mon", handleStr(newHandle)), F("species", incoming.SpeciesID))

	updateWeatherSuppression(b, newHandle)
	switchInCtx := &Context{Battle: b, Event: EventSwitchIn, Target: newHandle}
	b.DispatchVoid(switchInCtx, Value{})
}

// NewSingleBattleField builds the common two-side, one-active-slot-per-side
// field shape used by the demo CLIs and most tests.
func NewSingleBattleField() *Field {
	f := NewField(2)
	for _, s := range f.Sides {
		s.SetActiveSlots(1)
	}
	return f
}

// PlaceMon seats mon as player sideIdx/playerIdx's sole active mon,
// appending it to that player's roster if not already present.
func PlaceMon(f *Field, sideIdx, playerIdx int, mon *Mon) Handle {
	side := f.Sides[sideIdx]
	for len(side.Players) <= playerIdx {
		side.Players = append(side.Players, NewPlayer(fmt.Sprintf("p%d", len(side.Players)+1), ""))
	}
	player := side.Players[playerIdx]
	player.Team = append(player.Team, mon)
	h := Handle{SideIdx: sideIdx, PlayerIdx: playerIdx, TeamIdx: len(player.Team) - 1}
	side.Active[0] = h
	return h
}
