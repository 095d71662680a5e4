package client

import (
	"fmt"
	"strconv"
	"strings"

	"battlesim/pkg/battle"
	"github.com/sirupsen/logrus"
)

// Position is the "side.player.team" triple the engine stamps onto every
// mon-focused log entry (see handleStr in pkg/battle/mutate.go). It is
// the only identifying information an observer starts with; everything
// else about a Mon is discovered from subsequent entries.
type Position struct {
	Side   int
	Player int
	Team   int
}

func parsePosition(s string) (Position, error) {
	if s == "-" {
		return Position{}, fmt.Errorf("client: position %q is the nil-mon sentinel", s)
	}
	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return Position{}, fmt.Errorf("client: malformed position %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Position{}, fmt.Errorf("client: malformed position %q: %w", s, err)
		}
		nums[i] = n
	}
	return Position{Side: nums[0], Player: nums[1], Team: nums[2]}, nil
}

// Observer rebuilds a partial, ambiguity-aware view of a battle purely by
// consuming its log, one turn at a time, the way a spectator or a
// reconnecting client would. It never sees hidden data (EVs, IVs, an
// unactivated held item) and tracks candidate identities rather than
// certainties whenever the log itself is ambiguous.
type Observer struct {
	Sides []*Side

	byPosition map[Position]MonBattleAppearanceReference
}

// NewObserver builds an Observer for a battle with the given number of
// sides, each starting with an empty, undiscovered roster.
func NewObserver(sideCount int) *Observer {
	o := &Observer{byPosition: map[Position]MonBattleAppearanceReference{}}
	for i := 0; i < sideCount; i++ {
		o.Sides = append(o.Sides, &Side{})
	}
	return o
}

// Consume applies every entry, in order, to the observed state. Entries
// this observer has no reconstruction rule for (purely cosmetic or
// metadata entries such as weather flavour text, and titles outside the
// battle package's EntryKind list) are skipped rather than treated as
// errors; a malformed or out-of-range position is not, since
// it means the log and the observer have fallen out of sync.
func (o *Observer) Consume(entries []battle.Entry) error {
	for _, e := range entries {
		if err := o.apply(e); err != nil {
			return fmt.Errorf("client: turn %d entry %q: %w", e.Turn, e.Kind, err)
		}
	}
	return nil
}

func (o *Observer) apply(e battle.Entry) error {
	switch e.Kind {
	case battle.EntrySwitch, battle.EntryDrag:
		return o.applySwitch(e)
	case battle.EntryDamage, battle.EntryHeal, battle.EntrySetHP:
		return o.applyHP(e)
	case battle.EntryFaint:
		return o.applyFaintRevive(e, true)
	case battle.EntryRevive:
		return o.applyFaintRevive(e, false)
	case battle.EntryBoost:
		return o.applyBoost(e, 1)
	case battle.EntryUnboost:
		return o.applyBoost(e, -1)
	case battle.EntryStatus:
		return o.applyStatus(e, true)
	case battle.EntryCureStatus:
		return o.applyStatus(e, false)
	case battle.EntryMove:
		return o.applyMove(e)
	case battle.EntryAbility:
		return o.applyAbility(e)
	default:
		return nil
	}
}

func fieldValue(e battle.Entry, name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func (o *Observer) monField(e battle.Entry) (Position, *Mon, *MonBattleAppearanceWithRecovery, error) {
	raw, ok := fieldValue(e, "mon")
	if !ok {
		return Position{}, nil, nil, fmt.Errorf("missing mon field")
	}
	pos, err := parsePosition(raw)
	if err != nil {
		return Position{}, nil, nil, err
	}
	mon, slot, ok := o.resolve(pos)
	if !ok {
		return pos, nil, nil, fmt.Errorf("position %v has no discovered mon yet", pos)
	}
	return pos, mon, slot, nil
}

func (o *Observer) resolve(pos Position) (*Mon, *MonBattleAppearanceWithRecovery, bool) {
	if pos.Side < 0 || pos.Side >= len(o.Sides) {
		return nil, nil, false
	}
	ref, ok := o.byPosition[pos]
	if !ok {
		return nil, nil, false
	}
	mon, ok := o.Sides[pos.Side].MonByReference(ref)
	if !ok || ref.SlotIdx >= len(mon.BattleAppearances) {
		return nil, nil, false
	}
	return mon, mon.BattleAppearances[ref.SlotIdx], true
}

// applySwitch discovers (or re-confirms) the mon now occupying pos,
// seeding a fresh battle appearance slot the first time this position's
// roster entry is seen and marking it active either way.
func (o *Observer) applySwitch(e battle.Entry) error {
	raw, ok := fieldValue(e, "mon")
	if !ok {
		return fmt.Errorf("missing mon field")
	}
	pos, err := parsePosition(raw)
	if err != nil {
		return err
	}
	species, _ := fieldValue(e, "species")

	side := o.Sides[pos.Side]
	player := side.PlayerOrElse(pos.Player)
	for len(player.Mons) <= pos.Team {
		player.Mons = append(player.Mons, NewMon(MonPhysicalAppearance{}))
	}
	mon := player.Mons[pos.Team]
	if mon.PhysicalAppearance.Species == "" {
		mon.PhysicalAppearance.Species = species
	}

	slotIdx := 0
	if len(mon.BattleAppearances) == 0 {
		slotIdx = mon.PushBattleAppearance()
	}
	mon.SwitchIn()
	mon.BattleAppearances[slotIdx].SwitchIn()

	ref := MonBattleAppearanceReference{PlayerIdx: pos.Player, MonIdx: pos.Team, SlotIdx: slotIdx}
	o.byPosition[pos] = ref
	for len(side.Active) <= pos.Player {
		side.Active = append(side.Active, nil)
	}
	r := ref
	side.Active[pos.Player] = &r

	logrus.WithFields(logrus.Fields{
		"function": "applySwitch",
		"package":  "client",
		"position": pos,
		"species":  species,
	}).Debug("observed switch-in")
	return nil
}

func (o *Observer) applyHP(e battle.Entry) error {
	_, mon, slot, err := o.monField(e)
	if err != nil {
		return err
	}
	raw, ok := fieldValue(e, "hp")
	if !ok {
		return fmt.Errorf("missing hp field")
	}
	parts := strings.SplitN(raw, "/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("malformed hp field %q", raw)
	}
	cur, err1 := strconv.ParseUint(parts[0], 10, 64)
	max, err2 := strconv.ParseUint(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("malformed hp field %q", raw)
	}
	slot.RecordHealth(Known(HealthReading{Current: cur, Max: max}), Precise)
	if cur == 0 {
		mon.Faint()
	}
	return nil
}

func (o *Observer) applyFaintRevive(e battle.Entry, faint bool) error {
	_, mon, _, err := o.monField(e)
	if err != nil {
		return err
	}
	if faint {
		mon.Faint()
	} else {
		mon.Revive()
	}
	return nil
}

func (o *Observer) applyBoost(e battle.Entry, sign int64) error {
	_, mon, _, err := o.monField(e)
	if err != nil {
		return err
	}
	stat, ok := fieldValue(e, "stat")
	if !ok {
		return fmt.Errorf("missing stat field")
	}
	rawBy, ok := fieldValue(e, "by")
	if !ok {
		return fmt.Errorf("missing by field")
	}
	by, err := strconv.ParseInt(rawBy, 10, 64)
	if err != nil {
		return fmt.Errorf("malformed by field %q: %w", rawBy, err)
	}
	mon.Volatile.RecordStatBoost(stat, sign*by)
	return nil
}

func (o *Observer) applyStatus(e battle.Entry, applying bool) error {
	_, _, slot, err := o.monField(e)
	if err != nil {
		return err
	}
	if !applying {
		slot.RecordStatus(Known(""), Precise)
		return nil
	}
	effect, ok := fieldValue(e, "effect")
	if !ok {
		return fmt.Errorf("missing effect field")
	}
	slot.RecordStatus(Known(effect), Precise)
	return nil
}

func (o *Observer) applyMove(e battle.Entry) error {
	_, _, slot, err := o.monField(e)
	if err != nil {
		return err
	}
	name, ok := fieldValue(e, "move")
	if !ok {
		return fmt.Errorf("missing move field")
	}
	slot.RecordMove(name, Precise)
	return nil
}

func (o *Observer) applyAbility(e battle.Entry) error {
	_, mon, slot, err := o.monField(e)
	if err != nil {
		return err
	}
	name, ok := fieldValue(e, "ability")
	if !ok {
		return fmt.Errorf("missing ability field")
	}
	slot.RecordAbility(Known(name), Precise)
	mon.Volatile.RecordAbility(name)
	return nil
}
