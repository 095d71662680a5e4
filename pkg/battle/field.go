package battle

// Handle is a cross-reference to one mon by index path, matching the
// design note that cyclic state references (mon/side/field) are resolved
// by index rather than by pointer cycle: side index, player index within
// that side, team index within that player's roster.
type Handle struct {
	SideIdx   int
	PlayerIdx int
	TeamIdx   int
}

// NilHandle is the sentinel "no mon" reference, used for an empty active
// slot or an event with no focus mon.
var NilHandle = Handle{SideIdx: -1, PlayerIdx: -1, TeamIdx: -1}

// IsNil reports whether h is the sentinel reference.
func (h Handle) IsNil() bool {
	return h == NilHandle
}

// Field is the top-level battle state: weather/terrain/pseudo-weather,
// the ordered sides, and the turn counter. Field owns every Side, which
// owns every Player, which owns every Mon — there is exactly one owner
// per entity, matching §9's "the core state owns all entities" note.
type Field struct {
	Weather        string
	WeatherState   *EffectState
	DefaultWeather string

	Terrain        string
	TerrainState   *EffectState
	DefaultTerrain string

	PseudoWeathers map[string]*EffectState

	Sides []*Side

	Rules map[string]string

	Turn int
}

// NewField builds an empty field with n sides, each pre-populated with an
// empty Side (no players yet — callers append to Side.Players, as
// PlaceMon does).
func NewField(n int) *Field {
	f := &Field{
		PseudoWeathers: make(map[string]*EffectState),
		Rules:          make(map[string]string),
		Sides:          make([]*Side, n),
	}
	for i := range f.Sides {
		f.Sides[i] = NewSide()
	}
	return f
}

// Mon resolves h against the field, panicking with ErrStateInvariant-class
// detail only through the caller's own recover path — a bad handle here is
// always a programmer error, not a gameplay outcome, so this indexes
// directly and lets an out-of-range index panic naturally.
func (f *Field) Mon(h Handle) *Mon {
	return f.Sides[h.SideIdx].Players[h.PlayerIdx].Team[h.TeamIdx]
}

// ActiveHandles returns every handle currently occupying an active slot,
// across every side, in side/slot order.
func (f *Field) ActiveHandles() []Handle {
	var out []Handle
	for _, s := range f.Sides {
		for _, h := range s.Active {
			if !h.IsNil() {
				out = append(out, h)
			}
		}
	}
	return out
}

// ActiveSlot returns the index into s.Active that h currently occupies,
// or -1 if h is not active on this side.
func (s *Side) ActiveSlot(h Handle) int {
	for i, active := range s.Active {
		if active == h {
			return i
		}
	}
	return -1
}

// OpposingSides returns the side indices that are not sideIdx. Two-side
// battles are the common case but the model does not assume exactly two.
func (f *Field) OpposingSides(sideIdx int) []int {
	out := make([]int, 0, len(f.Sides)-1)
	for i := range f.Sides {
		if i != sideIdx {
			out = append(out, i)
		}
	}
	return out
}

// Side is one team's shared battlefield state: its players, its side-wide
// conditions, its per-slot conditions, and which team member occupies
// each active slot.
type Side struct {
	Players        []*Player
	Conditions     map[string]*EffectState
	SlotConditions map[int]map[string]*EffectState
	Active         []Handle
}

// NewSide builds an empty side with no players and no active slots; the
// caller grows Active via SetActiveSlots once team size is known.
func NewSide() *Side {
	return &Side{
		Conditions:     make(map[string]*EffectState),
		SlotConditions: make(map[int]map[string]*EffectState),
	}
}

// SetActiveSlots resizes Active to n slots, all initially empty.
func (s *Side) SetActiveSlots(n int) {
	s.Active = make([]Handle, n)
	for i := range s.Active {
		s.Active[i] = NilHandle
	}
}

// SlotCondition returns the effect state for id in slot, or nil.
func (s *Side) SlotCondition(slot int, id string) *EffectState {
	if m, ok := s.SlotConditions[slot]; ok {
		return m[id]
	}
	return nil
}

// Player is one participant: their roster, their bag, and which team
// index occupies which active slot (mirrored in the owning Side's Active
// list by Handle, so a Player's ActivePositions is the team-index-only
// projection used when a handler only needs "this player's own slots").
type Player struct {
	ID              string
	Name            string
	Team            []*Mon
	ActivePositions []int
	Bag             map[string]int
	Wild            bool
	Escaped         bool
}

// NewPlayer builds a player with an empty bag and no active positions.
func NewPlayer(id, name string) *Player {
	return &Player{ID: id, Name: name, Bag: make(map[string]int)}
}
