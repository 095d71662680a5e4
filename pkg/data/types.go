package data

// Stat identifies one of the six computed battle stats plus the two
// boost-only channels (accuracy, evasion) that share the same -6..+6
// boost table but have no corresponding base stat.
type Stat int

const (
	StatHP Stat = iota
	StatAtk
	StatDef
	StatSpAtk
	StatSpDef
	StatSpe
	StatAccuracy
	StatEvasion
)

// String renders the stat's canonical short name.
func (s Stat) String() string {
	switch s {
	case StatHP:
		return "hp"
	case StatAtk:
		return "atk"
	case StatDef:
		return "def"
	case StatSpAtk:
		return "spa"
	case StatSpDef:
		return "spd"
	case StatSpe:
		return "spe"
	case StatAccuracy:
		return "accuracy"
	case StatEvasion:
		return "evasion"
	default:
		return "unknown"
	}
}

// StatTable holds the six base/computed stats (HP excluded from boost
// math but present for base-stat and max-HP computation).
type StatTable struct {
	HP    int `yaml:"hp"`
	Atk   int `yaml:"atk"`
	Def   int `yaml:"def"`
	SpAtk int `yaml:"spa"`
	SpDef int `yaml:"spd"`
	Spe   int `yaml:"spe"`
}

// Get reads the stat named by s. StatAccuracy/StatEvasion have no base
// stat and return 0.
func (t StatTable) Get(s Stat) int {
	switch s {
	case StatHP:
		return t.HP
	case StatAtk:
		return t.Atk
	case StatDef:
		return t.Def
	case StatSpAtk:
		return t.SpAtk
	case StatSpDef:
		return t.SpDef
	case StatSpe:
		return t.Spe
	default:
		return 0
	}
}

// Set writes the stat named by s and returns the updated table.
func (t StatTable) Set(s Stat, v int) StatTable {
	switch s {
	case StatHP:
		t.HP = v
	case StatAtk:
		t.Atk = v
	case StatDef:
		t.Def = v
	case StatSpAtk:
		t.SpAtk = v
	case StatSpDef:
		t.SpDef = v
	case StatSpe:
		t.Spe = v
	}
	return t
}

// MoveCategory is the damage class of a move: physical moves read
// Atk/Def, special moves read SpAtk/SpDef, status moves deal no damage.
type MoveCategory int

const (
	CategoryPhysical MoveCategory = iota
	CategorySpecial
	CategoryStatus
)

// MoveTarget is the declared target class of a move, resolved to a
// concrete mon list by the pipeline's target-resolution step.
type MoveTarget int

const (
	TargetNormal MoveTarget = iota
	TargetSelf
	TargetAdjacentAlly
	TargetAllAdjacentFoes
	TargetAllAdjacent
	TargetAllyTeam
	TargetFoeSide
	TargetOwnSide
	TargetField
	TargetRandomNormal
)

// MoveFlag is a bitset of move properties that hook handlers gate on
// (e.g. "does this move make contact", for a Substitute-like volatile,
// or a Rough Skin-like ability reacting to contact).
type MoveFlag uint32

const (
	FlagContact MoveFlag = 1 << iota
	FlagSound
	FlagPunch
	FlagBite
	FlagPulse
	FlagBallistic
	FlagProtectable
	FlagMirrorable
	FlagAuthentic
	FlagCharge
	FlagRecharge
	FlagHeal
	FlagSnatchable
	FlagDance
)

// Has reports whether f includes all bits of other.
func (f MoveFlag) Has(other MoveFlag) bool {
	return f&other == other
}

// Effectiveness is the per-type-pairing multiplier exponent the type
// chart returns: Immune skips the hit entirely (step 1 of the formula),
// the others accumulate across every defending type as a power-of-two
// exponent (step 13).
type Effectiveness int

const (
	EffectivenessImmune Effectiveness = -100
	EffectivenessWeak   Effectiveness = -1
	EffectivenessNormal Effectiveness = 0
	EffectivenessStrong Effectiveness = 1
)

// FixedDamageRule describes a move whose damage is computed outside the
// normal base-power pipeline (Seismic Toss, Endeavor, one-hit-KO moves).
type FixedDamageRule struct {
	// Kind selects which fixed-damage computation to run.
	Kind FixedDamageKind
	// Amount is used by FixedConstant only.
	Amount int
}

// FixedDamageKind enumerates the fixed-damage computations the formula
// supports.
type FixedDamageKind int

const (
	// FixedConstant always deals exactly Amount damage (Sonic Boom,
	// Dragon Rage).
	FixedConstant FixedDamageKind = iota
	// FixedLevelDamage deals damage equal to the user's level (Seismic
	// Toss).
	FixedLevelDamage
	// FixedEndeavor sets the target's HP down to the user's current HP.
	FixedEndeavor
	// FixedOHKO is a one-hit-KO: deals damage equal to the target's
	// current HP, gated by a level-difference accuracy formula and
	// blocked outright when the attacker's level is lower (§8).
	FixedOHKO
)

// HitEffectData is the declarative per-hit outcome payload a move (or its
// "self"/secondary effect) carries, applied in the fixed order boosts →
// heal → status → volatile → side condition → slot condition → weather →
// terrain → pseudo-weather → force-switch (§5).
type HitEffectData struct {
	Boosts            map[Stat]int
	HealPercent       int // percent of target max HP; negative values are not used here
	Status            string
	Volatile          string
	SideCondition     string
	SlotCondition     string
	Weather           string
	Terrain           string
	PseudoWeather     string
	ForceSwitch       bool
	NoCopy            bool // excluded from baton-pass-like volatile transfer
}

// SecondaryEffect is a HitEffectData evaluated per target after the
// primary hit resolves, applied with probability Chance/ChanceDen (10/100
// for a "10% chance" effect); a ChanceDen of zero or less always applies.
type SecondaryEffect struct {
	Effect    HitEffectData
	Chance    int // numerator
	ChanceDen int // denominator; 100 for "10% chance" style moves
	Self      bool
}

// MoveData is the immutable record describing one move's base mechanics.
// Behavior hooks (BasePower modifiers, etc.) are registered separately in
// the battle package's effect catalogue, keyed by the same ID — this
// record only carries the declarative facts a data-driven move needs.
type MoveData struct {
	ID        string           `yaml:"id"`
	Name      string           `yaml:"name"`
	Type      string           `yaml:"type"`
	Category  MoveCategory     `yaml:"category"`
	BasePower int              `yaml:"base_power"`
	Accuracy  int              `yaml:"accuracy"` // 0 means the move always hits
	PP        int              `yaml:"pp"`
	Priority  int              `yaml:"priority"`
	Target    MoveTarget       `yaml:"target"`
	Flags     MoveFlag         `yaml:"flags"`
	CritRatio int              `yaml:"crit_ratio"`
	Drain     *Fraction        `yaml:"drain,omitempty"` // percent of damage dealt, as num/den
	Recoil    *Fraction        `yaml:"recoil,omitempty"`
	Fixed     *FixedDamageRule `yaml:"fixed,omitempty"`
	HitsMin   int              `yaml:"hits_min"` // 0 means exactly one hit
	HitsMax   int              `yaml:"hits_max"`
	Self      *HitEffectData   `yaml:"self,omitempty"`
	Hit       *HitEffectData   `yaml:"hit,omitempty"`
	Secondary []SecondaryEffect `yaml:"secondary,omitempty"`
	NoStab    bool             `yaml:"no_stab"`
	Typeless  bool             `yaml:"typeless"`
	Spread    bool             `yaml:"spread"`
}

// Fraction is a small num/den pair used in data records to avoid pulling
// in the numeric package's reduced-fraction invariants for plain data.
type Fraction struct {
	Num, Den int
}

// SpeciesData is the immutable record describing one species.
type SpeciesData struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Types     []string  `yaml:"types"`
	BaseStats StatTable `yaml:"base_stats"`
	Abilities []string  `yaml:"abilities,omitempty"`
	// CatchRate is the species' base catch rate (0-255) fed into the
	// standard shake-probability formula; 0 means "not catchable".
	CatchRate int `yaml:"catch_rate,omitempty"`
}

// ItemData is the immutable record describing one held item.
type ItemData struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// NegatesWeatherDamageBoost mirrors a Utility Umbrella-like item:
	// the mon holding it is unaffected by weather's damage modifiers.
	NegatesWeatherDamageBoost bool `yaml:"negates_weather_damage_boost"`
}

// AbilityData is the immutable record describing one ability. Behavior
// hooks live in the battle package's catalogue; this only carries
// descriptive metadata (name, whether it can be suppressed, etc).
type AbilityData struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Suppressible bool   `yaml:"suppressible"`
	// SuppressesWeather mirrors an Air Lock-like ability: while its
	// holder is active, weather's damage modifiers stop applying.
	SuppressesWeather bool `yaml:"suppresses_weather"`
}

// ConditionData is the immutable descriptive record shared by statuses,
// volatiles, side/slot/field conditions, weathers, terrains and
// pseudo-weathers. DefaultDuration of 0 means indefinite (cleared only by
// an explicit end, not a countdown).
type ConditionData struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	DefaultDuration int    `yaml:"default_duration"`
	NoCopy          bool   `yaml:"no_copy"`
}

// NatureData describes a nature's 10% stat boost/cut (both zero means a
// neutral nature).
type NatureData struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Increase Stat   `yaml:"increase"`
	Decrease Stat   `yaml:"decrease"`
	Neutral  bool   `yaml:"neutral"`
}
