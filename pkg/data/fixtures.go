package data

// DefaultStore returns a small, hand-authored in-memory Store covering the
// species, moves and type matchups exercised by the worked examples in the
// design spec (§8) and this package's tests. It is not meant to be a
// complete species/move catalogue — callers building a real deployment use
// MemoryStore.LoadDirectory against their own fixture set instead.
func DefaultStore() *MemoryStore {
	s := NewMemoryStore()

	for _, sp := range []SpeciesData{
		{ID: "bulbasaur", Name: "Bulbasaur", Types: []string{"grass", "poison"},
			BaseStats: StatTable{HP: 45, Atk: 49, Def: 49, SpAtk: 65, SpDef: 65, Spe: 45}, CatchRate: 45},
		{ID: "charmander", Name: "Charmander", Types: []string{"fire"},
			BaseStats: StatTable{HP: 39, Atk: 52, Def: 43, SpAtk: 60, SpDef: 50, Spe: 65}, CatchRate: 45},
		{ID: "venusaur", Name: "Venusaur", Types: []string{"grass", "poison"},
			BaseStats: StatTable{HP: 80, Atk: 82, Def: 83, SpAtk: 100, SpDef: 100, Spe: 80}, CatchRate: 45},
		{ID: "charizard", Name: "Charizard", Types: []string{"fire", "flying"},
			BaseStats: StatTable{HP: 78, Atk: 84, Def: 78, SpAtk: 109, SpDef: 85, Spe: 100}, CatchRate: 45},
		{ID: "pikachu", Name: "Pikachu", Types: []string{"electric"},
			BaseStats: StatTable{HP: 35, Atk: 55, Def: 40, SpAtk: 50, SpDef: 50, Spe: 90}, CatchRate: 190},
		{ID: "gyarados", Name: "Gyarados", Types: []string{"water", "flying"},
			BaseStats: StatTable{HP: 95, Atk: 125, Def: 79, SpAtk: 60, SpDef: 100, Spe: 81}, CatchRate: 45},
		{ID: "blastoise", Name: "Blastoise", Types: []string{"water"},
			BaseStats: StatTable{HP: 79, Atk: 83, Def: 100, SpAtk: 85, SpDef: 105, Spe: 78}, CatchRate: 45},
	} {
		s.AddSpecies(sp)
	}

	halfHP := Fraction{Num: 1, Den: 2}
	s.AddMove(MoveData{
		ID: "seismictoss", Name: "Seismic Toss", Type: "fighting", Category: CategoryPhysical,
		Accuracy: 100, PP: 20, Target: TargetNormal,
		Fixed: &FixedDamageRule{Kind: FixedLevelDamage},
	})
	s.AddMove(MoveData{
		ID: "tackle", Name: "Tackle", Type: "normal", Category: CategoryPhysical,
		BasePower: 40, Accuracy: 100, PP: 35, Target: TargetNormal, Flags: FlagContact,
	})
	s.AddMove(MoveData{
		ID: "thunderbolt", Name: "Thunderbolt", Type: "electric", Category: CategorySpecial,
		BasePower: 90, Accuracy: 100, PP: 15, Target: TargetNormal,
		Secondary: []SecondaryEffect{{
			Effect:    HitEffectData{Status: "paralysis"},
			Chance:    10, ChanceDen: 100,
		}},
	})
	s.AddMove(MoveData{
		ID: "watergun", Name: "Water Gun", Type: "water", Category: CategorySpecial,
		BasePower: 40, Accuracy: 100, PP: 25, Target: TargetNormal,
	})
	s.AddMove(MoveData{
		ID: "airslash", Name: "Air Slash", Type: "flying", Category: CategorySpecial,
		BasePower: 75, Accuracy: 95, PP: 15, Target: TargetNormal, CritRatio: 1,
	})
	s.AddMove(MoveData{
		ID: "furyattack", Name: "Fury Attack", Type: "normal", Category: CategoryPhysical,
		BasePower: 15, Accuracy: 85, PP: 20, Target: TargetNormal,
		Flags: FlagContact, HitsMin: 2, HitsMax: 5,
	})
	s.AddMove(MoveData{
		ID: "endeavor", Name: "Endeavor", Type: "normal", Category: CategoryPhysical,
		Accuracy: 100, PP: 5, Target: TargetNormal, Flags: FlagContact,
		Fixed: &FixedDamageRule{Kind: FixedEndeavor},
	})
	_ = halfHP

	s.AddItem(ItemData{ID: "utilityumbrella", Name: "Utility Umbrella", NegatesWeatherDamageBoost: true})

	s.AddAbility(AbilityData{ID: "airlock", Name: "Air Lock", SuppressesWeather: true})
	s.AddAbility(AbilityData{ID: "cloudnine", Name: "Cloud Nine", SuppressesWeather: true})

	s.AddCondition(ConditionData{ID: "rain", Name: "Rain"})
	s.AddCondition(ConditionData{ID: "sun", Name: "Harsh Sunlight"})
	s.AddCondition(ConditionData{ID: "paralysis", Name: "Paralysis"})
	s.AddCondition(ConditionData{ID: "burn", Name: "Burn"})
	s.AddCondition(ConditionData{ID: "poison", Name: "Poison"})
	s.AddCondition(ConditionData{ID: "sleep", Name: "Sleep", DefaultDuration: 3})
	s.AddCondition(ConditionData{ID: "freeze", Name: "Freeze"})

	for _, n := range []NatureData{
		{ID: "hardy", Name: "Hardy", Neutral: true},
		{ID: "serious", Name: "Serious", Neutral: true},
		{ID: "docile", Name: "Docile", Neutral: true},
		{ID: "bashful", Name: "Bashful", Neutral: true},
		{ID: "quirky", Name: "Quirky", Neutral: true},
		{ID: "timid", Name: "Timid", Increase: StatSpe, Decrease: StatAtk},
		{ID: "adamant", Name: "Adamant", Increase: StatAtk, Decrease: StatSpAtk},
		{ID: "modest", Name: "Modest", Increase: StatSpAtk, Decrease: StatAtk},
		{ID: "jolly", Name: "Jolly", Increase: StatSpe, Decrease: StatSpAtk},
	} {
		s.AddNature(n)
	}

	tc := s.TypeChartMutable()
	tc.Set("water", "fire", EffectivenessStrong)
	tc.Set("water", "ground", EffectivenessStrong)
	tc.Set("water", "rock", EffectivenessStrong)
	tc.Set("water", "water", EffectivenessWeak)
	tc.Set("water", "grass", EffectivenessWeak)
	tc.Set("water", "dragon", EffectivenessWeak)
	tc.Set("electric", "water", EffectivenessStrong)
	tc.Set("electric", "flying", EffectivenessStrong)
	tc.Set("electric", "electric", EffectivenessWeak)
	tc.Set("electric", "grass", EffectivenessWeak)
	tc.Set("electric", "dragon", EffectivenessWeak)
	tc.Set("electric", "ground", EffectivenessImmune)
	tc.Set("fighting", "normal", EffectivenessStrong)
	tc.Set("fighting", "ghost", EffectivenessImmune)
	tc.Set("normal", "ghost", EffectivenessImmune)
	tc.Set("normal", "rock", EffectivenessWeak)
	tc.Set("normal", "steel", EffectivenessWeak)
	tc.Set("flying", "grass", EffectivenessStrong)
	tc.Set("flying", "fighting", EffectivenessStrong)
	tc.Set("flying", "bug", EffectivenessStrong)
	tc.Set("flying", "electric", EffectivenessWeak)
	tc.Set("flying", "rock", EffectivenessWeak)
	tc.Set("flying", "steel", EffectivenessWeak)

	return s
}
