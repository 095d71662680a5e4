package data

// ComputeStat derives one non-HP stat from base stat, individual value,
// effort value, level and nature, per §4.2 step 6: floor the raw stat,
// then apply the nature multiplier (1.1 increased, 0.9 decreased, 1.0
// neutral), then floor again.
func ComputeStat(base, iv, ev, level int, nature *NatureData, stat Stat) int {
	raw := (2*base+iv+ev/4)*level/100 + 5
	if nature == nil || nature.Neutral {
		return raw
	}
	switch stat {
	case nature.Increase:
		return raw * 110 / 100
	case nature.Decrease:
		return raw * 90 / 100
	default:
		return raw
	}
}

// ComputeHP derives max HP from base stat, individual value, effort value
// and level. HP has no nature multiplier.
func ComputeHP(base, iv, ev, level int) int {
	return (2*base+iv+ev/4)*level/100 + level + 10
}

// IVRange/EVRange bound the unknown-stat assumption the calculator makes
// when an attacker or defender's exact IV/EV is not supplied: individual
// values span the full legal 0..31, effort values the full legal 0..252.
const (
	IVMin = 0
	IVMax = 31
	EVMin = 0
	EVMax = 252
)
