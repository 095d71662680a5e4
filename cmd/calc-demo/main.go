// Command calc-demo runs the damage calculator against a frozen matchup
// and prints its output, reproducing the level-100 neutral Tackle scenario
// (§8 scenario 2): Venusaur (Serious, max IVs, 0 EVs) attacking Charizard
// (Timid, max IVs, 0 EVs).
package main

import (
	"flag"
	"fmt"

	"battlesim/pkg/battle"
	"battlesim/pkg/data"

	"github.com/sirupsen/logrus"
)

// Config holds the command-line configuration for the demo.
type Config struct {
	Attacker string
	Defender string
	Move     string
	Crit     bool
}

// parseFlags parses command-line flags and returns the configuration.
func parseFlags() *Config {
	attacker := flag.String("attacker", "venusaur", "attacking species ID")
	defender := flag.String("defender", "charizard", "defending species ID")
	move := flag.String("move", "tackle", "move ID")
	crit := flag.Bool("crit", false, "compute as a critical hit")
	flag.Parse()
	return &Config{Attacker: *attacker, Defender: *defender, Move: *move, Crit: *crit}
}

// buildCalcMon loads species/nature from store and builds a CalcMon with
// max IVs and zero EVs at level 100, matching the worked scenario's inputs.
func buildCalcMon(store data.Store, speciesID, natureID string) (*battle.CalcMon, error) {
	species, err := store.Species(speciesID)
	if err != nil {
		return nil, fmt.Errorf("species %q: %w", speciesID, err)
	}
	nature, err := store.Nature(natureID)
	if err != nil {
		return nil, fmt.Errorf("nature %q: %w", natureID, err)
	}
	maxIVs := data.StatTable{HP: data.IVMax, Atk: data.IVMax, Def: data.IVMax, SpAtk: data.IVMax, SpDef: data.IVMax, Spe: data.IVMax}
	zeroEVs := data.StatTable{}
	return &battle.CalcMon{
		Species: species,
		Level:   100,
		Nature:  nature,
		IVs:     &maxIVs,
		EVs:     &zeroEVs,
	}, nil
}

// run executes the calculator demo with the provided configuration and
// returns any error. If cfg is nil, it parses command-line flags.
func run(cfg *Config) error {
	if cfg == nil {
		cfg = parseFlags()
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	store := data.DefaultStore()

	attacker, err := buildCalcMon(store, cfg.Attacker, "serious")
	if err != nil {
		return err
	}
	defender, err := buildCalcMon(store, cfg.Defender, "timid")
	if err != nil {
		return err
	}

	result, err := battle.Calculate(battle.CalcRequest{
		Store:    store,
		Attacker: attacker,
		Defender: defender,
		MoveID:   cfg.Move,
		Crit:     cfg.Crit,
	})
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}

	fmt.Printf("=== Damage Calculator Demo ===\n")
	fmt.Printf("%s (Serious) -> %s (Timid) using %q\n\n", cfg.Attacker, cfg.Defender, cfg.Move)

	for i, hit := range result.PerHit {
		span := hit.Damage.Value.Reduce()
		fmt.Printf("Hit %d:\n", i+1)
		fmt.Printf("  base power:    %d\n", hit.BasePower)
		fmt.Printf("  attack range:  [%d,%d]\n", hit.Attack.Value.Min, hit.Attack.Value.Max)
		fmt.Printf("  defense range: [%d,%d]\n", hit.Defense.Value.Min, hit.Defense.Value.Max)
		fmt.Printf("  effectiveness: %s\n", hit.Effectiveness.Value)
		fmt.Printf("  damage span:   [%d,%d]\n", span.Min, span.Max)
		fmt.Printf("  trace:\n")
		for _, step := range hit.Damage.Trace {
			fmt.Printf("    %s - %s\n", step.Op, step.Reason)
		}
	}
	fmt.Printf("\ntarget hp range: [%d,%d]\n", result.TargetHPRange.Min, result.TargetHPRange.Max)

	return nil
}

func main() {
	if err := run(nil); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
