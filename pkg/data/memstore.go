package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// MemoryStore is an in-process Store backed by maps populated from YAML
// fixture collections: a directory of *.yaml files loaded into an
// in-memory map keyed by canonical ID.
type MemoryStore struct {
	species    map[string]*SpeciesData
	moves      map[string]*MoveData
	items      map[string]*ItemData
	abilities  map[string]*AbilityData
	conditions map[string]*ConditionData
	natures    map[string]*NatureData
	typeChart  *TypeChart
}

// NewMemoryStore returns an empty store with an empty type chart. Use the
// Add* methods or LoadDirectory to populate it.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		species:    make(map[string]*SpeciesData),
		moves:      make(map[string]*MoveData),
		items:      make(map[string]*ItemData),
		abilities:  make(map[string]*AbilityData),
		conditions: make(map[string]*ConditionData),
		natures:    make(map[string]*NatureData),
		typeChart:  NewTypeChart(),
	}
}

// AddSpecies registers sp under its normalised ID.
func (s *MemoryStore) AddSpecies(sp SpeciesData) {
	sp.ID = NormalizeID(sp.ID)
	s.species[sp.ID] = &sp
}

// AddMove registers mv under its normalised ID.
func (s *MemoryStore) AddMove(mv MoveData) {
	mv.ID = NormalizeID(mv.ID)
	s.moves[mv.ID] = &mv
}

// AddItem registers it under its normalised ID.
func (s *MemoryStore) AddItem(it ItemData) {
	it.ID = NormalizeID(it.ID)
	s.items[it.ID] = &it
}

// AddAbility registers ab under its normalised ID.
func (s *MemoryStore) AddAbility(ab AbilityData) {
	ab.ID = NormalizeID(ab.ID)
	s.abilities[ab.ID] = &ab
}

// AddCondition registers c under its normalised ID.
func (s *MemoryStore) AddCondition(c ConditionData) {
	c.ID = NormalizeID(c.ID)
	s.conditions[c.ID] = &c
}

// AddNature registers n under its normalised ID.
func (s *MemoryStore) AddNature(n NatureData) {
	n.ID = NormalizeID(n.ID)
	s.natures[n.ID] = &n
}

// TypeChartMutable returns the chart backing this store, for population via Set.
func (s *MemoryStore) TypeChartMutable() *TypeChart {
	return s.typeChart
}

func (s *MemoryStore) Species(id string) (*SpeciesData, error) {
	if v, ok := s.species[NormalizeID(id)]; ok {
		return v, nil
	}
	return nil, &ErrNotFound{Kind: "species", ID: id}
}

func (s *MemoryStore) Move(id string) (*MoveData, error) {
	if v, ok := s.moves[NormalizeID(id)]; ok {
		return v, nil
	}
	return nil, &ErrNotFound{Kind: "move", ID: id}
}

func (s *MemoryStore) Item(id string) (*ItemData, error) {
	if v, ok := s.items[NormalizeID(id)]; ok {
		return v, nil
	}
	return nil, &ErrNotFound{Kind: "item", ID: id}
}

func (s *MemoryStore) Ability(id string) (*AbilityData, error) {
	if v, ok := s.abilities[NormalizeID(id)]; ok {
		return v, nil
	}
	return nil, &ErrNotFound{Kind: "ability", ID: id}
}

func (s *MemoryStore) Condition(id string) (*ConditionData, error) {
	if v, ok := s.conditions[NormalizeID(id)]; ok {
		return v, nil
	}
	return nil, &ErrNotFound{Kind: "condition", ID: id}
}

func (s *MemoryStore) Nature(id string) (*NatureData, error) {
	if v, ok := s.natures[NormalizeID(id)]; ok {
		return v, nil
	}
	return nil, &ErrNotFound{Kind: "nature", ID: id}
}

func (s *MemoryStore) TypeChart() *TypeChart {
	return s.typeChart
}

// speciesCollection/moveCollection are thin wrapper structs so a fixture
// file can hold a named list under a single top-level YAML key.
type speciesCollection struct {
	Species []SpeciesData `yaml:"species"`
}

type moveCollection struct {
	Moves []MoveData `yaml:"moves"`
}

type itemCollection struct {
	Items []ItemData `yaml:"items"`
}

type abilityCollection struct {
	Abilities []AbilityData `yaml:"abilities"`
}

type conditionCollection struct {
	Conditions []ConditionData `yaml:"conditions"`
}

type natureCollection struct {
	Natures []NatureData `yaml:"natures"`
}

// LoadDirectory loads every *.yaml/*.yml fixture file in dir into the
// store. Each file is tried against every known collection shape in turn;
// a file is skipped (not an error) if it doesn't match any of them, since
// a fixture directory may mix species/moves/items/etc. across files.
func (s *MemoryStore) LoadDirectory(dir string) error {
	logrus.WithFields(logrus.Fields{
		"function": "LoadDirectory",
		"package":  "data",
		"dir":      dir,
	}).Debug("entering LoadDirectory")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("data: read fixture dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		path := filepath.Join(dir, name)
		if err := s.loadFile(path); err != nil {
			return fmt.Errorf("data: load fixture %s: %w", name, err)
		}
	}
	return nil
}

func (s *MemoryStore) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var sc speciesCollection
	if err := yaml.Unmarshal(raw, &sc); err == nil && len(sc.Species) > 0 {
		for _, sp := range sc.Species {
			s.AddSpecies(sp)
		}
		return nil
	}

	var mc moveCollection
	if err := yaml.Unmarshal(raw, &mc); err == nil && len(mc.Moves) > 0 {
		for _, mv := range mc.Moves {
			s.AddMove(mv)
		}
		return nil
	}

	var ic itemCollection
	if err := yaml.Unmarshal(raw, &ic); err == nil && len(ic.Items) > 0 {
		for _, it := range ic.Items {
			s.AddItem(it)
		}
		return nil
	}

	var ac abilityCollection
	if err := yaml.Unmarshal(raw, &ac); err == nil && len(ac.Abilities) > 0 {
		for _, ab := range ac.Abilities {
			s.AddAbility(ab)
		}
		return nil
	}

	var cc conditionCollection
	if err := yaml.Unmarshal(raw, &cc); err == nil && len(cc.Conditions) > 0 {
		for _, c := range cc.Conditions {
			s.AddCondition(c)
		}
		return nil
	}

	var nc natureCollection
	if err := yaml.Unmarshal(raw, &nc); err == nil && len(nc.Natures) > 0 {
		for _, n := range nc.Natures {
			s.AddNature(n)
		}
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"function": "loadFile",
		"package":  "data",
		"path":     path,
	}).Warn("fixture file matched no known collection shape")
	return nil
}
