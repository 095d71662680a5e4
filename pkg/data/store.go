package data

import "fmt"

// Store is the read-only lookup interface the battle core and the
// calculator read static game data through. Every method takes a raw
// name/ID, normalises it internally, and returns ErrNotFound when the
// record does not exist — a data lookup miss is always a programmer/data
// error per the governing error-handling design, so callers at the battle
// entry points convert it into a fatal result rather than a gameplay
// outcome.
type Store interface {
	Species(id string) (*SpeciesData, error)
	Move(id string) (*MoveData, error)
	Item(id string) (*ItemData, error)
	Ability(id string) (*AbilityData, error)
	Condition(id string) (*ConditionData, error)
	Nature(id string) (*NatureData, error)
	TypeChart() *TypeChart
}

// ErrNotFound is returned by a Store method when no record exists under
// the normalised ID.
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("data: %s not found: %q", e.Kind, e.ID)
}
