// Package battle implements the authoritative, seeded, turn-based battle
// core: the state model (field/side/player/mon/effect state), the
// hook-dispatch pipeline effects register against, the damage/move
// formula shared by the calculator and the live engine, the action
// scheduler, the per-hit move execution pipeline, the state mutation
// primitives, and the append-only event log.
//
// The package follows a flat, single-package layout: related types live
// side by side as plain Go files rather than being split into
// sub-packages, because the hook dispatcher, the formula and the state
// model are mutually recursive in ways that would otherwise force import
// cycles.
package battle
