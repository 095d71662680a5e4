// Package data implements the read-only static data store the battle core
// reads through: species, move, item, ability, condition, type-chart and
// nature records, each keyed by a canonical ID.
//
// The store is a pure lookup boundary — it never mutates battle state and
// is never written to by the core. Records are loaded from YAML fixture
// directories: one collection file per record kind, unmarshalled with
// gopkg.in/yaml.v3, indexed by normalised ID.
package data
