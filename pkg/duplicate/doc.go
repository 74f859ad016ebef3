// Package duplicate implements the entity-duplication pass (spec §4.2):
// entities carrying a conflicting combination of role types are split into
// two glyphs, each with a disjoint, compatible role set.
package duplicate
