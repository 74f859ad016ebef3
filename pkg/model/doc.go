// Package model defines the reaction diagram's domain types: the reaction
// itself, the physical entities that participate in it, their roles, the
// compartment tree that contains them, and the connectors that tie them
// together once routed. These are the glyphs the layout engine positions.
package model
