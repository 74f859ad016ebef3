// Package geometry provides the 2D value types shared by every stage of the
// layout pipeline: axis-aligned positions, coordinates, and line segments.
package geometry
