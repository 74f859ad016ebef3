package model

import (
	"fmt"

	"github.com/bioreact/rxnlayout/pkg/geometry"
)

// ShapeClass identifies the reaction glyph's drawn shape.
type ShapeClass int

const (
	ShapeTransition ShapeClass = iota
	ShapeBinding
	ShapeDissociation
	ShapeOmitted
	ShapeUncertain
)

// String returns the string representation of a ShapeClass.
func (s ShapeClass) String() string {
	switch s {
	case ShapeTransition:
		return "Transition"
	case ShapeBinding:
		return "Binding"
	case ShapeDissociation:
		return "Dissociation"
	case ShapeOmitted:
		return "Omitted"
	case ShapeUncertain:
		return "Uncertain"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// BackboneHalfLength is the fixed length each backbone segment extends to
// either side of the reaction shape (spec §3).
const BackboneHalfLength = 30.0

// baseReactionSize is the default (width, height) of the reaction shape
// before any participant-driven adjustment.
const (
	baseReactionWidth  = 20.0
	baseReactionHeight = 20.0
)

// Reaction is the central glyph every entity connects to.
type Reaction struct {
	ID            string
	Name          string
	CompartmentID string
	Shape         ShapeClass
	Position      geometry.Position
	Backbone      [2]geometry.Segment // [0] = left backbone, [1] = right backbone
}

// Validate checks that the reaction has a non-empty ID.
func (r *Reaction) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("reaction ID cannot be empty")
	}
	return nil
}

// DefaultSize returns the reaction glyph's default (width, height).
func (r *Reaction) DefaultSize() (w, h float64) {
	return baseReactionWidth, baseReactionHeight
}

// LeftPort returns the point on the reaction's left edge where input
// connectors terminate (spec §4.4): 20 units left of the shape, at the
// shape's vertical center.
func (r *Reaction) LeftPort() geometry.Coordinate {
	return geometry.Coordinate{X: r.Position.MinX() - 20, Y: r.Position.CenterY()}
}

// RightPort returns the point on the reaction's right edge where output
// connectors terminate.
func (r *Reaction) RightPort() geometry.Coordinate {
	return geometry.Coordinate{X: r.Position.MaxX() + 20, Y: r.Position.CenterY()}
}

// ComputeBackbone derives the two fixed-length horizontal backbone segments
// flanking the reaction shape, extending BackboneHalfLength to either side
// from the shape's port.
func (r *Reaction) ComputeBackbone() {
	cy := r.Position.CenterY()
	left := r.LeftPort()
	right := r.RightPort()
	r.Backbone[0] = geometry.NewSegment(left.X-BackboneHalfLength, cy, left.X, cy)
	r.Backbone[1] = geometry.NewSegment(right.X, cy, right.X+BackboneHalfLength, cy)
}

// String returns a human-readable representation of the Reaction.
func (r *Reaction) String() string {
	return fmt.Sprintf("Reaction[%s: %s %s]", r.ID, r.Name, r.Shape)
}
