package model

import (
	"fmt"

	"github.com/bioreact/rxnlayout/pkg/geometry"
)

// PointerType identifies the terminal glyph drawn at the reaction end of a
// connector.
type PointerType int

const (
	PointerInput PointerType = iota
	PointerOutput
	PointerCatalyst
	PointerActivator
	PointerInhibitor
)

// String returns the string representation of a PointerType.
func (p PointerType) String() string {
	switch p {
	case PointerInput:
		return "Input"
	case PointerOutput:
		return "Output"
	case PointerCatalyst:
		return "Catalyst"
	case PointerActivator:
		return "Activator"
	case PointerInhibitor:
		return "Inhibitor"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// StoichiometryBadge is the small labeled box drawn on a connector when the
// role's stoichiometry is not 1.
type StoichiometryBadge struct {
	Count    int
	Position geometry.Position // a fixed 12x12 box, centered on the badge anchor point
}

// Connector is the routed, segmented line from one entity to the reaction.
type Connector struct {
	Segments    []geometry.Segment
	Pointer     PointerType
	Stoichiometry *StoichiometryBadge // nil when stoichiometry == 1
}

// Validate checks the connector's structural invariants (spec testable
// property 3): at least one segment, and each segment's end coincides with
// the next segment's start.
func (c *Connector) Validate() error {
	if len(c.Segments) == 0 {
		return fmt.Errorf("connector must have at least one segment")
	}
	if !geometry.SegmentsConnected(c.Segments) {
		return fmt.Errorf("connector segments are not contiguous")
	}
	return nil
}

// EndPoint returns the coordinate the connector terminates at (the reaction
// end), i.e. the "To" of its final segment.
func (c *Connector) EndPoint() geometry.Coordinate {
	return c.Segments[len(c.Segments)-1].To
}

// StartPoint returns the coordinate the connector departs from (the entity
// end), i.e. the "From" of its first segment.
func (c *Connector) StartPoint() geometry.Coordinate {
	return c.Segments[0].From
}

// Bounds returns the Position enclosing every segment of the connector.
func (c *Connector) Bounds() geometry.Position {
	return geometry.BoundsOf(c.Segments)
}
