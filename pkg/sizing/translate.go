package sizing

import (
	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/model"
)

// translateAll shifts every compartment, the reaction, every entity, and
// every connector segment by (dx, dy), so the caller can move the whole
// layout's overall bounds to start at the origin.
func translateAll(tree *model.Compartment, reaction *model.Reaction, entities []*model.Entity, dx, dy float64) {
	tree.Walk(func(c *model.Compartment) {
		c.Position = c.Position.Translate(dx, dy)
		c.LabelPosition.X += dx
		c.LabelPosition.Y += dy
	})
	if reaction != nil {
		reaction.Position = reaction.Position.Translate(dx, dy)
		reaction.ComputeBackbone()
	}
	for _, e := range entities {
		e.Position = e.Position.Translate(dx, dy)
		if e.Connector != nil {
			translateConnector(e.Connector, dx, dy)
		}
	}
}

func translateConnector(c *model.Connector, dx, dy float64) {
	for i, s := range c.Segments {
		c.Segments[i] = geometry.Segment{
			From: geometry.Coordinate{X: s.From.X + dx, Y: s.From.Y + dy},
			To:   geometry.Coordinate{X: s.To.X + dx, Y: s.To.Y + dy},
		}
	}
	if c.Stoichiometry != nil {
		c.Stoichiometry.Position = c.Stoichiometry.Position.Translate(dx, dy)
	}
}
