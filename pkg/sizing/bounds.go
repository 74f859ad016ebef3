package sizing

import (
	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/model"
	"github.com/bioreact/rxnlayout/pkg/textmetrics"
)

// reactionPadX, reactionPadY are the asymmetric padding the reaction shape
// contributes to its containing compartment's bounds (spec §4.5), wider
// than tall to leave visual room for its backbone segments.
const (
	reactionPadX = 80.0
	reactionPadY = 40.0
)

// labelMinWidthMargin is the flat margin spec §4.5's compartment-sizing
// check adds to its name's text width when enforcing a minimum compartment
// width: "if the padded width is less than text_width(name) + 30, expand
// width symmetrically". This is a distinct rule from the grid column's
// minimum-width formula in pkg/placement/finalize.go (2*compartment_padding
// + text_width, spec §4.3) — the two sections use different constants and
// must not be conflated.
const labelMinWidthMargin = 30.0

// wireGlyphMembership attaches every entity and the reaction to its
// compartment's Glyphs list, by accession, so the post-order bounds pass
// below can fold each compartment's direct contents into its own bounds.
func wireGlyphMembership(tree *model.Compartment, reaction *model.Reaction, entities []*model.Entity) map[string]*model.Compartment {
	byAccession := map[string]*model.Compartment{}
	tree.Walk(func(c *model.Compartment) {
		byAccession[c.Accession] = c
	})
	for _, e := range entities {
		if c, ok := byAccession[e.CompartmentID]; ok {
			c.AddGlyph(e.ID)
		}
	}
	if reaction != nil {
		if c, ok := byAccession[reaction.CompartmentID]; ok {
			c.AddGlyph(reaction.ID)
		}
	}
	return byAccession
}

// sizeCompartments walks the tree post-order, folding each compartment's
// children, directly-contained glyphs, the reaction (when directly
// contained, padded asymmetrically), and the bi-role catalyst hook
// enclosure point into its bounds, then applies uniform padding and the
// text-width-driven minimum width.
func sizeCompartments(tree *model.Compartment, reaction *model.Reaction, entitiesByID map[string]*model.Entity, tm textmetrics.TextMetrics) {
	tree.WalkPostOrder(func(c *model.Compartment) {
		var acc geometry.Position
		for _, child := range c.Children {
			acc = geometry.Union(acc, child.Position)
		}
		for _, id := range c.Glyphs {
			if e, ok := entitiesByID[id]; ok {
				acc = geometry.Union(acc, e.Position)
				if e.HasRole(model.Input) && e.HasRole(model.Catalyst) && e.Connector != nil {
					acc = geometry.Union(acc, hookEnclosurePoint(e))
				}
				continue
			}
			if reaction != nil && id == reaction.ID {
				acc = geometry.Union(acc, reaction.Position.PadXY(reactionPadX, reactionPadY))
			}
		}

		acc = acc.Pad(model.CompartmentPadding)
		minWidth := tm.Width(c.Name) + labelMinWidthMargin
		if acc.W < minWidth {
			delta := minWidth - acc.W
			acc.X -= delta / 2
			acc.W = minWidth
		}
		c.Position = acc
	})
}

// hookEnclosurePoint returns the degenerate 1x1 Position the bi-role
// catalyst hook's topmost point contributes to its compartment's bounds,
// so the compartment box fully encloses the hook instead of letting it
// cross the compartment's own border.
func hookEnclosurePoint(e *model.Entity) geometry.Position {
	minY := e.Connector.Segments[0].From.Y
	for _, s := range e.Connector.Segments {
		if s.From.Y < minY {
			minY = s.From.Y
		}
		if s.To.Y < minY {
			minY = s.To.Y
		}
	}
	return geometry.Position{X: e.Position.X, Y: minY, W: 1, H: 1}
}

// overallBounds returns the Position enclosing every emitted (non-sentinel)
// compartment, the reaction, every entity, and every connector segment in
// the layout.
func overallBounds(tree *model.Compartment, reaction *model.Reaction, entities []*model.Entity) geometry.Position {
	var acc geometry.Position
	tree.Walk(func(c *model.Compartment) {
		if !c.IsExtracellular() {
			acc = geometry.Union(acc, c.Position)
		}
	})
	if reaction != nil {
		acc = geometry.Union(acc, reaction.Position)
	}
	for _, e := range entities {
		acc = geometry.Union(acc, e.Position)
		if e.Connector != nil {
			acc = geometry.Union(acc, geometry.BoundsOf(e.Connector.Segments))
		}
	}
	return acc
}
