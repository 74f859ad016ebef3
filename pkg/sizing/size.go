package sizing

import (
	"github.com/bioreact/rxnlayout/pkg/model"
	"github.com/bioreact/rxnlayout/pkg/textmetrics"
)

// Size runs the full finalization pass (spec §4.5): wires glyph membership,
// expands compartment bounds bottom-up, places labels, and translates the
// entire layout so its overall bounds start at the origin.
func Size(tree *model.Compartment, reaction *model.Reaction, entities []*model.Entity, tm textmetrics.TextMetrics) {
	entitiesByID := make(map[string]*model.Entity, len(entities))
	for _, e := range entities {
		entitiesByID[e.ID] = e
	}

	wireGlyphMembership(tree, reaction, entities)
	sizeCompartments(tree, reaction, entitiesByID, tm)
	labelCompartments(tree, tm)

	bounds := overallBounds(tree, reaction, entities)
	translateAll(tree, reaction, entities, -bounds.MinX(), -bounds.MinY())
}

// EmittedCompartments returns every compartment in tree except the
// synthetic extracellular-region sentinel the compartment builder (C2)
// attaches as the structural root during computation (spec §4.1, §4.5).
func EmittedCompartments(tree *model.Compartment) []*model.Compartment {
	var out []*model.Compartment
	tree.Walk(func(c *model.Compartment) {
		if !c.IsExtracellular() {
			out = append(out, c)
		}
	})
	return out
}
