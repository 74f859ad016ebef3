package placement

import (
	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/index"
	"github.com/bioreact/rxnlayout/pkg/model"
	"github.com/bioreact/rxnlayout/pkg/textmetrics"
)

// Place runs the full grid placement algorithm: build the banded grid,
// compact away empty rows/columns, size and position every row/column, and
// assign every entity and the reaction itself an absolute Position. It
// returns the finalized Grid for use by the router and sizing stages.
func Place(reaction *model.Reaction, tree *model.Compartment, idx *index.RoleIndex, tm textmetrics.TextMetrics) *Grid {
	g := buildGrid(tree, idx)
	compactEmpty(g)
	enforceNoDiagonal(g)
	sizeGrid(g, tree, tm)

	rw, rh := reaction.DefaultSize()
	reactionCol := g.Cols[g.ReactionCol]
	reactionRow := g.Rows[g.ReactionRow]
	reaction.Position = geometry.Position{
		X: reactionCol.X + reactionCol.Width/2 - rw/2,
		Y: reactionRow.Y + reactionRow.Height/2 - rh/2,
		W: rw,
		H: rh,
	}
	reaction.ComputeBackbone()

	return g
}
