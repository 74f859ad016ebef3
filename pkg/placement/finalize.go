package placement

import (
	"math"

	"github.com/bioreact/rxnlayout/pkg/model"
	"github.com/bioreact/rxnlayout/pkg/textmetrics"
)

// RowColPadding is the spec's fixed padding added on each side of a row's
// height or a column's width beyond its content (spec §4.3).
const RowColPadding = 12.0

// TopHookPad is the extra clearance added above a grid row that holds an
// entity wearing both INPUT and CATALYST roles, so the bi-role catalyst
// hook (spec §4.4) has room to route above the glyph.
const TopHookPad = 50.0

// RegulatorGap is the fixed spacing enforced between adjacent regulator
// glyphs during the local regulator-strip compaction below.
const RegulatorGap = 16.0

// sizeGrid sizes every row and column from its cells' content, compartment
// minimum widths, and the bi-role top-pad rule, then assigns absolute
// row/column offsets and translates every glyph from cell-local to
// grid-absolute coordinates.
func sizeGrid(g *Grid, tree *model.Compartment, tm textmetrics.TextMetrics) {
	names := compartmentNames(tree)

	for i := range g.Rows {
		for _, c := range g.Cells[i] {
			sizeCell(c, tm)
		}
	}

	for i, row := range g.Rows {
		var maxH float64
		for _, c := range g.Cells[i] {
			if c.Empty() {
				continue
			}
			if c.ContentH > maxH {
				maxH = c.ContentH
			}
		}
		row.Height = maxH + 2*RowColPadding
		if rowHasInputCatalystBiRole(g, i) {
			row.TopPad = TopHookPad
		}
	}

	for j, col := range g.Cols {
		var maxW float64
		for i := range g.Rows {
			c := g.Cells[i][j]
			if c.Empty() {
				continue
			}
			if c.ContentW > maxW {
				maxW = c.ContentW
			}
		}
		width := maxW + 2*RowColPadding
		if col.CompartmentID != "" {
			if name, ok := names[col.CompartmentID]; ok {
				minWidth := 2*model.CompartmentPadding + tm.Width(name)
				if minWidth > width {
					width = minWidth
				}
			}
		}
		col.Width = width
	}

	var y float64
	for _, row := range g.Rows {
		y += row.TopPad
		row.Y = y
		y += row.Height
	}
	var x float64
	for _, col := range g.Cols {
		col.X = x
		x += col.Width
	}

	placeGlyphs(g)
	compactRegulatorStrips(g)
}

// rowHasInputCatalystBiRole reports whether any cell of the row holds an
// entity carrying both INPUT and CATALYST roles.
func rowHasInputCatalystBiRole(g *Grid, row int) bool {
	for _, c := range g.Cells[row] {
		if c.Empty() {
			continue
		}
		for _, e := range c.Entities {
			if e.HasRole(model.Input) && e.HasRole(model.Catalyst) {
				return true
			}
		}
	}
	return false
}

// placeGlyphs shifts every entity's cell-local Position onto the grid's
// absolute coordinates, centering each cell within its row/column span.
func placeGlyphs(g *Grid) {
	for i, row := range g.Rows {
		for j, col := range g.Cols {
			c := g.Cells[i][j]
			if c.Empty() {
				continue
			}
			// Cell-local positions may start left of / above the local
			// origin (single-column and horizontal tiles center glyphs on
			// it), so center the cell's actual local bounds.
			minX, minY := c.Entities[0].Position.X, c.Entities[0].Position.Y
			for _, e := range c.Entities[1:] {
				minX = math.Min(minX, e.Position.X)
				minY = math.Min(minY, e.Position.Y)
			}
			cx := col.X + col.Width/2
			cy := row.Y + row.Height/2
			offsetX := cx - (minX + c.ContentW/2)
			offsetY := cy - (minY + c.ContentH/2)
			for _, e := range c.Entities {
				e.Position.X += offsetX
				e.Position.Y += offsetY
			}
		}
	}
}

// compartmentNames flattens the compartment tree into an accession->name
// lookup, used for compartment minimum-width enforcement.
func compartmentNames(tree *model.Compartment) map[string]string {
	out := map[string]string{}
	if tree == nil {
		return out
	}
	tree.Walk(func(c *model.Compartment) {
		out[c.Accession] = c.Name
	})
	return out
}

// compactRegulatorStrips slides each regulator row's glyphs so they are
// centered on the reaction's horizontal center with a fixed gap between
// them, per the spec's local regulator-strip compaction rule.
func compactRegulatorStrips(g *Grid) {
	reactionCenterX := g.Cols[g.ReactionCol].X + g.Cols[g.ReactionCol].Width/2
	for i, row := range g.Rows {
		if row.Band != BandRegulatorRow {
			continue
		}
		c := g.Cells[i][g.ReactionCol]
		if c.Empty() {
			continue
		}
		totalW := -RegulatorGap
		for _, e := range c.Entities {
			totalW += e.Position.W + RegulatorGap
		}
		x := reactionCenterX - totalW/2
		for _, e := range c.Entities {
			e.Position.X = x
			x += e.Position.W + RegulatorGap
		}
	}
}
