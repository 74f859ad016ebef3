package placement

import (
	"github.com/bioreact/rxnlayout/pkg/index"
	"github.com/bioreact/rxnlayout/pkg/model"
)

// buildGrid constructs the row/column bands (spec §4.3's table) and fills
// cells from idx, using tree to order compartments outer-first or
// inner-first per band.
func buildGrid(tree *model.Compartment, idx *index.RoleIndex) *Grid {
	catalystOrder, catalystGroups := index.GroupByCompartment(idx.Catalysts)
	catalystOrder = sortOuterFirst(tree, catalystOrder)

	regulators := append(append([]*model.Entity(nil), idx.PositiveRegulators...), idx.NegativeRegulators...)
	regulators = dedupe(regulators)
	regulatorOrder, regulatorGroups := index.GroupByCompartment(regulators)
	regulatorOrder = sortInnerFirst(tree, regulatorOrder)

	inputOrder, inputGroups := index.GroupByCompartment(idx.Inputs)
	inputOrder = sortOuterFirst(tree, inputOrder)

	outputOrder, outputGroups := index.GroupByCompartment(idx.Outputs)
	outputOrder = sortInnerFirst(tree, outputOrder)

	var rows []*Row
	for _, acc := range catalystOrder {
		rows = append(rows, &Row{Band: BandCatalystRow, CompartmentID: acc})
	}
	rows = append(rows, &Row{Band: BandReactionRow})
	for _, acc := range regulatorOrder {
		rows = append(rows, &Row{Band: BandRegulatorRow, CompartmentID: acc})
	}

	var cols []*Col
	for _, acc := range inputOrder {
		cols = append(cols, &Col{Band: BandInputCol, CompartmentID: acc})
	}
	cols = append(cols, &Col{Band: BandReactionCol})
	// outputOrder is inner-first; the column immediately right of the
	// reaction must be the innermost compartment, so append in that order.
	for _, acc := range outputOrder {
		cols = append(cols, &Col{Band: BandOutputCol, CompartmentID: acc})
	}

	g := newGrid(rows, cols)

	rowIndexByCompartment := func(band RowBand, acc string) int {
		for i, r := range g.Rows {
			if r.Band == band && r.CompartmentID == acc {
				return i
			}
		}
		return -1
	}
	colIndexByCompartment := func(band ColBand, acc string) int {
		for i, c := range g.Cols {
			if c.Band == band && c.CompartmentID == acc {
				return i
			}
		}
		return -1
	}

	for _, acc := range inputOrder {
		col := colIndexByCompartment(BandInputCol, acc)
		for _, e := range inputGroups[acc] {
			g.place(g.ReactionRow, col, KindVertical, e)
		}
	}
	for _, acc := range outputOrder {
		col := colIndexByCompartment(BandOutputCol, acc)
		for _, e := range outputGroups[acc] {
			g.place(g.ReactionRow, col, KindVertical, e)
		}
	}
	for _, acc := range catalystOrder {
		row := rowIndexByCompartment(BandCatalystRow, acc)
		for _, e := range catalystGroups[acc] {
			if e.HasRole(model.Input) {
				continue // bi-role glyph sits in its input column (see primaryRole)
			}
			g.place(row, g.ReactionCol, KindHorizontal, e)
		}
	}
	for _, acc := range regulatorOrder {
		row := rowIndexByCompartment(BandRegulatorRow, acc)
		for _, e := range regulatorGroups[acc] {
			g.place(row, g.ReactionCol, KindHorizontal, e)
		}
	}

	return g
}

// dedupe removes duplicate pointers from a slice, preserving first-seen order.
func dedupe(entities []*model.Entity) []*model.Entity {
	seen := make(map[*model.Entity]bool, len(entities))
	out := make([]*model.Entity, 0, len(entities))
	for _, e := range entities {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
