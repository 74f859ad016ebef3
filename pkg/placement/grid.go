package placement

import (
	"sort"

	"github.com/bioreact/rxnlayout/pkg/model"
)

// TileKind distinguishes how a cell's glyphs are laid out internally.
type TileKind int

const (
	// KindVertical stacks glyphs one per row (inputs/outputs); past 6
	// glyphs it switches to a two-column arrangement (spec §4.3).
	KindVertical TileKind = iota
	// KindHorizontal lays glyphs out one per column (catalysts/regulators).
	KindHorizontal
)

// RowBand identifies which horizontal band of the grid a row belongs to.
type RowBand int

const (
	BandCatalystRow RowBand = iota
	BandReactionRow
	BandRegulatorRow
)

// ColBand identifies which vertical band of the grid a column belongs to.
type ColBand int

const (
	BandInputCol ColBand = iota
	BandReactionCol
	BandOutputCol
)

// Row is one horizontal strip of the grid.
type Row struct {
	Band          RowBand
	CompartmentID string // empty for the reaction row
	Height        float64
	TopPad        float64 // extra top padding (e.g. the 50-unit catalyst-hook clearance)
	Y             float64 // top edge, assigned during finalization
}

// Col is one vertical strip of the grid.
type Col struct {
	Band          ColBand
	CompartmentID string // empty for the reaction column
	Width         float64
	X             float64 // left edge, assigned during finalization
}

// Cell is one (row, col) tile of the grid, holding every glyph assigned to
// that (compartment, role) pair.
type Cell struct {
	Row, Col      int
	Kind          TileKind
	CompartmentID string
	Role          model.RoleType // role the cell was built for; informational for horizontal tiles mixing +/- regulators
	Entities      []*model.Entity

	ContentW, ContentH float64 // intrinsic content size before row/col sizing
}

// Empty reports whether the cell holds no entities.
func (c *Cell) Empty() bool {
	return c == nil || len(c.Entities) == 0
}

// Grid is the full 2D placement grid.
type Grid struct {
	Rows []*Row
	Cols []*Col
	// Cells is addressed [row][col]; nil entries represent empty cells.
	Cells [][]*Cell

	ReactionRow int
	ReactionCol int
}

// newGrid allocates a grid with the given row/col descriptors, recording the
// reaction at the intersection of the reaction row/col band.
func newGrid(rows []*Row, cols []*Col) *Grid {
	g := &Grid{Rows: rows, Cols: cols}
	g.Cells = make([][]*Cell, len(rows))
	for i := range g.Cells {
		g.Cells[i] = make([]*Cell, len(cols))
	}
	for i, r := range rows {
		if r.Band == BandReactionRow {
			g.ReactionRow = i
		}
	}
	for i, c := range cols {
		if c.Band == BandReactionCol {
			g.ReactionCol = i
		}
	}
	return g
}

// cell returns the cell at (row, col), creating it with the given kind and
// role if absent.
func (g *Grid) cell(row, col int, kind TileKind, compartmentID string, role model.RoleType) *Cell {
	if g.Cells[row][col] == nil {
		g.Cells[row][col] = &Cell{Row: row, Col: col, Kind: kind, CompartmentID: compartmentID, Role: role}
	}
	return g.Cells[row][col]
}

// place appends an entity to the cell at (row, col).
func (g *Grid) place(row, col int, kind TileKind, e *model.Entity) {
	c := g.cell(row, col, kind, e.CompartmentID, primaryRole(e))
	c.Entities = append(c.Entities, e)
}

// primaryRole returns the role that determines an entity's grid placement,
// under the precedence INPUT > OUTPUT > CATALYST > POSITIVE_REGULATOR >
// NEGATIVE_REGULATOR. Post-duplication (pkg/duplicate), an entity never
// carries both INPUT and OUTPUT, and never carries CATALYST together with
// either regulator type, so this precedence is unambiguous for every role
// set that can reach placement; the one remaining compatible multi-role set
// is {INPUT, CATALYST}, for which INPUT correctly wins (the glyph sits in
// the input column; the catalyst role is expressed purely through the
// connector's hook segments, spec §4.4).
func primaryRole(e *model.Entity) model.RoleType {
	switch {
	case e.HasRole(model.Input):
		return model.Input
	case e.HasRole(model.Output):
		return model.Output
	case e.HasRole(model.Catalyst):
		return model.Catalyst
	case e.HasRole(model.PositiveRegulator):
		return model.PositiveRegulator
	default:
		return model.NegativeRegulator
	}
}

// compartmentDepth returns the number of ancestors of the compartment with
// the given accession (0 for the tree root), used to order bands
// outer-first or inner-first.
func compartmentDepth(tree *model.Compartment, accession string) int {
	depth := -1
	tree.Walk(func(c *model.Compartment) {
		if c.Accession == accession {
			depth = len(c.Ancestors())
		}
	})
	if depth < 0 {
		return 0
	}
	return depth
}

// sortOuterFirst sorts compartment accessions by ascending depth (root-ward
// first), breaking ties alphabetically for determinism.
func sortOuterFirst(tree *model.Compartment, accessions []string) []string {
	out := append([]string(nil), accessions...)
	sort.Slice(out, func(i, j int) bool {
		di, dj := compartmentDepth(tree, out[i]), compartmentDepth(tree, out[j])
		if di != dj {
			return di < dj
		}
		return out[i] < out[j]
	})
	return out
}

// sortInnerFirst sorts compartment accessions by descending depth
// (leaf-ward first), breaking ties alphabetically.
func sortInnerFirst(tree *model.Compartment, accessions []string) []string {
	out := append([]string(nil), accessions...)
	sort.Slice(out, func(i, j int) bool {
		di, dj := compartmentDepth(tree, out[i]), compartmentDepth(tree, out[j])
		if di != dj {
			return di > dj
		}
		return out[i] < out[j]
	})
	return out
}
