package placement

import (
	"testing"

	"github.com/bioreact/rxnlayout/pkg/index"
	"github.com/bioreact/rxnlayout/pkg/model"
	"github.com/bioreact/rxnlayout/pkg/textmetrics"
)

func flatEntity(id string, roleType model.RoleType, compartment string, class model.RenderableClass) *model.Entity {
	return &model.Entity{
		ID:            id,
		Name:          id,
		Class:         class,
		Roles:         []model.Role{{Type: roleType, Stoichiometry: 1}},
		CompartmentID: compartment,
	}
}

func twoCompartmentTree() *model.Compartment {
	root := &model.Compartment{Accession: model.ExtracellularAccession, Name: "extracellular region"}
	cyto := &model.Compartment{Accession: "cytoplasm", Name: "cytoplasm"}
	root.AddChild(cyto)
	return root
}

func TestBuildGridBandsInputsOutputsAcrossReaction(t *testing.T) {
	tree := twoCompartmentTree()
	a := flatEntity("A", model.Input, "cytoplasm", model.ClassProtein)
	b := flatEntity("B", model.Output, "cytoplasm", model.ClassProtein)
	idx := index.Build([]*model.Entity{a, b})

	g := buildGrid(tree, idx)

	if g.Cells[g.ReactionRow][0].Empty() {
		t.Fatalf("expected input cell to be populated left of reaction")
	}
	lastCol := len(g.Cols) - 1
	if g.Cells[g.ReactionRow][lastCol].Empty() {
		t.Fatalf("expected output cell to be populated right of reaction")
	}
	if g.ReactionCol == 0 || g.ReactionCol == lastCol {
		t.Fatalf("reaction column should sit strictly between input and output columns, got %d of %d", g.ReactionCol, len(g.Cols))
	}
}

func TestBuildGridBandsCatalystsAboveRegulatorsBelow(t *testing.T) {
	tree := twoCompartmentTree()
	cat := flatEntity("K", model.Catalyst, "cytoplasm", model.ClassProtein)
	reg := flatEntity("R", model.PositiveRegulator, "cytoplasm", model.ClassProtein)
	idx := index.Build([]*model.Entity{cat, reg})

	g := buildGrid(tree, idx)

	catRow, regRow := -1, -1
	for i, r := range g.Rows {
		if r.Band == BandCatalystRow && !g.Cells[i][g.ReactionCol].Empty() {
			catRow = i
		}
		if r.Band == BandRegulatorRow && !g.Cells[i][g.ReactionCol].Empty() {
			regRow = i
		}
	}
	if catRow == -1 || regRow == -1 {
		t.Fatalf("expected both a populated catalyst row and regulator row, got catRow=%d regRow=%d", catRow, regRow)
	}
	if catRow > g.ReactionRow || regRow < g.ReactionRow {
		t.Fatalf("catalyst row must be above reaction row and regulator row below: catRow=%d reactionRow=%d regRow=%d", catRow, g.ReactionRow, regRow)
	}
}

func TestCompactEmptyRemovesUnusedBands(t *testing.T) {
	tree := twoCompartmentTree()
	a := flatEntity("A", model.Input, "cytoplasm", model.ClassProtein)
	idx := index.Build([]*model.Entity{a})

	g := buildGrid(tree, idx)
	// buildGrid only creates bands for compartments holding a participant of
	// that role, so add an unused output column by hand.
	g.Cols = append(g.Cols, &Col{Band: BandOutputCol, CompartmentID: "cytoplasm"})
	for i := range g.Cells {
		g.Cells[i] = append(g.Cells[i], nil)
	}
	beforeCols := len(g.Cols)
	compactEmpty(g)

	if len(g.Cols) >= beforeCols {
		t.Fatalf("expected empty output column to be compacted away: before=%d after=%d", beforeCols, len(g.Cols))
	}
	enforceNoDiagonal(g)
}

func TestSortTileOrdersMultiRoleThenNonTrivialThenClass(t *testing.T) {
	single := &model.Entity{ID: "single", Class: model.ClassChemical, Roles: []model.Role{{Type: model.Input, Stoichiometry: 1}}}
	multi := &model.Entity{ID: "multi", Class: model.ClassChemical, Roles: []model.Role{{Type: model.Input, Stoichiometry: 1}, {Type: model.Catalyst, Stoichiometry: 1}}}
	trivial := &model.Entity{ID: "trivial", Class: model.ClassChemical, Flags: model.Flags{Trivial: true}, Roles: []model.Role{{Type: model.Input, Stoichiometry: 1}}}

	entities := []*model.Entity{trivial, single, multi}
	sortTile(entities)

	if entities[0] != multi {
		t.Fatalf("expected multi-role entity first, got %s", entities[0].ID)
	}
	if entities[1] != single {
		t.Fatalf("expected non-trivial single-role entity second, got %s", entities[1].ID)
	}
	if entities[2] != trivial {
		t.Fatalf("expected trivial entity last, got %s", entities[2].ID)
	}
}

func TestSizeVerticalCellSwitchesToTwoColumnsPastSix(t *testing.T) {
	var entities []*model.Entity
	for i := 0; i < 7; i++ {
		entities = append(entities, &model.Entity{ID: string(rune('a' + i)), Class: model.ClassChemical})
	}
	c := &Cell{Kind: KindVertical, Entities: entities}
	sizeCell(c, textmetrics.Stub{})

	for _, e := range entities[:4] {
		if e.Position.X != entities[0].Position.X {
			t.Fatalf("expected first column entities to share an X offset")
		}
	}
	if entities[4].Position.X == entities[0].Position.X {
		t.Fatalf("expected entity index 4 to have switched to the second column")
	}
}

func TestPlaceProducesNonOverlappingReactionAndReturnsGrid(t *testing.T) {
	tree := twoCompartmentTree()
	in := flatEntity("ATP", model.Input, "cytoplasm", model.ClassChemical)
	out := flatEntity("ADP", model.Output, "cytoplasm", model.ClassChemical)
	idx := index.Build([]*model.Entity{in, out})
	reaction := &model.Reaction{ID: "r1", Name: "hydrolysis"}

	g := Place(reaction, tree, idx, textmetrics.Stub{})

	if g == nil {
		t.Fatalf("expected a non-nil grid")
	}
	if reaction.Position.W <= 0 || reaction.Position.H <= 0 {
		t.Fatalf("expected reaction to have a positive size, got %+v", reaction.Position)
	}
	if in.Position.X >= reaction.Position.X {
		t.Fatalf("expected input glyph to sit left of the reaction, got input.X=%v reaction.X=%v", in.Position.X, reaction.Position.X)
	}
	if out.Position.X <= reaction.Position.X {
		t.Fatalf("expected output glyph to sit right of the reaction, got output.X=%v reaction.X=%v", out.Position.X, reaction.Position.X)
	}
}
