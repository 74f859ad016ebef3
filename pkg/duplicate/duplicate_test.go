package duplicate

import (
	"testing"

	"github.com/bioreact/rxnlayout/pkg/model"
)

func TestSplitInputOutput(t *testing.T) {
	e := &model.Entity{ID: "d1", Roles: []model.Role{
		{Type: model.Input, Stoichiometry: 1},
		{Type: model.Output, Stoichiometry: 1},
	}}
	out := Split([]*model.Entity{e})
	if len(out) != 2 {
		t.Fatalf("expected 2 entities after split, got %d", len(out))
	}
	roleTypes := map[model.RoleType]bool{}
	for _, ent := range out {
		if len(ent.Roles) != 1 {
			t.Fatalf("expected each split glyph to have exactly one role, got %d", len(ent.Roles))
		}
		roleTypes[ent.Roles[0].Type] = true
	}
	if !roleTypes[model.Input] || !roleTypes[model.Output] {
		t.Fatalf("expected one Input glyph and one Output glyph, got %+v", roleTypes)
	}
}

func TestSplitCatalystPositiveRegulator(t *testing.T) {
	e := &model.Entity{ID: "c1", Roles: []model.Role{
		{Type: model.Catalyst, Stoichiometry: 1},
		{Type: model.PositiveRegulator, Stoichiometry: 1},
	}}
	out := Split([]*model.Entity{e})
	if len(out) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(out))
	}
}

func TestSplitThreeWayPeelsCatalyst(t *testing.T) {
	e := &model.Entity{ID: "t1", Roles: []model.Role{
		{Type: model.Catalyst, Stoichiometry: 1},
		{Type: model.PositiveRegulator, Stoichiometry: 1},
		{Type: model.NegativeRegulator, Stoichiometry: 1},
	}}
	out := Split([]*model.Entity{e})
	if len(out) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(out))
	}
	var catalystGlyph, regGlyph *model.Entity
	for _, ent := range out {
		if len(ent.Roles) == 1 && ent.Roles[0].Type == model.Catalyst {
			catalystGlyph = ent
		}
		if len(ent.Roles) == 2 {
			regGlyph = ent
		}
	}
	if catalystGlyph == nil || regGlyph == nil {
		t.Fatalf("expected one catalyst-only glyph and one two-regulator glyph, got %+v", out)
	}
	if !regGlyph.HasRole(model.PositiveRegulator) || !regGlyph.HasRole(model.NegativeRegulator) {
		t.Fatalf("expected the kept glyph to carry both regulator roles")
	}
}

func TestSplitPassesThroughCompatibleSets(t *testing.T) {
	e := &model.Entity{ID: "p1", Roles: []model.Role{
		{Type: model.Catalyst, Stoichiometry: 1},
	}}
	out := Split([]*model.Entity{e})
	if len(out) != 1 || out[0] != e {
		t.Fatalf("expected single-role entity to pass through unchanged, got %+v", out)
	}
}

func TestSplitIsIdempotent(t *testing.T) {
	e := &model.Entity{ID: "i1", Roles: []model.Role{
		{Type: model.Input, Stoichiometry: 1},
		{Type: model.Output, Stoichiometry: 1},
	}}
	once := Split([]*model.Entity{e})
	twice := Split(once)
	if len(once) != len(twice) {
		t.Fatalf("expected idempotent split, got %d then %d entities", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID || len(once[i].Roles) != len(twice[i].Roles) {
			t.Fatalf("re-running split mutated entity %d: %+v vs %+v", i, once[i], twice[i])
		}
	}
}
