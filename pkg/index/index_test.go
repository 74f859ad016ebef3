package index

import (
	"testing"

	"github.com/bioreact/rxnlayout/pkg/model"
)

func TestBuildPartitionsByRole(t *testing.T) {
	a := &model.Entity{ID: "a", CompartmentID: "cyto", Roles: []model.Role{{Type: model.Input, Stoichiometry: 1}}}
	b := &model.Entity{ID: "b", CompartmentID: "cyto", Roles: []model.Role{
		{Type: model.Input, Stoichiometry: 1},
		{Type: model.Catalyst, Stoichiometry: 1},
	}}
	c := &model.Entity{ID: "c", CompartmentID: "nucleus", Roles: []model.Role{{Type: model.NegativeRegulator, Stoichiometry: 1}}}

	idx := Build([]*model.Entity{a, b, c})

	if len(idx.Inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(idx.Inputs))
	}
	if len(idx.Catalysts) != 1 || idx.Catalysts[0] != b {
		t.Fatalf("expected b to be the sole catalyst, got %+v", idx.Catalysts)
	}
	if len(idx.NegativeRegulators) != 1 || idx.NegativeRegulators[0] != c {
		t.Fatalf("expected c to be the sole negative regulator")
	}
}

func TestGroupByCompartmentIsSorted(t *testing.T) {
	a := &model.Entity{ID: "a", CompartmentID: "nucleus"}
	b := &model.Entity{ID: "b", CompartmentID: "cytoplasm"}
	order, groups := GroupByCompartment([]*model.Entity{a, b})
	if len(order) != 2 || order[0] != "cytoplasm" || order[1] != "nucleus" {
		t.Fatalf("expected sorted compartment order, got %v", order)
	}
	if len(groups["cytoplasm"]) != 1 || len(groups["nucleus"]) != 1 {
		t.Fatalf("expected one entity per compartment group")
	}
}
