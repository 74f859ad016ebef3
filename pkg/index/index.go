package index

import (
	"sort"

	"github.com/bioreact/rxnlayout/pkg/model"
)

// RoleIndex is a read-only partition of entities by the role type they
// carry. An entity with a compatible multi-role set (e.g. {INPUT,
// CATALYST}) appears in every bucket it qualifies for, since the grid
// placement and connector routing stages each need to see it from their own
// role's perspective.
type RoleIndex struct {
	Inputs             []*model.Entity
	Outputs            []*model.Entity
	Catalysts          []*model.Entity
	PositiveRegulators []*model.Entity
	NegativeRegulators []*model.Entity
}

// Build partitions entities by role. Entities are expected to have already
// passed through the duplication pass (pkg/duplicate), so any remaining
// multi-role set is one of the compatible combinations the spec permits.
func Build(entities []*model.Entity) *RoleIndex {
	idx := &RoleIndex{}
	for _, e := range entities {
		if e.HasRole(model.Input) {
			idx.Inputs = append(idx.Inputs, e)
		}
		if e.HasRole(model.Output) {
			idx.Outputs = append(idx.Outputs, e)
		}
		if e.HasRole(model.Catalyst) {
			idx.Catalysts = append(idx.Catalysts, e)
		}
		if e.HasRole(model.PositiveRegulator) {
			idx.PositiveRegulators = append(idx.PositiveRegulators, e)
		}
		if e.HasRole(model.NegativeRegulator) {
			idx.NegativeRegulators = append(idx.NegativeRegulators, e)
		}
	}
	return idx
}

// ByRole returns the bucket for the given role type.
func (idx *RoleIndex) ByRole(t model.RoleType) []*model.Entity {
	switch t {
	case model.Input:
		return idx.Inputs
	case model.Output:
		return idx.Outputs
	case model.Catalyst:
		return idx.Catalysts
	case model.PositiveRegulator:
		return idx.PositiveRegulators
	case model.NegativeRegulator:
		return idx.NegativeRegulators
	default:
		return nil
	}
}

// GroupByCompartment groups a role bucket by the entities' CompartmentID,
// returning the distinct compartment IDs in deterministic (sorted) order
// alongside the grouping map, since the grid's row/column bands are ordered
// per compartment (spec §4.3).
func GroupByCompartment(entities []*model.Entity) (order []string, groups map[string][]*model.Entity) {
	groups = make(map[string][]*model.Entity)
	for _, e := range entities {
		groups[e.CompartmentID] = append(groups[e.CompartmentID], e)
	}
	order = make([]string, 0, len(groups))
	for id := range groups {
		order = append(order, id)
	}
	sort.Strings(order)
	return order, groups
}
