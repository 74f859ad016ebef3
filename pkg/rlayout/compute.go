package rlayout

import (
	"github.com/bioreact/rxnlayout/pkg/compartment"
	"github.com/bioreact/rxnlayout/pkg/duplicate"
	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/index"
	"github.com/bioreact/rxnlayout/pkg/placement"
	"github.com/bioreact/rxnlayout/pkg/router"
	"github.com/bioreact/rxnlayout/pkg/sizing"
	"github.com/bioreact/rxnlayout/pkg/textmetrics"
)

// Compute runs the full layout pipeline: duplicate entities with
// conflicting role sets, index them by role, build the compartment tree,
// place the grid, route connectors, and size/finalize the result. tm
// supplies the text-width oracle (pass textmetrics.Stub{} for a
// deterministic, renderer-free result).
func Compute(in Input, tm textmetrics.TextMetrics) (*Layout, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if tm == nil {
		tm = textmetrics.Stub{}
	}

	entities := duplicate.Split(in.Entities)
	idx := index.Build(entities)
	tree := compartment.Build(in.CompartmentPresent, in.CompartmentDAG, in.CompartmentNames)

	placement.Place(in.Reaction, tree, idx, tm)
	router.Route(in.Reaction, idx)
	sizing.Size(tree, in.Reaction, entities, tm)

	compartments := sizing.EmittedCompartments(tree)

	var bounds geometry.Position
	bounds = geometry.Union(bounds, in.Reaction.Position)
	for _, c := range compartments {
		bounds = geometry.Union(bounds, c.Position)
	}
	for _, e := range entities {
		bounds = geometry.Union(bounds, e.Position)
	}

	return &Layout{
		Reaction:     in.Reaction,
		Entities:     entities,
		Compartments: compartments,
		Bounds:       bounds,
	}, nil
}
