package router

import (
	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/index"
	"github.com/bioreact/rxnlayout/pkg/model"
)

// Route computes and assigns the Connector for every entity in idx, wiring
// each to reaction. Entities carrying multiple roles (the {INPUT, CATALYST}
// bi-role combination the duplication pass leaves intact) get the bi-role
// hook connector instead of a plain input connector.
func Route(reaction *model.Reaction, idx *index.RoleIndex) {
	vIn := inputVRule(idx.Inputs)
	vOut := outputVRule(idx.Outputs)
	hCat := catalystHRule(idx.Catalysts)

	for _, e := range idx.Inputs {
		if e.HasRole(model.Catalyst) {
			routeBiRoleCatalystHook(e, reaction, vIn, hCat)
			continue
		}
		routeInput(e, reaction, vIn)
	}
	for _, e := range idx.Outputs {
		routeOutput(e, reaction, vOut)
	}
	for _, e := range idx.Catalysts {
		if e.HasRole(model.Input) {
			continue // already routed above as a bi-role hook
		}
		routeCatalyst(e, reaction, hCat)
	}
	routeRegulators(reaction, idx.PositiveRegulators, model.PointerActivator)
	routeRegulators(reaction, idx.NegativeRegulators, model.PointerInhibitor)

	for _, e := range allRouted(idx) {
		attachStoichiometryBadge(e)
	}
}

func allRouted(idx *index.RoleIndex) []*model.Entity {
	var out []*model.Entity
	out = append(out, idx.Inputs...)
	out = append(out, idx.Outputs...)
	for _, e := range idx.Catalysts {
		if !e.HasRole(model.Input) {
			out = append(out, e)
		}
	}
	out = append(out, idx.PositiveRegulators...)
	out = append(out, idx.NegativeRegulators...)
	return out
}

// routeInput builds the orthogonal path (at most 3 segments; see
// orthogonalPath and trimZeroLength) from an input glyph's
// right edge, through the shared vertical corridor, into the reaction's
// left port.
func routeInput(e *model.Entity, reaction *model.Reaction, vRule float64) {
	start := geometry.Coordinate{X: e.Position.MaxX(), Y: e.Position.CenterY()}
	port := reaction.LeftPort()
	segs := orthogonalPath(start, vRule, port)
	segs = applyGeneJog(e, segs, start)
	e.Connector = &model.Connector{Segments: segs, Pointer: model.PointerInput}
}

// routeOutput builds the symmetric path (at most 3 segments) from the reaction's right
// port to an output glyph's left edge.
func routeOutput(e *model.Entity, reaction *model.Reaction, vRule float64) {
	port := reaction.RightPort()
	end := geometry.Coordinate{X: e.Position.MinX(), Y: e.Position.CenterY()}
	segs := orthogonalPath(port, vRule, end)
	e.Connector = &model.Connector{Segments: segs, Pointer: model.PointerOutput}
}

// routeCatalyst builds the path (at most 3 segments) from a catalyst glyph's bottom
// edge, through the shared horizontal corridor, down into the reaction's
// top edge.
func routeCatalyst(e *model.Entity, reaction *model.Reaction, hRule float64) {
	start := geometry.Coordinate{X: e.Position.CenterX(), Y: e.Position.MaxY()}
	end := geometry.Coordinate{X: reaction.Position.CenterX(), Y: reaction.Position.MinY()}
	segs := verticalOrthogonalPath(start, hRule, end)
	e.Connector = &model.Connector{Segments: segs, Pointer: model.PointerCatalyst}
}

// orthogonalPath builds a horizontal-vertical-horizontal path: from, across
// to the x=corridor rule, then into to.
func orthogonalPath(from geometry.Coordinate, corridorX float64, to geometry.Coordinate) []geometry.Segment {
	bend1 := geometry.Coordinate{X: corridorX, Y: from.Y}
	bend2 := geometry.Coordinate{X: corridorX, Y: to.Y}
	return trimZeroLength(geometry.Chain(from, bend1, bend2, to))
}

// verticalOrthogonalPath builds a vertical-horizontal-vertical path: from,
// down to the y=corridor rule, then into to.
func verticalOrthogonalPath(from geometry.Coordinate, corridorY float64, to geometry.Coordinate) []geometry.Segment {
	bend1 := geometry.Coordinate{X: from.X, Y: corridorY}
	bend2 := geometry.Coordinate{X: to.X, Y: corridorY}
	return trimZeroLength(geometry.Chain(from, bend1, bend2, to))
}

// trimZeroLength drops zero-length segments a path can produce when an
// endpoint already sits on the corridor rule, while keeping at least one
// segment so Connector.Validate's non-empty invariant always holds.
func trimZeroLength(segs []geometry.Segment) []geometry.Segment {
	out := make([]geometry.Segment, 0, len(segs))
	for _, s := range segs {
		if s.Length() > 0 {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return segs[:1]
	}
	return out
}
