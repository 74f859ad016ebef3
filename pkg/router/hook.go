package router

import (
	"math"

	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/model"
)

// hookRise is how far above the higher of the glyph's and the reaction's top
// edges the bi-role hook runs.
const hookRise = 5.0

// routeBiRoleCatalystHook builds the connector for an entity carrying both
// INPUT and CATALYST roles (spec §4.4): the normal input path into the
// reaction's left port (2 segments when the glyph is level with the port),
// continued by 3 more segments that hook up from the port, run across above
// the glyph and the reaction, and come back down into the reaction's top
// edge, so the single glyph visibly serves both roles. The hook does not use
// the catalyst corridor.
func routeBiRoleCatalystHook(e *model.Entity, reaction *model.Reaction, vRule, _ float64) {
	start := geometry.Coordinate{X: e.Position.MaxX(), Y: e.Position.CenterY()}
	port := reaction.LeftPort()
	inputPath := orthogonalPath(start, vRule, port)
	inputPath = applyGeneJog(e, inputPath, start)

	hookY := math.Min(e.Position.MinY(), reaction.Position.MinY()) - hookRise
	top := geometry.Coordinate{X: reaction.Position.CenterX(), Y: reaction.Position.MinY()}
	hookSegs := geometry.Chain(port,
		geometry.Coordinate{X: port.X, Y: hookY},
		geometry.Coordinate{X: top.X, Y: hookY},
		top)

	segs := append(append([]geometry.Segment(nil), inputPath...), hookSegs...)
	e.Connector = &model.Connector{Segments: segs, Pointer: model.PointerInput}
}
