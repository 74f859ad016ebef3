package router

import (
	"math"
	"sort"

	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/model"
)

// regulatorArcMargin is the fixed constant in the semicircle radius formula
// (spec §4.4): radius = height/2 + 6*(n+1)/pi.
const regulatorArcMargin = 6.0

// routeRegulators fans a row of regulator connectors out from the reaction
// on a semicircle below it: entity i (1-indexed among n, after sorting the
// row by center_x per spec §4.4) attaches at angle pi*i/(n+1) around a
// circle of the given radius centered on the reaction, with a single
// straight segment from the glyph to that attachment point.
func routeRegulators(reaction *model.Reaction, regulators []*model.Entity, pointer model.PointerType) {
	n := len(regulators)
	if n == 0 {
		return
	}
	sorted := append([]*model.Entity(nil), regulators...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position.CenterX() < sorted[j].Position.CenterX()
	})

	center := reaction.Position.Center()
	radius := reaction.Position.H/2 + regulatorArcMargin*float64(n+1)/math.Pi

	for i, e := range sorted {
		angle := math.Pi * float64(i+1) / float64(n+1)
		attach := geometry.Coordinate{
			X: center.X - radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
		origin := geometry.Coordinate{X: e.Position.CenterX(), Y: e.Position.MinY()}
		e.Connector = &model.Connector{
			Segments: []geometry.Segment{{From: origin, To: attach}},
			Pointer:  pointer,
		}
	}
}
