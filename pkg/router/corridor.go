package router

import "github.com/bioreact/rxnlayout/pkg/model"

// corridorMargin is the fixed clearance spec §4.4 adds beyond the
// furthest-out glyph edge when computing a shared alignment rule.
const corridorMargin = 35.0

// outputArrowSize is the extra clearance spec §4.4 adds to the output
// corridor beyond corridorMargin, to leave room for the arrow-head pointer
// glyph drawn at the output connector's reaction-side end.
const outputArrowSize = 8.0

// inputVRule returns the shared vertical corridor x-coordinate every input
// connector bends through before turning into the reaction's left port:
// the rightmost input glyph edge, plus a fixed margin.
func inputVRule(inputs []*model.Entity) float64 {
	var maxX float64
	first := true
	for _, e := range inputs {
		x := e.Position.MaxX()
		if first || x > maxX {
			maxX = x
			first = false
		}
	}
	return maxX + corridorMargin
}

// outputVRule returns the shared vertical corridor every output connector
// bends through: the leftmost output glyph edge, minus the fixed margin and
// the arrow-head clearance.
func outputVRule(outputs []*model.Entity) float64 {
	var minX float64
	first := true
	for _, e := range outputs {
		x := e.Position.MinX()
		if first || x < minX {
			minX = x
			first = false
		}
	}
	return minX - corridorMargin - outputArrowSize
}

// catalystHRule returns the shared horizontal corridor every catalyst
// connector bends through: the lowest (closest-to-reaction) catalyst glyph
// edge, plus the fixed margin.
func catalystHRule(catalysts []*model.Entity) float64 {
	var maxY float64
	first := true
	for _, e := range catalysts {
		y := e.Position.MaxY()
		if first || y > maxY {
			maxY = y
			first = false
		}
	}
	return maxY + corridorMargin
}
