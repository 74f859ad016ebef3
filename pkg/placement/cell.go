package placement

import (
	"sort"

	"github.com/bioreact/rxnlayout/pkg/model"
	"github.com/bioreact/rxnlayout/pkg/textmetrics"
)

// interGlyphGap is the spacing used between glyphs packed into the same
// cell, for cases the spec does not pin to a specific constant (it only
// pins the two-column vertical-tile gap at 20, twoColumnGap below, and the
// regulator-strip gap at 16, RegulatorGap in finalize.go).
const interGlyphGap = 10.0

// twoColumnGap is the spec's fixed gap between the two columns a
// vertical tile switches to once it holds more than 6 glyphs (spec §4.3).
const twoColumnGap = 20.0

// sortTile orders a cell's entities per spec §4.3: multi-role first, then
// non-trivial before trivial, then the fixed renderable-class preference
// order.
func sortTile(entities []*model.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		if len(a.Roles) != len(b.Roles) {
			return len(a.Roles) > len(b.Roles)
		}
		if a.Flags.Trivial != b.Flags.Trivial {
			return !a.Flags.Trivial // non-trivial (false) sorts before trivial (true)
		}
		return a.Class.PreferenceRank() < b.Class.PreferenceRank()
	})
}

// sizeCell computes a cell's intrinsic content size and assigns each
// entity's Position relative to the cell's own local origin (0,0); these
// local positions are later shifted onto the grid's absolute column/row
// centers during finalization.
func sizeCell(c *Cell, tm textmetrics.TextMetrics) {
	if c.Empty() {
		return
	}
	sortTile(c.Entities)

	sizes := make([][2]float64, len(c.Entities))
	for i, e := range c.Entities {
		w, h := e.Size(tm.Width, tm.Height)
		sizes[i] = [2]float64{w, h}
	}

	switch c.Kind {
	case KindVertical:
		sizeVerticalCell(c, sizes)
	case KindHorizontal:
		sizeHorizontalCell(c, sizes)
	}
}

// sizeVerticalCell stacks entities top-to-bottom in a single column, or
// switches to two columns with a 20-unit gap once there are more than 6
// (spec §4.3).
func sizeVerticalCell(c *Cell, sizes [][2]float64) {
	n := len(c.Entities)
	if n <= 6 {
		var maxW, y float64
		for i, e := range c.Entities {
			w, h := sizes[i][0], sizes[i][1]
			e.Position.W, e.Position.H = w, h
			e.Position.X = -w / 2
			e.Position.Y = y
			y += h + interGlyphGap
			if w > maxW {
				maxW = w
			}
		}
		c.ContentW = maxW
		c.ContentH = y - interGlyphGap
		if c.ContentH < 0 {
			c.ContentH = 0
		}
		return
	}

	half := (n + 1) / 2
	colWidth := [2]float64{}
	colY := [2]float64{}
	colX := [2]float64{0, 0}
	for i, e := range c.Entities {
		col := 0
		if i >= half {
			col = 1
		}
		w, h := sizes[i][0], sizes[i][1]
		e.Position.W, e.Position.H = w, h
		e.Position.Y = colY[col]
		colY[col] += h + interGlyphGap
		if w > colWidth[col] {
			colWidth[col] = w
		}
	}
	colX[1] = colWidth[0] + twoColumnGap
	for i, e := range c.Entities {
		col := 0
		if i >= half {
			col = 1
		}
		e.Position.X = colX[col]
	}
	c.ContentW = colWidth[0] + twoColumnGap + colWidth[1]
	c.ContentH = maxF(colY[0]-interGlyphGap, colY[1]-interGlyphGap)
}

// sizeHorizontalCell lays entities out side-by-side in a single row
// (catalyst and regulator tiles).
func sizeHorizontalCell(c *Cell, sizes [][2]float64) {
	var x, maxH float64
	for i, e := range c.Entities {
		w, h := sizes[i][0], sizes[i][1]
		e.Position.W, e.Position.H = w, h
		e.Position.X = x
		e.Position.Y = -h / 2
		x += w + interGlyphGap
		if h > maxH {
			maxH = h
		}
	}
	c.ContentW = x - interGlyphGap
	if c.ContentW < 0 {
		c.ContentW = 0
	}
	c.ContentH = maxH
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
