package sizing

import (
	"github.com/bioreact/rxnlayout/pkg/model"
	"github.com/bioreact/rxnlayout/pkg/textmetrics"
)

// labelMarginX, labelMarginY place a compartment's name label just inside
// its bottom-right corner (spec §4.5): label_position =
// (maxX - text_width - 15, maxY + 0.5*text_height - 20).
const (
	labelMarginX = 15.0
	labelMarginY = 20.0
)

// labelCompartments assigns every compartment's LabelPosition relative to
// its own (already-sized) Position.
func labelCompartments(tree *model.Compartment, tm textmetrics.TextMetrics) {
	tree.Walk(func(c *model.Compartment) {
		c.LabelPosition.X = c.Position.MaxX() - tm.Width(c.Name) - labelMarginX
		c.LabelPosition.Y = c.Position.MaxY() + 0.5*tm.Height() - labelMarginY
	})
}
