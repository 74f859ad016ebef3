package router

import (
	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/model"
)

// geneJogSize is the fixed length of the short perpendicular tick drawn at
// a gene glyph's connector origin, depicting the transcription arrow-head
// (spec §4.4).
const geneJogSize = 8.0

// applyGeneJog prepends a short vertical tick segment at a gene entity's
// connector origin before the rest of the path, leaving non-gene entities'
// paths untouched.
func applyGeneJog(e *model.Entity, segs []geometry.Segment, origin geometry.Coordinate) []geometry.Segment {
	if e.Class != model.ClassGene || len(segs) == 0 {
		return segs
	}
	jogEnd := geometry.Coordinate{X: origin.X, Y: origin.Y - geneJogSize}
	jog := geometry.Segment{From: origin, To: jogEnd}
	rest := append([]geometry.Segment(nil), segs...)
	rest[0].From = jogEnd
	return append([]geometry.Segment{jog}, rest...)
}
