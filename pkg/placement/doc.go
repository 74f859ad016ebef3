// Package placement implements the grid/box placement algorithm (spec
// §4.3), the hardest-working stage of the layout pipeline. It builds a
// logical 2D grid indexed by (compartment, role), fills it with the
// reaction's participants, compacts empty rows and columns, sizes every row
// and column from its contents and compartment padding, and finally
// assigns every glyph its absolute pixel position.
//
// The grid is deliberately a dense [][]*Cell, not a sparse structure: the
// expected scale (tens of entities, a handful of compartments) keeps
// rows*cols well under a hundred, so dense indexing keeps the row/column
// removal this algorithm's compaction needs simple to reason about.
package placement
