package textmetrics

// TextMetrics is the font-metrics oracle consumed (never computed) by the
// layout engine: given a string, it reports the width it would render at,
// plus a single line-height shared by all strings in a diagram's font.
// Implementations are assumed pure and cheap (spec §5); callers that hit an
// expensive backend should memoize.
type TextMetrics interface {
	Width(name string) float64
	Height() float64
}

// Stub is the deterministic text-metrics oracle described in the spec's
// design notes: width is 6 units per rune, height is a constant 12 units.
// It has no dependency on any font backend and is used by every test fixture
// in this repository so layouts are reproducible without a renderer.
type Stub struct{}

// Width returns 6 units per rune in name.
func (Stub) Width(name string) float64 {
	return 6 * float64(len([]rune(name)))
}

// Height returns the stub's constant line height, 12 units.
func (Stub) Height() float64 {
	return 12
}
