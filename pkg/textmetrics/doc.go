// Package textmetrics hides the font-metrics oracle the layout engine
// consumes but never computes itself (spec §6): text_width(name) and
// text_height(). Real renderers supply their own implementation; this
// package also ships the deterministic stub the spec's design notes
// describe, for tests and callers with no font backend.
package textmetrics
