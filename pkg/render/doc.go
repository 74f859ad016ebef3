// Package render draws a finalized rlayout.Layout to SVG using
// github.com/ajstarks/svgo, the way pkg/export draws a dungeon graph: a
// canvas, one draw function per glyph kind, deterministic sorted-ID
// iteration order.
package render
