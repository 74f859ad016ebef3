// Package sizing finalizes a computed layout (spec §4.5): it expands every
// compartment's bounds bottom-up from its children, directly-contained
// glyphs, and (where applicable) the reaction shape and the bi-role
// catalyst hook's enclosure point; applies uniform padding and
// text-width-driven minimum widths; places compartment labels; and
// translates the whole layout so its overall bounds start at the origin.
package sizing
