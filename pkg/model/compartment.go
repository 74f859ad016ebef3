package model

import (
	"fmt"

	"github.com/bioreact/rxnlayout/pkg/geometry"
)

// ExtracellularAccession is the sentinel root compartment's accession. It is
// attached as the outermost surrounding context during computation and
// stripped from the emitted compartment collection (spec §4.1, §4.5).
const ExtracellularAccession = "EXTRACELLULAR_REGION"

// CompartmentPadding is the uniform padding applied on every side of a
// compartment's Position beyond the union of its contents (spec §3, §4.5).
const CompartmentPadding = 20.0

// Compartment is a node in the compartment tree: a named cellular region
// that encloses contained glyphs and child compartments.
type Compartment struct {
	Accession string
	Name      string

	Glyphs   []string // IDs of directly-contained entities/reaction, in insertion order
	Children []*Compartment
	Parent   *Compartment

	Position      geometry.Position
	LabelPosition geometry.Coordinate
}

// IsRoot reports whether the compartment has no parent.
func (c *Compartment) IsRoot() bool {
	return c.Parent == nil
}

// IsExtracellular reports whether this is the sentinel root.
func (c *Compartment) IsExtracellular() bool {
	return c.Accession == ExtracellularAccession
}

// AddChild attaches child as a child of c, wiring the back-reference.
func (c *Compartment) AddChild(child *Compartment) {
	child.Parent = c
	c.Children = append(c.Children, child)
}

// AddGlyph appends a glyph ID to the compartment's contained-glyphs list if
// not already present.
func (c *Compartment) AddGlyph(id string) {
	for _, existing := range c.Glyphs {
		if existing == id {
			return
		}
	}
	c.Glyphs = append(c.Glyphs, id)
}

// Ancestors returns the chain of compartments from c's parent up to (and
// including) the root, nearest ancestor first.
func (c *Compartment) Ancestors() []*Compartment {
	var chain []*Compartment
	for p := c.Parent; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	return chain
}

// IsDescendantOf reports whether c is other, or nested (at any depth) inside
// other.
func (c *Compartment) IsDescendantOf(other *Compartment) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Walk visits c and every descendant in pre-order, calling fn on each.
func (c *Compartment) Walk(fn func(*Compartment)) {
	fn(c)
	for _, child := range c.Children {
		child.Walk(fn)
	}
}

// WalkPostOrder visits every descendant of c before c itself, the traversal
// order compartment sizing (C7) requires so a parent's bounds can fold in
// its already-sized children.
func (c *Compartment) WalkPostOrder(fn func(*Compartment)) {
	for _, child := range c.Children {
		child.WalkPostOrder(fn)
	}
	fn(c)
}

// Validate checks that the compartment has a non-empty accession.
func (c *Compartment) Validate() error {
	if c.Accession == "" {
		return fmt.Errorf("compartment accession cannot be empty")
	}
	return nil
}

// String returns a human-readable representation of the Compartment.
func (c *Compartment) String() string {
	return fmt.Sprintf("Compartment[%s: %s, children=%d, glyphs=%d]",
		c.Accession, c.Name, len(c.Children), len(c.Glyphs))
}
