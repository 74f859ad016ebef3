package model

import (
	"fmt"

	"github.com/bioreact/rxnlayout/pkg/geometry"
)

// RenderableClass identifies the drawable shape family of a glyph.
type RenderableClass int

const (
	ClassProtein RenderableClass = iota
	ClassComplex
	ClassChemical
	ClassSet
	ClassGene
	ClassEntity
	ClassRNA
	ClassDrug // the "_DRUG" variant of a chemical/protein glyph
	ClassProcessNode
	ClassEncapsulatedNode
	ClassAttachment
)

// String returns the string representation of a RenderableClass.
func (c RenderableClass) String() string {
	switch c {
	case ClassProtein:
		return "Protein"
	case ClassComplex:
		return "Complex"
	case ClassChemical:
		return "Chemical"
	case ClassSet:
		return "Set"
	case ClassGene:
		return "Gene"
	case ClassEntity:
		return "Entity"
	case ClassRNA:
		return "RNA"
	case ClassDrug:
		return "Drug"
	case ClassProcessNode:
		return "ProcessNode"
	case ClassEncapsulatedNode:
		return "EncapsulatedNode"
	case ClassAttachment:
		return "Attachment"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// classPreferenceRank implements the fixed sort preference order from
// spec §4.3: process-node, encapsulated-node, complex, entity-set, protein,
// RNA, chemical, gene, entity. Classes not listed (Drug, Attachment) share
// one rank after everything named, so they tie with each other.
var classPreferenceRank = map[RenderableClass]int{
	ClassProcessNode:      0,
	ClassEncapsulatedNode: 1,
	ClassComplex:          2,
	ClassSet:              3,
	ClassProtein:          4,
	ClassRNA:              5,
	ClassChemical:         6,
	ClassGene:             7,
	ClassEntity:           8,
}

// PreferenceRank returns the class's position in the tile sort-order
// preference list; lower sorts first.
func (c RenderableClass) PreferenceRank() int {
	if rank, ok := classPreferenceRank[c]; ok {
		return rank
	}
	return len(classPreferenceRank)
}

// sizeByClass gives each renderable class's default glyph width/height before
// text is taken into account. These mirror a size-class table the way the
// teacher's SizeToGridDimensions maps an abstract size enum to pixel dims.
var sizeByClass = map[RenderableClass][2]float64{
	ClassProtein:          {70, 30},
	ClassComplex:          {90, 40},
	ClassChemical:         {50, 50},
	ClassSet:              {90, 40},
	ClassGene:             {100, 24},
	ClassEntity:           {60, 30},
	ClassRNA:              {70, 30},
	ClassDrug:             {70, 30},
	ClassProcessNode:      {30, 30},
	ClassEncapsulatedNode: {100, 60},
	ClassAttachment:       {20, 20},
}

// BaseSize returns the class's default (width, height) before text sizing.
func (c RenderableClass) BaseSize() (w, h float64) {
	if sz, ok := sizeByClass[c]; ok {
		return sz[0], sz[1]
	}
	return 60, 30
}

// Attachment represents a translational modification glyph hanging off an
// entity (e.g. a phosphate group).
type Attachment struct {
	ID    string
	Name  string
	Label string
}

// Flags bundles the boolean rendering/behavior flags an entity may carry.
type Flags struct {
	Trivial bool // small cofactor, ordered last within its tile
	Crossed bool
	Dashed  bool
	Drug    bool
	Disease bool
}

// Entity is a physical-entity glyph participating in the reaction.
type Entity struct {
	ID              string
	Name            string
	Class           RenderableClass
	Roles           []Role
	Flags           Flags
	Attachments     []Attachment
	CompartmentID string // accession of the leaf compartment this entity belongs to
	Position      geometry.Position
	Connector     *Connector // set after routing; nil before
}

// RoleTypes returns the set of distinct role types carried by the entity.
func (e *Entity) RoleTypes() RoleTypeSet {
	return NewRoleTypeSet(e.Roles)
}

// HasRole reports whether the entity carries a role of type t.
func (e *Entity) HasRole(t RoleType) bool {
	for _, r := range e.Roles {
		if r.Type == t {
			return true
		}
	}
	return false
}

// RoleOfType returns the entity's role of type t and whether it was found.
func (e *Entity) RoleOfType(t RoleType) (Role, bool) {
	for _, r := range e.Roles {
		if r.Type == t {
			return r, true
		}
	}
	return Role{}, false
}

// Size returns the entity's (width, height), derived from its renderable
// class and, when a TextMetrics oracle is supplied, its name's text
// dimensions (the larger of the class default and the text-driven size is
// used, so short names never shrink a glyph below its class minimum).
func (e *Entity) Size(textW func(string) float64, textH func() float64) (w, h float64) {
	w, h = e.Class.BaseSize()
	if textW == nil || textH == nil {
		return w, h
	}
	tw := textW(e.Name) + 16 // horizontal text padding inside the glyph
	th := textH() + 8
	if tw > w {
		w = tw
	}
	if th > h {
		h = th
	}
	return w, h
}

// String returns a human-readable representation of the Entity.
func (e *Entity) String() string {
	return fmt.Sprintf("Entity[%s: %s %s, roles=%d]", e.ID, e.Name, e.Class, len(e.Roles))
}

// Validate checks the entity's invariants: a non-empty ID and that every
// role satisfies its own Validate (stoichiometry >= 1).
func (e *Entity) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entity ID cannot be empty")
	}
	for _, r := range e.Roles {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("entity %s: %w", e.ID, err)
		}
	}
	return nil
}
