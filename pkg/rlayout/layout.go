package rlayout

import (
	"errors"
	"fmt"

	"github.com/bioreact/rxnlayout/pkg/compartment"
	"github.com/bioreact/rxnlayout/pkg/geometry"
	"github.com/bioreact/rxnlayout/pkg/model"
)

// ErrEmptyParticipants is the sentinel returned by Input.Validate when a
// reaction carries no entities at all (spec §7's "empty participant list"
// malformed-input case), distinguished from other validation failures so
// callers can special-case it with errors.Is.
var ErrEmptyParticipants = errors.New("rlayout: reaction has no participants")

// Input is everything Compute needs to lay out a single reaction diagram.
type Input struct {
	Reaction *model.Reaction
	Entities []*model.Entity

	// CompartmentPresent lists the accessions of every compartment the
	// reaction's entities and reaction actually occupy.
	CompartmentPresent []string
	// CompartmentDAG maps each known compartment accession to the
	// accessions it is directly surrounded_by (spec §4.1).
	CompartmentDAG compartment.DAG
	// CompartmentNames maps accession to display name.
	CompartmentNames compartment.Names
}

// Validate checks the input's structural invariants before Compute runs.
func (in *Input) Validate() error {
	if in.Reaction == nil {
		return fmt.Errorf("reaction is required")
	}
	if err := in.Reaction.Validate(); err != nil {
		return fmt.Errorf("reaction: %w", err)
	}
	if len(in.Entities) == 0 {
		return fmt.Errorf("%w: reaction %s has no participants", ErrEmptyParticipants, in.Reaction.ID)
	}
	for _, e := range in.Entities {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entity: %w", err)
		}
	}
	return nil
}

// Layout is the finalized, absolute-coordinate result of Compute: the
// reaction, every entity (post-duplication) with its Position and routed
// Connector, and every non-sentinel compartment with its Position and
// LabelPosition.
type Layout struct {
	Reaction     *model.Reaction
	Entities     []*model.Entity
	Compartments []*model.Compartment
	Bounds       geometry.Position
}
